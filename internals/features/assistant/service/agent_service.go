package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bytedance/sonic"

	"wordlife_backend/internals/features/assistant/model"
	wordlifeModel "wordlife_backend/internals/features/wordlife/model"
	"wordlife_backend/internals/features/wordlife/repository"
	wordlifeService "wordlife_backend/internals/features/wordlife/service"
)

// Model names tried in order; older keys only see some of them.
var fallbackModels = []string{
	"gemini-1.5-flash-latest",
	"gemini-1.5-pro-latest",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-pro",
	"gemini-2.0-flash-exp",
}

// AgentService answers free-text questions over the tracker data: it renders
// the plain-text analysis report, wraps it in the instruction prompt and asks
// Gemini. The model only ever sees text, never structured data.
type AgentService struct {
	client *genai.Client
	store  repository.RecordStore
	db     *gorm.DB
}

type QueryResult struct {
	Answer    string `json:"answer"`
	DataCount int    `json:"data_count"`
	Model     string `json:"model"`
}

func NewAgentService(ctx context.Context, apiKey string, store repository.RecordStore, db *gorm.DB) (*AgentService, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &AgentService{client: client, store: store, db: db}, nil
}

// Query answers one question. A non-empty name narrows the data to that
// person's records (the assistant's per-person lookup).
func (s *AgentService) Query(ctx context.Context, question, name string) (*QueryResult, error) {
	name = strings.TrimSpace(name)

	recs, err := s.fetch(ctx, name)
	if err != nil {
		return nil, err
	}

	report := wordlifeService.RenderReport(recs, name)
	prompt := buildPrompt(report, question)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	var answer, usedModel string
	var lastErr error
	for _, m := range fallbackModels {
		resp, genErr := s.client.Models.GenerateContent(ctx, m, contents, nil)
		if genErr != nil {
			lastErr = genErr
			continue
		}
		answer = resp.Text()
		usedModel = m
		break
	}
	if usedModel == "" {
		return nil, fmt.Errorf("no usable Gemini model: %w", lastErr)
	}

	res := &QueryResult{Answer: answer, DataCount: len(recs), Model: usedModel}
	s.logExchange(ctx, question, name, res)
	return res, nil
}

func (s *AgentService) fetch(ctx context.Context, name string) ([]wordlifeModel.ActivityRecordModel, error) {
	if name != "" {
		return s.store.FindByName(ctx, name)
	}
	return s.store.GetAll(ctx)
}

func (s *AgentService) logExchange(ctx context.Context, question, name string, res *QueryResult) {
	entry := &model.AssistantQueryModel{
		AssistantQueryQuestion:  question,
		AssistantQueryAnswer:    res.Answer,
		AssistantQueryDataCount: res.DataCount,
	}
	if name != "" {
		entry.AssistantQueryTargetName = &name
	}
	if meta, err := sonic.Marshal(map[string]any{"model": res.Model}); err == nil {
		entry.AssistantQueryMetadata = datatypes.JSON(meta)
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		// best-effort: losing the log never fails the answer
		log.Printf("assistant query log failed: %v", err)
	}
}
