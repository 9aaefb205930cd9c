package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	helper "wordlife_backend/internals/helpers"

	"wordlife_backend/internals/features/assistant/dto"
	"wordlife_backend/internals/features/assistant/service"
)

type AssistantController struct {
	Agent     *service.AgentService
	Validator *validator.Validate
}

// Agent may be nil when no API key is configured; the endpoint then answers
// 503 instead of being left unregistered, so clients get a clear signal.
func NewAssistantController(agent *service.AgentService) *AssistantController {
	return &AssistantController{
		Agent:     agent,
		Validator: validator.New(),
	}
}

/*
=========================================================
POST /api/wordlife/assistant/query
Free-text question over the tracker data, answered by Gemini.
=========================================================
*/
func (ctl *AssistantController) Query(c *fiber.Ctx) error {
	if ctl.Agent == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "AI 어시스턴트가 설정되지 않았습니다.")
	}

	var req dto.AssistantQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res, err := ctl.Agent.Query(c.UserContext(), req.Question, req.Name)
	if err != nil {
		log.Printf("❌ assistant query failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "질문 처리 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요.")
	}
	return helper.JsonOK(c, "OK", res)
}
