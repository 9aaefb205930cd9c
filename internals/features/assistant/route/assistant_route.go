package route

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wordlife_backend/internals/configs"
	"wordlife_backend/internals/features/assistant/controller"
	"wordlife_backend/internals/features/assistant/service"
	"wordlife_backend/internals/features/wordlife/repository"
	"wordlife_backend/internals/middlewares"
)

// AssistantRoutes wires the Gemini Q&A endpoint. Without GEMINI_API_KEY the
// route still registers but answers 503.
func AssistantRoutes(api fiber.Router, db *gorm.DB) {
	var agent *service.AgentService
	if configs.GeminiAPIKey != "" {
		store := repository.NewGormRecordStore(db)
		a, err := service.NewAgentService(context.Background(), configs.GeminiAPIKey, store, db)
		if err != nil {
			log.Printf("⚠️ assistant disabled: %v", err)
		} else {
			agent = a
		}
	} else {
		log.Println("⚠️ GEMINI_API_KEY not set, assistant disabled")
	}

	ctl := controller.NewAssistantController(agent)

	grp := api.Group("/wordlife/assistant", middlewares.AssistantRateLimiter())
	grp.Post("/query", ctl.Query)
}
