package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wordlife_backend/internals/configs"
	assistantRoute "wordlife_backend/internals/features/assistant/route"
	hymnRoute "wordlife_backend/internals/features/hymns/route"
	wordlifeCache "wordlife_backend/internals/features/wordlife/cache"
	wordlifeRoute "wordlife_backend/internals/features/wordlife/route"
	"wordlife_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature group:
//
//	/api    public endpoints
//	/api/a  admin endpoints (JWT, role=admin)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up routes...")

	recordCache := buildRecordCache()

	api := app.Group("/api")
	admin := app.Group("/api/a", auth.AdminOnly())

	wordlifeRoute.WordLifeRoutes(api, admin, db, recordCache)
	assistantRoute.AssistantRoutes(api, db)
	hymnRoute.HymnRoutes(api, db)

	log.Println("[INFO] Routes ready.")
}

// Redis when configured, otherwise the in-process cache. Both honor the same
// freshness rule, so the choice is purely operational.
func buildRecordCache() wordlifeCache.RecordCache {
	if configs.RedisAddr != "" {
		log.Println("[INFO] Record cache: redis @", configs.RedisAddr)
		return wordlifeCache.NewRedisRecordCache(configs.RedisAddr, configs.RedisPassword)
	}
	log.Println("[INFO] Record cache: in-memory")
	return wordlifeCache.NewMemoryRecordCache()
}
