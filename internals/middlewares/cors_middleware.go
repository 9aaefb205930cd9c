package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"wordlife_backend/internals/configs"
)

// CorsMiddleware: origins configurable via CORS_ORIGINS (comma separated)
func CorsMiddleware() fiber.Handler {
	origins := configs.GetEnv("CORS_ORIGINS")
	if origins == "" {
		origins = strings.Join([]string{
			"http://localhost:5173",
			"http://127.0.0.1:5500",
			"https://wordlife-web.vercel.app",
		}, ", ")
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
