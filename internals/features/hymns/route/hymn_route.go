package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wordlife_backend/internals/features/hymns/controller"
)

func HymnRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewHymnController(db)

	grp := api.Group("/hymns")

	// fixed paths before the :category/:number wildcard
	grp.Get("/search", ctl.Search)
	grp.Get("/favorites", ctl.ListFavorites)
	grp.Post("/favorites", ctl.AddFavorite)
	grp.Delete("/favorites", ctl.RemoveFavorite)

	grp.Get("/", ctl.List)
	grp.Get("/:category/:number", ctl.Get)
}
