package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wordlife_backend/internals/features/wordlife/cache"
	"wordlife_backend/internals/features/wordlife/controller"
	"wordlife_backend/internals/features/wordlife/repository"
	"wordlife_backend/internals/features/wordlife/service"
)

// WordLifeRoutes wires the activity tracker: public record/ranking routes
// plus the admin maintenance sweep.
func WordLifeRoutes(api fiber.Router, admin fiber.Router, db *gorm.DB, recordCache cache.RecordCache) {
	store := repository.NewGormRecordStore(db)
	records := service.NewRecordService(store, recordCache)
	rankings := service.NewRankingService(store)
	ctl := controller.NewWordLifeController(records, rankings)

	grp := api.Group("/wordlife")
	grp.Post("/records", ctl.SaveRecord)
	grp.Get("/records/latest", ctl.GetLatest)
	grp.Get("/rankings", ctl.GetRankings)
	grp.Get("/names", ctl.GetNames)

	adm := admin.Group("/wordlife")
	adm.Post("/maintenance/sweep", ctl.Sweep)
}
