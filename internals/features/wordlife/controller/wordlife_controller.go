package controller

import (
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	helper "wordlife_backend/internals/helpers"

	"wordlife_backend/internals/features/wordlife/dto"
	"wordlife_backend/internals/features/wordlife/service"
)

type WordLifeController struct {
	Records   *service.RecordService
	Rankings  *service.RankingService
	Validator *validator.Validate
}

func NewWordLifeController(records *service.RecordService, rankings *service.RankingService) *WordLifeController {
	return &WordLifeController{
		Records:   records,
		Rankings:  rankings,
		Validator: validator.New(),
	}
}

/*
=========================================================
POST /api/wordlife/records
Saves one daily submission. Outcomes:
  - 201 saved      : record written, rankings recomputed
  - 200 no_changes : resubmission identical to the stored record
=========================================================
*/
func (ctl *WordLifeController) SaveRecord(c *fiber.Ctx) error {
	var req dto.SaveRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	outcome, rec, err := ctl.Records.Save(c.UserContext(), req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "저장 중 오류가 발생했습니다.")
	}

	// rankings are recomputed either way so the client can show the board;
	// a ranking failure after a successful save is reported, not fatal
	rankings, rankErr := ctl.Rankings.Compute(c.UserContext(), req.District, req.Name)
	if rankErr != nil {
		log.Printf("ranking after save failed: %v", rankErr)
	}

	data := fiber.Map{
		"record":   dto.FromRecordModel(rec),
		"rankings": rankings,
	}
	if outcome == service.SaveOutcomeNoChanges {
		return helper.JsonNoChanges(c, "변경내용이 없습니다.", data)
	}
	if rankErr != nil {
		return helper.JsonCreated(c, "데이터는 저장되었지만 순위 계산 중 오류가 발생했습니다.", data)
	}
	return helper.JsonCreated(c, "데이터가 성공적으로 저장되었습니다!", data)
}

/*
=========================================================
GET /api/wordlife/records/latest?date=&district=&name=
Latest authoritative record for an identity (form prefill),
served through the cache overlay.
=========================================================
*/
func (ctl *WordLifeController) GetLatest(c *fiber.Ctx) error {
	date := strings.TrimSpace(c.Query("date"))
	name := strings.TrimSpace(c.Query("name"))
	district, _ := strconv.Atoi(c.Query("district"))
	if date == "" || name == "" || district <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "date, district and name are required")
	}

	rec, err := ctl.Records.Latest(c.UserContext(), date, district, name)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load record")
	}
	if rec == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.JsonOK(c, "OK", dto.FromRecordModel(rec))
}

/*
=========================================================
GET /api/wordlife/rankings?district=&name=
Full leaderboard recomputation. district+name add the caller's
personal block (rank is null while not participating).
=========================================================
*/
func (ctl *WordLifeController) GetRankings(c *fiber.Ctx) error {
	district, _ := strconv.Atoi(c.Query("district"))
	name := strings.TrimSpace(c.Query("name"))

	res, err := ctl.Rankings.Compute(c.UserContext(), district, name)
	if err != nil {
		// a failed fetch must abort, not rank over a partial read
		return helper.JsonError(c, fiber.StatusInternalServerError, "순위 계산 중 오류가 발생했습니다. 다시 시도해주세요.")
	}
	return helper.JsonOK(c, "OK", res)
}

// GET /api/wordlife/names : distinct participant names
func (ctl *WordLifeController) GetNames(c *fiber.Ctx) error {
	names, err := ctl.Records.Names(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load names")
	}
	return helper.JsonOK(c, "OK", names)
}

/*
=========================================================
POST /api/a/wordlife/maintenance/sweep  (admin)
Opt-in duplicate cleanup: stale per-identity duplicates plus the
conservative cross-date backstop.
=========================================================
*/
func (ctl *WordLifeController) Sweep(c *fiber.Ctx) error {
	res, err := ctl.Records.Sweep(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Sweep failed")
	}
	return helper.JsonOK(c, "Sweep completed", res)
}
