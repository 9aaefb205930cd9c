package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "wordlife_backend/internals/helpers"

	"wordlife_backend/internals/features/hymns/dto"
	"wordlife_backend/internals/features/hymns/model"
)

type HymnController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewHymnController(db *gorm.DB) *HymnController {
	return &HymnController{
		DB:        db,
		Validator: validator.New(),
	}
}

func normalizeCategory(raw string) string {
	c := strings.TrimSpace(strings.ToLower(raw))
	if c != "unified" && c != "grace" {
		return ""
	}
	return c
}

/*
=========================================================
GET /api/hymns?category=
Catalog listing, summary fields only, ordered by number.
=========================================================
*/
func (ctl *HymnController) List(c *fiber.Ctx) error {
	category := normalizeCategory(c.Query("category", "unified"))
	if category == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "category must be unified or grace")
	}

	var hymns []model.HymnModel
	err := ctl.DB.WithContext(c.UserContext()).
		Select("hymn_category", "hymn_number", "hymn_title", "hymn_first_line").
		Where("hymn_category = ?", category).
		Order("hymn_number ASC").
		Find(&hymns).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load hymns")
	}

	out := make([]dto.HymnSummary, 0, len(hymns))
	for i := range hymns {
		out = append(out, dto.ToHymnSummary(&hymns[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

/*
=========================================================
GET /api/hymns/:category/:number
Full hymn including lyrics and score image URLs.
=========================================================
*/
func (ctl *HymnController) Get(c *fiber.Ctx) error {
	category := normalizeCategory(c.Params("category"))
	number, _ := strconv.Atoi(c.Params("number"))
	if category == "" || number <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid category or number")
	}

	var hymn model.HymnModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("hymn_category = ? AND hymn_number = ?", category, number).
		First(&hymn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Hymn not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load hymn")
	}
	return helper.JsonOK(c, "OK", hymn)
}

/*
=========================================================
GET /api/hymns/search?q=&category=
Substring match against number, title and first line.
=========================================================
*/
func (ctl *HymnController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "q is required")
	}
	category := normalizeCategory(c.Query("category", "unified"))
	if category == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "category must be unified or grace")
	}

	pattern := "%" + q + "%"
	var hymns []model.HymnModel
	err := ctl.DB.WithContext(c.UserContext()).
		Select("hymn_category", "hymn_number", "hymn_title", "hymn_first_line").
		Where("hymn_category = ?", category).
		Where("CAST(hymn_number AS TEXT) LIKE ? OR hymn_title ILIKE ? OR hymn_first_line ILIKE ?",
			pattern, pattern, pattern).
		Order("hymn_number ASC").
		Find(&hymns).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Search failed")
	}

	out := make([]dto.HymnSummary, 0, len(hymns))
	for i := range hymns {
		out = append(out, dto.ToHymnSummary(&hymns[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

/* ===================== FAVORITES ===================== */

// GET /api/hymns/favorites?name=
func (ctl *HymnController) ListFavorites(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "name is required")
	}

	var favorites []model.HymnFavoriteModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("hymn_favorite_person = ?", name).
		Order("hymn_favorite_created_at ASC").
		Find(&favorites).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load favorites")
	}
	return helper.JsonOK(c, "OK", favorites)
}

// POST /api/hymns/favorites. Idempotent: re-adding keeps the original row.
func (ctl *HymnController) AddFavorite(c *fiber.Ctx) error {
	var req dto.FavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	fav := model.HymnFavoriteModel{
		HymnFavoritePerson:   req.Name,
		HymnFavoriteCategory: req.Category,
		HymnFavoriteNumber:   req.Number,
	}
	err := ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fav).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save favorite")
	}
	return helper.JsonCreated(c, "Favorite saved", fav)
}

// DELETE /api/hymns/favorites?name=&category=&number=
func (ctl *HymnController) RemoveFavorite(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	category := normalizeCategory(c.Query("category"))
	number, _ := strconv.Atoi(c.Query("number"))
	if name == "" || category == "" || number <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "name, category and number are required")
	}

	err := ctl.DB.WithContext(c.UserContext()).
		Where("hymn_favorite_person = ? AND hymn_favorite_category = ? AND hymn_favorite_number = ?",
			name, category, number).
		Delete(&model.HymnFavoriteModel{}).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove favorite")
	}
	return helper.JsonDeleted(c, "Favorite removed", nil)
}
