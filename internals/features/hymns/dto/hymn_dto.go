package dto

import (
	"strings"

	"wordlife_backend/internals/features/hymns/model"
)

// HymnSummary is the list/search row: enough to render a picker without
// shipping lyrics for the whole catalog.
type HymnSummary struct {
	Category  string `json:"category"`
	Number    int    `json:"number"`
	Title     string `json:"title"`
	FirstLine string `json:"first_line"`
}

func ToHymnSummary(h *model.HymnModel) HymnSummary {
	return HymnSummary{
		Category:  h.HymnCategory,
		Number:    h.HymnNumber,
		Title:     h.HymnTitle,
		FirstLine: h.HymnFirstLine,
	}
}

type FavoriteRequest struct {
	Name     string `json:"name" validate:"required,max=80"`
	Category string `json:"category" validate:"required,oneof=unified grace"`
	Number   int    `json:"number" validate:"required,gt=0"`
}

func (r *FavoriteRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
}
