package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Hymn catalog row. Category is "unified" or "grace"; numbers restart per
// category, so the two together form the key. Lyrics is a JSON array of
// verse strings.
type HymnModel struct {
	HymnCategory                string         `gorm:"type:varchar(20);primaryKey;column:hymn_category" json:"category"`
	HymnNumber                  int            `gorm:"primaryKey;column:hymn_number" json:"number"`
	HymnTitle                   string         `gorm:"type:varchar(200);not null;column:hymn_title" json:"title"`
	HymnFirstLine               string         `gorm:"type:varchar(200);column:hymn_first_line" json:"first_line"`
	HymnLyrics                  datatypes.JSON `gorm:"column:hymn_lyrics" json:"lyrics,omitempty"`
	HymnScoreImageURL           string         `gorm:"type:text;column:hymn_score_image_url" json:"score_image_url,omitempty"`
	HymnScoreImageURLLandscape  string         `gorm:"type:text;column:hymn_score_image_url_landscape" json:"score_image_url_landscape,omitempty"`
	HymnUpdatedAt               time.Time      `gorm:"column:hymn_updated_at;autoUpdateTime" json:"-"`
}

func (HymnModel) TableName() string {
	return "hymns"
}

// Per-person favorite. Favorites live server-side so they follow the person
// across devices.
type HymnFavoriteModel struct {
	HymnFavoriteID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:hymn_favorite_id" json:"id"`
	HymnFavoritePerson    string    `gorm:"type:varchar(80);not null;column:hymn_favorite_person;uniqueIndex:uq_hymn_favorite" json:"person"`
	HymnFavoriteCategory  string    `gorm:"type:varchar(20);not null;column:hymn_favorite_category;uniqueIndex:uq_hymn_favorite" json:"category"`
	HymnFavoriteNumber    int       `gorm:"not null;column:hymn_favorite_number;uniqueIndex:uq_hymn_favorite" json:"number"`
	HymnFavoriteCreatedAt time.Time `gorm:"column:hymn_favorite_created_at;autoCreateTime" json:"added_at"`
}

func (HymnFavoriteModel) TableName() string {
	return "hymn_favorites"
}
