package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// One assistant exchange, kept for usage review. Metadata stores the model
// that finally answered plus request sizing as loose JSON.
type AssistantQueryModel struct {
	AssistantQueryID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assistant_query_id" json:"assistant_query_id"`
	AssistantQueryQuestion   string         `gorm:"type:text;not null;column:assistant_query_question" json:"assistant_query_question"`
	AssistantQueryAnswer     string         `gorm:"type:text;column:assistant_query_answer" json:"assistant_query_answer"`
	AssistantQueryTargetName *string        `gorm:"type:varchar(80);column:assistant_query_target_name" json:"assistant_query_target_name,omitempty"`
	AssistantQueryDataCount  int            `gorm:"not null;default:0;column:assistant_query_data_count" json:"assistant_query_data_count"`
	AssistantQueryMetadata   datatypes.JSON `gorm:"column:assistant_query_metadata" json:"assistant_query_metadata,omitempty"`
	AssistantQueryCreatedAt  time.Time      `gorm:"column:assistant_query_created_at;autoCreateTime" json:"assistant_query_created_at"`
}

func (AssistantQueryModel) TableName() string {
	return "assistant_queries"
}
