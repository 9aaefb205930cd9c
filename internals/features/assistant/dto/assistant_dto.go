package dto

import "strings"

type AssistantQueryRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
	Name     string `json:"name" validate:"omitempty,max=80"`
}

func (r *AssistantQueryRequest) Normalize() {
	r.Question = strings.TrimSpace(r.Question)
	r.Name = strings.TrimSpace(r.Name)
}
