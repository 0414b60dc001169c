package dto

import "github.com/aarondl/null/v8"

type CreateEventDTO struct {
	Title  string      `json:"title" validate:"required"`
	Type   string      `json:"type" validate:"required"`
	Date   string      `json:"date" validate:"required,datetime=2006-01-02"`
	UserID null.Uint64 `json:"userId"`
}

type UpdateEventDTO struct {
	Title *string `json:"title"`
	Type  *string `json:"type"`
	Date  *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
