package dto

import "github.com/aarondl/null/v8"

type CreateRegulationDTO struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Keywords []string `json:"keywords"`
	GroupID  uint64   `json:"groupId" validate:"required"`
}

type UpdateRegulationDTO struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	Keywords []string `json:"keywords"`
	GroupID  *uint64  `json:"groupId"`
}

// RegulationFilterDTO — параметры поиска: search матчится по заголовку
// (без учёта регистра) либо по точному ключевому слову.
type RegulationFilterDTO struct {
	Search  string
	GroupID uint64
}

type CreateRegulationGroupDTO struct {
	Name        string      `json:"name" validate:"required"`
	Description null.String `json:"description"`
	ParentID    null.Uint64 `json:"parentId"`
}

type UpdateRegulationGroupDTO struct {
	Name        *string     `json:"name"`
	Description null.String `json:"description"`
	ParentID    null.Uint64 `json:"parentId"`
}
