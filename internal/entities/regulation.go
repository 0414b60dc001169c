package entities

import (
	"intranet-portal/pkg/types"
)

type Regulation struct {
	ID       uint64   `json:"id" db:"id"`
	Title    string   `json:"title" db:"title"`
	Content  string   `json:"content" db:"content"`
	Keywords []string `json:"keywords" db:"keywords"`
	GroupID  uint64   `json:"groupId" db:"group_id"`

	Group     *RegulationGroupShort `json:"group,omitempty" db:"-"`
	Positions []PositionShort       `json:"positions,omitempty" db:"-"`

	types.BaseEntity
}

type PositionShort struct {
	ID    uint64 `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
}

type RegulationGroupShort struct {
	ID   uint64 `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// RegulationGroup — узел дерева категорий регламентов.
// Children заполняется только на фиксированную глубину выборки (см. репозиторий).
type RegulationGroup struct {
	ID          uint64  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
	ParentID    *uint64 `json:"parentId,omitempty" db:"parent_id"`

	Children []*RegulationGroup `json:"children"`
}
