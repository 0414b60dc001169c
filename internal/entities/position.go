package entities

import (
	"intranet-portal/pkg/types"
)

type Position struct {
	ID          uint64 `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`

	Regulations []Regulation `json:"regulations,omitempty" db:"-"`
	Users       []UserShort  `json:"users,omitempty" db:"-"`

	types.BaseEntity
}

// UserShort — срез пользователя для вложенных ответов (карточка должности).
type UserShort struct {
	ID    uint64 `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Role  string `json:"role,omitempty" db:"role"`
	Photo string `json:"photo,omitempty" db:"photo"`
}
