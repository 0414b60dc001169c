package entities

import (
	"time"

	"intranet-portal/pkg/types"
)

type User struct {
	ID       uint64 `json:"id" db:"id"`
	Email    string `json:"email" db:"email"`
	Name     string `json:"name" db:"name"`
	Password string `json:"-" db:"password"`

	Photo    string `json:"photo" db:"photo"`
	Telegram string `json:"telegram" db:"telegram"`
	Role     string `json:"role" db:"role"`
	IsOwner  bool   `json:"isOwner" db:"is_owner"`

	GroupNumber *int `json:"groupNumber,omitempty" db:"group_number"`

	Email1 string `json:"email1" db:"email1"`
	Email2 string `json:"email2" db:"email2"`

	BirthDate      time.Time `json:"birthDate" db:"birth_date"`
	EmploymentDate time.Time `json:"employmentDate" db:"employment_date"`

	Positions []Position `json:"positions,omitempty" db:"-"`

	types.BaseEntity
}
