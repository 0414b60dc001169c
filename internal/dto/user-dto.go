package dto

import "github.com/aarondl/null/v8"

// CreateUserDTO приходит в multipart-поле userData как JSON,
// фото — отдельным файловым полем photo.
type CreateUserDTO struct {
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"password" validate:"required,min=6"`
	Name           string   `json:"name" validate:"required"`
	Telegram       string   `json:"telegram"`
	Role           string   `json:"role" validate:"required,oneof=owner ceo director groupLeader member admin"`
	GroupNumber    null.Int `json:"groupNumber" validate:"omitempty"`
	Email1         string   `json:"email1" validate:"omitempty,email"`
	Email2         string   `json:"email2" validate:"omitempty,email"`
	BirthDate      string   `json:"birthDate" validate:"required,datetime=2006-01-02"`
	EmploymentDate string   `json:"employmentDate" validate:"required,datetime=2006-01-02"`
	IsOwner        bool     `json:"isOwner"`
	Positions      []uint64 `json:"positions"`
}

type UpdateUserDTO struct {
	Email          *string  `json:"email" validate:"omitempty,email"`
	Password       *string  `json:"password" validate:"omitempty,min=6"`
	Name           *string  `json:"name"`
	Telegram       *string  `json:"telegram"`
	Role           *string  `json:"role" validate:"omitempty,oneof=owner ceo director groupLeader member admin"`
	GroupNumber    null.Int `json:"groupNumber"`
	Email1         *string  `json:"email1" validate:"omitempty,email"`
	Email2         *string  `json:"email2" validate:"omitempty,email"`
	BirthDate      *string  `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	EmploymentDate *string  `json:"employmentDate" validate:"omitempty,datetime=2006-01-02"`
	IsOwner        *bool    `json:"isOwner"`
	Positions      []uint64 `json:"positions"`
}

type CreatedUserDTO struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
