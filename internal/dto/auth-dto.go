package dto

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SessionUserDTO struct {
	ID       uint64 `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Photo    string `json:"photo"`
	Telegram string `json:"telegram"`
	IsOwner  bool   `json:"isOwner"`
	Email1   string `json:"email1"`
	Email2   string `json:"email2"`
}

type LoginResponseDTO struct {
	AccessToken string         `json:"accessToken"`
	User        SessionUserDTO `json:"user"`
}
