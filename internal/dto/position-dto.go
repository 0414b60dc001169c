package dto

type CreatePositionDTO struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Regulations []uint64 `json:"regulations"`
}

type UpdatePositionDTO struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Regulations []uint64 `json:"regulations"`
}
