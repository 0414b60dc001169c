package dto

type CreateFeedbackDTO struct {
	Content string `json:"content" validate:"required"`
}

type CreateFeedbackAnswerDTO struct {
	Content string `json:"content" validate:"required"`
}
