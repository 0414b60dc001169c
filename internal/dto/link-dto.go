package dto

type CreateLinkDTO struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
}

type UpdateLinkDTO struct {
	Title *string `json:"title"`
	URL   *string `json:"url" validate:"omitempty,url"`
}

type CreateDocumentationDTO struct {
	Content string `json:"content" validate:"required"`
}
