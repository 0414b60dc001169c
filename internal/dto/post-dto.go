package dto

// Вид записи задаётся явным дискриминатором, а не наличием поля eventDate:
// kind=event пишет в таблицу events, kind=post — в posts.
const (
	SubmissionKindPost  = "post"
	SubmissionKindEvent = "event"
)

type CreatePostDTO struct {
	Kind    string `json:"kind" validate:"required,oneof=post event"`
	Title   string `json:"title" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=announcement event achievement plan"`
	Content string `json:"content" validate:"required_if=Kind post"`

	// Только для kind=plan-постов.
	Status  *string `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	DueDate *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`

	// Только для kind=event.
	EventDate *string `json:"eventDate" validate:"required_if=Kind event,omitempty,datetime=2006-01-02"`
}

type UpdatePostDTO struct {
	Kind    string  `json:"kind" validate:"required,oneof=post event"`
	Title   *string `json:"title"`
	Type    *string `json:"type" validate:"omitempty,oneof=announcement event achievement plan"`
	Content *string `json:"content"`

	Status  *string `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	DueDate *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`

	EventDate *string `json:"eventDate" validate:"omitempty,datetime=2006-01-02"`
}

type CreateCommentDTO struct {
	Content string `json:"content" validate:"required"`
}
