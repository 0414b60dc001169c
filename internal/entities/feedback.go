package entities

import "time"

type Feedback struct {
	ID      uint64 `json:"id" db:"id"`
	Content string `json:"content" db:"content"`
	UserID  uint64 `json:"userId" db:"user_id"`

	Answer *FeedbackAnswer `json:"answer,omitempty" db:"-"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// FeedbackAnswer — ответ администратора на обращение. Не более одного на обращение.
type FeedbackAnswer struct {
	ID         uint64    `json:"id" db:"id"`
	FeedbackID uint64    `json:"feedbackId" db:"feedback_id"`
	AdminID    uint64    `json:"adminId" db:"admin_id"`
	AdminName  string    `json:"adminName" db:"admin_name"`
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
