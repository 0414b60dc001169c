package entities

import (
	"time"

	"intranet-portal/pkg/types"
)

type Post struct {
	ID      uint64 `json:"id" db:"id"`
	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`
	Type    string `json:"type" db:"type"`

	// Только для постов типа plan.
	Status  *string    `json:"status,omitempty" db:"status"`
	DueDate *time.Time `json:"dueDate,omitempty" db:"due_date"`

	AuthorID uint64     `json:"authorId" db:"author_id"`
	Author   *UserShort `json:"author,omitempty" db:"-"`

	Likes    []Like    `json:"likes"`
	Comments []Comment `json:"comments"`

	types.BaseEntity
}

type Comment struct {
	ID        uint64     `json:"id" db:"id"`
	Content   string     `json:"content" db:"content"`
	PostID    uint64     `json:"postId" db:"post_id"`
	UserID    uint64     `json:"userId" db:"user_id"`
	User      *UserShort `json:"user,omitempty" db:"-"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

type Like struct {
	ID     uint64 `json:"id" db:"id"`
	PostID uint64 `json:"postId" db:"post_id"`
	UserID uint64 `json:"userId" db:"user_id"`
}
