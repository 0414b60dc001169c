package entities

import "time"

// Documentation — снимок markdown-документации. Читается только самая свежая запись.
type Documentation struct {
	ID        uint64    `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
