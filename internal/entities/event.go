package entities

import "time"

type Event struct {
	ID    uint64    `json:"id" db:"id"`
	Title string    `json:"title" db:"title"`
	Type  string    `json:"type" db:"type"`
	Date  time.Time `json:"date" db:"date"`

	UserID *uint64    `json:"userId,omitempty" db:"user_id"`
	User   *UserShort `json:"user,omitempty" db:"-"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
