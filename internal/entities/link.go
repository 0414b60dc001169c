package entities

type Link struct {
	ID    uint64 `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
	URL   string `json:"url" db:"url"`
}
