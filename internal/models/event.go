package models

import "time"

type EventRow struct {
	ID          int        `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	EventDate   *time.Time `json:"event_date" db:"event_date"`
	Description string     `json:"description" db:"description"`
	Category    string     `json:"category" db:"category"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

type EventImageRow struct {
	EventID   int    `json:"event_id" db:"event_id"`
	SortOrder int    `json:"sort_order" db:"sort_order"`
	URL       string `json:"url" db:"url"`
}

// Event est la forme consommée par le storefront.
// EventDate est formatée YYYY-MM-DD, nil si la date n'est pas renseignée
// (les annonces n'ont pas forcément de date).
type Event struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	EventDate   *string  `json:"eventDate"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	ImageUrls   []string `json:"imageUrls"`
}
