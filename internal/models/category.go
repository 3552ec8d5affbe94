package models

import "time"

type CategoryRow struct {
	Slug      string     `json:"slug" db:"slug"`
	Name      string     `json:"name" db:"name"`
	CreatedAt *time.Time `json:"created_at,omitempty" db:"created_at"`
}

// Category reprend la forme attendue par le front : le slug sert d'identité.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
