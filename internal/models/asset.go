package models

type AssetRow struct {
	ID          int    `json:"id" db:"id"`
	Key         string `json:"key" db:"key"`
	Type        string `json:"type" db:"type"`
	URL         string `json:"url" db:"url"`
	AltText     string `json:"alt_text" db:"alt_text"`
	Description string `json:"description" db:"description"`
	SortOrder   int    `json:"sort_order" db:"sort_order"`
}

type Asset struct {
	ID          int    `json:"id"`
	Key         string `json:"key"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	AltText     string `json:"altText"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}
