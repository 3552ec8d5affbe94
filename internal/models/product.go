package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Statuts de stock possibles pour une variante
const (
	StockStatusInStock    = "in-stock"
	StockStatusPreOrder   = "pre-order"
	StockStatusOutOfStock = "out-of-stock"
)

// --- Lignes brutes (telles que stockées dans ScyllaDB) ---

type ProductRow struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Scent        string    `json:"scent" db:"scent"`
	Description  string    `json:"description" db:"description"`
	Size         string    `json:"size" db:"size"`
	BurnTime     string    `json:"burn_time" db:"burn_time"`
	CategorySlug string    `json:"category_slug" db:"category_slug"`
	Featured     bool      `json:"featured" db:"featured"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type ProductVariantRow struct {
	ProductID   int        `json:"product_id" db:"product_id"`
	ID          gocql.UUID `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Price       float64    `json:"price" db:"price"`
	StockStatus string     `json:"stock_status" db:"stock_status"`
}

type ProductImageRow struct {
	ProductID int    `json:"product_id" db:"product_id"`
	SortOrder int    `json:"sort_order" db:"sort_order"`
	URL       string `json:"url" db:"url"`
}

type ProductScentRow struct {
	ProductID int    `json:"product_id" db:"product_id"`
	Scent     string `json:"scent" db:"scent"`
}

// --- Formes consommées par le storefront (camelCase) ---

type Variant struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	StockStatus string  `json:"stockStatus"`
}

type Product struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Scent           string   `json:"scent"`
	Description     string   `json:"description"`
	Size            string   `json:"size"`
	BurnTime        string   `json:"burnTime"`
	Category        string   `json:"category"`
	Featured        bool     `json:"featured"`
	Variants        []Variant `json:"variants"`
	ImageUrls       []string  `json:"imageUrls"`
	AvailableScents []string  `json:"availableScents"`
}
