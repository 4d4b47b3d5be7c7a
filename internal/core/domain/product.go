package domain

import (
	"slices"
	"time"
)

// Categories is the fixed set of catalog categories a product may belong to.
var Categories = []string{"palas", "pelotas", "ropa", "calzado", "accesorios"}

// Product is a catalog entry.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"nombre"`
	Brand       string    `json:"marca"`
	Price       float64   `json:"precio"`
	Stock       int       `json:"stock"`
	Category    string    `json:"categoria,omitempty"`
	Description string    `json:"descripcion"`
	ImageURL    string    `json:"imagen_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsValidCategory reports whether c is one of Categories.
func IsValidCategory(c string) bool {
	return slices.Contains(Categories, c)
}
