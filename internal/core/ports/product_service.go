package ports

import (
	"context"

	"github.com/revesshop/storefront-api/internal/core/domain"
)

// ListProductsInput holds raw pagination values; the service clamps them.
type ListProductsInput struct {
	Page     int
	Limit    int
	Category string
	Brand    string
	Search   string
}

// ListProductsResult is one catalog page.
type ListProductsResult struct {
	Items      []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductInput carries the validated, full set of writable product fields.
type ProductInput struct {
	Name        string
	Brand       string
	Price       float64
	Stock       int
	Category    string
	Description string
	ImageURL    string
}

// CreateProductResult is returned by CreateProduct.
type CreateProductResult struct {
	Product *domain.Product
	// AlreadyExisted is true when the Idempotency-Key matched an earlier create.
	AlreadyExisted bool
}

type ProductService interface {
	ListProducts(ctx context.Context, input ListProductsInput) (*ListProductsResult, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, input ProductInput, idempotencyKey string) (*CreateProductResult, error)
	UpdateProduct(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
