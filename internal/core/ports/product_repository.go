package ports

import (
	"context"

	"github.com/revesshop/storefront-api/internal/core/domain"
)

// ProductFilter carries the already normalized query for a catalog page.
type ProductFilter struct {
	Category string // exact match
	Brand    string // case-insensitive substring
	Search   string // case-insensitive substring on name
	Offset   int64
	Limit    int64
}

// ProductRepository is the store capability for the productos collection.
type ProductRepository interface {
	// List returns one page ordered newest first, plus the exact count of
	// every product matching the filter.
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// Update replaces every mutable field and returns the stored document.
	// domain.ErrProductNotFound is returned when no document matched.
	Update(ctx context.Context, id string, p *domain.Product) (*domain.Product, error)
	// Delete returns domain.ErrProductNotFound when nothing was removed.
	Delete(ctx context.Context, id string) error
}

// IdempotencyStore remembers which product a client-supplied key created.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (productID string, found bool, err error)
	Remember(ctx context.Context, key, productID string) error
}
