package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/revesshop/storefront-api/internal/core/domain"
	"github.com/revesshop/storefront-api/internal/core/ports"
	"github.com/revesshop/storefront-api/internal/pkg/metrics"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 50

	// maxPage keeps (page-1)*limit from overflowing for any accepted limit.
	maxPage = math.MaxInt / maxLimit
)

type ProductService struct {
	repo  ports.ProductRepository
	idem  ports.IdempotencyStore // nil disables Idempotency-Key handling
	log   zerolog.Logger
	clock func() time.Time
}

// NewProductService wires the catalog use cases. idem may be nil.
func NewProductService(repo ports.ProductRepository, idem ports.IdempotencyStore, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, idem: idem, log: log, clock: time.Now}
}

// ListProducts returns one page of the catalog, newest first.
func (s *ProductService) ListProducts(ctx context.Context, in ports.ListProductsInput) (*ports.ListProductsResult, error) {
	page, limit := normalizePagination(in.Page, in.Limit)

	items, total, err := s.repo.List(ctx, ports.ProductFilter{
		Category: strings.TrimSpace(in.Category),
		Brand:    strings.TrimSpace(in.Brand),
		Search:   strings.TrimSpace(in.Search),
		Offset:   int64((page - 1) * limit),
		Limit:    int64(limit),
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.Product{}
	}

	return &ports.ListProductsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// normalizePagination clamps page to [1, maxPage] and limit to [1, maxLimit].
// A zero limit (absent or unparsable) selects the default.
func normalizePagination(page, limit int) (int, int) {
	switch {
	case page < 1:
		page = defaultPage
	case page > maxPage:
		page = maxPage
	}
	switch {
	case limit == 0:
		limit = defaultLimit
	case limit < 1:
		limit = 1
	case limit > maxLimit:
		limit = maxLimit
	}
	return page, limit
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateProduct inserts a product. When idempotencyKey was already used, the
// product created by the first request is returned and nothing is inserted.
func (s *ProductService) CreateProduct(ctx context.Context, in ports.ProductInput, idempotencyKey string) (*ports.CreateProductResult, error) {
	if replay := s.replay(ctx, idempotencyKey); replay != nil {
		metrics.ProductWritesTotal.WithLabelValues("create", "replayed").Inc()
		return &ports.CreateProductResult{Product: replay, AlreadyExisted: true}, nil
	}

	now := s.clock().UTC()
	p := productFromInput(in)
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		metrics.ProductWritesTotal.WithLabelValues("create", "error").Inc()
		return nil, err
	}

	if idempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, idempotencyKey, created.ID); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", idempotencyKey).Msg("failed to store idempotency key")
		}
	}

	metrics.ProductWritesTotal.WithLabelValues("create", "ok").Inc()
	s.log.Info().Str("product_id", created.ID).Msg("product created")
	return &ports.CreateProductResult{Product: created}, nil
}

// replay resolves an idempotency key to the product it created, or nil.
// Lookup failures are logged and treated as a miss.
func (s *ProductService) replay(ctx context.Context, key string) *domain.Product {
	if key == "" || s.idem == nil {
		return nil
	}
	id, found, err := s.idem.Lookup(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, creating anyway")
		return nil
	}
	if !found {
		return nil
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		// The product was deleted since; a new create is the right answer.
		return nil
	}
	s.log.Info().Str("idempotency_key", key).Str("product_id", id).Msg("idempotent replay")
	return existing
}

// UpdateProduct replaces every writable field and stamps updated_at.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	p := productFromInput(in)
	p.UpdatedAt = s.clock().UTC()

	updated, err := s.repo.Update(ctx, id, p)
	if err != nil {
		metrics.ProductWritesTotal.WithLabelValues("update", writeResult(err)).Inc()
		return nil, err
	}

	metrics.ProductWritesTotal.WithLabelValues("update", "ok").Inc()
	return updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		metrics.ProductWritesTotal.WithLabelValues("delete", writeResult(err)).Inc()
		return err
	}
	metrics.ProductWritesTotal.WithLabelValues("delete", "ok").Inc()
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func productFromInput(in ports.ProductInput) *domain.Product {
	return &domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Brand:       strings.TrimSpace(in.Brand),
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
}

func writeResult(err error) string {
	if errors.Is(err, domain.ErrProductNotFound) {
		return "not_found"
	}
	return "error"
}
