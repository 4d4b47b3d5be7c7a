package handler

import (
	"github.com/revesshop/storefront-api/internal/core/domain"
	"github.com/revesshop/storefront-api/internal/core/ports"
)

// --- Request → Service input ---

// toProductInput expects a validated request; precio and stock parse cleanly.
func toProductInput(r productRequest) ports.ProductInput {
	price, _ := r.Price.float()
	stock, _ := r.Stock.int()
	return ports.ProductInput{
		Name:        r.Name,
		Brand:       r.Brand,
		Price:       price,
		Stock:       stock,
		Category:    r.Category,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

// --- Service result → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func toProfileResponse(u *domain.User) profileResponse {
	return profileResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

func toListResponse(r *ports.ListProductsResult) listProductsResponse {
	items := make([]productResponse, len(r.Items))
	for i, p := range r.Items {
		items[i] = toProductResponse(p)
	}
	return listProductsResponse{
		Total:      r.Total,
		Page:       r.Page,
		Limit:      r.Limit,
		TotalPages: r.TotalPages,
		Products:   items,
	}
}

func toRatesResponse(s *domain.RateSnapshot) ratesResponse {
	return ratesResponse{Base: s.Base, UpdatedAt: s.UpdatedAt, Rates: s.Rates}
}

func toConversionResponse(r *ports.ConversionResult) conversionResponse {
	return conversionResponse{
		Amount: r.Amount,
		From:   r.From,
		To:     r.To,
		Rate:   r.Rate,
		Result: r.Result,
	}
}
