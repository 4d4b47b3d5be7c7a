package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/revesshop/storefront-api/internal/core/ports"
)

// HeaderIdempotencyKey lets clients retry POST /productos safely.
const HeaderIdempotencyKey = "Idempotency-Key"

type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns a page of the catalog, newest first.
//
// @Summary      List products
// @Tags         productos
// @Produce      json
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Page size (default 10, max 50)"
// @Param        categoria  query     string  false  "Exact category"
// @Param        marca      query     string  false  "Brand substring, case-insensitive"
// @Param        search     query     string  false  "Name substring, case-insensitive"
// @Success      200        {object}  listProductsResponse
// @Failure      500        {object}  errorResponse
// @Router       /productos [get]
func (h *ProductHandler) List(c echo.Context) error {
	// Non-numeric values become 0 and the service applies defaults.
	page := queryInt(c, "page")
	limit := queryInt(c, "limit")

	result, err := h.productService.ListProducts(c.Request().Context(), ports.ListProductsInput{
		Page:     page,
		Limit:    limit,
		Category: c.QueryParam("categoria"),
		Brand:    c.QueryParam("marca"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get returns one product.
//
// @Summary      Get product
// @Tags         productos
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Router       /productos/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productService.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Create adds a product to the catalog.
//
// @Summary      Create product
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string          false  "Replay-safe key"
// @Param        body             body      productRequest  true   "Product"
// @Success      201              {object}  productEnvelope
// @Failure      400              {object}  validationErrorResponse
// @Failure      401              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Router       /productos [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	key := c.Request().Header.Get(HeaderIdempotencyKey)
	result, err := h.productService.CreateProduct(c.Request().Context(), toProductInput(req), key)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, productEnvelope{
		Message: "product created",
		Product: toProductResponse(result.Product),
	})
}

// Update replaces every editable field of a product.
//
// @Summary      Update product
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product ID"
// @Param        body  body      productRequest  true  "Product"
// @Success      200   {object}  productEnvelope
// @Failure      400   {object}  validationErrorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /productos/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productService.UpdateProduct(c.Request().Context(), c.Param("id"), toProductInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productEnvelope{
		Message: "product updated",
		Product: toProductResponse(product),
	})
}

// Delete removes a product.
//
// @Summary      Delete product
// @Tags         productos
// @Security     BearerAuth
// @Param        id   path  string  true  "Product ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /productos/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productService.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
