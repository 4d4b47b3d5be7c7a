package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/revesshop/storefront-api/internal/core/ports"
)

type CurrencyHandler struct {
	currencyService ports.CurrencyService
}

func NewCurrencyHandler(currencyService ports.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencyService: currencyService}
}

// Rates lists exchange rates for the store's base currency.
//
// @Summary      Exchange rates
// @Tags         divisas
// @Produce      json
// @Success      200  {object}  ratesResponse
// @Failure      502  {object}  errorResponse
// @Failure      504  {object}  errorResponse
// @Router       /divisas/tasas [get]
func (h *CurrencyHandler) Rates(c echo.Context) error {
	snap, err := h.currencyService.Rates(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRatesResponse(snap))
}

// Convert converts an amount between two currencies.
//
// @Summary      Convert amount
// @Tags         divisas
// @Produce      json
// @Param        monto  query     number  true   "Amount"
// @Param        de     query     string  false  "Source currency (default USD)"
// @Param        a      query     string  false  "Target currency (default base currency)"
// @Success      200    {object}  conversionResponse
// @Failure      400    {object}  errorResponse
// @Failure      502    {object}  errorResponse
// @Failure      504    {object}  errorResponse
// @Router       /divisas/convertir [get]
func (h *CurrencyHandler) Convert(c echo.Context) error {
	result, err := h.currencyService.Convert(c.Request().Context(), ports.ConvertInput{
		Amount: c.QueryParam("monto"),
		From:   c.QueryParam("de"),
		To:     c.QueryParam("a"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toConversionResponse(result))
}
