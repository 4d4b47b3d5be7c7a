package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHealthHandler_Root(t *testing.T) {
	e := echo.New()
	h := NewHealthHandler("Revesshop API", nil)

	rec := httptest.NewRecorder()
	if err := h.Root(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeBody(t, rec)
	if resp["app"] != "Revesshop API" || resp["status"] != "ok" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	cases := []struct {
		name   string
		checks map[string]CheckFunc
		want   int
	}{
		{"no checks", nil, http.StatusOK},
		{"all healthy", map[string]CheckFunc{"mongodb": ok, "redis": ok}, http.StatusOK},
		{"one down", map[string]CheckFunc{"mongodb": ok, "redis": down}, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			h := NewHealthHandler("Revesshop API", tc.checks)

			rec := httptest.NewRecorder()
			if err := h.Readiness(e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}
