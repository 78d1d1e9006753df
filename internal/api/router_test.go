package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"cryptopulse/internal/domain/dto"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Provide a service that returns statistics so the handler returns 200
	svc := &mockRecService{stats: &dto.StatisticsResponse{
		Symbol:   "BTC",
		MinPrice: decimal.RequireFromString("100"),
		MaxPrice: decimal.RequireFromString("200"),
		Oldest:   "2022-01-01",
		Newest:   "2022-01-31",
	}}
	r := NewRouter(NewHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/BTC", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// Ensure RequestID middleware injected header
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	var out dto.StatisticsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Symbol != "BTC" {
		t.Fatalf("unexpected body: %+v", out)
	}
}

// The static normalized-range routes must win over the :symbol parameter.
func TestNewRouter_StaticRoutePriority(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &mockRecService{
		ranking: []dto.NormalizedRangeResponse{{Symbol: "BTC", NormalizedRange: decimal.Zero}},
	}
	r := NewRouter(NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/normalized-range", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var out []dto.NormalizedRangeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(out) != 1 || out[0].Symbol != "BTC" {
		t.Fatalf("ranking route resolved to the wrong handler: %+v", out)
	}
}
