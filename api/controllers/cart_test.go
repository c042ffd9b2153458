package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velamart/storefront-backend/internal/cart"
	"github.com/velamart/storefront-backend/internal/catalog"
	"github.com/velamart/storefront-backend/internal/pricing"
	"github.com/velamart/storefront-backend/pkg/db/models"
)

func newCartService(t *testing.T, loader *stubCatalogLoader) *cart.Service {
	t.Helper()
	svc, err := cart.NewService(loader, pricing.NewCalculator(nil, catalog.AttributeParser{}), nil)
	if err != nil {
		t.Fatalf("new cart service: %v", err)
	}
	return svc
}

func TestCartQuoteEndpoint(t *testing.T) {
	t.Parallel()

	storeID := uuid.New()
	product := &models.Product{
		ID:       uuid.New(),
		StoreID:  storeID,
		SKU:      "SKU-1",
		Name:     "Widget",
		Price:    decimal.NewFromInt(100),
		IsActive: true,
	}
	svc := newCartService(t, &stubCatalogLoader{
		product:  product,
		currency: &models.Currency{Code: "USD", RoundingDecimals: 2},
	})

	body := `{
		"store_id": "` + storeID.String() + `",
		"currency_code": "USD",
		"items": [{"product_id": "` + product.ID.String() + `", "quantity": 2}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/cart/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()
	CartQuote(svc, nil)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data cart.Quote `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(envelope.Data.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(envelope.Data.Lines))
	}
	if !envelope.Data.Total.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected total 200, got %s", envelope.Data.Total)
	}
}

func TestCartQuoteEndpointRejectsBadBody(t *testing.T) {
	t.Parallel()

	svc := newCartService(t, &stubCatalogLoader{currency: &models.Currency{Code: "USD"}})

	req := httptest.NewRequest(http.MethodPost, "/cart/quote", strings.NewReader(`{"currency_code":"USD"}`))
	rec := httptest.NewRecorder()
	CartQuote(svc, nil)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
