package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/velamart/storefront-backend/internal/pricing"
	"github.com/velamart/storefront-backend/pkg/db/models"
	pkgerrors "github.com/velamart/storefront-backend/pkg/errors"
)

type stubLoader struct {
	product  *models.Product
	currency *models.Currency
	customer *models.Customer
}

func (s *stubLoader) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if s.product == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.product, nil
}

func (s *stubLoader) GetCurrencyByCode(ctx context.Context, code string) (*models.Currency, error) {
	if s.currency == nil || s.currency.Code != code {
		return nil, gorm.ErrRecordNotFound
	}
	return s.currency, nil
}

func (s *stubLoader) GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	if s.customer == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.customer, nil
}

func newPriceService(t *testing.T, loader *stubLoader) *Service {
	t.Helper()
	svc, err := NewService(loader, pricing.NewCalculator(nil, AttributeParser{}))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestProductPriceNotFound(t *testing.T) {
	t.Parallel()

	svc := newPriceService(t, &stubLoader{currency: &models.Currency{Code: "USD"}})
	_, err := svc.ProductPrice(context.Background(), ProductPriceInput{
		ProductID:    uuid.New(),
		CurrencyCode: "USD",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProductPriceInactiveProductHidden(t *testing.T) {
	t.Parallel()

	product := &models.Product{ID: uuid.New(), Price: decimal.NewFromInt(100)}
	svc := newPriceService(t, &stubLoader{product: product, currency: &models.Currency{Code: "USD", RoundingDecimals: 2}})

	_, err := svc.ProductPrice(context.Background(), ProductPriceInput{
		ProductID:    product.ID,
		CurrencyCode: "USD",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected inactive product hidden, got %v", err)
	}
}

func TestProductPriceUnknownCurrency(t *testing.T) {
	t.Parallel()

	product := &models.Product{ID: uuid.New(), Price: decimal.NewFromInt(100), IsActive: true}
	svc := newPriceService(t, &stubLoader{product: product, currency: &models.Currency{Code: "USD"}})

	_, err := svc.ProductPrice(context.Background(), ProductPriceInput{
		ProductID:    product.ID,
		CurrencyCode: "XXX",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown currency, got %v", err)
	}
}

func TestProductPriceWithTier(t *testing.T) {
	t.Parallel()

	product := &models.Product{
		ID:       uuid.New(),
		SKU:      "SKU-1",
		Name:     "Widget",
		Price:    decimal.NewFromInt(100),
		IsActive: true,
		TierPrices: []models.TierPrice{
			{ID: uuid.New(), Quantity: 5, Price: decimal.NewFromInt(90)},
		},
	}
	svc := newPriceService(t, &stubLoader{
		product:  product,
		currency: &models.Currency{Code: "USD", RoundingDecimals: 2},
	})

	dto, err := svc.ProductPrice(context.Background(), ProductPriceInput{
		ProductID:    product.ID,
		CurrencyCode: "USD",
		Quantity:     7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dto.FinalPrice.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("expected tier price 90, got %s", dto.FinalPrice)
	}
	if dto.TierPrice == nil || dto.TierPrice.Quantity != 5 {
		t.Fatalf("expected tier snapshot, got %+v", dto.TierPrice)
	}
}

func TestProductPriceDefaultsQuantity(t *testing.T) {
	t.Parallel()

	product := &models.Product{ID: uuid.New(), Price: decimal.NewFromInt(100), IsActive: true}
	svc := newPriceService(t, &stubLoader{
		product:  product,
		currency: &models.Currency{Code: "USD", RoundingDecimals: 2},
	})

	dto, err := svc.ProductPrice(context.Background(), ProductPriceInput{
		ProductID:    product.ID,
		CurrencyCode: "USD",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dto.FinalPrice.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected base price 100, got %s", dto.FinalPrice)
	}
}
