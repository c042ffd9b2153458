// Package catalog exposes product read paths, including the priced product
// view the storefront renders.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/velamart/storefront-backend/internal/pricing"
	"github.com/velamart/storefront-backend/pkg/db/models"
	pkgerrors "github.com/velamart/storefront-backend/pkg/errors"
	"github.com/velamart/storefront-backend/pkg/types"
)

type productLoader interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetCurrencyByCode(ctx context.Context, code string) (*models.Currency, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error)
}

type finalPricer interface {
	GetFinalPrice(ctx context.Context, req pricing.FinalPriceRequest) (pricing.FinalPriceResult, error)
}

// Service answers priced catalog queries.
type Service struct {
	repo   productLoader
	pricer finalPricer
}

// NewService builds the catalog service.
func NewService(repo productLoader, pricer finalPricer) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if pricer == nil {
		return nil, fmt.Errorf("pricer required")
	}
	return &Service{repo: repo, pricer: pricer}, nil
}

// ProductPriceInput identifies the product and pricing context for a catalog
// price lookup. CustomerID is optional; anonymous shoppers only see
// wildcard-scoped tiers and discounts.
type ProductPriceInput struct {
	ProductID    uuid.UUID
	StoreID      uuid.UUID
	CurrencyCode string
	Quantity     int
	CustomerID   *uuid.UUID
}

// ProductPriceDTO is the priced catalog view. FinalPrice is rounded to the
// currency precision; OldPrice is the strike-through price when configured.
type ProductPriceDTO struct {
	ProductID        uuid.UUID              `json:"product_id"`
	SKU              string                 `json:"sku"`
	Name             string                 `json:"name"`
	CurrencyCode     string                 `json:"currency_code"`
	FinalPrice       decimal.Decimal        `json:"final_price"`
	OldPrice         *decimal.Decimal       `json:"old_price,omitempty"`
	DiscountAmount   decimal.Decimal        `json:"discount_amount"`
	AppliedDiscounts types.AppliedDiscounts `json:"applied_discounts"`
	TierPrice        *types.AppliedTierPrice `json:"tier_price,omitempty"`
}

// ProductPrice computes the catalog display price for a product. Customer
// entered prices never apply here; that path exists only on cart lines.
func (s *Service) ProductPrice(ctx context.Context, input ProductPriceInput) (*ProductPriceDTO, error) {
	if input.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if input.CurrencyCode == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "currency code is required")
	}
	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.repo.GetProduct(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	currency, err := s.repo.GetCurrencyByCode(ctx, input.CurrencyCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown currency code")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load currency")
	}

	var customer *models.Customer
	if input.CustomerID != nil {
		customer, err = s.repo.GetCustomer(ctx, *input.CustomerID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
		}
	}

	result, err := s.pricer.GetFinalPrice(ctx, pricing.FinalPriceRequest{
		Product:          product,
		Customer:         customer,
		Currency:         currency,
		StoreID:          input.StoreID,
		Quantity:         quantity,
		IncludeDiscounts: true,
	})
	if err != nil {
		return nil, err
	}

	dto := &ProductPriceDTO{
		ProductID:        product.ID,
		SKU:              product.SKU,
		Name:             product.Name,
		CurrencyCode:     currency.Code,
		FinalPrice:       result.FinalPrice.Round(result.RoundingDecimals),
		OldPrice:         product.OldPrice,
		DiscountAmount:   result.DiscountAmount.Round(result.RoundingDecimals),
		AppliedDiscounts: result.AppliedDiscounts,
	}
	if result.TierPrice != nil {
		dto.TierPrice = &types.AppliedTierPrice{
			Quantity: result.TierPrice.Quantity,
			Price:    result.TierPrice.Price,
		}
	}
	return dto, nil
}
