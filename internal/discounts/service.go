// Package discounts resolves which promotions apply to a product for a given
// customer and currency. The pricing calculator consumes the result as an
// already-filtered list; combinability is not decided here.
package discounts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/velamart/storefront-backend/pkg/db/models"
	pkgerrors "github.com/velamart/storefront-backend/pkg/errors"
)

type discountLister interface {
	ListActiveForProduct(ctx context.Context, productID uuid.UUID, asOf time.Time) ([]models.Discount, error)
}

// Service filters active discounts down to the ones applicable to a concrete
// product, customer and currency.
type Service struct {
	repo discountLister
	now  func() time.Time
}

// NewService builds the discount eligibility service.
func NewService(repo discountLister) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("discount repository required")
	}
	return &Service{repo: repo, now: func() time.Time { return time.Now().UTC() }}, nil
}

// ApplicableDiscounts returns the discounts a price computation should
// consider. Scoping follows the wildcard convention: a nil store, currency
// or group restriction matches everything.
func (s *Service) ApplicableDiscounts(ctx context.Context, product *models.Product, customer *models.Customer, currency *models.Currency) ([]models.Discount, error) {
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product is required")
	}

	rows, err := s.repo.ListActiveForProduct(ctx, product.ID, s.now())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list discounts")
	}

	applicable := make([]models.Discount, 0, len(rows))
	for _, discount := range rows {
		if discount.StoreID != nil && *discount.StoreID != product.StoreID {
			continue
		}
		if discount.CurrencyCode != nil && (currency == nil || *discount.CurrencyCode != currency.Code) {
			continue
		}
		if discount.CustomerGroupID != nil && !customer.InGroup(*discount.CustomerGroupID) {
			continue
		}
		applicable = append(applicable, discount)
	}
	return applicable, nil
}
