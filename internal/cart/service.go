// Package cart prices cart snapshots line by line and persists the quoted
// result for checkout.
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/velamart/storefront-backend/internal/pricing"
	"github.com/velamart/storefront-backend/pkg/db/models"
	"github.com/velamart/storefront-backend/pkg/enums"
	pkgerrors "github.com/velamart/storefront-backend/pkg/errors"
	"github.com/velamart/storefront-backend/pkg/types"
)

type catalogLoader interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetCurrencyByCode(ctx context.Context, code string) (*models.Currency, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error)
}

type linePricer interface {
	GetUnitPrice(ctx context.Context, req pricing.UnitPriceRequest) (pricing.FinalPriceResult, error)
	GetSubTotal(ctx context.Context, req pricing.UnitPriceRequest) (pricing.FinalPriceResult, error)
}

type itemStore interface {
	ReplaceCustomerItems(ctx context.Context, customerID uuid.UUID, items []models.ShoppingCartItem) error
}

// Service quotes carts against the pricing calculator.
type Service struct {
	loader catalogLoader
	pricer linePricer
	items  itemStore
}

// NewService builds the cart quote service. The item store is optional;
// without it quotes are never persisted.
func NewService(loader catalogLoader, pricer linePricer, items itemStore) (*Service, error) {
	if loader == nil {
		return nil, fmt.Errorf("catalog loader required")
	}
	if pricer == nil {
		return nil, fmt.Errorf("pricer required")
	}
	return &Service{loader: loader, pricer: pricer, items: items}, nil
}

// QuoteCart prices every line of the snapshot. Unavailable products and
// store mismatches degrade to warnings on the line rather than failing the
// whole quote; only infrastructure failures return an error.
func (s *Service) QuoteCart(ctx context.Context, input QuoteInput) (*Quote, error) {
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart must contain at least one item")
	}
	if input.CurrencyCode == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "currency code is required")
	}

	currency, err := s.loader.GetCurrencyByCode(ctx, input.CurrencyCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown currency code")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load currency")
	}

	var customer *models.Customer
	if input.CustomerID != nil {
		customer, err = s.loader.GetCustomer(ctx, *input.CustomerID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
		}
	}

	quote := &Quote{
		CurrencyCode:  currency.Code,
		Lines:         make([]QuoteLine, 0, len(input.Items)),
		SubTotal:      decimal.Zero,
		DiscountTotal: decimal.Zero,
		Total:         decimal.Zero,
	}

	for _, item := range input.Items {
		line, err := s.quoteLine(ctx, input, item, customer, currency)
		if err != nil {
			return nil, err
		}
		quote.Lines = append(quote.Lines, line)
		if line.Status.Priceable() {
			quote.SubTotal = quote.SubTotal.Add(line.SubTotal.Add(line.DiscountAmount))
			quote.DiscountTotal = quote.DiscountTotal.Add(line.DiscountAmount)
			quote.Total = quote.Total.Add(line.SubTotal)
		}
	}
	return quote, nil
}

func (s *Service) quoteLine(ctx context.Context, input QuoteInput, item QuoteItemInput, customer *models.Customer, currency *models.Currency) (QuoteLine, error) {
	line := QuoteLine{
		ProductID: item.ProductID,
		Status:    enums.CartItemStatusOK,
		Quantity:  item.Quantity,
	}

	product, err := s.loader.GetProduct(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			line.Status = enums.CartItemStatusNotAvailable
			line.Warnings = append(line.Warnings, types.CartItemWarning{
				Type:    enums.CartItemWarningTypeNotAvailable,
				Message: "product no longer exists",
			})
			return line, nil
		}
		return QuoteLine{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	line.SKU = product.SKU
	line.Name = product.Name

	if !product.IsActive {
		line.Status = enums.CartItemStatusNotAvailable
		line.Warnings = append(line.Warnings, types.CartItemWarning{
			Type:    enums.CartItemWarningTypeNotAvailable,
			Message: "product is not available",
		})
		return line, nil
	}
	if input.StoreID != uuid.Nil && product.StoreID != input.StoreID {
		line.Status = enums.CartItemStatusInvalid
		line.Warnings = append(line.Warnings, types.CartItemWarning{
			Type:    enums.CartItemWarningTypeStoreMismatch,
			Message: "product belongs to a different store",
		})
		return line, nil
	}

	line.Quantity = s.normalizeQuantity(product, item.Quantity, &line)

	req := pricing.UnitPriceRequest{
		Product:          product,
		Customer:         customer,
		Currency:         currency,
		StoreID:          input.StoreID,
		Quantity:         line.Quantity,
		Attributes:       item.Attributes,
		EnteredPrice:     item.EnteredPrice,
		RentalStart:      item.RentalStart,
		RentalEnd:        item.RentalEnd,
		IncludeDiscounts: true,
	}

	// The displayed unit price stays pre-discount; discounts land on the line.
	unitReq := req
	unitReq.IncludeDiscounts = false
	unit, err := s.pricer.GetUnitPrice(ctx, unitReq)
	if err != nil {
		return QuoteLine{}, err
	}
	subTotal, err := s.pricer.GetSubTotal(ctx, req)
	if err != nil {
		return QuoteLine{}, err
	}

	line.UnitPrice = unit.FinalPrice.Round(unit.RoundingDecimals)
	line.SubTotal = subTotal.FinalPrice.Round(subTotal.RoundingDecimals)
	line.DiscountAmount = subTotal.DiscountAmount.Round(subTotal.RoundingDecimals)
	line.AppliedDiscounts = subTotal.AppliedDiscounts
	if subTotal.TierPrice != nil {
		line.TierPrice = &types.AppliedTierPrice{
			Quantity: subTotal.TierPrice.Quantity,
			Price:    subTotal.TierPrice.Price,
		}
	}

	if item.ExpectedUnitPrice != nil && !item.ExpectedUnitPrice.Equal(line.UnitPrice) {
		line.Warnings = append(line.Warnings, types.CartItemWarning{
			Type:    enums.CartItemWarningTypePriceChanged,
			Message: fmt.Sprintf("unit price changed from %s to %s", item.ExpectedUnitPrice, line.UnitPrice),
		})
	}
	return line, nil
}

func (s *Service) normalizeQuantity(product *models.Product, quantity int, line *QuoteLine) int {
	if quantity < 1 {
		quantity = 1
	}
	if product.OrderMinimumQuantity > 0 && quantity < product.OrderMinimumQuantity {
		quantity = product.OrderMinimumQuantity
		line.Warnings = append(line.Warnings, types.CartItemWarning{
			Type:    enums.CartItemWarningTypeClampedToMinQty,
			Message: fmt.Sprintf("quantity raised to the order minimum of %d", quantity),
		})
	}
	if product.OrderMaximumQuantity > 0 && quantity > product.OrderMaximumQuantity {
		quantity = product.OrderMaximumQuantity
		line.Warnings = append(line.Warnings, types.CartItemWarning{
			Type:    enums.CartItemWarningTypeClampedToMaxQty,
			Message: fmt.Sprintf("quantity lowered to the order maximum of %d", quantity),
		})
	}
	return quantity
}

// SaveQuote persists the quoted lines as the customer's cart, replacing any
// previous items. Lines that did not price cleanly are skipped.
func (s *Service) SaveQuote(ctx context.Context, customerID uuid.UUID, input QuoteInput, quote *Quote) error {
	if s.items == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "cart persistence not configured")
	}
	if customerID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	if quote == nil || len(quote.Lines) != len(input.Items) {
		return pkgerrors.New(pkgerrors.CodeValidation, "quote does not match input")
	}

	items := make([]models.ShoppingCartItem, 0, len(quote.Lines))
	for i, line := range quote.Lines {
		if !line.Status.Priceable() {
			continue
		}
		source := input.Items[i]
		items = append(items, models.ShoppingCartItem{
			CustomerID:           customerID,
			StoreID:              input.StoreID,
			ProductID:            line.ProductID,
			Quantity:             line.Quantity,
			Attributes:           source.Attributes,
			CustomerEnteredPrice: source.EnteredPrice,
			RentalStartDateUTC:   source.RentalStart,
			RentalEndDateUTC:     source.RentalEnd,
			AppliedTierPrice:     line.TierPrice,
			AppliedDiscounts:     line.AppliedDiscounts,
		})
	}

	if err := s.items.ReplaceCustomerItems(ctx, customerID, items); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart items")
	}
	return nil
}
