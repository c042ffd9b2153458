// Package pricing resolves the price a customer actually pays for a product:
// quantity tier overrides, attribute-driven adjustments, discount stacking and
// rental period multiplication. Every computation is a pure function of its
// inputs, so results are safe to memoize and to compute concurrently.
package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velamart/storefront-backend/pkg/db/models"
	"github.com/velamart/storefront-backend/pkg/types"
)

// DiscountSource returns the discounts currently applicable to a product for
// the given customer and currency. Eligibility filtering (activity windows,
// scoping) is the source's responsibility; the calculator only decides how
// the returned discounts combine.
type DiscountSource interface {
	ApplicableDiscounts(ctx context.Context, product *models.Product, customer *models.Customer, currency *models.Currency) ([]models.Discount, error)
}

// AttributeSource resolves customer attribute selections against a product's
// configured mappings and combinations.
type AttributeSource interface {
	ParseValues(product *models.Product, selection types.AttributeSelection) []models.ProductAttributeValue
	FindCombination(product *models.Product, selection types.AttributeSelection) *models.ProductAttributeCombination
}

// FinalPriceRequest carries everything a single price computation needs. The
// calculator never fetches data itself; callers supply the loaded product,
// customer and currency rows.
type FinalPriceRequest struct {
	Product  *models.Product
	Customer *models.Customer
	Currency *models.Currency
	StoreID  uuid.UUID

	// AdditionalCharge is added to the product price before the tier lookup.
	// Attribute price deltas arrive through this field, which is what lets a
	// matching tier price suppress them.
	AdditionalCharge decimal.Decimal

	// BasePrice, when set, replaces the product price entirely. Used for
	// attribute combination price overrides.
	BasePrice *decimal.Decimal

	// EnteredPrice is the customer-entered price on products that allow it.
	// Only cart-line computations set it; catalog display never does.
	EnteredPrice *decimal.Decimal

	Quantity         int
	IncludeDiscounts bool

	RentalStart *time.Time
	RentalEnd   *time.Time

	// AsOf anchors date-window filtering. Zero means current UTC time.
	AsOf time.Time
}

// UnitPriceRequest is the cart-line variant: the raw attribute selection is
// resolved into adjustments before the final price computation runs.
type UnitPriceRequest struct {
	Product  *models.Product
	Customer *models.Customer
	Currency *models.Currency
	StoreID  uuid.UUID

	Quantity   int
	Attributes types.AttributeSelection

	EnteredPrice *decimal.Decimal

	RentalStart *time.Time
	RentalEnd   *time.Time

	IncludeDiscounts bool
	AsOf             time.Time
}

// FinalPriceResult is the computed price tuple. FinalPrice is un-rounded;
// RoundingDecimals carries the currency precision the presentation layer
// rounds to.
type FinalPriceResult struct {
	FinalPrice       decimal.Decimal        `json:"final_price"`
	DiscountAmount   decimal.Decimal        `json:"discount_amount"`
	AppliedDiscounts types.AppliedDiscounts `json:"applied_discounts"`
	TierPrice        *models.TierPrice      `json:"tier_price,omitempty"`
	RoundingDecimals int32                  `json:"rounding_decimals"`
}

var hundred = decimal.NewFromInt(100)
