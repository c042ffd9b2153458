package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velamart/storefront-backend/pkg/enums"
	"github.com/velamart/storefront-backend/pkg/types"
)

// QuoteInput is a cart snapshot to price. CustomerID is optional; anonymous
// carts only see wildcard-scoped tiers and discounts.
type QuoteInput struct {
	CustomerID   *uuid.UUID
	StoreID      uuid.UUID
	CurrencyCode string
	Items        []QuoteItemInput
}

// QuoteItemInput is one line to price. ExpectedUnitPrice is the price the
// client last displayed; when the computed price differs the line carries a
// price-changed warning instead of failing.
type QuoteItemInput struct {
	ProductID         uuid.UUID
	Quantity          int
	Attributes        types.AttributeSelection
	EnteredPrice      *decimal.Decimal
	ExpectedUnitPrice *decimal.Decimal
	RentalStart       *time.Time
	RentalEnd         *time.Time
}

// QuoteLine is a priced cart line. Prices are rounded to the currency
// precision. Quantity reflects any clamping to the product's order bounds.
type QuoteLine struct {
	ProductID        uuid.UUID               `json:"product_id"`
	SKU              string                  `json:"sku"`
	Name             string                  `json:"name"`
	Status           enums.CartItemStatus    `json:"status"`
	Quantity         int                     `json:"quantity"`
	UnitPrice        decimal.Decimal         `json:"unit_price"`
	SubTotal         decimal.Decimal         `json:"sub_total"`
	DiscountAmount   decimal.Decimal         `json:"discount_amount"`
	AppliedDiscounts types.AppliedDiscounts  `json:"applied_discounts"`
	TierPrice        *types.AppliedTierPrice `json:"tier_price,omitempty"`
	Warnings         types.CartItemWarnings  `json:"warnings"`
}

// Quote is the priced cart. Totals only include lines that priced cleanly.
type Quote struct {
	CurrencyCode  string          `json:"currency_code"`
	Lines         []QuoteLine     `json:"lines"`
	SubTotal      decimal.Decimal `json:"sub_total"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	Total         decimal.Decimal `json:"total"`
}
