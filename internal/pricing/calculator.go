package pricing

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/velamart/storefront-backend/pkg/db/models"
	"github.com/velamart/storefront-backend/pkg/enums"
	pkgerrors "github.com/velamart/storefront-backend/pkg/errors"
	"github.com/velamart/storefront-backend/pkg/types"
)

// Calculator orchestrates tier selection, attribute adjustments and discount
// stacking into final prices. It holds no mutable state and is safe for
// concurrent use. Both collaborators are optional; a nil source simply
// contributes no adjustment.
type Calculator struct {
	discounts  DiscountSource
	attributes AttributeSource
}

// NewCalculator builds a calculator over the given collaborator sources.
func NewCalculator(discounts DiscountSource, attributes AttributeSource) *Calculator {
	return &Calculator{discounts: discounts, attributes: attributes}
}

// GetFinalPrice computes the price for one unit at the requested quantity.
// The quantity only drives tier selection; the result is still a per-unit
// price. Layering order is a business rule: entered price or tier override
// replaces the base, discounts come off last, rental multiplication follows.
func (c *Calculator) GetFinalPrice(ctx context.Context, req FinalPriceRequest) (FinalPriceResult, error) {
	if req.Product == nil {
		return FinalPriceResult{}, pkgerrors.New(pkgerrors.CodeValidation, "product is required")
	}
	if req.Currency == nil {
		return FinalPriceResult{}, pkgerrors.New(pkgerrors.CodeValidation, "currency is required")
	}
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	base := req.Product.Price
	if req.BasePrice != nil {
		base = *req.BasePrice
	}
	base = base.Add(req.AdditionalCharge)

	if req.Product.CustomerEntersPrice && req.EnteredPrice != nil {
		base = clampEnteredPrice(req.Product, *req.EnteredPrice)
	}

	result := FinalPriceResult{RoundingDecimals: req.Currency.RoundingDecimals}

	if tier := SelectPreferredTierPrice(req.Product.TierPrices, req.Customer, req.StoreID, req.Currency.Code, quantity, req.AsOf); tier != nil {
		base = tier.Price
		result.TierPrice = tier
	}

	if req.IncludeDiscounts && c.discounts != nil {
		list, err := c.discounts.ApplicableDiscounts(ctx, req.Product, req.Customer, req.Currency)
		if err != nil {
			return FinalPriceResult{}, err
		}
		result.AppliedDiscounts, result.DiscountAmount = PreferredDiscounts(list, base)
	}

	final := base.Sub(result.DiscountAmount)
	if final.IsNegative() {
		final = decimal.Zero
	}

	if req.Product.IsRental && req.RentalStart != nil && req.RentalEnd != nil {
		periods := RentalPeriods(req.Product, *req.RentalStart, *req.RentalEnd)
		final = final.Mul(decimal.NewFromInt(int64(periods)))
	}

	result.FinalPrice = final
	return result, nil
}

// GetUnitPrice resolves the attribute selection first, then feeds the result
// into GetFinalPrice. Attribute deltas enter as an additional charge before
// the tier lookup, so a matching tier price absorbs them; a combination
// price override replaces the base price outright.
func (c *Calculator) GetUnitPrice(ctx context.Context, req UnitPriceRequest) (FinalPriceResult, error) {
	if req.Product == nil {
		return FinalPriceResult{}, pkgerrors.New(pkgerrors.CodeValidation, "product is required")
	}
	if req.Currency == nil {
		return FinalPriceResult{}, pkgerrors.New(pkgerrors.CodeValidation, "currency is required")
	}

	adj := ResolveAdjustments(c.attributes, req.Product, req.Attributes, req.Product.Price)

	final := FinalPriceRequest{
		Product:          req.Product,
		Customer:         req.Customer,
		Currency:         req.Currency,
		StoreID:          req.StoreID,
		EnteredPrice:     req.EnteredPrice,
		Quantity:         req.Quantity,
		IncludeDiscounts: req.IncludeDiscounts,
		RentalStart:      req.RentalStart,
		RentalEnd:        req.RentalEnd,
		AsOf:             req.AsOf,
	}
	if adj.PriceOverride != nil {
		final.BasePrice = adj.PriceOverride
	} else {
		final.AdditionalCharge = adj.PriceDelta
	}
	return c.GetFinalPrice(ctx, final)
}

// GetSubTotal prices the whole cart line. Discounts are recomputed against
// the line base rather than multiplied per unit, because the take-highest
// rule for non-cumulative discounts does not distribute over quantity.
func (c *Calculator) GetSubTotal(ctx context.Context, req UnitPriceRequest) (FinalPriceResult, error) {
	unitReq := req
	unitReq.IncludeDiscounts = false
	unit, err := c.GetUnitPrice(ctx, unitReq)
	if err != nil {
		return FinalPriceResult{}, err
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	lineBase := unit.FinalPrice.Mul(decimal.NewFromInt(int64(quantity)))

	result := FinalPriceResult{
		FinalPrice:       lineBase,
		TierPrice:        unit.TierPrice,
		RoundingDecimals: unit.RoundingDecimals,
	}
	if !req.IncludeDiscounts || c.discounts == nil {
		return result, nil
	}

	list, err := c.discounts.ApplicableDiscounts(ctx, req.Product, req.Customer, req.Currency)
	if err != nil {
		return FinalPriceResult{}, err
	}
	result.AppliedDiscounts, result.DiscountAmount = PreferredDiscounts(list, lineBase)
	final := lineBase.Sub(result.DiscountAmount)
	if final.IsNegative() {
		final = decimal.Zero
	}
	result.FinalPrice = final
	return result, nil
}

// GetProductCost returns the effective unit cost. A combination cost
// override applies only when inventory is tracked by attributes; per-value
// cost fields never feed in here.
func (c *Calculator) GetProductCost(product *models.Product, selection types.AttributeSelection) (decimal.Decimal, error) {
	if product == nil {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "product is required")
	}
	cost := product.ProductCost
	if product.InventoryMethod != enums.InventoryMethodTrackByAttributes || c.attributes == nil {
		return cost, nil
	}
	if combination := c.attributes.FindCombination(product, selection); combination != nil && combination.OverriddenCost != nil {
		cost = *combination.OverriddenCost
	}
	return cost, nil
}

func clampEnteredPrice(product *models.Product, entered decimal.Decimal) decimal.Decimal {
	if entered.LessThan(product.MinEnteredPrice) {
		return product.MinEnteredPrice
	}
	if product.MaxEnteredPrice.IsPositive() && entered.GreaterThan(product.MaxEnteredPrice) {
		return product.MaxEnteredPrice
	}
	return entered
}

// RentalPeriods converts a rental date range into the number of billing
// periods. Weeks, months and years count as 7, 30 and 365 days. IncBothDate
// makes the range inclusive on both ends, adding one day.
func RentalPeriods(product *models.Product, start, end time.Time) int {
	if product == nil || !product.IsRental {
		return 1
	}
	if !end.After(start) {
		return 1
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if product.IncBothDate {
		days++
	}
	if days < 1 {
		days = 1
	}
	length := product.RentalCycleLength
	if length < 1 {
		length = 1
	}
	perPeriod := length * product.RentalCyclePeriod.DaysPerUnit()
	if perPeriod < 1 {
		perPeriod = 1
	}
	periods := (days + perPeriod - 1) / perPeriod
	if periods < 1 {
		periods = 1
	}
	return periods
}
