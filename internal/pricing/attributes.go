package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velamart/storefront-backend/pkg/db/models"
	"github.com/velamart/storefront-backend/pkg/enums"
	"github.com/velamart/storefront-backend/pkg/types"
)

// AttributeAdjustment is the resolved effect of a customer's attribute
// selection. PriceDelta accumulates per-value adjustments; the override
// fields come from a matching combination and take precedence over the
// corresponding base values.
type AttributeAdjustment struct {
	PriceDelta  decimal.Decimal
	WeightDelta decimal.Decimal

	PriceOverride   *decimal.Decimal
	CostOverride    *decimal.Decimal
	SKUOverride     *string
	PictureOverride *uuid.UUID

	Combination *models.ProductAttributeCombination
}

// ResolveAdjustments turns a selection into price and weight deltas plus any
// combination overrides. Percentage adjustments are computed against the
// basePrice snapshot, never against each other, so the order of selected
// values cannot change the result.
func ResolveAdjustments(src AttributeSource, product *models.Product, selection types.AttributeSelection, basePrice decimal.Decimal) AttributeAdjustment {
	var adj AttributeAdjustment
	if src == nil || product == nil || len(selection) == 0 {
		return adj
	}

	for _, value := range src.ParseValues(product, selection) {
		if value.AdjustmentKind == enums.AdjustmentKindPercentage {
			adj.PriceDelta = adj.PriceDelta.Add(basePrice.Mul(value.PriceAdjustment).Div(hundred))
		} else {
			adj.PriceDelta = adj.PriceDelta.Add(value.PriceAdjustment)
		}
		adj.WeightDelta = adj.WeightDelta.Add(value.WeightAdjustment)
	}

	if combination := src.FindCombination(product, selection); combination != nil {
		adj.Combination = combination
		adj.PriceOverride = combination.OverriddenPrice
		adj.CostOverride = combination.OverriddenCost
		adj.SKUOverride = combination.SKU
		adj.PictureOverride = combination.PictureID
	}
	return adj
}
