package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/velamart/storefront-backend/pkg/db/models"
	"github.com/velamart/storefront-backend/pkg/types"
)

// PreferredDiscounts applies the combinability rules to an already-filtered
// discount list: every cumulative discount stacks, while non-cumulative
// discounts are mutually exclusive and only the single highest-value one
// survives. Returns the applied records and the total amount removed from
// the given amount. The total is never negative.
func PreferredDiscounts(discounts []models.Discount, amount decimal.Decimal) (types.AppliedDiscounts, decimal.Decimal) {
	if len(discounts) == 0 {
		return nil, decimal.Zero
	}

	applied := make(types.AppliedDiscounts, 0, len(discounts))
	total := decimal.Zero

	bestIdx := -1
	bestValue := decimal.Zero
	for i, discount := range discounts {
		value := discountValue(discount, amount)
		if discount.IsCumulative {
			applied = append(applied, types.AppliedDiscount{
				ID:     discount.ID,
				Name:   discount.Name,
				Amount: value,
			})
			total = total.Add(value)
			continue
		}
		if bestIdx == -1 || value.GreaterThan(bestValue) {
			bestIdx = i
			bestValue = value
		}
	}

	if bestIdx >= 0 {
		winner := discounts[bestIdx]
		applied = append(applied, types.AppliedDiscount{
			ID:     winner.ID,
			Name:   winner.Name,
			Amount: bestValue,
		})
		total = total.Add(bestValue)
	}
	if len(applied) == 0 {
		return nil, decimal.Zero
	}
	return applied, total
}

func discountValue(discount models.Discount, amount decimal.Decimal) decimal.Decimal {
	var value decimal.Decimal
	if discount.UsePercentage {
		value = amount.Mul(discount.DiscountPercentage).Div(hundred)
	} else {
		value = discount.DiscountAmount
	}
	if value.IsNegative() {
		return decimal.Zero
	}
	return value
}
