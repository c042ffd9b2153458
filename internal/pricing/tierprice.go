package pricing

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/velamart/storefront-backend/pkg/db/models"
)

// SelectPreferredTierPrice reduces a product's tier prices to the entries
// valid for the given store, currency, customer and point in time, then
// returns the highest breakpoint at or below the requested quantity. A nil
// result means no tier applies and the caller keeps the base price.
func SelectPreferredTierPrice(tiers []models.TierPrice, customer *models.Customer, storeID uuid.UUID, currencyCode string, quantity int, asOf time.Time) *models.TierPrice {
	if len(tiers) == 0 {
		return nil
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	candidates := orderByQuantity(tiers)
	candidates = filterByStore(candidates, storeID)
	candidates = filterByCurrency(candidates, currencyCode)
	candidates = filterForCustomer(candidates, customer)
	candidates = filterByDate(candidates, asOf)
	candidates = removeDuplicatedQuantities(candidates)

	var selected *models.TierPrice
	for i := range candidates {
		if candidates[i].Quantity <= quantity {
			selected = &candidates[i]
		}
	}
	if selected == nil {
		return nil
	}
	chosen := *selected
	return &chosen
}

func orderByQuantity(tiers []models.TierPrice) []models.TierPrice {
	ordered := make([]models.TierPrice, len(tiers))
	copy(ordered, tiers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Quantity < ordered[j].Quantity
	})
	return ordered
}

func filterByStore(tiers []models.TierPrice, storeID uuid.UUID) []models.TierPrice {
	kept := tiers[:0]
	for _, tier := range tiers {
		if tier.StoreID == nil || *tier.StoreID == storeID {
			kept = append(kept, tier)
		}
	}
	return kept
}

func filterByCurrency(tiers []models.TierPrice, currencyCode string) []models.TierPrice {
	kept := tiers[:0]
	for _, tier := range tiers {
		if tier.CurrencyCode == nil || *tier.CurrencyCode == currencyCode {
			kept = append(kept, tier)
		}
	}
	return kept
}

func filterForCustomer(tiers []models.TierPrice, customer *models.Customer) []models.TierPrice {
	kept := tiers[:0]
	for _, tier := range tiers {
		if tier.CustomerGroupID == nil {
			kept = append(kept, tier)
			continue
		}
		if customer != nil && customer.InGroup(*tier.CustomerGroupID) {
			kept = append(kept, tier)
		}
	}
	return kept
}

func filterByDate(tiers []models.TierPrice, asOf time.Time) []models.TierPrice {
	kept := tiers[:0]
	for _, tier := range tiers {
		if tier.StartDateTimeUTC != nil && !tier.StartDateTimeUTC.Before(asOf) {
			continue
		}
		if tier.EndDateTimeUTC != nil && !tier.EndDateTimeUTC.After(asOf) {
			continue
		}
		kept = append(kept, tier)
	}
	return kept
}

// removeDuplicatedQuantities keeps a single entry per quantity breakpoint,
// the one with the lowest price. Input must already be quantity-ascending;
// the output stays that way.
func removeDuplicatedQuantities(tiers []models.TierPrice) []models.TierPrice {
	best := make(map[int]models.TierPrice, len(tiers))
	for _, tier := range tiers {
		current, ok := best[tier.Quantity]
		if !ok || tier.Price.LessThan(current.Price) {
			best[tier.Quantity] = tier
		}
	}
	deduped := make([]models.TierPrice, 0, len(best))
	seen := make(map[int]bool, len(best))
	for _, tier := range tiers {
		if seen[tier.Quantity] {
			continue
		}
		seen[tier.Quantity] = true
		deduped = append(deduped, best[tier.Quantity])
	}
	return deduped
}
