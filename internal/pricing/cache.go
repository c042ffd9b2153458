package pricing

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/velamart/storefront-backend/pkg/db/models"
	"github.com/velamart/storefront-backend/pkg/logger"
	"github.com/velamart/storefront-backend/pkg/metrics"
	"github.com/velamart/storefront-backend/pkg/redis"
)

const cacheOperation = "final_price"

type quoteStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	QuoteKey(parts ...string) string
}

// CachedCalculator memoizes final price computations in Redis. Computations
// are deterministic for a fixed key, so entries need no invalidation beyond
// the TTL; the as-of minute in the key rolls date-window boundaries forward.
// Cache failures degrade to a plain computation.
type CachedCalculator struct {
	calc    *Calculator
	store   quoteStore
	ttl     time.Duration
	logg    *logger.Logger
	metrics *metrics.PricingMetrics
}

// NewCachedCalculator wraps the calculator with a Redis-backed quote cache.
// A nil store disables caching entirely.
func NewCachedCalculator(calc *Calculator, store quoteStore, ttl time.Duration, logg *logger.Logger, pricingMetrics *metrics.PricingMetrics) *CachedCalculator {
	return &CachedCalculator{
		calc:    calc,
		store:   store,
		ttl:     ttl,
		logg:    logg,
		metrics: pricingMetrics,
	}
}

// Calculator exposes the wrapped calculator for operations that never cache.
func (c *CachedCalculator) Calculator() *Calculator {
	return c.calc
}

// GetFinalPrice serves the computation from the cache when possible.
// Customer-entered prices and combination overrides bypass the cache; their
// inputs are not part of the key.
func (c *CachedCalculator) GetFinalPrice(ctx context.Context, req FinalPriceRequest) (FinalPriceResult, error) {
	if c.store == nil || req.Product == nil || req.Currency == nil || req.EnteredPrice != nil || req.BasePrice != nil {
		return c.calc.GetFinalPrice(ctx, req)
	}

	key := c.store.QuoteKey(quoteKeyParts(req)...)
	if raw, err := c.store.Get(ctx, key); err == nil {
		var cached FinalPriceResult
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			c.metrics.IncCacheHit(cacheOperation)
			return cached, nil
		}
	} else if !redis.IsMiss(err) && c.logg != nil {
		c.logg.Warn(ctx, "quote cache read failed")
	}

	start := time.Now()
	result, err := c.calc.GetFinalPrice(ctx, req)
	if err != nil {
		return FinalPriceResult{}, err
	}
	c.metrics.ObserveComputation(cacheOperation, time.Since(start))
	c.metrics.IncCacheMiss(cacheOperation)

	if payload, jsonErr := json.Marshal(result); jsonErr == nil {
		if setErr := c.store.Set(ctx, key, payload, c.ttl); setErr != nil && c.logg != nil {
			c.logg.Warn(ctx, "quote cache write failed")
		}
	}
	return result, nil
}

func quoteKeyParts(req FinalPriceRequest) []string {
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	parts := []string{
		req.Product.ID.String(),
		req.StoreID.String(),
		req.Currency.Code,
		strconv.Itoa(req.Quantity),
		customerGroupsPart(req.Customer),
		req.AdditionalCharge.String(),
		strconv.FormatBool(req.IncludeDiscounts),
		asOf.Truncate(time.Minute).UTC().Format("200601021504"),
	}
	if req.RentalStart != nil && req.RentalEnd != nil {
		parts = append(parts,
			req.RentalStart.UTC().Format("20060102"),
			req.RentalEnd.UTC().Format("20060102"))
	}
	return parts
}

func customerGroupsPart(customer *models.Customer) string {
	if customer == nil || len(customer.Groups) == 0 {
		return "anon"
	}
	ids := make([]string, 0, len(customer.Groups))
	for _, group := range customer.Groups {
		ids = append(ids, group.ID.String())
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}
