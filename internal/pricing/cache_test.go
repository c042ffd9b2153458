package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type stubQuoteStore struct {
	entries map[string]string
	getErr  error
	setErr  error
	gets    int
	sets    int
}

func newStubQuoteStore() *stubQuoteStore {
	return &stubQuoteStore{entries: map[string]string{}}
}

func (s *stubQuoteStore) Get(ctx context.Context, key string) (string, error) {
	s.gets++
	if s.getErr != nil {
		return "", s.getErr
	}
	value, ok := s.entries[key]
	if !ok {
		return "", errors.New("redis: nil")
	}
	return value, nil
}

func (s *stubQuoteStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	switch v := value.(type) {
	case []byte:
		s.entries[key] = string(v)
	case string:
		s.entries[key] = v
	}
	return nil
}

func (s *stubQuoteStore) QuoteKey(parts ...string) string {
	key := "quote"
	for _, part := range parts {
		key += ":" + part
	}
	return key
}

func TestCachedCalculatorStoresAndServes(t *testing.T) {
	t.Parallel()

	store := newStubQuoteStore()
	cached := NewCachedCalculator(NewCalculator(nil, nil), store, time.Minute, nil, nil)

	req := FinalPriceRequest{
		Product:  plainProduct(100),
		Currency: usd(),
		Quantity: 1,
		AsOf:     time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC),
	}

	first, err := cached.GetFinalPrice(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.sets != 1 {
		t.Fatalf("expected one cache write, got %d", store.sets)
	}

	second, err := cached.GetFinalPrice(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.sets != 1 {
		t.Fatalf("expected the second call served from cache, writes %d", store.sets)
	}
	if !second.FinalPrice.Equal(first.FinalPrice) {
		t.Fatalf("cached result diverged: %s vs %s", second.FinalPrice, first.FinalPrice)
	}
}

func TestCachedCalculatorServesStoredPayload(t *testing.T) {
	t.Parallel()

	store := newStubQuoteStore()
	cached := NewCachedCalculator(NewCalculator(nil, nil), store, time.Minute, nil, nil)

	req := FinalPriceRequest{
		Product:  plainProduct(100),
		Currency: usd(),
		Quantity: 1,
		AsOf:     time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC),
	}

	canned := FinalPriceResult{FinalPrice: decimal.NewFromInt(77), RoundingDecimals: 2}
	payload, err := json.Marshal(canned)
	if err != nil {
		t.Fatalf("marshal canned result: %v", err)
	}
	store.entries[store.QuoteKey(quoteKeyParts(req)...)] = string(payload)

	got, err := cached.GetFinalPrice(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.FinalPrice.Equal(decimal.NewFromInt(77)) {
		t.Fatalf("expected the cached payload, got %s", got.FinalPrice)
	}
}

func TestCachedCalculatorBypassesEnteredPrice(t *testing.T) {
	t.Parallel()

	store := newStubQuoteStore()
	cached := NewCachedCalculator(NewCalculator(nil, nil), store, time.Minute, nil, nil)

	product := plainProduct(100)
	product.CustomerEntersPrice = true
	product.MinEnteredPrice = decimal.NewFromInt(1)
	product.MaxEnteredPrice = decimal.NewFromInt(500)
	entered := decimal.NewFromInt(120)

	got, err := cached.GetFinalPrice(context.Background(), FinalPriceRequest{
		Product:      product,
		Currency:     usd(),
		Quantity:     1,
		EnteredPrice: &entered,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.FinalPrice.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("expected entered price honored, got %s", got.FinalPrice)
	}
	if store.gets != 0 || store.sets != 0 {
		t.Fatalf("expected the cache untouched, gets %d sets %d", store.gets, store.sets)
	}
}

func TestCachedCalculatorDegradesOnStoreErrors(t *testing.T) {
	t.Parallel()

	store := newStubQuoteStore()
	store.getErr = errors.New("connection refused")
	store.setErr = errors.New("connection refused")
	cached := NewCachedCalculator(NewCalculator(nil, nil), store, time.Minute, nil, nil)

	got, err := cached.GetFinalPrice(context.Background(), FinalPriceRequest{
		Product:  plainProduct(100),
		Currency: usd(),
		Quantity: 1,
	})
	if err != nil {
		t.Fatalf("expected computation despite cache failure, got %v", err)
	}
	if !got.FinalPrice.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected final price 100, got %s", got.FinalPrice)
	}
}

func TestCachedCalculatorNilStorePassthrough(t *testing.T) {
	t.Parallel()

	cached := NewCachedCalculator(NewCalculator(nil, nil), nil, time.Minute, nil, nil)
	got, err := cached.GetFinalPrice(context.Background(), FinalPriceRequest{
		Product:  plainProduct(100),
		Currency: usd(),
		Quantity: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.FinalPrice.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected passthrough result 100, got %s", got.FinalPrice)
	}
}
