package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/velamart/storefront-backend/pkg/db"
	"github.com/velamart/storefront-backend/pkg/db/models"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{`
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  store_id TEXT NOT NULL,
  sku TEXT NOT NULL,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL,
  old_price NUMERIC,
  product_cost NUMERIC NOT NULL DEFAULT 0,
  customer_enters_price INTEGER NOT NULL DEFAULT 0,
  min_entered_price NUMERIC NOT NULL DEFAULT 0,
  max_entered_price NUMERIC NOT NULL DEFAULT 0,
  is_rental INTEGER NOT NULL DEFAULT 0,
  rental_cycle_length INTEGER NOT NULL DEFAULT 1,
  rental_cycle_period TEXT NOT NULL DEFAULT 'days',
  inc_both_date INTEGER NOT NULL DEFAULT 0,
  inventory_method TEXT NOT NULL DEFAULT 'none',
  stock_quantity INTEGER NOT NULL DEFAULT 0,
  order_minimum_quantity INTEGER NOT NULL DEFAULT 1,
  order_maximum_quantity INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME,
  UNIQUE (store_id, sku)
);`, `
CREATE TABLE IF NOT EXISTS tier_prices (
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  store_id TEXT,
  customer_group_id TEXT,
  currency_code TEXT,
  quantity INTEGER NOT NULL DEFAULT 1,
  price NUMERIC NOT NULL,
  start_datetime_utc DATETIME,
  end_datetime_utc DATETIME,
  created_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS product_attribute_mappings (
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  product_attribute_id TEXT NOT NULL,
  control_type TEXT NOT NULL DEFAULT 'dropdown',
  is_required INTEGER NOT NULL DEFAULT 0,
  display_order INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS product_attribute_values (
  id TEXT PRIMARY KEY,
  mapping_id TEXT NOT NULL,
  name TEXT NOT NULL,
  price_adjustment NUMERIC NOT NULL DEFAULT 0,
  adjustment_kind TEXT NOT NULL DEFAULT 'fixed_amount',
  weight_adjustment NUMERIC NOT NULL DEFAULT 0,
  cost NUMERIC NOT NULL DEFAULT 0,
  is_pre_selected INTEGER NOT NULL DEFAULT 0,
  display_order INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS product_attribute_combinations (
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  attributes TEXT NOT NULL,
  sku TEXT,
  overridden_price NUMERIC,
  overridden_cost NUMERIC,
  stock_quantity INTEGER NOT NULL DEFAULT 0,
  picture_id TEXT,
  created_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS currencies (
  id TEXT PRIMARY KEY,
  code TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  rate NUMERIC NOT NULL DEFAULT 1,
  rounding_decimals INTEGER NOT NULL DEFAULT 2,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`}

	for _, stmt := range statements {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func seedProduct(t *testing.T, repo *Repository, storeID uuid.UUID, sku string) *models.Product {
	t.Helper()

	product, err := repo.CreateProduct(context.Background(), &models.Product{
		ID:      uuid.New(),
		StoreID: storeID,
		SKU:     sku,
		Name:    "Walnut Desk",
		Price:   decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	return product
}

func TestGetProduct_PreloadsTierPrices(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	product := seedProduct(t, repo, uuid.New(), "DESK-01")

	tiers := []models.TierPrice{
		{ID: uuid.New(), ProductID: product.ID, Quantity: 5, Price: decimal.NewFromInt(90)},
		{ID: uuid.New(), ProductID: product.ID, Quantity: 10, Price: decimal.NewFromInt(80)},
	}
	require.NoError(t, repo.ReplaceTierPrices(ctx, product.ID, tiers))

	got, err := repo.GetProduct(ctx, product.ID)
	require.NoError(t, err)

	assert.Equal(t, "DESK-01", got.SKU)
	require.Len(t, got.TierPrices, 2)
	assert.True(t, got.HasTierPrices())
}

func TestReplaceTierPrices_SwapsSet(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	product := seedProduct(t, repo, uuid.New(), "DESK-02")

	first := []models.TierPrice{{ID: uuid.New(), ProductID: product.ID, Quantity: 3, Price: decimal.NewFromInt(95)}}
	require.NoError(t, repo.ReplaceTierPrices(ctx, product.ID, first))

	second := []models.TierPrice{
		{ID: uuid.New(), ProductID: product.ID, Quantity: 5, Price: decimal.NewFromInt(90)},
		{ID: uuid.New(), ProductID: product.ID, Quantity: 10, Price: decimal.NewFromInt(80)},
	}
	require.NoError(t, repo.ReplaceTierPrices(ctx, product.ID, second))

	got, err := repo.GetProduct(ctx, product.ID)
	require.NoError(t, err)

	require.Len(t, got.TierPrices, 2)
	quantities := []int{got.TierPrices[0].Quantity, got.TierPrices[1].Quantity}
	assert.ElementsMatch(t, []int{5, 10}, quantities)

	require.NoError(t, repo.ReplaceTierPrices(ctx, product.ID, nil))
	got, err = repo.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, got.TierPrices)
}

func TestCreateProduct_DuplicateSKU(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)

	storeID := uuid.New()
	seedProduct(t, repo, storeID, "DESK-03")

	_, err := repo.CreateProduct(context.Background(), &models.Product{
		ID:      uuid.New(),
		StoreID: storeID,
		SKU:     "DESK-03",
		Name:    "Walnut Desk",
		Price:   decimal.NewFromInt(120),
	})
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err, "sku"))
}

func TestGetCurrencyByCode_ActiveOnly(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	require.NoError(t, conn.Create(&models.Currency{
		ID:       uuid.New(),
		Code:     "USD",
		Name:     "US Dollar",
		Rate:     decimal.NewFromInt(1),
		IsActive: true,
	}).Error)
	inactive := models.Currency{
		ID:       uuid.New(),
		Code:     "XTS",
		Name:     "Test Currency",
		Rate:     decimal.NewFromInt(1),
		IsActive: true,
	}
	require.NoError(t, conn.Create(&inactive).Error)
	require.NoError(t, conn.Model(&inactive).Update("is_active", false).Error)

	got, err := repo.GetCurrencyByCode(ctx, "USD")
	require.NoError(t, err)
	assert.Equal(t, "USD", got.Code)

	_, err = repo.GetCurrencyByCode(ctx, "XTS")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
