package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readMigration(t *testing.T, pattern string) string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration file matching %q", pattern)
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}

func TestCatalogMigrationContainsSchemas(t *testing.T) {
	content := readMigration(t, "*_create_catalog_tables.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS stores",
		"CREATE TABLE IF NOT EXISTS currencies",
		"CREATE TABLE IF NOT EXISTS customer_groups",
		"CREATE TABLE IF NOT EXISTS customers",
		"CREATE TABLE IF NOT EXISTS customer_group_memberships",
		"CREATE TABLE IF NOT EXISTS products",
		"CREATE TABLE IF NOT EXISTS tier_prices",
		"CREATE TABLE IF NOT EXISTS product_attributes",
		"CREATE TABLE IF NOT EXISTS product_attribute_mappings",
		"CREATE TABLE IF NOT EXISTS product_attribute_values",
		"CREATE TABLE IF NOT EXISTS product_attribute_combinations",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_currencies_code",
		"CREATE INDEX IF NOT EXISTS idx_products_store_is_active",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_products_store_sku",
		"CREATE INDEX IF NOT EXISTS idx_tier_prices_product",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestDiscountMigrationContainsSchemas(t *testing.T) {
	content := readMigration(t, "*_create_discount_tables.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS discounts",
		"CREATE TABLE IF NOT EXISTS discount_products",
		"CREATE INDEX IF NOT EXISTS idx_discounts_active_window",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestCartMigrationContainsSchemas(t *testing.T) {
	content := readMigration(t, "*_create_cart_tables.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS shopping_cart_items",
		"CREATE INDEX IF NOT EXISTS idx_shopping_cart_items_customer",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestMigrationsValidate(t *testing.T) {
	entries, err := os.ReadDir("migrations")
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("migrations dir is empty")
	}
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		data, err := os.ReadFile(filepath.Join("migrations", e.Name()))
		if err != nil {
			t.Fatalf("read %s: %v", e.Name(), err)
		}
		if !strings.Contains(string(data), "-- +goose Down") {
			t.Errorf("migration %s has no down section", e.Name())
		}
	}
}
