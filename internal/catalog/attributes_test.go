package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velamart/storefront-backend/pkg/db/models"
	"github.com/velamart/storefront-backend/pkg/enums"
	"github.com/velamart/storefront-backend/pkg/types"
)

func productWithAttributes() (*models.Product, uuid.UUID, uuid.UUID) {
	colorMapping := uuid.New()
	sizeMapping := uuid.New()
	red := uuid.New()
	large := uuid.New()

	product := &models.Product{
		ID: uuid.New(),
		AttributeMappings: []models.ProductAttributeMapping{
			{
				ID:          colorMapping,
				ControlType: enums.AttributeControlTypeDropdown,
				Values: []models.ProductAttributeValue{
					{ID: red, Name: "Red", PriceAdjustment: decimal.NewFromInt(10), AdjustmentKind: enums.AdjustmentKindFixed},
					{ID: uuid.New(), Name: "Blue"},
				},
			},
			{
				ID:          sizeMapping,
				ControlType: enums.AttributeControlTypeRadioList,
				Values: []models.ProductAttributeValue{
					{ID: large, Name: "Large", PriceAdjustment: decimal.NewFromInt(5), AdjustmentKind: enums.AdjustmentKindPercentage},
				},
			},
			{
				ID:          uuid.New(),
				ControlType: enums.AttributeControlTypeTextBox,
			},
		},
	}
	return product, red, large
}

func TestParseValuesResolvesSelection(t *testing.T) {
	t.Parallel()

	product, red, large := productWithAttributes()
	selection := types.AttributeSelection{
		{MappingID: product.AttributeMappings[0].ID, ValueID: &red},
		{MappingID: product.AttributeMappings[1].ID, ValueID: &large},
	}

	values := AttributeParser{}.ParseValues(product, selection)
	if len(values) != 2 {
		t.Fatalf("expected two resolved values, got %d", len(values))
	}
	if values[0].Name != "Red" || values[1].Name != "Large" {
		t.Fatalf("unexpected values %+v", values)
	}
}

func TestParseValuesSkipsFreeTextControls(t *testing.T) {
	t.Parallel()

	product, _, _ := productWithAttributes()
	text := "engrave this"
	bogus := uuid.New()
	selection := types.AttributeSelection{
		{MappingID: product.AttributeMappings[2].ID, CustomText: &text},
		{MappingID: product.AttributeMappings[2].ID, ValueID: &bogus},
	}

	if values := (AttributeParser{}).ParseValues(product, selection); len(values) != 0 {
		t.Fatalf("expected free-text selections to contribute nothing, got %+v", values)
	}
}

func TestParseValuesIgnoresUnknownReferences(t *testing.T) {
	t.Parallel()

	product, _, _ := productWithAttributes()
	unknownValue := uuid.New()
	selection := types.AttributeSelection{
		{MappingID: uuid.New(), ValueID: &unknownValue},
		{MappingID: product.AttributeMappings[0].ID, ValueID: &unknownValue},
	}

	if values := (AttributeParser{}).ParseValues(product, selection); len(values) != 0 {
		t.Fatalf("expected unknown references skipped, got %+v", values)
	}
}

func TestFindCombinationMatchesValueSet(t *testing.T) {
	t.Parallel()

	product, red, large := productWithAttributes()
	override := decimal.NewFromInt(120)
	product.AttributeCombinations = []models.ProductAttributeCombination{
		{
			ID: uuid.New(),
			Attributes: types.AttributeSelection{
				{MappingID: product.AttributeMappings[0].ID, ValueID: &red},
				{MappingID: product.AttributeMappings[1].ID, ValueID: &large},
			},
			OverriddenPrice: &override,
		},
	}

	// Same value set, different order.
	selection := types.AttributeSelection{
		{MappingID: product.AttributeMappings[1].ID, ValueID: &large},
		{MappingID: product.AttributeMappings[0].ID, ValueID: &red},
	}
	combo := AttributeParser{}.FindCombination(product, selection)
	if combo == nil || combo.OverriddenPrice == nil || !combo.OverriddenPrice.Equal(override) {
		t.Fatalf("expected the configured combination, got %+v", combo)
	}

	partial := types.AttributeSelection{
		{MappingID: product.AttributeMappings[0].ID, ValueID: &red},
	}
	if combo := (AttributeParser{}).FindCombination(product, partial); combo != nil {
		t.Fatalf("expected no match for a partial selection, got %+v", combo)
	}
}
