package catalog

import (
	"github.com/google/uuid"

	"github.com/velamart/storefront-backend/pkg/db/models"
	"github.com/velamart/storefront-backend/pkg/types"
)

// AttributeParser resolves raw attribute selections against a product's
// configured mappings. It is stateless; the pricing calculator consumes it
// as its attribute source.
type AttributeParser struct{}

// ParseValues returns the configured attribute values referenced by the
// selection. Selections against free-text, date or upload controls carry no
// values and are skipped, as are references to unknown mappings or values.
func (AttributeParser) ParseValues(product *models.Product, selection types.AttributeSelection) []models.ProductAttributeValue {
	if product == nil || len(selection) == 0 {
		return nil
	}

	mappings := make(map[uuid.UUID]*models.ProductAttributeMapping, len(product.AttributeMappings))
	for i := range product.AttributeMappings {
		mappings[product.AttributeMappings[i].ID] = &product.AttributeMappings[i]
	}

	var values []models.ProductAttributeValue
	for _, selected := range selection {
		mapping, ok := mappings[selected.MappingID]
		if !ok || !mapping.ControlType.HasValues() || selected.ValueID == nil {
			continue
		}
		for _, value := range mapping.Values {
			if value.ID == *selected.ValueID {
				values = append(values, value)
				break
			}
		}
	}
	return values
}

// FindCombination returns the combination whose value set matches the
// selection exactly, or nil when no variant is configured for it.
func (AttributeParser) FindCombination(product *models.Product, selection types.AttributeSelection) *models.ProductAttributeCombination {
	if product == nil || len(selection) == 0 {
		return nil
	}
	for i := range product.AttributeCombinations {
		if product.AttributeCombinations[i].Attributes.SameValues(selection) {
			return &product.AttributeCombinations[i]
		}
	}
	return nil
}
