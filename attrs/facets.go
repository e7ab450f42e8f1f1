package attrs

import (
	"context"

	"github.com/toolmart/catalog/query"
	"github.com/toolmart/catalog/schema"
)

// Facet is an attribute plus its selectable values, as rendered in a filter
// sidebar.
type Facet struct {
	schema.AttributeRow
	Values []schema.AttributeValueRow
}

// Facets assembles the public facet list. With a category name the set is
// restricted to attributes bound to that category; otherwise every active
// attribute qualifies. Only active values are attached, and an attribute
// whose active-value list comes out empty is dropped entirely: a facet with
// nothing to select is never shown.
func (s *Repository) Facets(ctx context.Context, categoryName string) ([]Facet, error) {
	attributes, err := s.Attributes(ctx, &query.AttributeListOptions{
		IsActive:     true,
		CategoryName: categoryName,
	})
	if err != nil {
		return nil, err
	}

	facets := make([]Facet, 0, len(attributes))

	for _, attribute := range attributes {
		values, err := s.Values(ctx, &query.AttributeValueListOptions{
			AttributeID: attribute.ID,
			IsActive:    true,
		})
		if err != nil {
			return nil, err
		}

		if len(values) == 0 {
			continue
		}

		facets = append(facets, Facet{
			AttributeRow: attribute,
			Values:       values,
		})
	}

	return facets, nil
}
