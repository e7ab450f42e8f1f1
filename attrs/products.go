package attrs

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/sirupsen/logrus"
	"github.com/toolmart/catalog/query"
	"github.com/toolmart/catalog/schema"
)

// ConstraintMap is the caller's desired filter: attribute name to the list
// of acceptable value strings. Values within one attribute are OR-ed,
// distinct attributes are AND-ed.
type ConstraintMap map[string][]string

// ReplaceProductAttributes rewrites every assignment of one product from the
// attribute-name-to-values map, as one transaction: a reader never observes a
// partially replaced product. Attribute or value names that resolve to no
// catalog entry are logged and skipped, never treated as an error, so the
// call is idempotent and total over the resolvable part of the map.
func (s *Repository) ReplaceProductAttributes(
	ctx context.Context, productID int64, values ConstraintMap,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	err = tx.Wrap(func() error {
		_, err := tx.Delete(schema.ProductAttributeTable).
			Where(schema.ProductAttributeTableProductIDCol.Eq(productID)).
			Executor().ExecContext(ctx)
		if err != nil {
			return err
		}

		now := time.Now()

		for attributeName, valueStrings := range values {
			attribute := schema.AttributeRow{}

			success, err := tx.From(schema.AttributeTable).
				Where(schema.AttributeTableNameCol.Eq(attributeName)).
				ScanStructContext(ctx, &attribute)
			if err != nil {
				return err
			}

			if !success {
				logrus.Warnf("product %d: attribute `%s` not found, skipped", productID, attributeName)
				droppedNames.Inc()

				continue
			}

			for _, valueString := range valueStrings {
				value := schema.AttributeValueRow{}

				success, err := tx.From(schema.AttributeValueTable).
					Where(
						schema.AttributeValueTableAttributeIDCol.Eq(attribute.ID),
						schema.AttributeValueTableValueCol.Eq(valueString),
					).
					ScanStructContext(ctx, &value)
				if err != nil {
					return err
				}

				if !success {
					logrus.Warnf(
						"product %d: value `%s` = `%s` not found, skipped",
						productID, attributeName, valueString,
					)
					droppedNames.Inc()

					continue
				}

				_, err = tx.Insert(schema.ProductAttributeTable).Rows(goqu.Record{
					schema.ProductAttributeTableProductIDColName:        productID,
					schema.ProductAttributeTableAttributeIDColName:      attribute.ID,
					schema.ProductAttributeTableAttributeValueIDColName: value.ID,
					schema.ProductAttributeTableCreatedAtColName:        now,
				}).Executor().ExecContext(ctx)
				if err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	productReplaces.Inc()

	return nil
}

// ProductAttributes returns the product's assignments grouped by attribute
// name, value strings in assignment order.
func (s *Repository) ProductAttributes(
	ctx context.Context, productID int64,
) (map[string][]string, error) {
	options := query.ProductAttributeListOptions{ProductID: productID}

	var rows []struct {
		AttributeName string `db:"attribute_name"`
		Value         string `db:"value"`
	}

	paAlias := goqu.T(query.ProductAttributeAlias)

	err := options.Select(s.db).
		Join(
			schema.AttributeTable.As(query.AttributeAlias),
			goqu.On(paAlias.Col(schema.ProductAttributeTableAttributeIDColName).Eq(
				goqu.T(query.AttributeAlias).Col(schema.AttributeTableIDColName),
			)),
		).
		Join(
			schema.AttributeValueTable.As(query.AttributeValueAlias),
			goqu.On(paAlias.Col(schema.ProductAttributeTableAttributeValueIDColName).Eq(
				goqu.T(query.AttributeValueAlias).Col(schema.AttributeValueTableIDColName),
			)),
		).
		Select(
			goqu.T(query.AttributeAlias).Col(schema.AttributeTableNameColName).As("attribute_name"),
			goqu.T(query.AttributeValueAlias).Col(schema.AttributeValueTableValueColName).As("value"),
		).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]string, len(rows))
	for _, row := range rows {
		result[row.AttributeName] = append(result[row.AttributeName], row.Value)
	}

	return result, nil
}

// MatchingProductIDs resolves a constraint map into the ids of products
// carrying, for every resolvable constrained attribute, at least one of the
// requested values.
//
// The second result reports whether any constraint applied. An empty map
// yields (nil, false, nil): the caller must treat that as "unconstrained"
// pass-through, not as an empty result. A non-empty map in which no
// attribute name resolves yields an empty id list with constrained == true.
func (s *Repository) MatchingProductIDs(
	ctx context.Context, constraints ConstraintMap,
) ([]int64, bool, error) {
	if len(constraints) == 0 {
		return nil, false, nil
	}

	facetQueries.Inc()

	var (
		result   map[int64]struct{}
		resolved bool
	)

	for attributeName, values := range constraints {
		attribute, err := s.AttributeByName(ctx, attributeName)
		if err != nil {
			if errors.Is(err, ErrAttributeNotFound) {
				logrus.Warnf("constraint attribute `%s` not found, dropped", attributeName)
				droppedNames.Inc()

				continue
			}

			return nil, false, err
		}

		candidates := make(map[int64]struct{})

		if len(values) > 0 {
			options := query.ProductAttributeListOptions{
				AttributeID: attribute.ID,
				Values:      values,
			}

			var ids []int64

			err = options.Select(s.db).
				Select(goqu.T(query.ProductAttributeAlias).Col(
					schema.ProductAttributeTableProductIDColName,
				)).
				ClearOrder().
				Distinct().
				ScanValsContext(ctx, &ids)
			if err != nil {
				return nil, false, err
			}

			for _, id := range ids {
				candidates[id] = struct{}{}
			}
		}

		// Intersect pairwise so only the running set and the current
		// candidate set are live at any moment.
		if !resolved {
			resolved = true
			result = candidates

			continue
		}

		for id := range result {
			if _, ok := candidates[id]; !ok {
				delete(result, id)
			}
		}
	}

	if !resolved {
		// Non-empty map, nothing resolved: zero matches, not pass-through.
		return []int64{}, true, nil
	}

	ids := make([]int64, 0, len(result))
	for id := range result {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, true, nil
}

// ProductIDsByAttribute lists products carrying any value of the attribute.
func (s *Repository) ProductIDsByAttribute(
	ctx context.Context, attributeID int64,
) ([]int64, error) {
	return s.productIDs(ctx, query.ProductAttributeListOptions{AttributeID: attributeID})
}

// ProductIDsByValue lists products carrying one specific value.
func (s *Repository) ProductIDsByValue(
	ctx context.Context, attributeValueID int64,
) ([]int64, error) {
	return s.productIDs(ctx, query.ProductAttributeListOptions{AttributeValueID: attributeValueID})
}

func (s *Repository) productIDs(
	ctx context.Context, options query.ProductAttributeListOptions,
) ([]int64, error) {
	var ids []int64

	err := options.Select(s.db).
		Select(goqu.T(query.ProductAttributeAlias).Col(
			schema.ProductAttributeTableProductIDColName,
		)).
		ClearOrder().
		Distinct().
		ScanValsContext(ctx, &ids)

	return ids, err
}
