package attrs

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/sirupsen/logrus"
	"github.com/toolmart/catalog/query"
	"github.com/toolmart/catalog/schema"
)

// CategoryAttributes lists the attributes bound to a category.
func (s *Repository) CategoryAttributes(
	ctx context.Context, categoryID int64,
) ([]schema.AttributeRow, error) {
	return s.Attributes(ctx, &query.AttributeListOptions{CategoryID: categoryID})
}

// ActiveAttributesByCategoryName scopes the public facet set: attributes
// bound to the named category, active only, ordered.
func (s *Repository) ActiveAttributesByCategoryName(
	ctx context.Context, categoryName string,
) ([]schema.AttributeRow, error) {
	return s.Attributes(ctx, &query.AttributeListOptions{
		CategoryName: categoryName,
		IsActive:     true,
	})
}

// ReplaceCategoryAttributes swaps the category's bindings wholesale: existing
// bindings are deleted and one binding is inserted per resolvable attribute
// id, in one transaction. Ids that resolve to nothing are skipped.
func (s *Repository) ReplaceCategoryAttributes(
	ctx context.Context, categoryID int64, attributeIDs []int64,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	return tx.Wrap(func() error {
		_, err := tx.Delete(schema.CategoryAttributeTable).
			Where(schema.CategoryAttributeTableCategoryIDCol.Eq(categoryID)).
			Executor().ExecContext(ctx)
		if err != nil {
			return err
		}

		seen := make(map[int64]bool, len(attributeIDs))

		for _, attributeID := range attributeIDs {
			if seen[attributeID] {
				continue
			}

			seen[attributeID] = true

			var exists bool

			success, err := tx.Select(goqu.V(true)).
				From(schema.AttributeTable).
				Where(schema.AttributeTableIDCol.Eq(attributeID)).
				Limit(1).ScanValContext(ctx, &exists)
			if err != nil {
				return err
			}

			if !success {
				logrus.Warnf("category %d: unknown attribute %d skipped", categoryID, attributeID)

				continue
			}

			_, err = tx.Insert(schema.CategoryAttributeTable).Rows(goqu.Record{
				schema.CategoryAttributeTableCategoryIDColName:  categoryID,
				schema.CategoryAttributeTableAttributeIDColName: attributeID,
			}).Executor().ExecContext(ctx)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// AddCategoryAttribute binds a single attribute to a category. Returns false
// when the pair already exists or either side is unknown.
func (s *Repository) AddCategoryAttribute(
	ctx context.Context, categoryID int64, attributeID int64,
) (bool, error) {
	_, err := s.db.Insert(schema.CategoryAttributeTable).Rows(goqu.Record{
		schema.CategoryAttributeTableCategoryIDColName:  categoryID,
		schema.CategoryAttributeTableAttributeIDColName: attributeID,
	}).Executor().ExecContext(ctx)
	if err != nil {
		if isDuplicateKeyError(err) || isForeignKeyError(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// RemoveCategoryAttribute unbinds a single attribute. Returns false when the
// pair was not bound.
func (s *Repository) RemoveCategoryAttribute(
	ctx context.Context, categoryID int64, attributeID int64,
) (bool, error) {
	res, err := s.db.Delete(schema.CategoryAttributeTable).
		Where(
			schema.CategoryAttributeTableCategoryIDCol.Eq(categoryID),
			schema.CategoryAttributeTableAttributeIDCol.Eq(attributeID),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, err
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}
