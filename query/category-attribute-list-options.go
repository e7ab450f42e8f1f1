package query

import (
	"github.com/doug-martin/goqu/v9"
	"github.com/toolmart/catalog/schema"
)

const CategoryAttributeAlias = "ca"

type CategoryAttributeListOptions struct {
	CategoryID  int64
	AttributeID int64
}

func (s *CategoryAttributeListOptions) Select(db *goqu.Database) *goqu.SelectDataset {
	sqSelect := db.From(schema.CategoryAttributeTable.As(CategoryAttributeAlias))

	return s.Apply(CategoryAttributeAlias, sqSelect)
}

func (s *CategoryAttributeListOptions) Apply(
	alias string, sqSelect *goqu.SelectDataset,
) *goqu.SelectDataset {
	aliasTable := goqu.T(alias)

	if s.CategoryID != 0 {
		sqSelect = sqSelect.Where(
			aliasTable.Col(schema.CategoryAttributeTableCategoryIDColName).Eq(s.CategoryID),
		)
	}

	if s.AttributeID != 0 {
		sqSelect = sqSelect.Where(
			aliasTable.Col(schema.CategoryAttributeTableAttributeIDColName).Eq(s.AttributeID),
		)
	}

	return sqSelect
}
