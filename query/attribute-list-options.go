package query

import (
	"github.com/doug-martin/goqu/v9"
	"github.com/toolmart/catalog/schema"
)

const AttributeAlias = "a"

func AppendCategoryAttributeAlias(alias string) string {
	return alias + "_" + CategoryAttributeAlias
}

type AttributeListOptions struct {
	IsActive     bool
	CategoryID   int64
	CategoryName string
}

func (s *AttributeListOptions) Select(db *goqu.Database) *goqu.SelectDataset {
	alias := goqu.T(AttributeAlias)

	sqSelect := db.From(schema.AttributeTable.As(AttributeAlias)).
		Order(
			alias.Col(schema.AttributeTableDisplayOrderColName).Asc(),
			alias.Col(schema.AttributeTableNameColName).Asc(),
		)

	return s.Apply(AttributeAlias, sqSelect)
}

func (s *AttributeListOptions) Apply(alias string, sqSelect *goqu.SelectDataset) *goqu.SelectDataset {
	aliasTable := goqu.T(alias)

	if s.IsActive {
		sqSelect = sqSelect.Where(
			aliasTable.Col(schema.AttributeTableActiveColName).IsTrue(),
		)
	}

	if s.CategoryID != 0 || s.CategoryName != "" {
		caAlias := AppendCategoryAttributeAlias(alias)

		sqSelect = sqSelect.Join(
			schema.CategoryAttributeTable.As(caAlias),
			goqu.On(aliasTable.Col(schema.AttributeTableIDColName).Eq(
				goqu.T(caAlias).Col(schema.CategoryAttributeTableAttributeIDColName),
			)),
		)

		if s.CategoryID != 0 {
			sqSelect = sqSelect.Where(
				goqu.T(caAlias).Col(schema.CategoryAttributeTableCategoryIDColName).Eq(s.CategoryID),
			)
		}

		if s.CategoryName != "" {
			sqSelect = sqSelect.Join(
				schema.CategoryTable,
				goqu.On(goqu.T(caAlias).Col(schema.CategoryAttributeTableCategoryIDColName).Eq(
					schema.CategoryTableIDCol,
				)),
			).Where(schema.CategoryTableNameCol.Eq(s.CategoryName))
		}
	}

	return sqSelect
}
