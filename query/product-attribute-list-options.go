package query

import (
	"github.com/doug-martin/goqu/v9"
	"github.com/toolmart/catalog/schema"
)

const ProductAttributeAlias = "pa"

func AppendAttributeValueAlias(alias string) string {
	return alias + "_" + AttributeValueAlias
}

type ProductAttributeListOptions struct {
	ProductID        int64
	AttributeID      int64
	AttributeValueID int64
	// Values restricts assignments to those whose value string is in the
	// list; the value is always matched under AttributeID, never alone.
	Values []string
}

func (s *ProductAttributeListOptions) Select(db *goqu.Database) *goqu.SelectDataset {
	sqSelect := db.From(schema.ProductAttributeTable.As(ProductAttributeAlias)).
		Order(goqu.T(ProductAttributeAlias).Col(schema.ProductAttributeTableIDColName).Asc())

	return s.Apply(ProductAttributeAlias, sqSelect)
}

func (s *ProductAttributeListOptions) Apply(
	alias string, sqSelect *goqu.SelectDataset,
) *goqu.SelectDataset {
	aliasTable := goqu.T(alias)

	if s.ProductID != 0 {
		sqSelect = sqSelect.Where(
			aliasTable.Col(schema.ProductAttributeTableProductIDColName).Eq(s.ProductID),
		)
	}

	if s.AttributeID != 0 {
		sqSelect = sqSelect.Where(
			aliasTable.Col(schema.ProductAttributeTableAttributeIDColName).Eq(s.AttributeID),
		)
	}

	if s.AttributeValueID != 0 {
		sqSelect = sqSelect.Where(
			aliasTable.Col(schema.ProductAttributeTableAttributeValueIDColName).Eq(s.AttributeValueID),
		)
	}

	if len(s.Values) > 0 {
		avAlias := AppendAttributeValueAlias(alias)

		sqSelect = sqSelect.Join(
			schema.AttributeValueTable.As(avAlias),
			goqu.On(aliasTable.Col(schema.ProductAttributeTableAttributeValueIDColName).Eq(
				goqu.T(avAlias).Col(schema.AttributeValueTableIDColName),
			)),
		).Where(
			goqu.T(avAlias).Col(schema.AttributeValueTableValueColName).In(s.Values),
		)
	}

	return sqSelect
}
