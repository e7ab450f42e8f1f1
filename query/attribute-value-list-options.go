package query

import (
	"github.com/doug-martin/goqu/v9"
	"github.com/toolmart/catalog/schema"
)

const AttributeValueAlias = "av"

type AttributeValueListOptions struct {
	AttributeID int64
	IsActive    bool
	Values      []string
}

func (s *AttributeValueListOptions) Select(db *goqu.Database) *goqu.SelectDataset {
	alias := goqu.T(AttributeValueAlias)

	sqSelect := db.From(schema.AttributeValueTable.As(AttributeValueAlias)).
		Order(
			alias.Col(schema.AttributeValueTableDisplayOrderColName).Asc(),
			alias.Col(schema.AttributeValueTableValueColName).Asc(),
		)

	return s.Apply(AttributeValueAlias, sqSelect)
}

func (s *AttributeValueListOptions) Apply(
	alias string, sqSelect *goqu.SelectDataset,
) *goqu.SelectDataset {
	aliasTable := goqu.T(alias)

	if s.AttributeID != 0 {
		sqSelect = sqSelect.Where(
			aliasTable.Col(schema.AttributeValueTableAttributeIDColName).Eq(s.AttributeID),
		)
	}

	if s.IsActive {
		sqSelect = sqSelect.Where(
			aliasTable.Col(schema.AttributeValueTableActiveColName).IsTrue(),
		)
	}

	if len(s.Values) > 0 {
		sqSelect = sqSelect.Where(
			aliasTable.Col(schema.AttributeValueTableValueColName).In(s.Values),
		)
	}

	return sqSelect
}
