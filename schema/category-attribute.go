package schema

import "github.com/doug-martin/goqu/v9"

const (
	CategoryAttributeTableName               = "category_attribute"
	CategoryAttributeTableIDColName          = "id"
	CategoryAttributeTableCategoryIDColName  = "category_id"
	CategoryAttributeTableAttributeIDColName = "attribute_id"
)

var (
	CategoryAttributeTable              = goqu.T(CategoryAttributeTableName)
	CategoryAttributeTableIDCol         = CategoryAttributeTable.Col(CategoryAttributeTableIDColName)
	CategoryAttributeTableCategoryIDCol = CategoryAttributeTable.Col(
		CategoryAttributeTableCategoryIDColName,
	)
	CategoryAttributeTableAttributeIDCol = CategoryAttributeTable.Col(
		CategoryAttributeTableAttributeIDColName,
	)
)

type CategoryAttributeRow struct {
	ID          int64 `db:"id"`
	CategoryID  int64 `db:"category_id"`
	AttributeID int64 `db:"attribute_id"`
}
