package schema

import (
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	ProductAttributeTableName                    = "product_attribute"
	ProductAttributeTableIDColName               = "id"
	ProductAttributeTableProductIDColName        = "product_id"
	ProductAttributeTableAttributeIDColName      = "attribute_id"
	ProductAttributeTableAttributeValueIDColName = "attribute_value_id"
	ProductAttributeTableCreatedAtColName        = "created_at"
)

var (
	ProductAttributeTable             = goqu.T(ProductAttributeTableName)
	ProductAttributeTableIDCol        = ProductAttributeTable.Col(ProductAttributeTableIDColName)
	ProductAttributeTableProductIDCol = ProductAttributeTable.Col(
		ProductAttributeTableProductIDColName,
	)
	ProductAttributeTableAttributeIDCol = ProductAttributeTable.Col(
		ProductAttributeTableAttributeIDColName,
	)
	ProductAttributeTableAttributeValueIDCol = ProductAttributeTable.Col(
		ProductAttributeTableAttributeValueIDColName,
	)
	ProductAttributeTableCreatedAtCol = ProductAttributeTable.Col(
		ProductAttributeTableCreatedAtColName,
	)
)

type ProductAttributeRow struct {
	ID               int64     `db:"id"`
	ProductID        int64     `db:"product_id"`
	AttributeID      int64     `db:"attribute_id"`
	AttributeValueID int64     `db:"attribute_value_id"`
	CreatedAt        time.Time `db:"created_at"`
}
