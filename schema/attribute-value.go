package schema

import (
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	AttributeValueTableName                = "attribute_value"
	AttributeValueTableIDColName           = "id"
	AttributeValueTableAttributeIDColName  = "attribute_id"
	AttributeValueTableValueColName        = "value"
	AttributeValueTableDisplayValueColName = "display_value"
	AttributeValueTableDisplayOrderColName = "display_order"
	AttributeValueTableActiveColName       = "active"
	AttributeValueTableCreatedAtColName    = "created_at"
	AttributeValueTableUpdatedAtColName    = "updated_at"
)

var (
	AttributeValueTable               = goqu.T(AttributeValueTableName)
	AttributeValueTableIDCol          = AttributeValueTable.Col(AttributeValueTableIDColName)
	AttributeValueTableAttributeIDCol = AttributeValueTable.Col(
		AttributeValueTableAttributeIDColName,
	)
	AttributeValueTableValueCol        = AttributeValueTable.Col(AttributeValueTableValueColName)
	AttributeValueTableDisplayValueCol = AttributeValueTable.Col(
		AttributeValueTableDisplayValueColName,
	)
	AttributeValueTableDisplayOrderCol = AttributeValueTable.Col(
		AttributeValueTableDisplayOrderColName,
	)
	AttributeValueTableActiveCol = AttributeValueTable.Col(AttributeValueTableActiveColName)
)

type AttributeValueRow struct {
	ID           int64     `db:"id"`
	AttributeID  int64     `db:"attribute_id"`
	Value        string    `db:"value"`
	DisplayValue string    `db:"display_value"`
	DisplayOrder int32     `db:"display_order"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
