package schema

import (
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	AttributeTableName                = "attribute"
	AttributeTableIDColName           = "id"
	AttributeTableNameColName         = "name"
	AttributeTableDisplayNameColName  = "display_name"
	AttributeTableDescriptionColName  = "description"
	AttributeTableDisplayOrderColName = "display_order"
	AttributeTableActiveColName       = "active"
	AttributeTableCreatedAtColName    = "created_at"
	AttributeTableUpdatedAtColName    = "updated_at"
)

var (
	AttributeTable                = goqu.T(AttributeTableName)
	AttributeTableIDCol           = AttributeTable.Col(AttributeTableIDColName)
	AttributeTableNameCol         = AttributeTable.Col(AttributeTableNameColName)
	AttributeTableDisplayNameCol  = AttributeTable.Col(AttributeTableDisplayNameColName)
	AttributeTableDescriptionCol  = AttributeTable.Col(AttributeTableDescriptionColName)
	AttributeTableDisplayOrderCol = AttributeTable.Col(AttributeTableDisplayOrderColName)
	AttributeTableActiveCol       = AttributeTable.Col(AttributeTableActiveColName)
	AttributeTableCreatedAtCol    = AttributeTable.Col(AttributeTableCreatedAtColName)
	AttributeTableUpdatedAtCol    = AttributeTable.Col(AttributeTableUpdatedAtColName)
)

type AttributeRow struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	DisplayName  string         `db:"display_name"`
	Description  sql.NullString `db:"description"`
	DisplayOrder int32          `db:"display_order"`
	Active       bool           `db:"active"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}
