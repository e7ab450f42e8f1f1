package schema

import "github.com/doug-martin/goqu/v9"

// Category identity is owned by category management. The table participates
// here only so bindings can reference it and resolve category names.
const (
	CategoryTableName        = "category"
	CategoryTableIDColName   = "id"
	CategoryTableNameColName = "name"
)

var (
	CategoryTable        = goqu.T(CategoryTableName)
	CategoryTableIDCol   = CategoryTable.Col(CategoryTableIDColName)
	CategoryTableNameCol = CategoryTable.Col(CategoryTableNameColName)
)

type CategoryRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
