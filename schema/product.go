package schema

import "github.com/doug-martin/goqu/v9"

// Product lifecycle is owned by product management; only the identity is
// referenced by attribute assignments.
const (
	ProductTableName      = "product"
	ProductTableIDColName = "id"
)

var (
	ProductTable      = goqu.T(ProductTableName)
	ProductTableIDCol = ProductTable.Col(ProductTableIDColName)
)

type ProductRow struct {
	ID int64 `db:"id"`
}
