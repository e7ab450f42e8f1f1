package attrs

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/mysql" // enable mysql dialect
	_ "github.com/go-sql-driver/mysql"               // enable mysql driver
	"github.com/stretchr/testify/require"
	"github.com/toolmart/catalog/config"
	"github.com/toolmart/catalog/query"
	"github.com/toolmart/catalog/schema"
)

func createRepository(t *testing.T) *Repository {
	t.Helper()

	cfg := config.LoadConfig("..")

	db, err := sql.Open("mysql", cfg.DSN)
	require.NoError(t, err)

	goquDB := goqu.New("mysql", db)

	return NewRepository(goquDB)
}

func createAttribute(
	t *testing.T, repo *Repository, name string, displayOrder int32, active bool,
) int64 {
	t.Helper()

	ctx := context.Background()

	id, err := repo.CreateAttribute(ctx, schema.AttributeRow{
		Name:         name,
		DisplayName:  name,
		DisplayOrder: displayOrder,
		Active:       active,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	return id
}

func createValue(
	t *testing.T, repo *Repository, attributeID int64, value string, active bool,
) int64 {
	t.Helper()

	ctx := context.Background()

	id, err := repo.CreateValue(ctx, schema.AttributeValueRow{
		AttributeID:  attributeID,
		Value:        value,
		DisplayValue: value,
		Active:       active,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	return id
}

func createCategory(t *testing.T, repo *Repository, name string) int64 {
	t.Helper()

	ctx := context.Background()

	res, err := repo.db.Insert(schema.CategoryTable).Rows(goqu.Record{
		schema.CategoryTableNameColName: name,
	}).Executor().ExecContext(ctx)
	require.NoError(t, err)

	id, err := res.LastInsertId()
	require.NoError(t, err)

	return id
}

func createProduct(t *testing.T, repo *Repository) int64 {
	t.Helper()

	ctx := context.Background()

	res, err := repo.db.ExecContext(ctx, "INSERT INTO product () VALUES ()")
	require.NoError(t, err)

	id, err := res.LastInsertId()
	require.NoError(t, err)

	return id
}

func TestCreateAttributeDuplicateName(t *testing.T) {
	t.Parallel()

	repo := createRepository(t)
	ctx := context.Background()
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec

	name := fmt.Sprintf("color-%d", random.Int())

	createAttribute(t, repo, name, 0, true)

	_, err := repo.CreateAttribute(ctx, schema.AttributeRow{
		Name:        name,
		DisplayName: "Color",
		Active:      true,
	})
	require.ErrorIs(t, err, ErrDuplicateAttributeName)
}

func TestAttributeNotFound(t *testing.T) {
	t.Parallel()

	repo := createRepository(t)
	ctx := context.Background()

	const missingID = int64(-1)

	_, err := repo.Attribute(ctx, missingID)
	require.ErrorIs(t, err, ErrAttributeNotFound)

	err = repo.UpdateAttribute(ctx, missingID, schema.AttributeRow{Name: "x", DisplayName: "x"})
	require.ErrorIs(t, err, ErrAttributeNotFound)

	err = repo.DeleteAttribute(ctx, missingID)
	require.ErrorIs(t, err, ErrAttributeNotFound)
}

func TestValueUniquePerAttribute(t *testing.T) {
	t.Parallel()

	repo := createRepository(t)
	ctx := context.Background()
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec

	suffix := random.Int()
	firstAttr := createAttribute(t, repo, fmt.Sprintf("size-%d", suffix), 0, true)
	secondAttr := createAttribute(t, repo, fmt.Sprintf("width-%d", suffix), 0, true)

	createValue(t, repo, firstAttr, "m", true)

	_, err := repo.CreateValue(ctx, schema.AttributeValueRow{
		AttributeID:  firstAttr,
		Value:        "m",
		DisplayValue: "M",
		Active:       true,
	})
	require.ErrorIs(t, err, ErrDuplicateAttributeValue)

	// same string under another attribute is fine
	createValue(t, repo, secondAttr, "m", true)
}

func TestCreateValueUnknownAttribute(t *testing.T) {
	t.Parallel()

	repo := createRepository(t)
	ctx := context.Background()

	_, err := repo.CreateValue(ctx, schema.AttributeValueRow{
		AttributeID:  -1,
		Value:        "x",
		DisplayValue: "x",
		Active:       true,
	})
	require.ErrorIs(t, err, ErrAttributeNotFound)
}

func TestUpdateAttribute(t *testing.T) {
	t.Parallel()

	repo := createRepository(t)
	ctx := context.Background()
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec

	name := fmt.Sprintf("voltage-%d", random.Int())
	id := createAttribute(t, repo, name, 0, true)

	err := repo.UpdateAttribute(ctx, id, schema.AttributeRow{
		Name:         name,
		DisplayName:  "Voltage",
		DisplayOrder: 3,
		Active:       false,
	})
	require.NoError(t, err)

	row, err := repo.Attribute(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Voltage", row.DisplayName)
	require.EqualValues(t, 3, row.DisplayOrder)
	require.False(t, row.Active)
}

func TestAttributesOrderedByDisplayOrderThenName(t *testing.T) {
	t.Parallel()

	repo := createRepository(t)
	ctx := context.Background()
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec

	suffix := random.Int()

	// scoped through a category so rows from other tests stay out
	categoryID := createCategory(t, repo, fmt.Sprintf("drills-%d", suffix))

	first := createAttribute(t, repo, fmt.Sprintf("aaa-%d", suffix), 1, true)
	second := createAttribute(t, repo, fmt.Sprintf("bbb-%d", suffix), 1, true)
	third := createAttribute(t, repo, fmt.Sprintf("zzz-%d", suffix), 0, true)

	err := repo.ReplaceCategoryAttributes(ctx, categoryID, []int64{first, second, third})
	require.NoError(t, err)

	rows, err := repo.Attributes(ctx, &query.AttributeListOptions{CategoryID: categoryID})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, third, rows[0].ID)
	require.Equal(t, first, rows[1].ID)
	require.Equal(t, second, rows[2].ID)
}

func TestValuesOrderedByDisplayOrderThenValue(t *testing.T) {
	t.Parallel()

	repo := createRepository(t)
	ctx := context.Background()
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec

	attributeID := createAttribute(t, repo, fmt.Sprintf("diameter-%d", random.Int()), 0, true)

	_, err := repo.CreateValue(ctx, schema.AttributeValueRow{
		AttributeID: attributeID, Value: "bbb", DisplayValue: "B", DisplayOrder: 1, Active: true,
	})
	require.NoError(t, err)

	_, err = repo.CreateValue(ctx, schema.AttributeValueRow{
		AttributeID: attributeID, Value: "aaa", DisplayValue: "A", DisplayOrder: 1, Active: true,
	})
	require.NoError(t, err)

	_, err = repo.CreateValue(ctx, schema.AttributeValueRow{
		AttributeID: attributeID, Value: "zzz", DisplayValue: "Z", DisplayOrder: 0, Active: true,
	})
	require.NoError(t, err)

	rows, err := repo.Values(ctx, &query.AttributeValueListOptions{AttributeID: attributeID})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "zzz", rows[0].Value)
	require.Equal(t, "aaa", rows[1].Value)
	require.Equal(t, "bbb", rows[2].Value)
}

func TestDeleteValueKeepsAttribute(t *testing.T) {
	t.Parallel()

	repo := createRepository(t)
	ctx := context.Background()
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec

	attributeID := createAttribute(t, repo, fmt.Sprintf("material-%d", random.Int()), 0, true)
	valueID := createValue(t, repo, attributeID, "steel", true)

	err := repo.DeleteValue(ctx, valueID)
	require.NoError(t, err)

	_, err = repo.Value(ctx, valueID)
	require.ErrorIs(t, err, ErrAttributeValueNotFound)

	_, err = repo.Attribute(ctx, attributeID)
	require.NoError(t, err)
}
