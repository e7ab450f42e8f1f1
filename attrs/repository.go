package attrs

import (
	"context"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/go-sql-driver/mysql"
	"github.com/toolmart/catalog/query"
	"github.com/toolmart/catalog/schema"
)

var (
	ErrAttributeNotFound       = errors.New("attribute not found")
	ErrAttributeValueNotFound  = errors.New("attribute value not found")
	ErrDuplicateAttributeName  = errors.New("attribute name already exists")
	ErrDuplicateAttributeValue = errors.New("attribute value already exists")
)

const (
	mysqlErrDuplicateEntry     = 1062
	mysqlErrForeignKeyViolated = 1452
)

func isDuplicateKeyError(err error) bool {
	var mysqlError *mysql.MySQLError

	return errors.As(err, &mysqlError) && mysqlError.Number == mysqlErrDuplicateEntry
}

func isForeignKeyError(err error) bool {
	var mysqlError *mysql.MySQLError

	return errors.As(err, &mysqlError) && mysqlError.Number == mysqlErrForeignKeyViolated
}

// Repository Main Object.
type Repository struct {
	db *goqu.Database
}

// NewRepository constructor.
func NewRepository(db *goqu.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (s *Repository) Attributes(
	ctx context.Context, options *query.AttributeListOptions,
) ([]schema.AttributeRow, error) {
	if options == nil {
		options = &query.AttributeListOptions{}
	}

	rows := make([]schema.AttributeRow, 0)
	err := options.Select(s.db).
		Select(goqu.T(query.AttributeAlias).All()).
		ScanStructsContext(ctx, &rows)

	return rows, err
}

func (s *Repository) Attribute(ctx context.Context, id int64) (schema.AttributeRow, error) {
	row := schema.AttributeRow{}

	success, err := s.db.From(schema.AttributeTable).
		Where(schema.AttributeTableIDCol.Eq(id)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return row, err
	}

	if !success {
		return row, ErrAttributeNotFound
	}

	return row, nil
}

func (s *Repository) AttributeByName(
	ctx context.Context, name string,
) (schema.AttributeRow, error) {
	row := schema.AttributeRow{}

	success, err := s.db.From(schema.AttributeTable).
		Where(schema.AttributeTableNameCol.Eq(name)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return row, err
	}

	if !success {
		return row, ErrAttributeNotFound
	}

	return row, nil
}

func (s *Repository) CreateAttribute(
	ctx context.Context, row schema.AttributeRow,
) (int64, error) {
	now := time.Now()

	res, err := s.db.Insert(schema.AttributeTable).Rows(goqu.Record{
		schema.AttributeTableNameColName:         row.Name,
		schema.AttributeTableDisplayNameColName:  row.DisplayName,
		schema.AttributeTableDescriptionColName:  row.Description,
		schema.AttributeTableDisplayOrderColName: row.DisplayOrder,
		schema.AttributeTableActiveColName:       row.Active,
		schema.AttributeTableCreatedAtColName:    now,
		schema.AttributeTableUpdatedAtColName:    now,
	}).Executor().ExecContext(ctx)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrDuplicateAttributeName
		}

		return 0, err
	}

	return res.LastInsertId()
}

func (s *Repository) UpdateAttribute(
	ctx context.Context, id int64, row schema.AttributeRow,
) error {
	exists, err := s.attributeExists(ctx, id)
	if err != nil {
		return err
	}

	if !exists {
		return ErrAttributeNotFound
	}

	_, err = s.db.Update(schema.AttributeTable).Set(goqu.Record{
		schema.AttributeTableNameColName:         row.Name,
		schema.AttributeTableDisplayNameColName:  row.DisplayName,
		schema.AttributeTableDescriptionColName:  row.Description,
		schema.AttributeTableDisplayOrderColName: row.DisplayOrder,
		schema.AttributeTableActiveColName:       row.Active,
		schema.AttributeTableUpdatedAtColName:    time.Now(),
	}).Where(schema.AttributeTableIDCol.Eq(id)).Executor().ExecContext(ctx)
	if err != nil && isDuplicateKeyError(err) {
		return ErrDuplicateAttributeName
	}

	return err
}

// DeleteAttribute removes the attribute together with its values and every
// assignment and category binding referencing it, as one transaction.
func (s *Repository) DeleteAttribute(ctx context.Context, id int64) error {
	exists, err := s.attributeExists(ctx, id)
	if err != nil {
		return err
	}

	if !exists {
		return ErrAttributeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	return tx.Wrap(func() error {
		_, err := tx.Delete(schema.ProductAttributeTable).
			Where(schema.ProductAttributeTableAttributeIDCol.Eq(id)).
			Executor().ExecContext(ctx)
		if err != nil {
			return err
		}

		_, err = tx.Delete(schema.CategoryAttributeTable).
			Where(schema.CategoryAttributeTableAttributeIDCol.Eq(id)).
			Executor().ExecContext(ctx)
		if err != nil {
			return err
		}

		_, err = tx.Delete(schema.AttributeValueTable).
			Where(schema.AttributeValueTableAttributeIDCol.Eq(id)).
			Executor().ExecContext(ctx)
		if err != nil {
			return err
		}

		_, err = tx.Delete(schema.AttributeTable).
			Where(schema.AttributeTableIDCol.Eq(id)).
			Executor().ExecContext(ctx)

		return err
	})
}

func (s *Repository) attributeExists(ctx context.Context, id int64) (bool, error) {
	var exists bool

	success, err := s.db.Select(goqu.V(true)).
		From(schema.AttributeTable).
		Where(schema.AttributeTableIDCol.Eq(id)).
		Limit(1).ScanValContext(ctx, &exists)
	if err != nil {
		return false, err
	}

	return success, nil
}

func (s *Repository) Values(
	ctx context.Context, options *query.AttributeValueListOptions,
) ([]schema.AttributeValueRow, error) {
	if options == nil {
		options = &query.AttributeValueListOptions{}
	}

	rows := make([]schema.AttributeValueRow, 0)
	err := options.Select(s.db).
		Select(goqu.T(query.AttributeValueAlias).All()).
		ScanStructsContext(ctx, &rows)

	return rows, err
}

func (s *Repository) Value(ctx context.Context, id int64) (schema.AttributeValueRow, error) {
	row := schema.AttributeValueRow{}

	success, err := s.db.From(schema.AttributeValueTable).
		Where(schema.AttributeValueTableIDCol.Eq(id)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return row, err
	}

	if !success {
		return row, ErrAttributeValueNotFound
	}

	return row, nil
}

// ValueByString resolves a value string under its owning attribute. Values
// are never resolved by string alone.
func (s *Repository) ValueByString(
	ctx context.Context, attributeID int64, value string,
) (schema.AttributeValueRow, error) {
	row := schema.AttributeValueRow{}

	success, err := s.db.From(schema.AttributeValueTable).
		Where(
			schema.AttributeValueTableAttributeIDCol.Eq(attributeID),
			schema.AttributeValueTableValueCol.Eq(value),
		).
		ScanStructContext(ctx, &row)
	if err != nil {
		return row, err
	}

	if !success {
		return row, ErrAttributeValueNotFound
	}

	return row, nil
}

func (s *Repository) CreateValue(
	ctx context.Context, row schema.AttributeValueRow,
) (int64, error) {
	now := time.Now()

	res, err := s.db.Insert(schema.AttributeValueTable).Rows(goqu.Record{
		schema.AttributeValueTableAttributeIDColName:  row.AttributeID,
		schema.AttributeValueTableValueColName:        row.Value,
		schema.AttributeValueTableDisplayValueColName: row.DisplayValue,
		schema.AttributeValueTableDisplayOrderColName: row.DisplayOrder,
		schema.AttributeValueTableActiveColName:       row.Active,
		schema.AttributeValueTableCreatedAtColName:    now,
		schema.AttributeValueTableUpdatedAtColName:    now,
	}).Executor().ExecContext(ctx)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrDuplicateAttributeValue
		}

		if isForeignKeyError(err) {
			return 0, ErrAttributeNotFound
		}

		return 0, err
	}

	return res.LastInsertId()
}

func (s *Repository) UpdateValue(
	ctx context.Context, id int64, row schema.AttributeValueRow,
) error {
	current, err := s.Value(ctx, id)
	if err != nil {
		return err
	}

	_, err = s.db.Update(schema.AttributeValueTable).Set(goqu.Record{
		schema.AttributeValueTableValueColName:        row.Value,
		schema.AttributeValueTableDisplayValueColName: row.DisplayValue,
		schema.AttributeValueTableDisplayOrderColName: row.DisplayOrder,
		schema.AttributeValueTableActiveColName:       row.Active,
		schema.AttributeValueTableUpdatedAtColName:    time.Now(),
	}).Where(schema.AttributeValueTableIDCol.Eq(current.ID)).Executor().ExecContext(ctx)
	if err != nil && isDuplicateKeyError(err) {
		return ErrDuplicateAttributeValue
	}

	return err
}

// DeleteValue removes a single value and its assignments. The owning
// attribute stays.
func (s *Repository) DeleteValue(ctx context.Context, id int64) error {
	if _, err := s.Value(ctx, id); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	return tx.Wrap(func() error {
		_, err := tx.Delete(schema.ProductAttributeTable).
			Where(schema.ProductAttributeTableAttributeValueIDCol.Eq(id)).
			Executor().ExecContext(ctx)
		if err != nil {
			return err
		}

		_, err = tx.Delete(schema.AttributeValueTable).
			Where(schema.AttributeValueTableIDCol.Eq(id)).
			Executor().ExecContext(ctx)

		return err
	})
}
