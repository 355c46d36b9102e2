package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webstore/store-api/internal/core/domain"
)

const (
	qSelectProducts = `(?s)^SELECT\s+id,\s*name,\s*price\s+FROM\s+products\s+ORDER\s+BY\s+id$`
	qSelectProduct  = `(?s)^SELECT\s+id,\s*name,\s*price\s+FROM\s+products\s+WHERE\s+id\s*=\s*\$1$`
	qInsertProduct  = `(?s)^INSERT\s+INTO\s+products\s*\(name,\s*price\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+id,\s*name,\s*price$`
	qUpdateProduct  = `(?s)^UPDATE\s+products\s+SET\s+name\s*=\s*\$2,\s*price\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1\s+RETURNING\s+id,\s*name,\s*price$`
	qDeleteProduct  = `(?s)^DELETE\s+FROM\s+products\s+WHERE\s+id\s*=\s*\$1$`
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "price"})
}

func TestProductRepository_ListAndGet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(qSelectProducts).
		WillReturnRows(productRows().AddRow(int64(1), "Lamp", "19.90").AddRow(int64(2), "Desk", "120.00"))
	mock.ExpectQuery(qSelectProduct).WithArgs(int64(2)).
		WillReturnRows(productRows().AddRow(int64(2), "Desk", "120.00"))
	mock.ExpectQuery(qSelectProduct).WithArgs(int64(6)).
		WillReturnRows(productRows())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Price.Equal(decimal.RequireFromString("19.9")))

	p, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Desk", p.Name)
	assert.Equal(t, "120", p.Price.String())

	_, err = repo.GetByID(ctx, 6)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepository_CreateAndUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	price := decimal.RequireFromString("7.50")

	mock.ExpectQuery(qInsertProduct).WithArgs("Mug", price).
		WillReturnRows(productRows().AddRow(int64(3), "Mug", "7.50"))
	mock.ExpectQuery(qUpdateProduct).WithArgs(int64(3), "Big mug", price).
		WillReturnRows(productRows().AddRow(int64(3), "Big mug", "7.50"))
	mock.ExpectQuery(qUpdateProduct).WithArgs(int64(9), "Big mug", price).
		WillReturnRows(productRows())

	created, err := repo.Create(ctx, &domain.Product{Name: "Mug", Price: price})
	require.NoError(t, err)
	assert.EqualValues(t, 3, created.ID)

	updated, err := repo.Update(ctx, &domain.Product{ID: 3, Name: "Big mug", Price: price})
	require.NoError(t, err)
	assert.Equal(t, "Big mug", updated.Name)

	_, err = repo.Update(ctx, &domain.Product{ID: 9, Name: "Big mug", Price: price})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	mock.ExpectExec(qDeleteProduct).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(qDeleteProduct).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(qDeleteProduct).WithArgs(int64(2)).
		WillReturnError(&pgconn.PgError{Code: codeForeignKeyViolation, Message: "still referenced"})
	mock.ExpectExec(qDeleteProduct).WithArgs(int64(3)).
		WillReturnError(errors.New("connection reset"))

	n, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = repo.Delete(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = repo.Delete(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = repo.Delete(ctx, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}
