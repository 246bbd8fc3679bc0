package counter

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	return NewRepository(gdb), mock
}

func TestSequence_Format(t *testing.T) {
	assert.Equal(t, "PAY-000042", PayrollPeriod.Format(42))
	assert.Equal(t, "INV-1234567", Sequence{Prefix: "INV", Width: 3}.Format(1234567))
}

func TestRepository_Next(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO org_counters")).
		WithArgs("org-1", "payroll_period").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(7))

	code, err := repo.Next(context.Background(), "org-1", PayrollPeriod)
	require.NoError(t, err)
	assert.Equal(t, "PAY-000007", code)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO org_counters")).
		WillReturnError(errors.New("conn reset"))

	_, err = repo.Next(context.Background(), "org-1", PayrollPeriod)
	assert.ErrorContains(t, err, "bump payroll_period counter")

	assert.NoError(t, mock.ExpectationsWereMet())
}
