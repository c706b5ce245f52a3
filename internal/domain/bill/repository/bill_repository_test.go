package repository

import (
	"context"
	"testing"
	"time"
	"urban_life/internal/domain/bill/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePaymentBillStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPaymentBillRepository(sqlx.NewDb(db, "sqlmock"))

	paidAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)
	mock.ExpectExec(`UPDATE payment_bills SET bill_status = \$1, bill_paid_time = \$2 WHERE id = \$3`).
		WithArgs(model.BillStatusPaid, paidAt, int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.UpdatePaymentBillStatus(context.Background(), 11, model.BillStatusPaid, paidAt)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBillNullPaidTime(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPaymentBillRepository(sqlx.NewDb(db, "sqlmock"))

	rows := sqlmock.NewRows([]string{"id", "user_id", "bill_type", "account_no", "amount", "bill_status", "bill_paid_time", "create_time"}).
		AddRow(11, 7, model.BillTypeWater, "WA-0001", "56.30", model.BillStatusUnpaid, nil, time.Now())
	mock.ExpectQuery(`FROM payment_bills WHERE id = \$1`).WithArgs(int64(11)).WillReturnRows(rows)

	bill, err := repo.GetByID(context.Background(), 11)
	require.NoError(t, err)
	require.NotNil(t, bill)
	assert.False(t, bill.BillPaidTime.Valid)
	assert.Equal(t, "56.3", bill.Amount.String())
}
