package repository

import (
	"context"
	"testing"
	"time"
	"urban_life/internal/domain/hotel/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (HotelOrderRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewHotelOrderRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestUpdateStatusByOrderID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE hotel_order SET status = \$1 WHERE id = \$2`).
		WithArgs(model.StatusPaid, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.UpdateStatusByOrderID(context.Background(), 42, model.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "order_no", "user_id", "hotel_id", "room_id", "check_in_date", "check_out_date", "total_price", "status", "create_time"}).
			AddRow(42, "H202401010001", 7, 3, 301, now, now.Add(24*time.Hour), "199.00", model.StatusPending, now)
		mock.ExpectQuery(`FROM hotel_order WHERE id = \$1`).WithArgs(int64(42)).WillReturnRows(rows)

		order, err := repo.GetByID(context.Background(), 42)
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, "199", order.TotalPrice.String())
		assert.Equal(t, model.StatusPending, order.Status)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM hotel_order WHERE id = \$1`).WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		order, err := repo.GetByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, order)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
