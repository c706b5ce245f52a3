package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
	"urban_life/internal/domain/bill/model"

	"github.com/jmoiron/sqlx"
)

type PaymentBillRepository interface {
	GetByID(ctx context.Context, id int64) (*model.PaymentBill, error)
	UpdatePaymentBillStatus(ctx context.Context, id int64, status int, paidAt time.Time) (int64, error)
}

type paymentBillRepository struct {
	db *sqlx.DB
}

func NewPaymentBillRepository(db *sqlx.DB) PaymentBillRepository {
	return &paymentBillRepository{db: db}
}

func (r *paymentBillRepository) GetByID(ctx context.Context, id int64) (*model.PaymentBill, error) {
	var bill model.PaymentBill
	err := r.db.GetContext(ctx, &bill,
		`SELECT id, user_id, bill_type, account_no, amount, bill_status, bill_paid_time, create_time
		 FROM payment_bills WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *paymentBillRepository) UpdatePaymentBillStatus(ctx context.Context, id int64, status int, paidAt time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE payment_bills SET bill_status = $1, bill_paid_time = $2 WHERE id = $3`, status, paidAt, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
