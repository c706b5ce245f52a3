package repository

import (
	"context"
	"database/sql"
	"errors"
	"urban_life/internal/domain/shop/model"

	"github.com/jmoiron/sqlx"
)

type ShopOrderRepository interface {
	GetByID(ctx context.Context, id int64) (*model.ShopOrder, error)
	UpdateStatusByID(ctx context.Context, id int64, status int) (int64, error)
}

type shopOrderRepository struct {
	db *sqlx.DB
}

func NewShopOrderRepository(db *sqlx.DB) ShopOrderRepository {
	return &shopOrderRepository{db: db}
}

func (r *shopOrderRepository) GetByID(ctx context.Context, id int64) (*model.ShopOrder, error) {
	var order model.ShopOrder
	err := r.db.GetContext(ctx, &order,
		`SELECT id, order_no, user_id, total_amount, address, status, create_time FROM shop_order WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *shopOrderRepository) UpdateStatusByID(ctx context.Context, id int64, status int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE shop_order SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
