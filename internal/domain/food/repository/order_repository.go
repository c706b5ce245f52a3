package repository

import (
	"context"
	"database/sql"
	"errors"
	"urban_life/internal/domain/food/model"

	"github.com/jmoiron/sqlx"
)

type RestaurantOrderRepository interface {
	GetByID(ctx context.Context, id int64) (*model.RestaurantOrder, error)
	UpdateOrderStatus(ctx context.Context, id int64, status int) (int64, error)
}

type restaurantOrderRepository struct {
	db *sqlx.DB
}

func NewRestaurantOrderRepository(db *sqlx.DB) RestaurantOrderRepository {
	return &restaurantOrderRepository{db: db}
}

func (r *restaurantOrderRepository) GetByID(ctx context.Context, id int64) (*model.RestaurantOrder, error) {
	var order model.RestaurantOrder
	err := r.db.GetContext(ctx, &order,
		`SELECT id, user_id, restaurant_id, table_no, total_amount, order_status, create_time
		 FROM restaurant_order WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *restaurantOrderRepository) UpdateOrderStatus(ctx context.Context, id int64, status int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE restaurant_order SET order_status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
