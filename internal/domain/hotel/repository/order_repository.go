package repository

import (
	"context"
	"database/sql"
	"errors"
	"urban_life/internal/domain/hotel/model"

	"github.com/jmoiron/sqlx"
)

type HotelOrderRepository interface {
	GetByID(ctx context.Context, id int64) (*model.HotelOrder, error)
	// UpdateStatusByOrderID 返回受影响行数，0 表示订单不存在
	UpdateStatusByOrderID(ctx context.Context, id int64, status int) (int64, error)
}

type hotelOrderRepository struct {
	db *sqlx.DB
}

func NewHotelOrderRepository(db *sqlx.DB) HotelOrderRepository {
	return &hotelOrderRepository{db: db}
}

func (r *hotelOrderRepository) GetByID(ctx context.Context, id int64) (*model.HotelOrder, error) {
	var order model.HotelOrder
	err := r.db.GetContext(ctx, &order,
		`SELECT id, order_no, user_id, hotel_id, room_id, check_in_date, check_out_date, total_price, status, create_time
		 FROM hotel_order WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *hotelOrderRepository) UpdateStatusByOrderID(ctx context.Context, id int64, status int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE hotel_order SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
