package repository

import (
	"context"
	"database/sql"
	"errors"
	"urban_life/internal/domain/travel/model"

	"github.com/jmoiron/sqlx"
)

type TravelOrderRepository interface {
	GetByID(ctx context.Context, id int64) (*model.TravelOrder, error)
	UpdateStatusByID(ctx context.Context, id int64, status int) (int64, error)
}

type travelOrderRepository struct {
	db *sqlx.DB
}

func NewTravelOrderRepository(db *sqlx.DB) TravelOrderRepository {
	return &travelOrderRepository{db: db}
}

func (r *travelOrderRepository) GetByID(ctx context.Context, id int64) (*model.TravelOrder, error) {
	var order model.TravelOrder
	err := r.db.GetContext(ctx, &order,
		`SELECT id, order_no, user_id, product_id, travel_date, travelers, total_amount, status, create_time
		 FROM travel_order WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *travelOrderRepository) UpdateStatusByID(ctx context.Context, id int64, status int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE travel_order SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
