package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 餐饮订单状态 order_status
const (
	OrderStatusPending   = 0
	OrderStatusPaid      = 1
	OrderStatusCancelled = 2
	OrderStatusFinished  = 3
)

// RestaurantOrder 餐饮订单 restaurant_order
type RestaurantOrder struct {
	ID           int64           `db:"id" json:"id"`
	UserID       int64           `db:"user_id" json:"userId"`
	RestaurantID int64           `db:"restaurant_id" json:"restaurantId"`
	TableNo      string          `db:"table_no" json:"tableNo"`
	TotalAmount  decimal.Decimal `db:"total_amount" json:"totalAmount"`
	OrderStatus  int             `db:"order_status" json:"orderStatus"`
	CreateTime   time.Time       `db:"create_time" json:"createTime"`
}
