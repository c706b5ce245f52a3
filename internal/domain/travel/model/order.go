package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 旅游订单状态
const (
	StatusPending   = 0
	StatusPaid      = 1
	StatusCancelled = 2
	StatusFinished  = 3
)

// TravelOrder 旅游订单 travel_order
type TravelOrder struct {
	ID          int64           `db:"id" json:"id"`
	OrderNo     string          `db:"order_no" json:"orderNo"`
	UserID      int64           `db:"user_id" json:"userId"`
	ProductID   int64           `db:"product_id" json:"productId"`
	TravelDate  time.Time       `db:"travel_date" json:"travelDate"`
	Travelers   int             `db:"travelers" json:"travelers"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"totalAmount"`
	Status      int             `db:"status" json:"status"`
	CreateTime  time.Time       `db:"create_time" json:"createTime"`
}
