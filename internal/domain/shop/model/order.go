package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 商城订单状态
const (
	StatusPending   = 0
	StatusPaid      = 1
	StatusCancelled = 2
	StatusShipped   = 3
	StatusReceived  = 4
)

// ShopOrder 商城订单 shop_order
type ShopOrder struct {
	ID          int64           `db:"id" json:"id"`
	OrderNo     string          `db:"order_no" json:"orderNo"`
	UserID      int64           `db:"user_id" json:"userId"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"totalAmount"`
	Address     string          `db:"address" json:"address"`
	Status      int             `db:"status" json:"status"`
	CreateTime  time.Time       `db:"create_time" json:"createTime"`
}
