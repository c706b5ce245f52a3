package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 酒店订单状态
const (
	StatusPending   = 0 // 待支付
	StatusPaid      = 1 // 已支付
	StatusCancelled = 2 // 已取消
	StatusCheckedIn = 3 // 已入住
)

// HotelOrder 酒店订单 hotel_order
type HotelOrder struct {
	ID           int64           `db:"id" json:"id"`
	OrderNo      string          `db:"order_no" json:"orderNo"`
	UserID       int64           `db:"user_id" json:"userId"`
	HotelID      int64           `db:"hotel_id" json:"hotelId"`
	RoomID       int64           `db:"room_id" json:"roomId"`
	CheckInDate  time.Time       `db:"check_in_date" json:"checkInDate"`
	CheckOutDate time.Time       `db:"check_out_date" json:"checkOutDate"`
	TotalPrice   decimal.Decimal `db:"total_price" json:"totalPrice"`
	Status       int             `db:"status" json:"status"`
	CreateTime   time.Time       `db:"create_time" json:"createTime"`
}
