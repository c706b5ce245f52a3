package model

import (
	"strings"
	"time"
	baseModel "urban_life/pkg/model"

	"github.com/shopspring/decimal"
)

// OrderType 业务模块类型
type OrderType string

const (
	OrderTypeFood     OrderType = "FOOD"
	OrderTypeHotel    OrderType = "HOTEL"
	OrderTypeShopping OrderType = "SHOPPING"
	OrderTypeTravel   OrderType = "TRAVEL"
	OrderTypePayment  OrderType = "PAYMENT"
)

// OrderTypes 全部已知类型
var OrderTypes = []OrderType{OrderTypeFood, OrderTypeHotel, OrderTypeShopping, OrderTypeTravel, OrderTypePayment}

// ParseOrderType 不区分大小写解析订单类型
func ParseOrderType(s string) (OrderType, bool) {
	t := OrderType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.Valid()
}

func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeFood, OrderTypeHotel, OrderTypeShopping, OrderTypeTravel, OrderTypePayment:
		return true
	}
	return false
}

// Tag 订单号中的类型标识
func (t OrderType) Tag() string {
	switch t {
	case OrderTypeFood:
		return "FOOD"
	case OrderTypeHotel:
		return "HOTEL"
	case OrderTypeShopping:
		return "SHOP"
	case OrderTypeTravel:
		return "TRAVEL"
	case OrderTypePayment:
		return "PAY"
	default:
		return "UNKNOWN"
	}
}

// PaymentStatus 统一订单支付状态
type PaymentStatus int

const (
	PaymentStatusUnpaid    PaymentStatus = 0
	PaymentStatusPaid      PaymentStatus = 1
	PaymentStatusCancelled PaymentStatus = 2
	PaymentStatusCompleted PaymentStatus = 3
	PaymentStatusRefunded  PaymentStatus = 4
)

func (s PaymentStatus) Valid() bool {
	return s >= PaymentStatusUnpaid && s <= PaymentStatusRefunded
}

func (s PaymentStatus) String() string {
	switch s {
	case PaymentStatusUnpaid:
		return "UNPAID"
	case PaymentStatusPaid:
		return "PAID"
	case PaymentStatusCancelled:
		return "CANCELLED"
	case PaymentStatusCompleted:
		return "COMPLETED"
	case PaymentStatusRefunded:
		return "REFUNDED"
	default:
		return "UNKNOWN"
	}
}

// Deletable 已支付待履约的订单不可删除，其余状态均可
func (s PaymentStatus) Deletable() bool {
	return s.Valid() && s != PaymentStatusPaid
}

// DeletableStatuses 可删除的状态集合
func DeletableStatuses() []int {
	out := make([]int, 0, 4)
	for s := PaymentStatusUnpaid; s <= PaymentStatusRefunded; s++ {
		if s.Deletable() {
			out = append(out, int(s))
		}
	}
	return out
}

// UnifiedOrder 统一订单，指向某个业务模块的订单
type UnifiedOrder struct {
	baseModel.BaseModel
	OrderNo          string          `gorm:"column:order_no;type:varchar(64);uniqueIndex;not null" json:"orderNo"`
	UserID           int64           `gorm:"column:user_id;index;not null" json:"userId"`
	OrderType        OrderType       `gorm:"column:order_type;type:varchar(16);not null" json:"orderType"`
	ModuleOrderID    *int64          `gorm:"column:module_order_id" json:"moduleOrderId"`
	OrderTitle       string          `gorm:"column:order_title;type:varchar(255)" json:"orderTitle"`
	OrderDescription string          `gorm:"column:order_description;type:text" json:"orderDescription"`
	TotalAmount      decimal.Decimal `gorm:"column:total_amount;type:decimal(12,2);not null" json:"totalAmount"`
	PaymentStatus    PaymentStatus   `gorm:"column:payment_status;not null" json:"paymentStatus"`
	PaymentMethod    *string         `gorm:"column:payment_method;type:varchar(32)" json:"paymentMethod"`
	PaymentTime      *time.Time      `gorm:"column:payment_time" json:"paymentTime"`
}

func (UnifiedOrder) TableName() string {
	return "unified_order"
}

func (o *UnifiedOrder) CanPay() bool {
	return o.PaymentStatus == PaymentStatusUnpaid
}

// CanCancel 已支付订单不能自助取消
func (o *UnifiedOrder) CanCancel() bool {
	return o.PaymentStatus == PaymentStatusUnpaid
}

func (o *UnifiedOrder) CanDelete() bool {
	return o.PaymentStatus.Deletable()
}

func (o *UnifiedOrder) OwnedBy(userID int64) bool {
	return o.UserID == userID
}

// OrderFilter 用户订单列表筛选条件，nil 表示不限
type OrderFilter struct {
	OrderType     *OrderType
	PaymentStatus *PaymentStatus
	Offset        int
	Limit         int // 0 表示不分页
}

// OrderStats 用户订单统计
type OrderStats struct {
	Total     int64 `json:"total"`
	Unpaid    int64 `json:"unpaid"`
	Paid      int64 `json:"paid"`
	Cancelled int64 `json:"cancelled"`
	Completed int64 `json:"completed"`
	Refunded  int64 `json:"refunded"`
}

// NewOrderStats 由按状态分组的计数构造统计
func NewOrderStats(counts map[PaymentStatus]int64) *OrderStats {
	stats := &OrderStats{}
	for status, n := range counts {
		stats.Total += n
		switch status {
		case PaymentStatusUnpaid:
			stats.Unpaid = n
		case PaymentStatusPaid:
			stats.Paid = n
		case PaymentStatusCancelled:
			stats.Cancelled = n
		case PaymentStatusCompleted:
			stats.Completed = n
		case PaymentStatusRefunded:
			stats.Refunded = n
		}
	}
	return stats
}
