package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// 生活缴费账单状态
const (
	BillStatusUnpaid = 0
	BillStatusPaid   = 1
)

// 账单类型
const (
	BillTypeWater       = "WATER"
	BillTypeElectricity = "ELECTRICITY"
	BillTypeGas         = "GAS"
)

// PaymentBill 生活缴费账单 payment_bills
type PaymentBill struct {
	ID           int64           `db:"id" json:"id"`
	UserID       int64           `db:"user_id" json:"userId"`
	BillType     string          `db:"bill_type" json:"billType"`
	AccountNo    string          `db:"account_no" json:"accountNo"`
	Amount       decimal.Decimal `db:"amount" json:"amount"`
	BillStatus   int             `db:"bill_status" json:"billStatus"`
	BillPaidTime sql.NullTime    `db:"bill_paid_time" json:"billPaidTime"`
	CreateTime   time.Time       `db:"create_time" json:"createTime"`
}
