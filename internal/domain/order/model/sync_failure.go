package model

import (
	baseModel "urban_life/pkg/model"
)

// SyncAction 模块同步动作
type SyncAction string

const (
	SyncActionPaid      SyncAction = "paid"
	SyncActionCancelled SyncAction = "cancelled"
)

// SyncFailure 模块订单同步失败记录，供人工或对账任务处理
type SyncFailure struct {
	baseModel.BaseModel
	OrderNo       string     `gorm:"column:order_no;type:varchar(64);index;not null" json:"orderNo"`
	OrderType     OrderType  `gorm:"column:order_type;type:varchar(16);not null" json:"orderType"`
	ModuleOrderID int64      `gorm:"column:module_order_id;not null" json:"moduleOrderId"`
	Action        SyncAction `gorm:"column:action;type:varchar(16);not null" json:"action"`
	ErrorMessage  string     `gorm:"column:error_message;type:text" json:"errorMessage"`
	Resolved      bool       `gorm:"column:resolved;not null" json:"resolved"`
}

func (SyncFailure) TableName() string {
	return "unified_order_sync_failure"
}
