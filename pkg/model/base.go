package model

import (
	"time"
)

// BaseModel 基础模型，自增主键 + 创建/更新时间
type BaseModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"createTime"`
	UpdateTime time.Time `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`
}
