package model

import (
	"time"
	baseModel "urban_life/pkg/model"
)

// 用户角色
const (
	RoleUser  = 0
	RoleAdmin = 1
)

// 用户状态
const (
	StatusNormal  = 0
	StatusBanned  = 1
	StatusDeleted = 2
)

// User 用户模型
type User struct {
	baseModel.BaseModel
	Mobile      string     `gorm:"column:mobile;type:varchar(20);uniqueIndex;not null" json:"mobile"`
	Nickname    string     `gorm:"column:nickname;type:varchar(64)" json:"nickname"`
	AvatarURL   string     `gorm:"column:avatar_url;type:varchar(255)" json:"avatarUrl"`
	Role        int        `gorm:"column:role;not null;default:0" json:"role"`
	Status      int        `gorm:"column:status;not null;default:0" json:"status"`
	BannedUntil *time.Time `gorm:"column:banned_until" json:"-"`
}

func (User) TableName() string {
	return "users"
}
