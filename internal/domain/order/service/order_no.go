package service

import (
	"fmt"
	"math/rand/v2"
	"time"
	"urban_life/internal/domain/order/model"
)

// orderNoPrefix 统一订单号前缀
const orderNoPrefix = "UO"

// GenerateOrderNo 生成统一订单号：UO + 类型标识 + 毫秒时间戳 + 4 位随机数
//
// 唯一性由数据库唯一索引保证，冲突时由 CreateOrder 重新生成。
func GenerateOrderNo(orderType model.OrderType, now time.Time) string {
	return fmt.Sprintf("%s%s%d%04d", orderNoPrefix, orderType.Tag(), now.UnixMilli(), rand.IntN(10000))
}
