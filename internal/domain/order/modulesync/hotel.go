package modulesync

import (
	"context"
	"time"
	hotelModel "urban_life/internal/domain/hotel/model"
)

// HotelStatusUpdater 酒店订单状态写入
type HotelStatusUpdater interface {
	UpdateStatusByOrderID(ctx context.Context, id int64, status int) (int64, error)
}

type HotelSyncer struct {
	orders HotelStatusUpdater
}

func NewHotelSyncer(orders HotelStatusUpdater) *HotelSyncer {
	return &HotelSyncer{orders: orders}
}

// MarkPaid 酒店订单表没有支付时间列
func (s *HotelSyncer) MarkPaid(ctx context.Context, moduleOrderID int64, _ time.Time) error {
	return affected(s.orders.UpdateStatusByOrderID(ctx, moduleOrderID, hotelModel.StatusPaid))
}

func (s *HotelSyncer) MarkCancelled(ctx context.Context, moduleOrderID int64) error {
	return affected(s.orders.UpdateStatusByOrderID(ctx, moduleOrderID, hotelModel.StatusCancelled))
}
