package modulesync

import (
	"context"
	"time"
	shopModel "urban_life/internal/domain/shop/model"
)

type ShopStatusUpdater interface {
	UpdateStatusByID(ctx context.Context, id int64, status int) (int64, error)
}

type ShopSyncer struct {
	orders ShopStatusUpdater
}

func NewShopSyncer(orders ShopStatusUpdater) *ShopSyncer {
	return &ShopSyncer{orders: orders}
}

func (s *ShopSyncer) MarkPaid(ctx context.Context, moduleOrderID int64, _ time.Time) error {
	return affected(s.orders.UpdateStatusByID(ctx, moduleOrderID, shopModel.StatusPaid))
}

func (s *ShopSyncer) MarkCancelled(ctx context.Context, moduleOrderID int64) error {
	return affected(s.orders.UpdateStatusByID(ctx, moduleOrderID, shopModel.StatusCancelled))
}
