package modulesync

import (
	"context"
	"time"
	foodModel "urban_life/internal/domain/food/model"
)

type RestaurantStatusUpdater interface {
	UpdateOrderStatus(ctx context.Context, id int64, status int) (int64, error)
}

type FoodSyncer struct {
	orders RestaurantStatusUpdater
}

func NewFoodSyncer(orders RestaurantStatusUpdater) *FoodSyncer {
	return &FoodSyncer{orders: orders}
}

func (s *FoodSyncer) MarkPaid(ctx context.Context, moduleOrderID int64, _ time.Time) error {
	return affected(s.orders.UpdateOrderStatus(ctx, moduleOrderID, foodModel.OrderStatusPaid))
}

func (s *FoodSyncer) MarkCancelled(ctx context.Context, moduleOrderID int64) error {
	return affected(s.orders.UpdateOrderStatus(ctx, moduleOrderID, foodModel.OrderStatusCancelled))
}
