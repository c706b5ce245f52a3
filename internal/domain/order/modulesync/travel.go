package modulesync

import (
	"context"
	"time"
	travelModel "urban_life/internal/domain/travel/model"
)

type TravelStatusUpdater interface {
	UpdateStatusByID(ctx context.Context, id int64, status int) (int64, error)
}

type TravelSyncer struct {
	orders TravelStatusUpdater
}

func NewTravelSyncer(orders TravelStatusUpdater) *TravelSyncer {
	return &TravelSyncer{orders: orders}
}

func (s *TravelSyncer) MarkPaid(ctx context.Context, moduleOrderID int64, _ time.Time) error {
	return affected(s.orders.UpdateStatusByID(ctx, moduleOrderID, travelModel.StatusPaid))
}

func (s *TravelSyncer) MarkCancelled(ctx context.Context, moduleOrderID int64) error {
	return affected(s.orders.UpdateStatusByID(ctx, moduleOrderID, travelModel.StatusCancelled))
}
