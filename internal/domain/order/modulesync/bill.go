package modulesync

import (
	"context"
	"time"
	billModel "urban_life/internal/domain/bill/model"
)

type BillStatusUpdater interface {
	UpdatePaymentBillStatus(ctx context.Context, id int64, status int, paidAt time.Time) (int64, error)
}

// BillSyncer 生活缴费账单只有待缴和已缴两种状态
type BillSyncer struct {
	bills BillStatusUpdater
}

func NewBillSyncer(bills BillStatusUpdater) *BillSyncer {
	return &BillSyncer{bills: bills}
}

func (s *BillSyncer) MarkPaid(ctx context.Context, moduleOrderID int64, paidAt time.Time) error {
	return affected(s.bills.UpdatePaymentBillStatus(ctx, moduleOrderID, billModel.BillStatusPaid, paidAt))
}

func (s *BillSyncer) MarkCancelled(context.Context, int64) error {
	return ErrUnsupported
}
