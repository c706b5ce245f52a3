package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"urban_life/internal/domain/order/model"
	"urban_life/internal/domain/order/modulesync"

	"go.uber.org/zap"
)

// syncModule 在统一订单事务提交后同步业务模块订单状态
//
// 所有错误和 panic 都在这里消化：记录日志、计数并落库待对账。
func (s *unifiedOrderService) syncModule(ctx context.Context, order *model.UnifiedOrder, action model.SyncAction, paidAt time.Time) {
	if order.ModuleOrderID == nil {
		return
	}
	// 请求结束不应中断已提交订单的同步
	ctx = context.WithoutCancel(ctx)
	moduleOrderID := *order.ModuleOrderID
	log := s.log.With(
		zap.String("order_no", order.OrderNo),
		zap.String("order_type", string(order.OrderType)),
		zap.Int64("module_order_id", moduleOrderID),
		zap.String("action", string(action)),
	)

	err := s.dispatch(ctx, order.OrderType, action, moduleOrderID, paidAt)
	if err == nil {
		return
	}
	if errors.Is(err, modulesync.ErrUnsupported) {
		log.Info("module does not track this transition, skipped")
		return
	}

	log.Error("module order sync failed", zap.Error(err))
	s.metrics.ModuleSyncFailed(string(order.OrderType), string(action))

	failure := &model.SyncFailure{
		OrderNo:       order.OrderNo,
		OrderType:     order.OrderType,
		ModuleOrderID: moduleOrderID,
		Action:        action,
		ErrorMessage:  err.Error(),
	}
	if recErr := s.repo.RecordSyncFailure(ctx, failure); recErr != nil {
		log.Error("record sync failure", zap.Error(recErr))
	}
}

func (s *unifiedOrderService) dispatch(ctx context.Context, orderType model.OrderType, action model.SyncAction, moduleOrderID int64, paidAt time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("module sync panic: %v", r)
		}
	}()

	syncer, err := s.syncers.Get(orderType)
	if err != nil {
		return err
	}
	if action == model.SyncActionPaid {
		return syncer.MarkPaid(ctx, moduleOrderID, paidAt)
	}
	return syncer.MarkCancelled(ctx, moduleOrderID)
}
