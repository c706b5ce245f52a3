package repository

import (
	"context"
	"errors"
	"time"
	"urban_life/internal/domain/order/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrDuplicateOrderNo 订单号唯一索引冲突
var ErrDuplicateOrderNo = errors.New("duplicate order number")

// UnifiedOrderRepository 统一订单数据访问
//
// 所有状态变更均为条件更新（CAS），返回 false 表示没有行满足条件。
type UnifiedOrderRepository interface {
	Create(ctx context.Context, order *model.UnifiedOrder) (int64, error)
	GetByOrderNo(ctx context.Context, orderNo string) (*model.UnifiedOrder, error)
	ListByUserID(ctx context.Context, userID int64, filter model.OrderFilter) ([]model.UnifiedOrder, error)
	CountByStatus(ctx context.Context, userID int64) (map[model.PaymentStatus]int64, error)
	FindUnpaidByModuleOrderID(ctx context.Context, moduleOrderID int64, orderType model.OrderType) (*model.UnifiedOrder, error)
	FindUnpaidByUserIDAndType(ctx context.Context, userID int64, orderType model.OrderType) (*model.UnifiedOrder, error)

	MarkPaid(ctx context.Context, orderNo, paymentMethod string, paidAt time.Time) (bool, error)
	MarkCancelled(ctx context.Context, orderNo string, userID int64) (bool, error)
	Delete(ctx context.Context, orderNo string, userID int64) (bool, error)
	UpdateTotalAmount(ctx context.Context, orderNo string, amount decimal.Decimal) (bool, error)
	UpdateModuleOrderID(ctx context.Context, orderNo string, moduleOrderID int64) (bool, error)

	RecordSyncFailure(ctx context.Context, failure *model.SyncFailure) error
}

type unifiedOrderRepository struct {
	db *gorm.DB
}

func NewUnifiedOrderRepository(db *gorm.DB) UnifiedOrderRepository {
	return &unifiedOrderRepository{db: db}
}

func (r *unifiedOrderRepository) Create(ctx context.Context, order *model.UnifiedOrder) (int64, error) {
	result := r.db.WithContext(ctx).Create(order)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return 0, ErrDuplicateOrderNo
	}
	return result.RowsAffected, result.Error
}

func (r *unifiedOrderRepository) GetByOrderNo(ctx context.Context, orderNo string) (*model.UnifiedOrder, error) {
	var order model.UnifiedOrder
	if err := r.db.WithContext(ctx).Where("order_no = ?", orderNo).Take(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *unifiedOrderRepository) ListByUserID(ctx context.Context, userID int64, filter model.OrderFilter) ([]model.UnifiedOrder, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.OrderType != nil {
		query = query.Where("order_type = ?", string(*filter.OrderType))
	}
	if filter.PaymentStatus != nil {
		query = query.Where("payment_status = ?", int(*filter.PaymentStatus))
	}
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}

	orders := make([]model.UnifiedOrder, 0)
	if err := query.Order("create_time DESC").Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *unifiedOrderRepository) CountByStatus(ctx context.Context, userID int64) (map[model.PaymentStatus]int64, error) {
	var rows []struct {
		PaymentStatus int
		Cnt           int64
	}
	err := r.db.WithContext(ctx).Model(&model.UnifiedOrder{}).
		Select("payment_status, COUNT(*) AS cnt").
		Where("user_id = ?", userID).
		Group("payment_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[model.PaymentStatus]int64, len(rows))
	for _, row := range rows {
		counts[model.PaymentStatus(row.PaymentStatus)] = row.Cnt
	}
	return counts, nil
}

func (r *unifiedOrderRepository) FindUnpaidByModuleOrderID(ctx context.Context, moduleOrderID int64, orderType model.OrderType) (*model.UnifiedOrder, error) {
	return r.findUnpaid(ctx, "module_order_id = ? AND order_type = ?", moduleOrderID, string(orderType))
}

func (r *unifiedOrderRepository) FindUnpaidByUserIDAndType(ctx context.Context, userID int64, orderType model.OrderType) (*model.UnifiedOrder, error) {
	return r.findUnpaid(ctx, "user_id = ? AND order_type = ?", userID, string(orderType))
}

// findUnpaid 返回最近创建的一条待支付订单
func (r *unifiedOrderRepository) findUnpaid(ctx context.Context, cond string, args ...interface{}) (*model.UnifiedOrder, error) {
	var order model.UnifiedOrder
	err := r.db.WithContext(ctx).
		Where(cond, args...).
		Where("payment_status = ?", int(model.PaymentStatusUnpaid)).
		Order("create_time DESC").
		Take(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// MarkPaid 仅当订单仍为待支付时更新，事务提交后才返回
func (r *unifiedOrderRepository) MarkPaid(ctx context.Context, orderNo, paymentMethod string, paidAt time.Time) (bool, error) {
	var updated bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.UnifiedOrder{}).
			Where("order_no = ? AND payment_status = ?", orderNo, int(model.PaymentStatusUnpaid)).
			Updates(map[string]interface{}{
				"payment_status": int(model.PaymentStatusPaid),
				"payment_method": paymentMethod,
				"payment_time":   paidAt,
			})
		if result.Error != nil {
			return result.Error
		}
		updated = result.RowsAffected > 0
		return nil
	})
	return updated, err
}

func (r *unifiedOrderRepository) MarkCancelled(ctx context.Context, orderNo string, userID int64) (bool, error) {
	var updated bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.UnifiedOrder{}).
			Where("order_no = ? AND user_id = ? AND payment_status = ?", orderNo, userID, int(model.PaymentStatusUnpaid)).
			Update("payment_status", int(model.PaymentStatusCancelled))
		if result.Error != nil {
			return result.Error
		}
		updated = result.RowsAffected > 0
		return nil
	})
	return updated, err
}

// Delete 物理删除统一订单，业务模块订单保留
func (r *unifiedOrderRepository) Delete(ctx context.Context, orderNo string, userID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("order_no = ? AND user_id = ? AND payment_status IN ?", orderNo, userID, model.DeletableStatuses()).
		Delete(&model.UnifiedOrder{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *unifiedOrderRepository) UpdateTotalAmount(ctx context.Context, orderNo string, amount decimal.Decimal) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.UnifiedOrder{}).
		Where("order_no = ?", orderNo).
		Update("total_amount", amount)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *unifiedOrderRepository) UpdateModuleOrderID(ctx context.Context, orderNo string, moduleOrderID int64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.UnifiedOrder{}).
		Where("order_no = ?", orderNo).
		Update("module_order_id", moduleOrderID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *unifiedOrderRepository) RecordSyncFailure(ctx context.Context, failure *model.SyncFailure) error {
	return r.db.WithContext(ctx).Create(failure).Error
}
