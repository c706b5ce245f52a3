package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"urban_life/internal/domain/order/model"
	"urban_life/internal/domain/order/modulesync"
	"urban_life/internal/domain/order/repository"
	"urban_life/pkg/metrics"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidUserID     = errors.New("user id is required")
	ErrInvalidOrderType  = errors.New("unknown order type")
	ErrInvalidAmount     = errors.New("total amount must not be negative")
	ErrCreateOrderFailed = errors.New("create order failed")
)

// UnifiedOrderService 统一订单协调服务
//
// 业务结果（订单不存在、状态不允许、非本人订单）以 false / nil 返回，
// 只有数据库故障才会返回 error。
type UnifiedOrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (string, error)
	GetOrCreateUnpaidOrder(ctx context.Context, in CreateOrderInput) (orderNo string, reused bool, err error)
	GetOrderByOrderNo(ctx context.Context, orderNo string) (*model.UnifiedOrder, error)
	GetOrdersByUserID(ctx context.Context, userID int64, filter model.OrderFilter) ([]model.UnifiedOrder, error)
	GetOrderStats(ctx context.Context, userID int64) (*model.OrderStats, error)

	ProcessPayment(ctx context.Context, orderNo, paymentMethod string) (bool, error)
	CancelOrder(ctx context.Context, orderNo string, userID int64) (bool, error)
	DeleteOrder(ctx context.Context, orderNo string, userID int64) (bool, error)

	CanPay(ctx context.Context, orderNo string) (bool, error)
	CanCancel(ctx context.Context, orderNo string, userID int64) (bool, error)
	CanDelete(ctx context.Context, orderNo string, userID int64) (bool, error)

	GenerateOrderNo(orderType model.OrderType) string
	FindUnpaidOrderByModuleOrderID(ctx context.Context, moduleOrderID int64, orderType model.OrderType) (*model.UnifiedOrder, error)
	FindUnpaidOrderByUserIDAndType(ctx context.Context, userID int64, orderType model.OrderType) (*model.UnifiedOrder, error)
	UpdateTotalAmount(ctx context.Context, orderNo string, amount decimal.Decimal) (bool, error)
	UpdateModuleOrderID(ctx context.Context, orderNo string, moduleOrderID int64) (bool, error)
}

// CreateOrderInput 创建统一订单参数
type CreateOrderInput struct {
	UserID        int64
	OrderType     model.OrderType
	ModuleOrderID *int64
	Title         string
	Description   string
	TotalAmount   decimal.Decimal
}

func (in CreateOrderInput) validate() error {
	if in.UserID <= 0 {
		return ErrInvalidUserID
	}
	if !in.OrderType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidOrderType, in.OrderType)
	}
	if in.TotalAmount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// Options 服务参数
type Options struct {
	// OrderNoAttempts 订单号冲突时的最大尝试次数
	OrderNoAttempts int
}

type unifiedOrderService struct {
	repo    repository.UnifiedOrderRepository
	syncers *modulesync.Registry
	metrics *metrics.MetricsCollector
	log     *zap.Logger
	opts    Options

	now        func() time.Time
	genOrderNo func(model.OrderType, time.Time) string
}

// NewUnifiedOrderService 创建统一订单服务
func NewUnifiedOrderService(
	repo repository.UnifiedOrderRepository,
	syncers *modulesync.Registry,
	m *metrics.MetricsCollector,
	log *zap.Logger,
	opts Options,
) UnifiedOrderService {
	if opts.OrderNoAttempts < 1 {
		opts.OrderNoAttempts = 1
	}
	return &unifiedOrderService{
		repo:       repo,
		syncers:    syncers,
		metrics:    m,
		log:        log.Named("unified_order"),
		opts:       opts,
		now:        time.Now,
		genOrderNo: GenerateOrderNo,
	}
}

func (s *unifiedOrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}

	for attempt := 1; ; attempt++ {
		order := &model.UnifiedOrder{
			OrderNo:          s.GenerateOrderNo(in.OrderType),
			UserID:           in.UserID,
			OrderType:        in.OrderType,
			ModuleOrderID:    in.ModuleOrderID,
			OrderTitle:       in.Title,
			OrderDescription: in.Description,
			TotalAmount:      in.TotalAmount,
			PaymentStatus:    model.PaymentStatusUnpaid,
		}

		rows, err := s.repo.Create(ctx, order)
		if errors.Is(err, repository.ErrDuplicateOrderNo) && attempt < s.opts.OrderNoAttempts {
			s.log.Warn("order number collision, regenerating",
				zap.String("order_no", order.OrderNo),
				zap.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return "", err
		}
		if rows == 0 {
			return "", ErrCreateOrderFailed
		}

		s.metrics.OrderCreated(string(in.OrderType))
		s.log.Info("unified order created",
			zap.String("order_no", order.OrderNo),
			zap.Int64("user_id", in.UserID),
			zap.String("order_type", string(in.OrderType)),
		)
		return order.OrderNo, nil
	}
}

// GetOrCreateUnpaidOrder 复用同一业务订单（或同一用户同类型）的待支付统一订单，没有则新建
//
// 复用时若金额变化则同步更新金额。
func (s *unifiedOrderService) GetOrCreateUnpaidOrder(ctx context.Context, in CreateOrderInput) (string, bool, error) {
	if err := in.validate(); err != nil {
		return "", false, err
	}

	var (
		existing *model.UnifiedOrder
		err      error
	)
	if in.ModuleOrderID != nil {
		existing, err = s.repo.FindUnpaidByModuleOrderID(ctx, *in.ModuleOrderID, in.OrderType)
	} else {
		existing, err = s.repo.FindUnpaidByUserIDAndType(ctx, in.UserID, in.OrderType)
	}
	if err != nil {
		return "", false, err
	}

	if existing == nil || !existing.OwnedBy(in.UserID) {
		orderNo, err := s.CreateOrder(ctx, in)
		return orderNo, false, err
	}

	if !existing.TotalAmount.Equal(in.TotalAmount) {
		if _, err := s.repo.UpdateTotalAmount(ctx, existing.OrderNo, in.TotalAmount); err != nil {
			return "", false, err
		}
	}
	return existing.OrderNo, true, nil
}

func (s *unifiedOrderService) GetOrderByOrderNo(ctx context.Context, orderNo string) (*model.UnifiedOrder, error) {
	return s.repo.GetByOrderNo(ctx, orderNo)
}

func (s *unifiedOrderService) GetOrdersByUserID(ctx context.Context, userID int64, filter model.OrderFilter) ([]model.UnifiedOrder, error) {
	return s.repo.ListByUserID(ctx, userID, filter)
}

func (s *unifiedOrderService) GetOrderStats(ctx context.Context, userID int64) (*model.OrderStats, error) {
	counts, err := s.repo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	return model.NewOrderStats(counts), nil
}

// ProcessPayment 标记订单已支付并同步业务模块
//
// 统一订单更新失败则整体失败；业务模块同步失败只记录，不影响返回值。
func (s *unifiedOrderService) ProcessPayment(ctx context.Context, orderNo, paymentMethod string) (bool, error) {
	order, err := s.repo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return false, err
	}
	if order == nil || !order.CanPay() {
		return false, nil
	}

	paidAt := s.now()
	ok, err := s.repo.MarkPaid(ctx, orderNo, paymentMethod, paidAt)
	if err != nil || !ok {
		return false, err
	}

	s.metrics.OrderPaid(string(order.OrderType), paymentMethod)
	s.log.Info("unified order paid",
		zap.String("order_no", orderNo),
		zap.String("payment_method", paymentMethod),
	)
	s.syncModule(ctx, order, model.SyncActionPaid, paidAt)
	return true, nil
}

func (s *unifiedOrderService) CancelOrder(ctx context.Context, orderNo string, userID int64) (bool, error) {
	order, err := s.repo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return false, err
	}
	if order == nil || !order.OwnedBy(userID) || !order.CanCancel() {
		return false, nil
	}

	ok, err := s.repo.MarkCancelled(ctx, orderNo, userID)
	if err != nil || !ok {
		return false, err
	}

	s.metrics.OrderCancelled(string(order.OrderType))
	s.log.Info("unified order cancelled", zap.String("order_no", orderNo), zap.Int64("user_id", userID))
	s.syncModule(ctx, order, model.SyncActionCancelled, time.Time{})
	return true, nil
}

// DeleteOrder 只删除统一订单，业务模块订单保留
func (s *unifiedOrderService) DeleteOrder(ctx context.Context, orderNo string, userID int64) (bool, error) {
	order, err := s.repo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return false, err
	}
	if order == nil || !order.OwnedBy(userID) || !order.CanDelete() {
		return false, nil
	}

	ok, err := s.repo.Delete(ctx, orderNo, userID)
	if err != nil || !ok {
		return false, err
	}

	s.metrics.OrderDeleted(string(order.OrderType))
	s.log.Info("unified order deleted", zap.String("order_no", orderNo), zap.Int64("user_id", userID))
	return true, nil
}

func (s *unifiedOrderService) CanPay(ctx context.Context, orderNo string) (bool, error) {
	order, err := s.repo.GetByOrderNo(ctx, orderNo)
	if err != nil || order == nil {
		return false, err
	}
	return order.CanPay(), nil
}

func (s *unifiedOrderService) CanCancel(ctx context.Context, orderNo string, userID int64) (bool, error) {
	order, err := s.repo.GetByOrderNo(ctx, orderNo)
	if err != nil || order == nil {
		return false, err
	}
	return order.OwnedBy(userID) && order.CanCancel(), nil
}

func (s *unifiedOrderService) CanDelete(ctx context.Context, orderNo string, userID int64) (bool, error) {
	order, err := s.repo.GetByOrderNo(ctx, orderNo)
	if err != nil || order == nil {
		return false, err
	}
	return order.OwnedBy(userID) && order.CanDelete(), nil
}

func (s *unifiedOrderService) GenerateOrderNo(orderType model.OrderType) string {
	return s.genOrderNo(orderType, s.now())
}

func (s *unifiedOrderService) FindUnpaidOrderByModuleOrderID(ctx context.Context, moduleOrderID int64, orderType model.OrderType) (*model.UnifiedOrder, error) {
	return s.repo.FindUnpaidByModuleOrderID(ctx, moduleOrderID, orderType)
}

func (s *unifiedOrderService) FindUnpaidOrderByUserIDAndType(ctx context.Context, userID int64, orderType model.OrderType) (*model.UnifiedOrder, error) {
	return s.repo.FindUnpaidByUserIDAndType(ctx, userID, orderType)
}

func (s *unifiedOrderService) UpdateTotalAmount(ctx context.Context, orderNo string, amount decimal.Decimal) (bool, error) {
	if amount.IsNegative() {
		return false, ErrInvalidAmount
	}
	return s.repo.UpdateTotalAmount(ctx, orderNo, amount)
}

func (s *unifiedOrderService) UpdateModuleOrderID(ctx context.Context, orderNo string, moduleOrderID int64) (bool, error) {
	return s.repo.UpdateModuleOrderID(ctx, orderNo, moduleOrderID)
}
