package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	orderModel "urban_life/internal/domain/order/model"
	"urban_life/internal/domain/payment/strategy"
	"urban_life/internal/pkg/push"

	"go.uber.org/zap"
)

var (
	ErrChannelUnsupported = errors.New("unsupported payment channel")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotPayable    = errors.New("order cannot be paid")
	ErrAmountMismatch     = errors.New("paid amount does not match order amount")
)

// OrderPayer 支付模块对统一订单的依赖
type OrderPayer interface {
	GetOrderByOrderNo(ctx context.Context, orderNo string) (*orderModel.UnifiedOrder, error)
	ProcessPayment(ctx context.Context, orderNo, paymentMethod string) (bool, error)
}

// PrepayResult 客户端拉起支付的参数
type PrepayResult struct {
	OrderNo  string `json:"orderNo"`
	Channel  string `json:"channel"`
	PayParam string `json:"payParam"`
}

type PaymentService interface {
	Prepay(ctx context.Context, userID int64, orderNo, channel string) (*PrepayResult, error)
	HandleNotify(ctx context.Context, channel string, params interface{}) error
	RegisterStrategy(channel string, strategy strategy.PaymentStrategy)
	// Wait 等待后台推送结束
	Wait()
}

type paymentService struct {
	orders     OrderPayer
	pusher     push.PushService // 可为 nil
	log        *zap.Logger
	mu         sync.RWMutex
	strategies map[string]strategy.PaymentStrategy
	wg         sync.WaitGroup
}

func NewPaymentService(orders OrderPayer, pusher push.PushService, log *zap.Logger) PaymentService {
	return &paymentService{
		orders:     orders,
		pusher:     pusher,
		log:        log.Named("payment"),
		strategies: make(map[string]strategy.PaymentStrategy),
	}
}

// RegisterStrategy 注册支付策略
func (s *paymentService) RegisterStrategy(channel string, strategy strategy.PaymentStrategy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strategies[channel] = strategy
}

func (s *paymentService) strategy(channel string) (strategy.PaymentStrategy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.strategies[channel]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChannelUnsupported, channel)
	}
	return st, nil
}

// Prepay 为本人的待支付订单生成渠道支付参数
func (s *paymentService) Prepay(ctx context.Context, userID int64, orderNo, channel string) (*PrepayResult, error) {
	st, err := s.strategy(channel)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.GetOrderByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil || !order.OwnedBy(userID) {
		return nil, ErrOrderNotFound
	}
	if !order.CanPay() {
		return nil, ErrOrderNotPayable
	}

	subject := order.OrderTitle
	if subject == "" {
		subject = order.OrderNo
	}
	payParam, err := st.Pay(ctx, order.OrderNo, order.TotalAmount, subject)
	if err != nil {
		return nil, err
	}
	return &PrepayResult{OrderNo: order.OrderNo, Channel: channel, PayParam: payParam}, nil
}

// HandleNotify 处理渠道回调；返回 nil 表示可以应答成功，渠道不再重试
func (s *paymentService) HandleNotify(ctx context.Context, channel string, params interface{}) error {
	st, err := s.strategy(channel)
	if err != nil {
		return err
	}

	// 1. 验签并解析
	result, err := st.Notify(ctx, params)
	if err != nil {
		return err
	}
	log := s.log.With(zap.String("channel", channel), zap.String("order_no", result.OrderNo))
	if !result.Success {
		log.Info("trade not successful, order left unpaid")
		return nil
	}

	// 2. 金额核对
	order, err := s.orders.GetOrderByOrderNo(ctx, result.OrderNo)
	if err != nil {
		return err
	}
	if order == nil {
		log.Error("notify for unknown order")
		return ErrOrderNotFound
	}
	if !order.TotalAmount.Equal(result.Amount) {
		log.Error("notify amount mismatch",
			zap.String("order_amount", order.TotalAmount.String()),
			zap.String("paid_amount", result.Amount.String()),
		)
		return ErrAmountMismatch
	}

	// 3. 标记支付，渠道重复通知时订单已是已支付状态
	ok, err := s.orders.ProcessPayment(ctx, result.OrderNo, channel)
	if err != nil {
		return err
	}
	if !ok {
		current, err := s.orders.GetOrderByOrderNo(ctx, result.OrderNo)
		if err != nil {
			return err
		}
		if current != nil && current.PaymentStatus == orderModel.PaymentStatusPaid {
			log.Info("duplicate notify acknowledged")
			return nil
		}
		// 订单已取消却收到支付成功，需要人工退款
		log.Error("paid notify for order that cannot be paid")
		return ErrOrderNotPayable
	}

	s.notifyUser(order)
	return nil
}

// notifyUser 异步推送支付成功通知
func (s *paymentService) notifyUser(order *orderModel.UnifiedOrder) {
	if s.pusher == nil {
		return
	}

	title := "支付成功"
	body := fmt.Sprintf("您的订单 %s 已支付成功。", order.OrderNo)
	accountID := fmt.Sprintf("%d", order.UserID)
	ext := map[string]string{"orderNo": order.OrderNo, "orderType": string(order.OrderType)}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.pusher.PushToAccount(accountID, title, body, ext); err != nil {
			s.log.Warn("push paid notice failed", zap.String("order_no", order.OrderNo), zap.Error(err))
		}
	}()
}

func (s *paymentService) Wait() {
	s.wg.Wait()
}
