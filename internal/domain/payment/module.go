package payment

import (
	"context"
	"fmt"
	"urban_life/internal/domain/order"
	"urban_life/internal/domain/payment/handler"
	"urban_life/internal/domain/payment/service"
	"urban_life/internal/domain/payment/strategy"
	"urban_life/internal/pkg/middleware"
	"urban_life/internal/pkg/push"
	"urban_life/internal/pkg/registry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentModule 支付模块
type PaymentModule struct{}

func init() {
	registry.Register(&PaymentModule{})
}

func (m *PaymentModule) Name() string {
	return "payment"
}

func (m *PaymentModule) Priority() int {
	// 依赖统一订单模块
	return 20
}

func (m *PaymentModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	svc, err := ctx.Resolve(order.ServiceName)
	if err != nil {
		return err
	}
	orders, ok := svc.(service.OrderPayer)
	if !ok {
		return fmt.Errorf("%s does not implement OrderPayer", order.ServiceName)
	}

	log := ctx.Logger.Named("payment")
	var pusher push.PushService
	if push.Enabled(ctx.Config.Push) {
		p, err := push.NewAliyunPushService(ctx.Config.Push)
		if err != nil {
			log.Error("init push service failed", zap.Error(err))
		} else {
			pusher = p
		}
	}

	pService := service.NewPaymentService(orders, pusher, ctx.Logger)

	// 2. 注册支付策略
	if ctx.Config.Alipay.AppID != "" {
		alipayStrategy, err := strategy.NewAlipayStrategy(ctx.Config.Alipay)
		if err != nil {
			log.Error("init alipay strategy failed", zap.Error(err))
		} else {
			pService.RegisterStrategy(strategy.ChannelAlipay, alipayStrategy)
		}
	}
	if ctx.Config.Wechat.MchID != "" {
		wechatStrategy, err := strategy.NewWechatStrategy(context.Background(), ctx.Config.Wechat)
		if err != nil {
			log.Error("init wechat strategy failed", zap.Error(err))
		} else {
			pService.RegisterStrategy(strategy.ChannelWechat, wechatStrategy)
		}
	}
	ctx.Provide(ServiceName, pService)

	// 3. 路由注册
	setupRoutes(ctx.Router, handler.NewPaymentHandler(pService))
	return nil
}

// ServiceName 支付服务在模块上下文中的名称
const ServiceName = "payment.service"

func setupRoutes(r *gin.Engine, h *handler.PaymentHandler) {
	g := r.Group("/payment")

	// 支付回调 (无需鉴权，但需验签)
	g.POST("/notify/alipay", h.AlipayNotify)
	g.POST("/notify/wechat", h.WechatNotify)

	auth := g.Group("", middleware.AuthMiddleware())
	{
		auth.POST("/orders/:orderNo/prepay", h.Prepay)
	}
}
