package order

import (
	billRepo "urban_life/internal/domain/bill/repository"
	foodRepo "urban_life/internal/domain/food/repository"
	hotelRepo "urban_life/internal/domain/hotel/repository"
	"urban_life/internal/domain/order/handler"
	"urban_life/internal/domain/order/model"
	"urban_life/internal/domain/order/modulesync"
	"urban_life/internal/domain/order/repository"
	"urban_life/internal/domain/order/service"
	shopRepo "urban_life/internal/domain/shop/repository"
	travelRepo "urban_life/internal/domain/travel/repository"
	"urban_life/internal/pkg/middleware"
	"urban_life/internal/pkg/registry"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// ServiceName 统一订单服务在模块上下文中的名称
const ServiceName = "order.unified_service"

// OrderModule 统一订单模块
type OrderModule struct{}

func init() {
	registry.Register(&OrderModule{})
}

func (m *OrderModule) Name() string {
	return "order"
}

func (m *OrderModule) Priority() int {
	// 支付模块依赖统一订单服务
	return 10
}

func (m *OrderModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	orderRepo := repository.NewUnifiedOrderRepository(ctx.DB)
	orderService := service.NewUnifiedOrderService(
		orderRepo,
		NewSyncRegistry(ctx.SQLX),
		ctx.Metrics,
		ctx.Logger,
		service.Options{OrderNoAttempts: ctx.Config.Order.OrderNoAttempts},
	)
	orderHandler := handler.NewOrderHandler(orderService, ctx.Config.Order.AllowDirectPay)
	ctx.Provide(ServiceName, orderService)

	// 2. 路由注册
	setupRoutes(ctx.Router, orderHandler)
	return nil
}

// NewSyncRegistry 为每种订单类型注册业务模块同步器
func NewSyncRegistry(db *sqlx.DB) *modulesync.Registry {
	return modulesync.NewRegistry().
		Register(model.OrderTypeHotel, modulesync.NewHotelSyncer(hotelRepo.NewHotelOrderRepository(db))).
		Register(model.OrderTypeShopping, modulesync.NewShopSyncer(shopRepo.NewShopOrderRepository(db))).
		Register(model.OrderTypeTravel, modulesync.NewTravelSyncer(travelRepo.NewTravelOrderRepository(db))).
		Register(model.OrderTypePayment, modulesync.NewBillSyncer(billRepo.NewPaymentBillRepository(db))).
		Register(model.OrderTypeFood, modulesync.NewFoodSyncer(foodRepo.NewRestaurantOrderRepository(db)))
}

func setupRoutes(r *gin.Engine, h *handler.OrderHandler) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListOrders)
		orders.POST("/checkout", h.Checkout)
		orders.GET("/stats", h.GetStats)
		orders.GET("/:orderNo", h.GetOrder)
		orders.GET("/:orderNo/actions", h.GetActions)
		orders.POST("/:orderNo/pay", h.PayOrder)
		orders.POST("/:orderNo/cancel", h.CancelOrder)
		orders.DELETE("/:orderNo", h.DeleteOrder)
	}

	// 结算流程中由后台调整金额与关联业务订单
	admin := orders.Group("", middleware.AdminMiddleware())
	{
		admin.PUT("/:orderNo/amount", h.UpdateAmount)
		admin.PUT("/:orderNo/module", h.UpdateModule)
	}
}
