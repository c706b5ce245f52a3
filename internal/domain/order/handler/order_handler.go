package handler

import (
	"context"
	"errors"
	"net/http"
	"urban_life/internal/domain/order/model"
	"urban_life/internal/domain/order/service"
	"urban_life/internal/pkg/middleware"
	"urban_life/pkg/response"
	"urban_life/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// OrderHandler 统一订单接口
type OrderHandler struct {
	service        service.UnifiedOrderService
	allowDirectPay bool
}

func NewOrderHandler(s service.UnifiedOrderService, allowDirectPay bool) *OrderHandler {
	return &OrderHandler{service: s, allowDirectPay: allowDirectPay}
}

type CreateOrderInput struct {
	OrderType     string          `json:"orderType" binding:"required"`
	ModuleOrderID *int64          `json:"moduleOrderId" binding:"omitempty,gt=0"`
	Title         string          `json:"title" binding:"max=255"`
	Description   string          `json:"description"`
	TotalAmount   decimal.Decimal `json:"totalAmount" swaggertype:"string" example:"199.00"`
}

type ListOrdersQuery struct {
	utils.Pagination
	OrderType     string `form:"orderType"`
	PaymentStatus *int   `form:"paymentStatus"`
}

type PayInput struct {
	PaymentMethod string `json:"paymentMethod" binding:"required,max=32"`
}

type UpdateAmountInput struct {
	TotalAmount decimal.Decimal `json:"totalAmount" swaggertype:"string" example:"88.50"`
}

type UpdateModuleInput struct {
	ModuleOrderID int64 `json:"moduleOrderId" binding:"required,gt=0"`
}

// OrderActions 订单可执行操作
type OrderActions struct {
	CanPay    bool `json:"canPay"`
	CanCancel bool `json:"canCancel"`
	CanDelete bool `json:"canDelete"`
}

// CheckoutResult 结算结果
type CheckoutResult struct {
	OrderNo string `json:"orderNo"`
	Reused  bool   `json:"reused"`
}

func (in CreateOrderInput) toService(userID int64) (service.CreateOrderInput, error) {
	orderType, ok := model.ParseOrderType(in.OrderType)
	if !ok {
		return service.CreateOrderInput{}, service.ErrInvalidOrderType
	}
	return service.CreateOrderInput{
		UserID:        userID,
		OrderType:     orderType,
		ModuleOrderID: in.ModuleOrderID,
		Title:         in.Title,
		Description:   in.Description,
		TotalAmount:   in.TotalAmount,
	}, nil
}

// CreateOrder 创建统一订单
// @Summary 创建统一订单
// @Tags Order
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body CreateOrderInput true "Order"
// @Success 200 {object} response.Response{data=string} "Order No"
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.ErrInvalidParam, err.Error())
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	in, err := input.toService(userID)
	if err != nil {
		h.writeCreateError(c, err)
		return
	}

	orderNo, err := h.service.CreateOrder(c.Request.Context(), in)
	if err != nil {
		h.writeCreateError(c, err)
		return
	}
	response.Success(c, gin.H{"orderNo": orderNo})
}

// Checkout 复用待支付订单或新建
// @Summary 结算（复用待支付订单）
// @Tags Order
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body CreateOrderInput true "Order"
// @Success 200 {object} response.Response{data=CheckoutResult}
// @Router /orders/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.ErrInvalidParam, err.Error())
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	in, err := input.toService(userID)
	if err != nil {
		h.writeCreateError(c, err)
		return
	}

	orderNo, reused, err := h.service.GetOrCreateUnpaidOrder(c.Request.Context(), in)
	if err != nil {
		h.writeCreateError(c, err)
		return
	}
	response.Success(c, CheckoutResult{OrderNo: orderNo, Reused: reused})
}

// ListOrders 当前用户订单列表
// @Summary 订单列表
// @Tags Order
// @Security BearerAuth
// @Produce json
// @Param orderType query string false "FOOD/HOTEL/SHOPPING/TRAVEL/PAYMENT"
// @Param paymentStatus query int false "0-4"
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} response.Response{data=utils.PageResult}
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var query ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, response.ErrInvalidParam, err.Error())
		return
	}

	var filter model.OrderFilter
	if query.OrderType != "" {
		orderType, ok := model.ParseOrderType(query.OrderType)
		if !ok {
			response.BadRequest(c, response.ErrOrderTypeInvalid, "unknown order type")
			return
		}
		filter.OrderType = &orderType
	}
	if query.PaymentStatus != nil {
		status := model.PaymentStatus(*query.PaymentStatus)
		if !status.Valid() {
			response.BadRequest(c, response.ErrInvalidParam, "unknown payment status")
			return
		}
		filter.PaymentStatus = &status
	}
	filter.Offset, filter.Limit = query.GetPageOffset()

	userID, _ := middleware.CurrentUserID(c)
	orders, err := h.service.GetOrdersByUserID(c.Request.Context(), userID, filter)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, utils.NewPageResult(orders, len(orders), query.Pagination))
}

// GetStats 当前用户订单统计
// @Summary 订单统计
// @Tags Order
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=model.OrderStats}
// @Router /orders/stats [get]
func (h *OrderHandler) GetStats(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	stats, err := h.service.GetOrderStats(c.Request.Context(), userID)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, stats)
}

// GetOrder 订单详情，只能查看自己的订单
// @Summary 订单详情
// @Tags Order
// @Security BearerAuth
// @Produce json
// @Param orderNo path string true "Order No"
// @Success 200 {object} response.Response{data=model.UnifiedOrder}
// @Router /orders/{orderNo} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	order, err := h.service.GetOrderByOrderNo(c.Request.Context(), c.Param("orderNo"))
	if err != nil {
		response.Internal(c, err)
		return
	}
	if order == nil || !order.OwnedBy(userID) {
		response.NotFound(c, response.ErrOrderNotFound, "order not found")
		return
	}
	response.Success(c, order)
}

// GetActions 订单可执行操作预检查
// @Summary 订单可执行操作
// @Tags Order
// @Security BearerAuth
// @Produce json
// @Param orderNo path string true "Order No"
// @Success 200 {object} response.Response{data=OrderActions}
// @Router /orders/{orderNo}/actions [get]
func (h *OrderHandler) GetActions(c *gin.Context) {
	ctx := c.Request.Context()
	orderNo := c.Param("orderNo")
	userID, _ := middleware.CurrentUserID(c)

	order, err := h.service.GetOrderByOrderNo(ctx, orderNo)
	if err != nil {
		response.Internal(c, err)
		return
	}
	if order == nil || !order.OwnedBy(userID) {
		response.NotFound(c, response.ErrOrderNotFound, "order not found")
		return
	}

	var actions OrderActions
	if actions.CanPay, err = h.service.CanPay(ctx, orderNo); err != nil {
		response.Internal(c, err)
		return
	}
	if actions.CanCancel, err = h.service.CanCancel(ctx, orderNo, userID); err != nil {
		response.Internal(c, err)
		return
	}
	if actions.CanDelete, err = h.service.CanDelete(ctx, orderNo, userID); err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, actions)
}

// PayOrder 不经过支付渠道直接标记支付，仅在联调环境开放
// @Summary 直接支付（联调）
// @Tags Order
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param orderNo path string true "Order No"
// @Param input body PayInput true "Payment method"
// @Success 200 {object} response.Response
// @Router /orders/{orderNo}/pay [post]
func (h *OrderHandler) PayOrder(c *gin.Context) {
	if !h.allowDirectPay {
		response.Error(c, http.StatusForbidden, response.ErrNoPermission, "direct payment disabled")
		return
	}

	var input PayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.ErrInvalidParam, err.Error())
		return
	}

	ctx := c.Request.Context()
	orderNo := c.Param("orderNo")
	userID, _ := middleware.CurrentUserID(c)

	order, err := h.service.GetOrderByOrderNo(ctx, orderNo)
	if err != nil {
		response.Internal(c, err)
		return
	}
	if order == nil || !order.OwnedBy(userID) {
		response.NotFound(c, response.ErrOrderNotFound, "order not found")
		return
	}

	ok, err := h.service.ProcessPayment(ctx, orderNo, input.PaymentMethod)
	if err != nil {
		response.Internal(c, err)
		return
	}
	if !ok {
		response.Rejected(c, response.ErrOrderStateInvalid, "order cannot be paid")
		return
	}
	response.Success(c, nil)
}

// CancelOrder 取消订单
// @Summary 取消订单
// @Tags Order
// @Security BearerAuth
// @Produce json
// @Param orderNo path string true "Order No"
// @Success 200 {object} response.Response
// @Router /orders/{orderNo}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	h.ownerMutation(c, h.service.CancelOrder, "order cannot be cancelled")
}

// DeleteOrder 删除订单
// @Summary 删除订单
// @Tags Order
// @Security BearerAuth
// @Produce json
// @Param orderNo path string true "Order No"
// @Success 200 {object} response.Response
// @Router /orders/{orderNo} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	h.ownerMutation(c, h.service.DeleteOrder, "order cannot be deleted")
}

// UpdateAmount 调整待支付订单金额（管理员）
// @Summary 调整订单金额
// @Tags Order
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param orderNo path string true "Order No"
// @Param input body UpdateAmountInput true "Amount"
// @Success 200 {object} response.Response
// @Router /orders/{orderNo}/amount [put]
func (h *OrderHandler) UpdateAmount(c *gin.Context) {
	var input UpdateAmountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.ErrInvalidParam, err.Error())
		return
	}

	ok, err := h.service.UpdateTotalAmount(c.Request.Context(), c.Param("orderNo"), input.TotalAmount)
	if errors.Is(err, service.ErrInvalidAmount) {
		response.BadRequest(c, response.ErrOrderAmountInvalid, err.Error())
		return
	}
	h.writeUpdate(c, ok, err)
}

// UpdateModule 关联业务模块订单（管理员）
// @Summary 关联业务订单
// @Tags Order
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param orderNo path string true "Order No"
// @Param input body UpdateModuleInput true "Module order"
// @Success 200 {object} response.Response
// @Router /orders/{orderNo}/module [put]
func (h *OrderHandler) UpdateModule(c *gin.Context) {
	var input UpdateModuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.ErrInvalidParam, err.Error())
		return
	}

	ok, err := h.service.UpdateModuleOrderID(c.Request.Context(), c.Param("orderNo"), input.ModuleOrderID)
	h.writeUpdate(c, ok, err)
}

type ownerMutationFunc func(ctx context.Context, orderNo string, userID int64) (bool, error)

// ownerMutation 执行需要本人订单的变更，失败时区分订单不存在与状态不允许
func (h *OrderHandler) ownerMutation(c *gin.Context, mutate ownerMutationFunc, rejected string) {
	ctx := c.Request.Context()
	orderNo := c.Param("orderNo")
	userID, _ := middleware.CurrentUserID(c)

	ok, err := mutate(ctx, orderNo, userID)
	if err != nil {
		response.Internal(c, err)
		return
	}
	if ok {
		response.Success(c, nil)
		return
	}

	order, err := h.service.GetOrderByOrderNo(ctx, orderNo)
	if err != nil {
		response.Internal(c, err)
		return
	}
	if order == nil || !order.OwnedBy(userID) {
		response.NotFound(c, response.ErrOrderNotFound, "order not found")
		return
	}
	response.Rejected(c, response.ErrOrderStateInvalid, rejected)
}

func (h *OrderHandler) writeUpdate(c *gin.Context, ok bool, err error) {
	if err != nil {
		response.Internal(c, err)
		return
	}
	if !ok {
		response.NotFound(c, response.ErrOrderNotFound, "order not found")
		return
	}
	response.Success(c, nil)
}

func (h *OrderHandler) writeCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidOrderType):
		response.BadRequest(c, response.ErrOrderTypeInvalid, err.Error())
	case errors.Is(err, service.ErrInvalidAmount):
		response.BadRequest(c, response.ErrOrderAmountInvalid, err.Error())
	case errors.Is(err, service.ErrInvalidUserID):
		response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, err.Error())
	default:
		response.InternalCode(c, err, response.ErrOrderCreateFailed, "create order failed")
	}
}

