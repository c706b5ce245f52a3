package handler

import (
	"errors"
	"net/http"
	"urban_life/internal/domain/payment/service"
	"urban_life/internal/domain/payment/strategy"
	"urban_life/internal/pkg/middleware"
	"urban_life/pkg/response"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(s service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

type PrepayInput struct {
	Channel string `json:"channel" binding:"required,oneof=alipay wechat"`
}

// Prepay 为统一订单发起渠道支付
// @Summary 发起支付
// @Tags Payment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param orderNo path string true "统一订单号"
// @Param input body PrepayInput true "支付渠道"
// @Success 200 {object} response.Response{data=service.PrepayResult}
// @Router /payment/orders/{orderNo}/prepay [post]
func (h *PaymentHandler) Prepay(c *gin.Context) {
	var input PrepayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.ErrInvalidParam, err.Error())
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, "unauthorized")
		return
	}

	result, err := h.service.Prepay(c.Request.Context(), userID, c.Param("orderNo"), input.Channel)
	switch {
	case err == nil:
		response.Success(c, result)
	case errors.Is(err, service.ErrChannelUnsupported):
		response.Rejected(c, response.ErrPayChannelUnsupported, err.Error())
	case errors.Is(err, service.ErrOrderNotFound):
		response.NotFound(c, response.ErrOrderNotFound, "order not found")
	case errors.Is(err, service.ErrOrderNotPayable):
		response.Rejected(c, response.ErrOrderStateInvalid, err.Error())
	default:
		response.InternalCode(c, err, response.ErrPayPrepayFailed, "prepay failed")
	}
}

// AlipayNotify 支付宝回调
// @Summary 支付宝回调
// @Tags Payment
// @Router /payment/notify/alipay [post]
func (h *PaymentHandler) AlipayNotify(c *gin.Context) {
	// 支付宝回调是 POST Form 格式
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusOK, "fail")
		return
	}
	if err := h.service.HandleNotify(c.Request.Context(), strategy.ChannelAlipay, c.Request.Form); err != nil {
		c.String(http.StatusOK, "fail") // 支付宝会重试
		return
	}
	c.String(http.StatusOK, "success")
}

// WechatNotify 微信支付回调
// @Summary 微信支付回调
// @Tags Payment
// @Router /payment/notify/wechat [post]
func (h *PaymentHandler) WechatNotify(c *gin.Context) {
	// 签名在 Header 中，整个请求交给策略验签
	if err := h.service.HandleNotify(c.Request.Context(), strategy.ChannelWechat, c.Request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "FAIL", "message": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}
