package strategy

import (
	"context"

	"github.com/shopspring/decimal"
)

// 支付渠道
const (
	ChannelAlipay = "alipay"
	ChannelWechat = "wechat"
)

// NotifyResult 回调解析结果
type NotifyResult struct {
	OrderNo string
	Amount  decimal.Decimal
	Success bool
}

type PaymentStrategy interface {
	// Pay 发起支付，返回客户端拉起支付所需的参数
	Pay(ctx context.Context, orderNo string, amount decimal.Decimal, subject string) (string, error)

	// Notify 验签并解析回调通知
	Notify(ctx context.Context, params interface{}) (*NotifyResult, error)
}
