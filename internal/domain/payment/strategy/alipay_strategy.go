package strategy

import (
	"context"
	"errors"
	"net/url"
	"urban_life/internal/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/smartwalle/alipay/v3"
)

type AlipayStrategy struct {
	client *alipay.Client
	config config.AlipayConfig
}

func NewAlipayStrategy(cfg config.AlipayConfig) (*AlipayStrategy, error) {
	if cfg.AppID == "" {
		return nil, errors.New("alipay config missing")
	}

	client, err := alipay.New(cfg.AppID, cfg.PrivateKey, cfg.IsProduction)
	if err != nil {
		return nil, err
	}

	// 加载支付宝公钥 (用于验证签名)
	if err = client.LoadAliPayPublicKey(cfg.PublicKey); err != nil {
		return nil, err
	}

	return &AlipayStrategy{client: client, config: cfg}, nil
}

// Pay 发起支付 (App支付)
func (s *AlipayStrategy) Pay(_ context.Context, orderNo string, amount decimal.Decimal, subject string) (string, error) {
	p := alipay.TradeAppPay{}
	p.NotifyURL = s.config.NotifyURL
	p.Subject = subject
	p.OutTradeNo = orderNo
	p.TotalAmount = amount.StringFixed(2)
	p.ProductCode = "QUICK_MSECURITY_PAY" // App支付产品码

	return s.client.TradeAppPay(p)
}

// Notify 处理回调，params 为表单参数 url.Values
func (s *AlipayStrategy) Notify(_ context.Context, params interface{}) (*NotifyResult, error) {
	values, ok := params.(url.Values)
	if !ok {
		return nil, errors.New("invalid params type, expected url.Values")
	}

	noti, err := s.client.DecodeNotification(values)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(noti.TotalAmount)
	if err != nil {
		return nil, err
	}

	// TRADE_SUCCESS 或 TRADE_FINISHED 表示成功
	return &NotifyResult{
		OrderNo: noti.OutTradeNo,
		Amount:  amount,
		Success: noti.TradeStatus == alipay.TradeStatusSuccess || noti.TradeStatus == alipay.TradeStatusFinished,
	}, nil
}

// 确保实现了接口
var _ PaymentStrategy = (*AlipayStrategy)(nil)
