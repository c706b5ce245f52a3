package strategy

import (
	"context"
	"errors"
	"net/http"
	"urban_life/internal/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/core/auth/verifiers"
	"github.com/wechatpay-apiv3/wechatpay-go/core/downloader"
	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
	"github.com/wechatpay-apiv3/wechatpay-go/core/option"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/app"
	"github.com/wechatpay-apiv3/wechatpay-go/utils"
)

const wechatTradeSuccess = "SUCCESS"

type WechatStrategy struct {
	client  *core.Client
	config  config.WechatPayConfig
	handler *notify.Handler
}

func NewWechatStrategy(ctx context.Context, cfg config.WechatPayConfig) (*WechatStrategy, error) {
	if cfg.MchID == "" {
		return nil, errors.New("wechat pay config missing")
	}

	// 1. 加载商户私钥
	mchPrivateKey, err := utils.LoadPrivateKey(cfg.MchPrivateKey)
	if err != nil {
		return nil, err
	}

	// 2. 初始化 Client，同时注册平台证书自动下载
	client, err := core.NewClient(ctx,
		option.WithWechatPayAutoAuthCipher(cfg.MchID, cfg.MchCertificateSerial, mchPrivateKey, cfg.APIv3Key),
	)
	if err != nil {
		return nil, err
	}

	// 3. 回调验签使用已下载的平台证书
	certVisitor := downloader.MgrInstance().GetCertificateVisitor(cfg.MchID)
	handler := notify.NewNotifyHandler(cfg.APIv3Key, verifiers.NewSHA256WithRSAVerifier(certVisitor))

	return &WechatStrategy{client: client, config: cfg, handler: handler}, nil
}

// Pay App 下单，返回 prepay_id
func (s *WechatStrategy) Pay(ctx context.Context, orderNo string, amount decimal.Decimal, subject string) (string, error) {
	req := app.PrepayRequest{
		Appid:       core.String(s.config.AppID),
		Mchid:       core.String(s.config.MchID),
		Description: core.String(subject),
		OutTradeNo:  core.String(orderNo),
		NotifyUrl:   core.String(s.config.NotifyURL),
		Amount: &app.Amount{
			Total: core.Int64(toFen(amount)),
		},
	}

	svc := app.AppApiService{Client: s.client}
	resp, _, err := svc.Prepay(ctx, req)
	if err != nil {
		return "", err
	}
	return *resp.PrepayId, nil
}

// Notify params 为原始 *http.Request，签名信息在 Header 中
func (s *WechatStrategy) Notify(ctx context.Context, params interface{}) (*NotifyResult, error) {
	req, ok := params.(*http.Request)
	if !ok {
		return nil, errors.New("invalid params type, expected *http.Request")
	}

	transaction := new(payments.Transaction)
	if _, err := s.handler.ParseNotifyRequest(ctx, req, transaction); err != nil {
		return nil, err
	}
	if transaction.OutTradeNo == nil || transaction.Amount == nil || transaction.Amount.Total == nil {
		return nil, errors.New("incomplete wechat transaction")
	}

	return &NotifyResult{
		OrderNo: *transaction.OutTradeNo,
		Amount:  fromFen(*transaction.Amount.Total),
		Success: transaction.TradeState != nil && *transaction.TradeState == wechatTradeSuccess,
	}, nil
}

// toFen 元转分，微信金额单位为分
func toFen(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func fromFen(fen int64) decimal.Decimal {
	return decimal.New(fen, -2)
}

var _ PaymentStrategy = (*WechatStrategy)(nil)
