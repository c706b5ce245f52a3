package push

import (
	"encoding/json"
	"fmt"
	"urban_life/internal/pkg/config"

	"github.com/aliyun/alibaba-cloud-sdk-go/sdk/requests"
	"github.com/aliyun/alibaba-cloud-sdk-go/services/push"
)

// PushService 消息推送
type PushService interface {
	PushToAccount(accountID string, title, body string, extParameters map[string]string) error
}

// Enabled 推送配置是否完整
func Enabled(cfg config.PushConfig) bool {
	return cfg.AccessKeyID != "" && cfg.AppKey != 0
}

type AliyunPushService struct {
	client *push.Client
	appKey int64
}

func NewAliyunPushService(cfg config.PushConfig) (*AliyunPushService, error) {
	if !Enabled(cfg) {
		return nil, fmt.Errorf("push config is missing")
	}

	client, err := push.NewClientWithAccessKey(cfg.RegionID, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, err
	}
	return &AliyunPushService{client: client, appKey: cfg.AppKey}, nil
}

// PushToAccount 推送给绑定了账号的设备，账号即用户 ID
func (s *AliyunPushService) PushToAccount(accountID string, title, body string, extParameters map[string]string) error {
	request, err := buildRequest(s.appKey, "ACCOUNT", accountID, title, body, extParameters)
	if err != nil {
		return err
	}
	_, err = s.client.Push(request)
	return err
}

func buildRequest(appKey int64, target, targetValue, title, body string, extParameters map[string]string) (*push.PushRequest, error) {
	request := push.CreatePushRequest()
	request.AppKey = requests.NewInteger64(appKey)
	request.Target = target
	request.TargetValue = targetValue
	request.Title = title
	request.Body = body
	request.DeviceType = "ALL"  // iOS & Android
	request.PushType = "NOTICE" // 通知

	if len(extParameters) > 0 {
		extJSON, err := json.Marshal(extParameters)
		if err != nil {
			return nil, err
		}
		request.AndroidExtParameters = string(extJSON)
		request.IOSExtParameters = string(extJSON)
	}
	return request, nil
}
