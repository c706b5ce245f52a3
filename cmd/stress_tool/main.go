package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
	"urban_life/internal/pkg/config"
	"urban_life/pkg/utils"
)

// 并发支付同一笔订单，验证只有一个请求成功
// 需要服务端开启 order.allow_direct_pay

var httpClient *http.Client

func init() {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 2000
	t.MaxIdleConnsPerHost = 2000
	t.MaxConnsPerHost = 2000
	httpClient = &http.Client{
		Transport: t,
		Timeout:   10 * time.Second,
	}
}

type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8080", "server base URL")
		workers = flag.Int("n", 1000, "concurrent pay requests")
		userID  = flag.Int64("user", 1, "user id the token is issued for")
		cancel  = flag.Bool("cancel", false, "race cancel against pay")
	)
	flag.Parse()

	// 与服务端共用 JWT 密钥
	config.LoadConfig()
	token, _, err := utils.GenerateToken(*userID, 0)
	if err != nil {
		fmt.Printf("签发 token 失败: %v\n", err)
		return
	}

	// 1. 创建订单
	orderNo, err := createOrder(*baseURL, token)
	if err != nil {
		fmt.Printf("创建订单失败: %v\n", err)
		return
	}
	fmt.Printf("开始压测：%d 个并发请求支付订单 %s ...\n", *workers, orderNo)

	// 2. 并发支付（可选与取消竞争）
	var (
		wg        sync.WaitGroup
		paid      int64
		cancelled int64
		failed    int64
	)
	start := time.Now()
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if *cancel && i%2 == 1 {
				if post(*baseURL+"/orders/"+orderNo+"/cancel", token, nil) {
					atomic.AddInt64(&cancelled, 1)
					return
				}
				atomic.AddInt64(&failed, 1)
				return
			}
			body := map[string]string{"paymentMethod": "stress"}
			if post(*baseURL+"/orders/"+orderNo+"/pay", token, body) {
				atomic.AddInt64(&paid, 1)
				return
			}
			atomic.AddInt64(&failed, 1)
		}(i)
	}
	wg.Wait()
	duration := time.Since(start)

	fmt.Println("--------------------------------------------------")
	fmt.Printf("压测结束，耗时: %v\n", duration)
	fmt.Printf("总请求数: %d\n", *workers)
	fmt.Printf("QPS: %.2f\n", float64(*workers)/duration.Seconds())
	fmt.Printf("支付成功: %d\n", paid)
	fmt.Printf("取消成功: %d\n", cancelled)
	fmt.Printf("被拒绝: %d\n", failed)
	if paid+cancelled == 1 {
		fmt.Println("结果正确：只有一个状态变更生效")
	} else {
		fmt.Println("结果异常：状态变更次数不为 1")
	}
	fmt.Println("--------------------------------------------------")
}

func createOrder(baseURL, token string) (string, error) {
	payload := map[string]interface{}{
		"orderType":   "SHOPPING",
		"title":       "压测订单",
		"totalAmount": "9.90",
	}
	resp, err := call(http.MethodPost, baseURL+"/orders", token, payload)
	if err != nil {
		return "", err
	}
	if resp.Code != 0 {
		return "", fmt.Errorf("code=%d message=%s", resp.Code, resp.Message)
	}
	var data struct {
		OrderNo string `json:"orderNo"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return "", err
	}
	return data.OrderNo, nil
}

// post 返回业务是否成功
func post(url, token string, payload interface{}) bool {
	resp, err := call(http.MethodPost, url, token, payload)
	if err != nil {
		return false
	}
	return resp.Code == 0
}

func call(method, url, token string, payload interface{}) (*apiResponse, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http status %d", resp.StatusCode)
	}
	var result apiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
