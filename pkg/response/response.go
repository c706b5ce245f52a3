package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// requestIDKey 与 middleware.ContextRequestID 一致，pkg 层不反向依赖 internal
const requestIDKey = "requestID"

// Response 统一响应结构
type Response struct {
	Code      int         `json:"code"`    // 业务码，0 为成功
	Message   string      `json:"message"` // 提示信息
	Data      interface{} `json:"data"`
	RequestID string      `json:"requestId,omitempty"`
}

func write(c *gin.Context, httpCode, code int, msg string, data interface{}) {
	c.JSON(httpCode, Response{
		Code:      code,
		Message:   msg,
		Data:      data,
		RequestID: c.GetString(requestIDKey),
	})
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	write(c, http.StatusOK, CodeSuccess, "success", data)
}

// Error 指定 HTTP 状态码的错误响应
func Error(c *gin.Context, httpCode int, errCode int, msg string) {
	write(c, httpCode, errCode, msg, nil)
}

// BadRequest 参数错误
func BadRequest(c *gin.Context, errCode int, msg string) {
	write(c, http.StatusBadRequest, errCode, msg, nil)
}

// NotFound 资源不存在；非本人订单同样返回 404，不暴露订单存在
func NotFound(c *gin.Context, errCode int, msg string) {
	write(c, http.StatusNotFound, errCode, msg, nil)
}

// Rejected 请求合法但当前状态不允许 (HTTP 200, 业务码非 0)
func Rejected(c *gin.Context, errCode int, msg string) {
	write(c, http.StatusOK, errCode, msg, nil)
}

// Internal 服务端错误，原始错误挂到 gin 上下文由访问日志输出，不返回给客户端
func Internal(c *gin.Context, err error) {
	InternalCode(c, err, ErrServerInternal, "internal error")
}

// InternalCode 同 Internal，使用业务自己的错误码和提示
func InternalCode(c *gin.Context, err error, errCode int, msg string) {
	if err != nil {
		_ = c.Error(err)
	}
	write(c, http.StatusInternalServerError, errCode, msg, nil)
}
