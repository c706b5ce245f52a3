package middleware

import (
	"net/http"
	"time"
	"urban_life/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggerMiddleware 访问日志
func LoggerMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.String("request_id", c.GetString(ContextRequestID)),
			zap.Duration("cost", time.Since(start)),
		}
		if userID, ok := CurrentUserID(c); ok {
			fields = append(fields, zap.Int64("user_id", userID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error(path, fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			log.Warn(path, fields...)
		default:
			log.Info(path, fields...)
		}
	}
}

// RecoveryMiddleware 捕获 panic 并返回统一错误
func RecoveryMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(ContextRequestID)),
					zap.Stack("stack"),
				)
				response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
