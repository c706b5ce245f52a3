package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"urban_life/internal/domain/payment"
	"urban_life/internal/domain/payment/service"
	"urban_life/internal/pkg/config"
	"urban_life/internal/pkg/middleware"
	"urban_life/internal/pkg/registry"
	"urban_life/pkg/database"
	"urban_life/pkg/logger"
	"urban_life/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	_ "urban_life/docs"
	// 业务模块通过 init 注册
	_ "urban_life/internal/domain/order"
	_ "urban_life/internal/domain/user"
)

// @title Urban Life API
// @version 1.0
// @description 本地生活统一订单服务
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. 配置与日志
	config.LoadConfig()
	cfg := &config.GlobalConfig

	log, err := logger.InitLogger(logger.Options{Env: cfg.App.Env, Level: cfg.Log.Level})
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// 2. 基础设施
	db, err := database.InitDatabase(cfg.Database, log)
	if err != nil {
		log.Fatal("init database failed", zap.Error(err))
	}
	sqlxDB, err := database.NewSQLX(db)
	if err != nil {
		log.Fatal("init sqlx failed", zap.Error(err))
	}
	defer sqlxDB.Close()

	rdb, err := database.InitRedis(cfg.Redis)
	if err != nil {
		log.Fatal("init redis failed", zap.Error(err))
	}
	defer rdb.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetricsCollector(reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("get sql.DB failed", zap.Error(err))
	}
	go database.NewPoolMonitor(sqlDB, m, cfg.Database.MonitorInterval, log).Run(ctx)

	// 3. 路由与中间件
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.QPS), cfg.RateLimit.Burst)
	go cleanupVisitors(ctx, limiter, log)

	r.Use(
		middleware.RequestIDMiddleware(),
		middleware.RecoveryMiddleware(log),
		middleware.LoggerMiddleware(log),
		middleware.MetricsMiddleware(m),
		middleware.RateLimitMiddleware(limiter),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	if cfg.App.Env != "prod" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// 4. 业务模块
	moduleCtx := &registry.ModuleContext{
		Config:  cfg,
		DB:      db,
		SQLX:    sqlxDB,
		Redis:   rdb,
		Router:  r,
		Logger:  log,
		Metrics: m,
	}
	if err := registry.InitModules(moduleCtx); err != nil {
		log.Fatal("init modules failed", zap.Error(err))
	}

	// 5. 启动与优雅退出
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("server started", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	// 等待支付成功推送发送完毕
	if svc, err := moduleCtx.Resolve(payment.ServiceName); err == nil {
		svc.(service.PaymentService).Wait()
	}
	log.Info("server exited")
}

// cleanupVisitors 定期清理长时间未访问的限流器
func cleanupVisitors(ctx context.Context, limiter *middleware.IPRateLimiter, log *zap.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := limiter.Cleanup(3 * time.Minute); n > 0 {
				log.Debug("rate limiter visitors evicted", zap.Int("count", n))
			}
		case <-ctx.Done():
			return
		}
	}
}
