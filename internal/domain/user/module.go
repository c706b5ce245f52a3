package user

import (
	"urban_life/internal/domain/user/handler"
	"urban_life/internal/domain/user/repository"
	"urban_life/internal/domain/user/service"
	"urban_life/internal/pkg/middleware"
	"urban_life/internal/pkg/otp"
	"urban_life/internal/pkg/registry"
	"urban_life/pkg/utils"

	"github.com/gin-gonic/gin"
)

// UserModule 用户模块
type UserModule struct{}

func init() {
	// 自动注册模块
	registry.Register(&UserModule{})
}

func (m *UserModule) Name() string {
	return "user"
}

func (m *UserModule) Priority() int {
	// 用户模块优先级最高，其他模块的鉴权依赖它签发的 Token
	return 1
}

func (m *UserModule) Init(ctx *registry.ModuleContext) error {
	// 非生产环境允许固定验证码
	fixedCode := ""
	if ctx.Config.App.Env != "prod" {
		fixedCode = ctx.Config.App.TestOTPCode
	}

	// 1. 依赖注入
	userRepo := repository.NewUserRepository(ctx.DB)
	otpService := otp.NewOTPService(otp.NewRedisStore(ctx.Redis), ctx.Logger.Named("otp"), fixedCode)
	userService := service.NewUserService(userRepo, otpService, utils.GenerateToken, ctx.Logger)
	userHandler := handler.NewUserHandler(userService)

	// 2. 路由注册
	setupRoutes(ctx.Router, userHandler)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.UserHandler) {
	// 公开路由
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/otp", h.SendOTP)           // 发送验证码
		authGroup.POST("/login", h.LoginOrRegister) // 登录/注册
	}

	// 受保护的路由
	userGroup := r.Group("/users")
	userGroup.Use(middleware.AuthMiddleware())
	{
		userGroup.GET("/me", h.GetMe)
		userGroup.PUT("/me", h.UpdateMe)
	}
}
