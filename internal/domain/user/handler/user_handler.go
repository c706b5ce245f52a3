package handler

import (
	"errors"
	"net/http"
	"urban_life/internal/domain/user/service"
	"urban_life/internal/pkg/middleware"
	"urban_life/internal/pkg/otp"
	"urban_life/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户处理器
type UserHandler struct {
	service service.UserService
}

// NewUserHandler 创建处理器
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type SendOTPInput struct {
	Mobile string `json:"mobile" binding:"required,len=11,numeric"`
}

type LoginInput struct {
	Mobile string `json:"mobile" binding:"required,len=11,numeric"`
	Code   string `json:"code" binding:"required,len=6,numeric"`
}

type UpdateProfileInput struct {
	Nickname  string `json:"nickname" binding:"omitempty,max=64"`
	AvatarURL string `json:"avatarUrl" binding:"omitempty,url,max=255"`
}

// SendOTP 发送验证码
// @Summary 发送验证码
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body SendOTPInput true "Mobile"
// @Success 200 {object} response.Response
// @Router /auth/otp [post]
func (h *UserHandler) SendOTP(c *gin.Context) {
	var input SendOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.ErrInvalidParam, err.Error())
		return
	}

	if err := h.service.SendOTP(c.Request.Context(), input.Mobile); err != nil {
		if errors.Is(err, otp.ErrTooFrequent) {
			response.Error(c, http.StatusTooManyRequests, response.ErrTooManyRequests, err.Error())
			return
		}
		response.InternalCode(c, err, response.ErrServerInternal, "send otp failed")
		return
	}
	response.Success(c, nil)
}

// LoginOrRegister 验证码登录/注册
// @Summary 验证码登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body LoginInput true "Mobile and code"
// @Success 200 {object} response.Response{data=service.LoginResult}
// @Router /auth/login [post]
func (h *UserHandler) LoginOrRegister(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.ErrInvalidParam, err.Error())
		return
	}

	result, err := h.service.LoginOrRegister(c.Request.Context(), input.Mobile, input.Code)
	switch {
	case err == nil:
		response.Success(c, result)
	case errors.Is(err, otp.ErrCodeInvalid):
		response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, err.Error())
	case errors.Is(err, service.ErrAccountBanned), errors.Is(err, service.ErrAccountDeleted):
		response.Error(c, http.StatusForbidden, response.ErrNoPermission, err.Error())
	default:
		response.InternalCode(c, err, response.ErrServerInternal, "login failed")
	}
}

// GetMe 当前用户资料
// @Summary 当前用户资料
// @Tags User
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=model.User}
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	user, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.writeProfileError(c, err)
		return
	}
	response.Success(c, user)
}

// UpdateMe 更新当前用户资料
// @Summary 更新当前用户资料
// @Tags User
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body UpdateProfileInput true "Profile"
// @Success 200 {object} response.Response{data=model.User}
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, response.ErrInvalidParam, err.Error())
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	user, err := h.service.UpdateProfile(c.Request.Context(), userID, input.Nickname, input.AvatarURL)
	if err != nil {
		h.writeProfileError(c, err)
		return
	}
	response.Success(c, user)
}

func (h *UserHandler) writeProfileError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrUserNotFound) {
		response.NotFound(c, response.ErrUserNotFound, err.Error())
		return
	}
	_ = c.Error(err)
	response.Internal(c, err)
}
