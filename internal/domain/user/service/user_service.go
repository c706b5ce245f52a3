package service

import (
	"context"
	"errors"
	"time"
	"urban_life/internal/domain/user/model"
	"urban_life/internal/domain/user/repository"
	"urban_life/internal/pkg/otp"

	"go.uber.org/zap"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrAccountBanned  = errors.New("account is banned")
	ErrAccountDeleted = errors.New("account has been deleted")
)

// TokenIssuer 签发登录凭证
type TokenIssuer func(userID int64, role int) (string, *time.Time, error)

// LoginResult 登录结果
type LoginResult struct {
	Token    string      `json:"token"`
	ExpireAt *time.Time  `json:"expireAt"`
	User     *model.User `json:"user"`
}

// UserService 用户服务接口
type UserService interface {
	SendOTP(ctx context.Context, mobile string) error
	LoginOrRegister(ctx context.Context, mobile, code string) (*LoginResult, error)
	GetProfile(ctx context.Context, userID int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, nickname, avatarURL string) (*model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	otp    otp.OTPService
	tokens TokenIssuer
	log    *zap.Logger
	now    func() time.Time
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository, otp otp.OTPService, tokens TokenIssuer, log *zap.Logger) UserService {
	return &userService{repo: repo, otp: otp, tokens: tokens, log: log.Named("user"), now: time.Now}
}

func (s *userService) SendOTP(ctx context.Context, mobile string) error {
	return s.otp.Send(ctx, mobile)
}

// LoginOrRegister 验证码登录，手机号未注册时自动注册
func (s *userService) LoginOrRegister(ctx context.Context, mobile, code string) (*LoginResult, error) {
	// 1. 验证验证码
	if err := s.otp.Verify(ctx, mobile, code); err != nil {
		return nil, err
	}

	// 2. 查询用户，不存在则注册
	user, err := s.repo.GetByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &model.User{
			Mobile:   mobile,
			Nickname: defaultNickname(mobile),
			Role:     model.RoleUser,
		}
		if err := s.repo.Create(ctx, user); err != nil {
			return nil, err
		}
		s.log.Info("user registered", zap.Int64("user_id", user.ID))
	}

	// 3. 检查用户状态，封禁到期自动解封
	switch user.Status {
	case model.StatusBanned:
		if user.BannedUntil == nil || s.now().Before(*user.BannedUntil) {
			return nil, ErrAccountBanned
		}
		user.Status = model.StatusNormal
		user.BannedUntil = nil
		if err := s.repo.Update(ctx, user); err != nil {
			return nil, err
		}
	case model.StatusDeleted:
		return nil, ErrAccountDeleted
	}

	// 4. 生成 Token
	token, expireAt, err := s.tokens(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpireAt: expireAt, User: user}, nil
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile 空字段保持原值
func (s *userService) UpdateProfile(ctx context.Context, userID int64, nickname, avatarURL string) (*model.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if nickname != "" {
		user.Nickname = nickname
	}
	if avatarURL != "" {
		user.AvatarURL = avatarURL
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func defaultNickname(mobile string) string {
	if len(mobile) < 4 {
		return "User_" + mobile
	}
	return "User_" + mobile[len(mobile)-4:]
}
