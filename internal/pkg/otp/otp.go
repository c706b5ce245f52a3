package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	ErrTooFrequent = errors.New("please wait before sending again")
	ErrCodeInvalid = errors.New("invalid verification code")
)

const (
	codeTTL        = 5 * time.Minute
	resendInterval = time.Minute
)

type OTPService interface {
	Send(ctx context.Context, mobile string) error
	Verify(ctx context.Context, mobile, code string) error
}

// Store 验证码存储
type Store interface {
	TTL(ctx context.Context, key string) (time.Duration, error)
	Set(ctx context.Context, key, code string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}

type redisStore struct {
	rdb *redis.Client
}

// NewRedisStore 基于 Redis 的验证码存储
func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	return s.rdb.TTL(ctx, key).Result()
}

func (s *redisStore) Set(ctx context.Context, key, code string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, code, ttl).Err()
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	return s.rdb.Get(ctx, key).Result()
}

func (s *redisStore) Del(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

type otpService struct {
	store Store
	log   *zap.Logger
	// fixedCode 非空时不生成随机码，仅用于非生产环境联调
	fixedCode string
}

func NewOTPService(store Store, log *zap.Logger, fixedCode string) OTPService {
	return &otpService{store: store, log: log, fixedCode: fixedCode}
}

func key(mobile string) string {
	return fmt.Sprintf("otp:%s", mobile)
}

// Send 生成验证码并存入 Redis，5 分钟有效，1 分钟内不可重复发送
// 短信通道未接入，验证码只写日志
func (s *otpService) Send(ctx context.Context, mobile string) error {
	ttl, err := s.store.TTL(ctx, key(mobile))
	if err == nil && ttl > codeTTL-resendInterval {
		return ErrTooFrequent
	}

	code := s.fixedCode
	if code == "" {
		if code, err = randomCode(); err != nil {
			return err
		}
	}

	if err := s.store.Set(ctx, key(mobile), code, codeTTL); err != nil {
		return err
	}

	s.log.Debug("otp issued", zap.String("mobile", mobile), zap.String("code", code))
	return nil
}

// Verify 验证成功后立即删除，防止重放
func (s *otpService) Verify(ctx context.Context, mobile, code string) error {
	val, err := s.store.Get(ctx, key(mobile))
	if errors.Is(err, redis.Nil) {
		return ErrCodeInvalid
	}
	if err != nil {
		return err
	}
	if val != code {
		return ErrCodeInvalid
	}
	if err := s.store.Del(ctx, key(mobile)); err != nil {
		s.log.Warn("otp delete failed", zap.String("mobile", mobile), zap.Error(err))
	}
	return nil
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
