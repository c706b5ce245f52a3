// Package modulesync 将统一订单的状态变更同步到各业务模块订单表。
//
// 同步是尽力而为的：调用方只记录失败，不回滚统一订单。
package modulesync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"urban_life/internal/domain/order/model"
)

var (
	// ErrUnsupported 业务模块没有对应的状态（例如生活缴费账单没有取消状态）
	ErrUnsupported = errors.New("transition not supported by module")
	// ErrModuleOrderNotFound 业务订单不存在，更新未命中任何行
	ErrModuleOrderNotFound = errors.New("module order not found")
	// ErrNoSyncer 订单类型未注册同步器
	ErrNoSyncer = errors.New("no syncer registered")
)

// Syncer 业务模块状态同步器
type Syncer interface {
	MarkPaid(ctx context.Context, moduleOrderID int64, paidAt time.Time) error
	MarkCancelled(ctx context.Context, moduleOrderID int64) error
}

// Registry 订单类型到同步器的映射，启动时构建
type Registry struct {
	mu      sync.RWMutex
	syncers map[model.OrderType]Syncer
}

func NewRegistry() *Registry {
	return &Registry{syncers: make(map[model.OrderType]Syncer)}
}

// Register 注册同步器，同一类型重复注册时后者覆盖前者
func (r *Registry) Register(orderType model.OrderType, s Syncer) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.syncers[orderType] = s
	return r
}

func (r *Registry) Get(orderType model.OrderType) (Syncer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.syncers[orderType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSyncer, orderType)
	}
	return s, nil
}

// affected 把 (影响行数, 错误) 转换为同步结果
func affected(rows int64, err error) error {
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrModuleOrderNotFound
	}
	return nil
}
