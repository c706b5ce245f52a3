package service

import (
	"context"
	"sync"
	"time"
	"urban_life/internal/domain/order/model"
	"urban_life/internal/domain/order/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockUnifiedOrderRepository is a mock of UnifiedOrderRepository
type MockUnifiedOrderRepository struct {
	mock.Mock
}

func (m *MockUnifiedOrderRepository) Create(ctx context.Context, order *model.UnifiedOrder) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUnifiedOrderRepository) GetByOrderNo(ctx context.Context, orderNo string) (*model.UnifiedOrder, error) {
	args := m.Called(ctx, orderNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UnifiedOrder), args.Error(1)
}

func (m *MockUnifiedOrderRepository) ListByUserID(ctx context.Context, userID int64, filter model.OrderFilter) ([]model.UnifiedOrder, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]model.UnifiedOrder), args.Error(1)
}

func (m *MockUnifiedOrderRepository) CountByStatus(ctx context.Context, userID int64) (map[model.PaymentStatus]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[model.PaymentStatus]int64), args.Error(1)
}

func (m *MockUnifiedOrderRepository) FindUnpaidByModuleOrderID(ctx context.Context, moduleOrderID int64, orderType model.OrderType) (*model.UnifiedOrder, error) {
	args := m.Called(ctx, moduleOrderID, orderType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UnifiedOrder), args.Error(1)
}

func (m *MockUnifiedOrderRepository) FindUnpaidByUserIDAndType(ctx context.Context, userID int64, orderType model.OrderType) (*model.UnifiedOrder, error) {
	args := m.Called(ctx, userID, orderType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UnifiedOrder), args.Error(1)
}

func (m *MockUnifiedOrderRepository) MarkPaid(ctx context.Context, orderNo, paymentMethod string, paidAt time.Time) (bool, error) {
	args := m.Called(ctx, orderNo, paymentMethod, paidAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockUnifiedOrderRepository) MarkCancelled(ctx context.Context, orderNo string, userID int64) (bool, error) {
	args := m.Called(ctx, orderNo, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUnifiedOrderRepository) Delete(ctx context.Context, orderNo string, userID int64) (bool, error) {
	args := m.Called(ctx, orderNo, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUnifiedOrderRepository) UpdateTotalAmount(ctx context.Context, orderNo string, amount decimal.Decimal) (bool, error) {
	args := m.Called(ctx, orderNo, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockUnifiedOrderRepository) UpdateModuleOrderID(ctx context.Context, orderNo string, moduleOrderID int64) (bool, error) {
	args := m.Called(ctx, orderNo, moduleOrderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUnifiedOrderRepository) RecordSyncFailure(ctx context.Context, failure *model.SyncFailure) error {
	args := m.Called(ctx, failure)
	return args.Error(0)
}

// MockSyncer is a mock of modulesync.Syncer
type MockSyncer struct {
	mock.Mock
}

func (m *MockSyncer) MarkPaid(ctx context.Context, moduleOrderID int64, paidAt time.Time) error {
	args := m.Called(ctx, moduleOrderID, paidAt)
	return args.Error(0)
}

func (m *MockSyncer) MarkCancelled(ctx context.Context, moduleOrderID int64) error {
	args := m.Called(ctx, moduleOrderID)
	return args.Error(0)
}

// memOrderRepository 内存实现，状态变更与数据库条件更新语义一致
type memOrderRepository struct {
	mu       sync.Mutex
	nextID   int64
	orders   map[string]model.UnifiedOrder
	failures []model.SyncFailure
}

var _ repository.UnifiedOrderRepository = (*memOrderRepository)(nil)

func newMemOrderRepository() *memOrderRepository {
	return &memOrderRepository{orders: make(map[string]model.UnifiedOrder)}
}

func (r *memOrderRepository) Create(_ context.Context, order *model.UnifiedOrder) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.OrderNo]; ok {
		return 0, repository.ErrDuplicateOrderNo
	}
	r.nextID++
	order.ID = r.nextID
	order.CreateTime = time.Now()
	r.orders[order.OrderNo] = *order
	return 1, nil
}

func (r *memOrderRepository) GetByOrderNo(_ context.Context, orderNo string) (*model.UnifiedOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderNo]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *memOrderRepository) ListByUserID(_ context.Context, userID int64, filter model.OrderFilter) ([]model.UnifiedOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.UnifiedOrder, 0)
	for _, o := range r.orders {
		if o.UserID != userID {
			continue
		}
		if filter.OrderType != nil && o.OrderType != *filter.OrderType {
			continue
		}
		if filter.PaymentStatus != nil && o.PaymentStatus != *filter.PaymentStatus {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *memOrderRepository) CountByStatus(_ context.Context, userID int64) (map[model.PaymentStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[model.PaymentStatus]int64)
	for _, o := range r.orders {
		if o.UserID == userID {
			counts[o.PaymentStatus]++
		}
	}
	return counts, nil
}

func (r *memOrderRepository) FindUnpaidByModuleOrderID(_ context.Context, moduleOrderID int64, orderType model.OrderType) (*model.UnifiedOrder, error) {
	return r.findUnpaid(func(o model.UnifiedOrder) bool {
		return o.ModuleOrderID != nil && *o.ModuleOrderID == moduleOrderID && o.OrderType == orderType
	})
}

func (r *memOrderRepository) FindUnpaidByUserIDAndType(_ context.Context, userID int64, orderType model.OrderType) (*model.UnifiedOrder, error) {
	return r.findUnpaid(func(o model.UnifiedOrder) bool {
		return o.UserID == userID && o.OrderType == orderType
	})
}

func (r *memOrderRepository) findUnpaid(match func(model.UnifiedOrder) bool) (*model.UnifiedOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.PaymentStatus == model.PaymentStatusUnpaid && match(o) {
			return &o, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepository) MarkPaid(_ context.Context, orderNo, paymentMethod string, paidAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderNo]
	if !ok || o.PaymentStatus != model.PaymentStatusUnpaid {
		return false, nil
	}
	o.PaymentStatus = model.PaymentStatusPaid
	o.PaymentMethod = &paymentMethod
	o.PaymentTime = &paidAt
	r.orders[orderNo] = o
	return true, nil
}

func (r *memOrderRepository) MarkCancelled(_ context.Context, orderNo string, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderNo]
	if !ok || o.UserID != userID || o.PaymentStatus != model.PaymentStatusUnpaid {
		return false, nil
	}
	o.PaymentStatus = model.PaymentStatusCancelled
	r.orders[orderNo] = o
	return true, nil
}

func (r *memOrderRepository) Delete(_ context.Context, orderNo string, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderNo]
	if !ok || o.UserID != userID || !o.PaymentStatus.Deletable() {
		return false, nil
	}
	delete(r.orders, orderNo)
	return true, nil
}

func (r *memOrderRepository) UpdateTotalAmount(_ context.Context, orderNo string, amount decimal.Decimal) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderNo]
	if !ok {
		return false, nil
	}
	o.TotalAmount = amount
	r.orders[orderNo] = o
	return true, nil
}

func (r *memOrderRepository) UpdateModuleOrderID(_ context.Context, orderNo string, moduleOrderID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderNo]
	if !ok {
		return false, nil
	}
	o.ModuleOrderID = &moduleOrderID
	r.orders[orderNo] = o
	return true, nil
}

func (r *memOrderRepository) RecordSyncFailure(_ context.Context, failure *model.SyncFailure) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, *failure)
	return nil
}

// put 直接写入一条订单，绕过创建流程
func (r *memOrderRepository) put(o model.UnifiedOrder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.OrderNo] = o
}

// shopTable 记录商城订单状态写入
type shopTable struct {
	mu     sync.Mutex
	status map[int64]int
	writes int
}

func (t *shopTable) UpdateStatusByID(_ context.Context, id int64, status int) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.status[id]; !ok {
		return 0, nil
	}
	t.status[id] = status
	t.writes++
	return 1, nil
}
