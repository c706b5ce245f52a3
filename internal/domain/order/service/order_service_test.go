package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"
	"urban_life/internal/domain/order/model"
	"urban_life/internal/domain/order/modulesync"
	"urban_life/internal/domain/order/repository"
	"urban_life/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(repo repository.UnifiedOrderRepository, syncers *modulesync.Registry) (*unifiedOrderService, *prometheus.Registry) {
	if syncers == nil {
		syncers = modulesync.NewRegistry()
	}
	reg := prometheus.NewRegistry()
	svc := NewUnifiedOrderService(repo, syncers, metrics.NewMetricsCollector(reg), zap.NewNop(), Options{OrderNoAttempts: 3})
	return svc.(*unifiedOrderService), reg
}

// counterValue 汇总某个计数器在所有标签下的值
func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	var total float64
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func int64Ptr(v int64) *int64 { return &v }

func unpaidOrder(orderNo string, userID int64, orderType model.OrderType, moduleOrderID *int64) model.UnifiedOrder {
	return model.UnifiedOrder{
		OrderNo:       orderNo,
		UserID:        userID,
		OrderType:     orderType,
		ModuleOrderID: moduleOrderID,
		TotalAmount:   decimal.RequireFromString("10.00"),
		PaymentStatus: model.PaymentStatusUnpaid,
	}
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		repo := newMemOrderRepository()
		svc, reg := newTestService(repo, nil)

		orderNo, err := svc.CreateOrder(ctx, CreateOrderInput{
			UserID:        7,
			OrderType:     model.OrderTypeHotel,
			ModuleOrderID: int64Ptr(42),
			Title:         "t",
			Description:   "d",
			TotalAmount:   decimal.RequireFromString("199.00"),
		})
		require.NoError(t, err)
		require.NotEmpty(t, orderNo)

		order, err := svc.GetOrderByOrderNo(ctx, orderNo)
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, model.PaymentStatusUnpaid, order.PaymentStatus)
		require.NotNil(t, order.ModuleOrderID)
		assert.Equal(t, int64(42), *order.ModuleOrderID)
		assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("199.00")))
		assert.Nil(t, order.PaymentMethod)
		assert.Equal(t, 1.0, counterValue(t, reg, "unified_orders_created_total"))
	})

	t.Run("invalid input is rejected before persistence", func(t *testing.T) {
		repo := new(MockUnifiedOrderRepository)
		svc, _ := newTestService(repo, nil)

		_, err := svc.CreateOrder(ctx, CreateOrderInput{UserID: 7, OrderType: "CINEMA"})
		assert.ErrorIs(t, err, ErrInvalidOrderType)

		_, err = svc.CreateOrder(ctx, CreateOrderInput{OrderType: model.OrderTypeFood})
		assert.ErrorIs(t, err, ErrInvalidUserID)

		_, err = svc.CreateOrder(ctx, CreateOrderInput{
			UserID:      7,
			OrderType:   model.OrderTypeFood,
			TotalAmount: decimal.RequireFromString("-0.01"),
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		svc, _ := newTestService(newMemOrderRepository(), nil)

		orderNo, err := svc.CreateOrder(ctx, CreateOrderInput{UserID: 7, OrderType: model.OrderTypePayment})
		require.NoError(t, err)
		assert.NotEmpty(t, orderNo)
	})

	t.Run("zero rows affected is a failure", func(t *testing.T) {
		repo := new(MockUnifiedOrderRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(int64(0), nil)
		svc, _ := newTestService(repo, nil)

		orderNo, err := svc.CreateOrder(ctx, CreateOrderInput{UserID: 7, OrderType: model.OrderTypeShopping})
		assert.ErrorIs(t, err, ErrCreateOrderFailed)
		assert.Empty(t, orderNo)
	})

	t.Run("duplicate order number is regenerated", func(t *testing.T) {
		repo := new(MockUnifiedOrderRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(int64(0), repository.ErrDuplicateOrderNo).Once()
		repo.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
		svc, _ := newTestService(repo, nil)

		seq := 0
		svc.genOrderNo = func(orderType model.OrderType, _ time.Time) string {
			seq++
			return fmt.Sprintf("UO%s%d", orderType.Tag(), seq)
		}

		orderNo, err := svc.CreateOrder(ctx, CreateOrderInput{UserID: 7, OrderType: model.OrderTypeTravel})
		require.NoError(t, err)
		assert.Equal(t, "UOTRAVEL2", orderNo)
		repo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("gives up after configured attempts", func(t *testing.T) {
		repo := new(MockUnifiedOrderRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(int64(0), repository.ErrDuplicateOrderNo)
		svc, _ := newTestService(repo, nil)

		_, err := svc.CreateOrder(ctx, CreateOrderInput{UserID: 7, OrderType: model.OrderTypeTravel})
		assert.ErrorIs(t, err, repository.ErrDuplicateOrderNo)
		repo.AssertNumberOfCalls(t, "Create", 3)
	})
}

func TestGenerateOrderNo(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	cases := map[model.OrderType]string{
		model.OrderTypeFood:     "FOOD",
		model.OrderTypeHotel:    "HOTEL",
		model.OrderTypeShopping: "SHOP",
		model.OrderTypeTravel:   "TRAVEL",
		model.OrderTypePayment:  "PAY",
		model.OrderType("X"):    "UNKNOWN",
	}
	for orderType, tag := range cases {
		orderNo := GenerateOrderNo(orderType, now)
		assert.Regexp(t, regexp.MustCompile(`^UO`+tag+`1700000000123\d{4}$`), orderNo)
	}
}

func TestProcessPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("missing order", func(t *testing.T) {
		svc, _ := newTestService(newMemOrderRepository(), nil)

		ok, err := svc.ProcessPayment(ctx, "UONOPE", "wechat")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("already paid order is left untouched", func(t *testing.T) {
		paidAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		method := "alipay"
		order := unpaidOrder("UOHOTEL1", 7, model.OrderTypeHotel, int64Ptr(1))
		order.PaymentStatus = model.PaymentStatusPaid
		order.PaymentMethod = &method
		order.PaymentTime = &paidAt

		repo := newMemOrderRepository()
		repo.put(order)
		syncer := new(MockSyncer)
		svc, _ := newTestService(repo, modulesync.NewRegistry().Register(model.OrderTypeHotel, syncer))

		ok, err := svc.ProcessPayment(ctx, "UOHOTEL1", "wechat")
		require.NoError(t, err)
		assert.False(t, ok)

		stored, _ := repo.GetByOrderNo(ctx, "UOHOTEL1")
		assert.Equal(t, "alipay", *stored.PaymentMethod)
		assert.True(t, paidAt.Equal(*stored.PaymentTime))
		syncer.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("paid order marks shop order paid", func(t *testing.T) {
		repo := newMemOrderRepository()
		repo.put(unpaidOrder("UOSHOP1", 7, model.OrderTypeShopping, int64Ptr(42)))
		shop := &shopTable{status: map[int64]int{42: 0}}
		svc, reg := newTestService(repo, modulesync.NewRegistry().
			Register(model.OrderTypeShopping, modulesync.NewShopSyncer(shop)))

		ok, err := svc.ProcessPayment(ctx, "UOSHOP1", "wechat")
		require.NoError(t, err)
		assert.True(t, ok)

		stored, _ := repo.GetByOrderNo(ctx, "UOSHOP1")
		assert.Equal(t, model.PaymentStatusPaid, stored.PaymentStatus)
		require.NotNil(t, stored.PaymentTime)
		assert.Equal(t, "wechat", *stored.PaymentMethod)
		assert.Equal(t, 1, shop.status[42])
		assert.Equal(t, 1.0, counterValue(t, reg, "unified_orders_paid_total"))
	})

	t.Run("order without module order skips sync", func(t *testing.T) {
		repo := newMemOrderRepository()
		repo.put(unpaidOrder("UOSHOP2", 7, model.OrderTypeShopping, nil))
		syncer := new(MockSyncer)
		svc, _ := newTestService(repo, modulesync.NewRegistry().Register(model.OrderTypeShopping, syncer))

		ok, err := svc.ProcessPayment(ctx, "UOSHOP2", "wechat")
		require.NoError(t, err)
		assert.True(t, ok)
		syncer.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("module sync failure does not fail payment", func(t *testing.T) {
		repo := newMemOrderRepository()
		repo.put(unpaidOrder("UOFOOD1", 7, model.OrderTypeFood, int64Ptr(9)))
		syncer := new(MockSyncer)
		syncer.On("MarkPaid", mock.Anything, int64(9), mock.Anything).Return(errors.New("restaurant db down"))
		svc, reg := newTestService(repo, modulesync.NewRegistry().Register(model.OrderTypeFood, syncer))

		ok, err := svc.ProcessPayment(ctx, "UOFOOD1", "wechat")
		require.NoError(t, err)
		assert.True(t, ok)

		stored, _ := repo.GetByOrderNo(ctx, "UOFOOD1")
		assert.Equal(t, model.PaymentStatusPaid, stored.PaymentStatus)
		require.Len(t, repo.failures, 1)
		assert.Equal(t, model.SyncActionPaid, repo.failures[0].Action)
		assert.Equal(t, int64(9), repo.failures[0].ModuleOrderID)
		assert.Contains(t, repo.failures[0].ErrorMessage, "restaurant db down")
		assert.Equal(t, 1.0, counterValue(t, reg, "unified_order_module_sync_failures_total"))
	})

	t.Run("module sync panic does not fail payment", func(t *testing.T) {
		repo := newMemOrderRepository()
		repo.put(unpaidOrder("UOFOOD2", 7, model.OrderTypeFood, int64Ptr(10)))
		syncer := new(MockSyncer)
		syncer.On("MarkPaid", mock.Anything, int64(10), mock.Anything).Run(func(mock.Arguments) {
			panic("nil mapper")
		})
		svc, _ := newTestService(repo, modulesync.NewRegistry().Register(model.OrderTypeFood, syncer))

		ok, err := svc.ProcessPayment(ctx, "UOFOOD2", "wechat")
		require.NoError(t, err)
		assert.True(t, ok)
		require.Len(t, repo.failures, 1)
		assert.Contains(t, repo.failures[0].ErrorMessage, "nil mapper")
	})

	t.Run("missing module row is recorded", func(t *testing.T) {
		repo := newMemOrderRepository()
		repo.put(unpaidOrder("UOSHOP3", 7, model.OrderTypeShopping, int64Ptr(404)))
		shop := &shopTable{status: map[int64]int{}}
		svc, _ := newTestService(repo, modulesync.NewRegistry().
			Register(model.OrderTypeShopping, modulesync.NewShopSyncer(shop)))

		ok, err := svc.ProcessPayment(ctx, "UOSHOP3", "wechat")
		require.NoError(t, err)
		assert.True(t, ok)
		require.Len(t, repo.failures, 1)
	})

	t.Run("lost race reports failure without sync", func(t *testing.T) {
		order := unpaidOrder("UOHOTEL2", 7, model.OrderTypeHotel, int64Ptr(3))
		repo := new(MockUnifiedOrderRepository)
		repo.On("GetByOrderNo", mock.Anything, "UOHOTEL2").Return(&order, nil)
		repo.On("MarkPaid", mock.Anything, "UOHOTEL2", "wechat", mock.Anything).Return(false, nil)
		syncer := new(MockSyncer)
		svc, _ := newTestService(repo, modulesync.NewRegistry().Register(model.OrderTypeHotel, syncer))

		ok, err := svc.ProcessPayment(ctx, "UOHOTEL2", "wechat")
		require.NoError(t, err)
		assert.False(t, ok)
		syncer.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("datastore error propagates", func(t *testing.T) {
		repo := new(MockUnifiedOrderRepository)
		repo.On("GetByOrderNo", mock.Anything, "UOHOTEL3").Return(nil, errors.New("connection refused"))
		svc, _ := newTestService(repo, nil)

		ok, err := svc.ProcessPayment(ctx, "UOHOTEL3", "wechat")
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestProcessPaymentConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := newMemOrderRepository()
	repo.put(unpaidOrder("UOSHOP9", 7, model.OrderTypeShopping, int64Ptr(5)))
	shop := &shopTable{status: map[int64]int{5: 0}}
	svc, _ := newTestService(repo, modulesync.NewRegistry().
		Register(model.OrderTypeShopping, modulesync.NewShopSyncer(shop)))

	const callers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			ok, err := svc.ProcessPayment(ctx, "UOSHOP9", "wechat")
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	stored, _ := repo.GetByOrderNo(ctx, "UOSHOP9")
	assert.Equal(t, model.PaymentStatusPaid, stored.PaymentStatus)
	assert.Equal(t, 1, shop.writes)
}

func TestCancelOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cancels unpaid order", func(t *testing.T) {
		repo := newMemOrderRepository()
		repo.put(unpaidOrder("UOTRAVEL1", 7, model.OrderTypeTravel, int64Ptr(3)))
		syncer := new(MockSyncer)
		syncer.On("MarkCancelled", mock.Anything, int64(3)).Return(nil)
		svc, reg := newTestService(repo, modulesync.NewRegistry().Register(model.OrderTypeTravel, syncer))

		ok, err := svc.CancelOrder(ctx, "UOTRAVEL1", 7)
		require.NoError(t, err)
		assert.True(t, ok)

		stored, _ := repo.GetByOrderNo(ctx, "UOTRAVEL1")
		assert.Equal(t, model.PaymentStatusCancelled, stored.PaymentStatus)
		syncer.AssertExpectations(t)
		assert.Equal(t, 1.0, counterValue(t, reg, "unified_orders_cancelled_total"))
	})

	t.Run("other user cannot cancel", func(t *testing.T) {
		repo := newMemOrderRepository()
		repo.put(unpaidOrder("UOTRAVEL2", 7, model.OrderTypeTravel, int64Ptr(3)))
		svc, _ := newTestService(repo, nil)

		ok, err := svc.CancelOrder(ctx, "UOTRAVEL2", 8)
		require.NoError(t, err)
		assert.False(t, ok)

		stored, _ := repo.GetByOrderNo(ctx, "UOTRAVEL2")
		assert.Equal(t, model.PaymentStatusUnpaid, stored.PaymentStatus)
	})

	t.Run("paid order cannot be cancelled", func(t *testing.T) {
		repo := newMemOrderRepository()
		order := unpaidOrder("UOTRAVEL3", 7, model.OrderTypeTravel, int64Ptr(3))
		order.PaymentStatus = model.PaymentStatusPaid
		repo.put(order)
		svc, _ := newTestService(repo, nil)

		ok, err := svc.CancelOrder(ctx, "UOTRAVEL3", 7)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("bill cancel is not tracked by module", func(t *testing.T) {
		repo := newMemOrderRepository()
		repo.put(unpaidOrder("UOPAY1", 7, model.OrderTypePayment, int64Ptr(77)))
		bills := new(MockSyncer)
		bills.On("MarkCancelled", mock.Anything, int64(77)).Return(modulesync.ErrUnsupported)
		svc, reg := newTestService(repo, modulesync.NewRegistry().Register(model.OrderTypePayment, bills))

		ok, err := svc.CancelOrder(ctx, "UOPAY1", 7)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, repo.failures)
		assert.Equal(t, 0.0, counterValue(t, reg, "unified_order_module_sync_failures_total"))
	})
}

func TestDeleteOrder(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		status model.PaymentStatus
		userID int64
		want   bool
	}{
		{"unpaid", model.PaymentStatusUnpaid, 7, true},
		{"paid is kept", model.PaymentStatusPaid, 7, false},
		{"cancelled", model.PaymentStatusCancelled, 7, true},
		{"completed", model.PaymentStatusCompleted, 7, true},
		{"refunded", model.PaymentStatusRefunded, 7, true},
		{"other user", model.PaymentStatusCancelled, 8, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemOrderRepository()
			order := unpaidOrder("UOHOTEL1", 7, model.OrderTypeHotel, int64Ptr(1))
			order.PaymentStatus = tc.status
			repo.put(order)
			svc, _ := newTestService(repo, nil)

			can, err := svc.CanDelete(ctx, "UOHOTEL1", tc.userID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, can)

			ok, err := svc.DeleteOrder(ctx, "UOHOTEL1", tc.userID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)

			stored, _ := repo.GetByOrderNo(ctx, "UOHOTEL1")
			assert.Equal(t, !tc.want, stored != nil)
		})
	}
}

func TestPredicates(t *testing.T) {
	ctx := context.Background()
	repo := newMemOrderRepository()
	repo.put(unpaidOrder("UOFOOD1", 7, model.OrderTypeFood, nil))
	svc, _ := newTestService(repo, nil)

	can, err := svc.CanPay(ctx, "UOFOOD1")
	require.NoError(t, err)
	assert.True(t, can)

	can, _ = svc.CanCancel(ctx, "UOFOOD1", 7)
	assert.True(t, can)

	can, _ = svc.CanCancel(ctx, "UOFOOD1", 8)
	assert.False(t, can)

	can, err = svc.CanPay(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, can)

	// 预检查不产生副作用
	stored, _ := repo.GetByOrderNo(ctx, "UOFOOD1")
	assert.Equal(t, model.PaymentStatusUnpaid, stored.PaymentStatus)
}

func TestGetOrderStats(t *testing.T) {
	ctx := context.Background()
	repo := newMemOrderRepository()
	statuses := []model.PaymentStatus{
		model.PaymentStatusUnpaid, model.PaymentStatusUnpaid, model.PaymentStatusUnpaid,
		model.PaymentStatusPaid, model.PaymentStatusPaid,
		model.PaymentStatusCancelled,
	}
	for i, status := range statuses {
		o := unpaidOrder(fmt.Sprintf("UOSHOP%d", i), 7, model.OrderTypeShopping, nil)
		o.PaymentStatus = status
		repo.put(o)
	}
	repo.put(unpaidOrder("UOSHOPX", 8, model.OrderTypeShopping, nil))
	svc, _ := newTestService(repo, nil)

	stats, err := svc.GetOrderStats(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.Total)
	assert.Equal(t, int64(3), stats.Unpaid)
	assert.Equal(t, int64(2), stats.Paid)
	assert.Equal(t, int64(1), stats.Cancelled)
	assert.Equal(t, int64(0), stats.Completed)
}

func TestGetOrdersByUserID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUnifiedOrderRepository)
	hotel := model.OrderTypeHotel
	filter := model.OrderFilter{OrderType: &hotel, Limit: 20}
	repo.On("ListByUserID", mock.Anything, int64(7), filter).
		Return([]model.UnifiedOrder{unpaidOrder("UOHOTEL1", 7, hotel, nil)}, nil)
	svc, _ := newTestService(repo, nil)

	orders, err := svc.GetOrdersByUserID(ctx, 7, filter)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	repo.AssertExpectations(t)
}

func TestGetOrCreateUnpaidOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("reuses unpaid order for the same module order", func(t *testing.T) {
		repo := newMemOrderRepository()
		repo.put(unpaidOrder("UOHOTEL1", 7, model.OrderTypeHotel, int64Ptr(42)))
		svc, _ := newTestService(repo, nil)

		orderNo, reused, err := svc.GetOrCreateUnpaidOrder(ctx, CreateOrderInput{
			UserID:        7,
			OrderType:     model.OrderTypeHotel,
			ModuleOrderID: int64Ptr(42),
			TotalAmount:   decimal.RequireFromString("25.50"),
		})
		require.NoError(t, err)
		assert.True(t, reused)
		assert.Equal(t, "UOHOTEL1", orderNo)

		stored, _ := repo.GetByOrderNo(ctx, "UOHOTEL1")
		assert.True(t, stored.TotalAmount.Equal(decimal.RequireFromString("25.50")))
	})

	t.Run("reuses unpaid cart by user and type", func(t *testing.T) {
		repo := newMemOrderRepository()
		repo.put(unpaidOrder("UOSHOP1", 7, model.OrderTypeShopping, nil))
		svc, _ := newTestService(repo, nil)

		orderNo, reused, err := svc.GetOrCreateUnpaidOrder(ctx, CreateOrderInput{
			UserID:      7,
			OrderType:   model.OrderTypeShopping,
			TotalAmount: decimal.RequireFromString("10.00"),
		})
		require.NoError(t, err)
		assert.True(t, reused)
		assert.Equal(t, "UOSHOP1", orderNo)
	})

	t.Run("creates when nothing is pending", func(t *testing.T) {
		repo := newMemOrderRepository()
		svc, _ := newTestService(repo, nil)

		orderNo, reused, err := svc.GetOrCreateUnpaidOrder(ctx, CreateOrderInput{
			UserID:        7,
			OrderType:     model.OrderTypeTravel,
			ModuleOrderID: int64Ptr(5),
		})
		require.NoError(t, err)
		assert.False(t, reused)
		assert.True(t, regexp.MustCompile(`^UOTRAVEL\d+$`).MatchString(orderNo))
	})

	t.Run("does not reuse another user's order", func(t *testing.T) {
		repo := newMemOrderRepository()
		repo.put(unpaidOrder("UOHOTEL9", 8, model.OrderTypeHotel, int64Ptr(42)))
		svc, _ := newTestService(repo, nil)

		orderNo, reused, err := svc.GetOrCreateUnpaidOrder(ctx, CreateOrderInput{
			UserID:        7,
			OrderType:     model.OrderTypeHotel,
			ModuleOrderID: int64Ptr(42),
		})
		require.NoError(t, err)
		assert.False(t, reused)
		assert.NotEqual(t, "UOHOTEL9", orderNo)
	})
}

func TestNarrowMutators(t *testing.T) {
	ctx := context.Background()
	repo := newMemOrderRepository()
	repo.put(unpaidOrder("UOSHOP1", 7, model.OrderTypeShopping, nil))
	svc, _ := newTestService(repo, nil)

	ok, err := svc.UpdateModuleOrderID(ctx, "UOSHOP1", 12)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.UpdateTotalAmount(ctx, "UOSHOP1", decimal.RequireFromString("30"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.UpdateTotalAmount(ctx, "missing", decimal.RequireFromString("30"))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.UpdateTotalAmount(ctx, "UOSHOP1", decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	found, err := svc.FindUnpaidOrderByModuleOrderID(ctx, 12, model.OrderTypeShopping)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "UOSHOP1", found.OrderNo)
	assert.True(t, found.TotalAmount.Equal(decimal.RequireFromString("30")))

	found, err = svc.FindUnpaidOrderByUserIDAndType(ctx, 7, model.OrderTypeHotel)
	require.NoError(t, err)
	assert.Nil(t, found)
}
