package order

import (
	"context"
	"sync"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

var (
	_ orderRepo      = &orderRepoMock{}
	_ txManager      = &txManagerMock{}
	_ orderClient    = &orderClientMock{}
	_ eventPublisher = &eventPublisherMock{}
)

type orderRepoMock struct {
	ListRecentFunc func(ctx context.Context, limit int) ([]domain.Order, error)
	ListFunc       func(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Order, error)
	UpsertFunc     func(ctx context.Context, o domain.Order) error

	calls struct {
		ListRecent []struct {
			Limit int
		}
		List []struct {
			Filter domain.OrderFilter
		}
		GetByID []struct {
			ID string
		}
		Upsert []struct {
			O domain.Order
		}
	}
	lockListRecent sync.RWMutex
	lockList       sync.RWMutex
	lockGetByID    sync.RWMutex
	lockUpsert     sync.RWMutex
}

func (mock *orderRepoMock) ListRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	if mock.ListRecentFunc == nil {
		panic("orderRepoMock.ListRecentFunc: method is nil but orderRepo.ListRecent was just called")
	}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, struct{ Limit int }{Limit: limit})
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *orderRepoMock) ListRecentCalls() []struct{ Limit int } {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *orderRepoMock) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	if mock.ListFunc == nil {
		panic("orderRepoMock.ListFunc: method is nil but orderRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Filter domain.OrderFilter }{Filter: filter})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *orderRepoMock) ListCalls() []struct{ Filter domain.OrderFilter } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *orderRepoMock) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if mock.GetByIDFunc == nil {
		panic("orderRepoMock.GetByIDFunc: method is nil but orderRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID string }{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *orderRepoMock) GetByIDCalls() []struct{ ID string } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *orderRepoMock) Upsert(ctx context.Context, o domain.Order) error {
	if mock.UpsertFunc == nil {
		panic("orderRepoMock.UpsertFunc: method is nil but orderRepo.Upsert was just called")
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct{ O domain.Order }{O: o})
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, o)
}

func (mock *orderRepoMock) UpsertCalls() []struct{ O domain.Order } {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

type orderClientMock struct {
	UpdateOrderFunc func(ctx context.Context, o domain.Order) (*domain.Order, error)

	calls struct {
		UpdateOrder []struct {
			O domain.Order
		}
	}
	lockUpdateOrder sync.RWMutex
}

func (mock *orderClientMock) UpdateOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	if mock.UpdateOrderFunc == nil {
		panic("orderClientMock.UpdateOrderFunc: method is nil but orderClient.UpdateOrder was just called")
	}
	mock.lockUpdateOrder.Lock()
	mock.calls.UpdateOrder = append(mock.calls.UpdateOrder, struct{ O domain.Order }{O: o})
	mock.lockUpdateOrder.Unlock()
	return mock.UpdateOrderFunc(ctx, o)
}

func (mock *orderClientMock) UpdateOrderCalls() []struct{ O domain.Order } {
	mock.lockUpdateOrder.RLock()
	calls := mock.calls.UpdateOrder
	mock.lockUpdateOrder.RUnlock()
	return calls
}

type eventPublisherMock struct {
	PublishFunc func(ctx context.Context, ev domain.Event) error

	calls struct {
		Publish []struct {
			Ev domain.Event
		}
	}
	lockPublish sync.RWMutex
}

func (mock *eventPublisherMock) Publish(ctx context.Context, ev domain.Event) error {
	if mock.PublishFunc == nil {
		panic("eventPublisherMock.PublishFunc: method is nil but eventPublisher.Publish was just called")
	}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, struct{ Ev domain.Event }{Ev: ev})
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, ev)
}

func (mock *eventPublisherMock) PublishCalls() []struct{ Ev domain.Event } {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
