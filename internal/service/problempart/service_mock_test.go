package problempart

import (
	"context"
	"sync"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

var _ partsClient = &partsClientMock{}

type partsClientMock struct {
	CreateProblematicPartFunc func(ctx context.Context, p domain.ProblematicPart) (*domain.ProblematicPartRecord, error)
	UpdateProblematicPartFunc func(ctx context.Context, id string, p domain.ProblematicPart) (*domain.ProblematicPartRecord, error)
	ListProblematicPartsFunc  func(ctx context.Context, orderID string) ([]domain.ProblematicPartRecord, error)
	GetProblematicPartFunc    func(ctx context.Context, id string) (*domain.ProblematicPartRecord, error)
	DeleteProblematicPartFunc func(ctx context.Context, id string) error

	calls struct {
		CreateProblematicPart []struct {
			P domain.ProblematicPart
		}
		UpdateProblematicPart []struct {
			ID string
			P  domain.ProblematicPart
		}
		ListProblematicParts []struct {
			OrderID string
		}
		GetProblematicPart []struct {
			ID string
		}
		DeleteProblematicPart []struct {
			ID string
		}
	}
	lockCreateProblematicPart sync.RWMutex
	lockUpdateProblematicPart sync.RWMutex
	lockListProblematicParts  sync.RWMutex
	lockGetProblematicPart    sync.RWMutex
	lockDeleteProblematicPart sync.RWMutex
}

func (mock *partsClientMock) CreateProblematicPart(ctx context.Context, p domain.ProblematicPart) (*domain.ProblematicPartRecord, error) {
	if mock.CreateProblematicPartFunc == nil {
		panic("partsClientMock.CreateProblematicPartFunc: method is nil but partsClient.CreateProblematicPart was just called")
	}
	mock.lockCreateProblematicPart.Lock()
	mock.calls.CreateProblematicPart = append(mock.calls.CreateProblematicPart, struct{ P domain.ProblematicPart }{P: p})
	mock.lockCreateProblematicPart.Unlock()
	return mock.CreateProblematicPartFunc(ctx, p)
}

func (mock *partsClientMock) CreateProblematicPartCalls() []struct{ P domain.ProblematicPart } {
	mock.lockCreateProblematicPart.RLock()
	calls := mock.calls.CreateProblematicPart
	mock.lockCreateProblematicPart.RUnlock()
	return calls
}

func (mock *partsClientMock) UpdateProblematicPart(ctx context.Context, id string, p domain.ProblematicPart) (*domain.ProblematicPartRecord, error) {
	if mock.UpdateProblematicPartFunc == nil {
		panic("partsClientMock.UpdateProblematicPartFunc: method is nil but partsClient.UpdateProblematicPart was just called")
	}
	callInfo := struct {
		ID string
		P  domain.ProblematicPart
	}{ID: id, P: p}
	mock.lockUpdateProblematicPart.Lock()
	mock.calls.UpdateProblematicPart = append(mock.calls.UpdateProblematicPart, callInfo)
	mock.lockUpdateProblematicPart.Unlock()
	return mock.UpdateProblematicPartFunc(ctx, id, p)
}

func (mock *partsClientMock) UpdateProblematicPartCalls() []struct {
	ID string
	P  domain.ProblematicPart
} {
	mock.lockUpdateProblematicPart.RLock()
	calls := mock.calls.UpdateProblematicPart
	mock.lockUpdateProblematicPart.RUnlock()
	return calls
}

func (mock *partsClientMock) ListProblematicParts(ctx context.Context, orderID string) ([]domain.ProblematicPartRecord, error) {
	if mock.ListProblematicPartsFunc == nil {
		panic("partsClientMock.ListProblematicPartsFunc: method is nil but partsClient.ListProblematicParts was just called")
	}
	mock.lockListProblematicParts.Lock()
	mock.calls.ListProblematicParts = append(mock.calls.ListProblematicParts, struct{ OrderID string }{OrderID: orderID})
	mock.lockListProblematicParts.Unlock()
	return mock.ListProblematicPartsFunc(ctx, orderID)
}

func (mock *partsClientMock) ListProblematicPartsCalls() []struct{ OrderID string } {
	mock.lockListProblematicParts.RLock()
	calls := mock.calls.ListProblematicParts
	mock.lockListProblematicParts.RUnlock()
	return calls
}

func (mock *partsClientMock) GetProblematicPart(ctx context.Context, id string) (*domain.ProblematicPartRecord, error) {
	if mock.GetProblematicPartFunc == nil {
		panic("partsClientMock.GetProblematicPartFunc: method is nil but partsClient.GetProblematicPart was just called")
	}
	mock.lockGetProblematicPart.Lock()
	mock.calls.GetProblematicPart = append(mock.calls.GetProblematicPart, struct{ ID string }{ID: id})
	mock.lockGetProblematicPart.Unlock()
	return mock.GetProblematicPartFunc(ctx, id)
}

func (mock *partsClientMock) GetProblematicPartCalls() []struct{ ID string } {
	mock.lockGetProblematicPart.RLock()
	calls := mock.calls.GetProblematicPart
	mock.lockGetProblematicPart.RUnlock()
	return calls
}

func (mock *partsClientMock) DeleteProblematicPart(ctx context.Context, id string) error {
	if mock.DeleteProblematicPartFunc == nil {
		panic("partsClientMock.DeleteProblematicPartFunc: method is nil but partsClient.DeleteProblematicPart was just called")
	}
	mock.lockDeleteProblematicPart.Lock()
	mock.calls.DeleteProblematicPart = append(mock.calls.DeleteProblematicPart, struct{ ID string }{ID: id})
	mock.lockDeleteProblematicPart.Unlock()
	return mock.DeleteProblematicPartFunc(ctx, id)
}

func (mock *partsClientMock) DeleteProblematicPartCalls() []struct{ ID string } {
	mock.lockDeleteProblematicPart.RLock()
	calls := mock.calls.DeleteProblematicPart
	mock.lockDeleteProblematicPart.RUnlock()
	return calls
}

var _ eventPublisher = &eventPublisherMock{}

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
