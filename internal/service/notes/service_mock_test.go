package notes

import (
	"context"
	"sync"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

var _ noteRepo = &noteRepoMock{}

type noteRepoMock struct {
	ListByOrderFunc func(ctx context.Context, orderID string) ([]domain.NoteEntry, error)
	CreateFunc      func(ctx context.Context, entry domain.NoteEntry) error

	calls struct {
		ListByOrder []struct {
			OrderID string
		}
		Create []struct {
			Entry domain.NoteEntry
		}
	}
	lockListByOrder sync.RWMutex
	lockCreate      sync.RWMutex
}

func (mock *noteRepoMock) ListByOrder(ctx context.Context, orderID string) ([]domain.NoteEntry, error) {
	if mock.ListByOrderFunc == nil {
		panic("noteRepoMock.ListByOrderFunc: method is nil but noteRepo.ListByOrder was just called")
	}
	mock.lockListByOrder.Lock()
	mock.calls.ListByOrder = append(mock.calls.ListByOrder, struct{ OrderID string }{OrderID: orderID})
	mock.lockListByOrder.Unlock()
	return mock.ListByOrderFunc(ctx, orderID)
}

func (mock *noteRepoMock) ListByOrderCalls() []struct{ OrderID string } {
	mock.lockListByOrder.RLock()
	calls := mock.calls.ListByOrder
	mock.lockListByOrder.RUnlock()
	return calls
}

func (mock *noteRepoMock) Create(ctx context.Context, entry domain.NoteEntry) error {
	if mock.CreateFunc == nil {
		panic("noteRepoMock.CreateFunc: method is nil but noteRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Entry domain.NoteEntry }{Entry: entry})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *noteRepoMock) CreateCalls() []struct{ Entry domain.NoteEntry } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ draftStore = &draftStoreMock{}

type draftStoreMock struct {
	LoadFunc   func(orderID string) (map[domain.NoteChannel]string, error)
	SaveFunc   func(orderID string, ch domain.NoteChannel, text string) error
	DeleteFunc func(orderID string, ch domain.NoteChannel) error

	calls struct {
		Load []struct {
			OrderID string
		}
		Save []struct {
			OrderID string
			Ch      domain.NoteChannel
			Text    string
		}
		Delete []struct {
			OrderID string
			Ch      domain.NoteChannel
		}
	}
	lockLoad   sync.RWMutex
	lockSave   sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *draftStoreMock) Load(orderID string) (map[domain.NoteChannel]string, error) {
	if mock.LoadFunc == nil {
		panic("draftStoreMock.LoadFunc: method is nil but draftStore.Load was just called")
	}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, struct{ OrderID string }{OrderID: orderID})
	mock.lockLoad.Unlock()
	return mock.LoadFunc(orderID)
}

func (mock *draftStoreMock) LoadCalls() []struct{ OrderID string } {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *draftStoreMock) Save(orderID string, ch domain.NoteChannel, text string) error {
	if mock.SaveFunc == nil {
		panic("draftStoreMock.SaveFunc: method is nil but draftStore.Save was just called")
	}
	callInfo := struct {
		OrderID string
		Ch      domain.NoteChannel
		Text    string
	}{OrderID: orderID, Ch: ch, Text: text}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(orderID, ch, text)
}

func (mock *draftStoreMock) SaveCalls() []struct {
	OrderID string
	Ch      domain.NoteChannel
	Text    string
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *draftStoreMock) Delete(orderID string, ch domain.NoteChannel) error {
	if mock.DeleteFunc == nil {
		panic("draftStoreMock.DeleteFunc: method is nil but draftStore.Delete was just called")
	}
	callInfo := struct {
		OrderID string
		Ch      domain.NoteChannel
	}{OrderID: orderID, Ch: ch}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(orderID, ch)
}

func (mock *draftStoreMock) DeleteCalls() []struct {
	OrderID string
	Ch      domain.NoteChannel
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
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
