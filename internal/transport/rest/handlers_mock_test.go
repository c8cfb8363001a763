package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
	"github.com/heartmarshall/partsdesk-backend/internal/service/notes"
	"github.com/heartmarshall/partsdesk-backend/internal/service/order"
	"github.com/heartmarshall/partsdesk-backend/internal/service/problempart"
)

var (
	_ orderService       = &orderServiceMock{}
	_ noteService        = &noteServiceMock{}
	_ problemPartService = &problemPartServiceMock{}
	_ catalogService     = &catalogServiceMock{}
)

type orderServiceMock struct {
	SearchFunc func(ctx context.Context, query string) ([]domain.Order, error)
	ListFunc   func(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	GetFunc    func(ctx context.Context, id string) (*domain.Order, error)
	UpdateFunc func(ctx context.Context, input order.UpdateInput) (*domain.Order, error)
	ImportFunc func(ctx context.Context, input order.ImportInput) (int, error)

	calls struct {
		Search []struct{ Query string }
		List   []struct{ Filter domain.OrderFilter }
		Get    []struct{ ID string }
		Update []struct{ Input order.UpdateInput }
		Import []struct{ Input order.ImportInput }
	}
	lockSearch sync.RWMutex
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockUpdate sync.RWMutex
	lockImport sync.RWMutex
}

func (mock *orderServiceMock) Search(ctx context.Context, query string) ([]domain.Order, error) {
	if mock.SearchFunc == nil {
		panic("orderServiceMock.SearchFunc: method is nil but orderService.Search was just called")
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, struct{ Query string }{Query: query})
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, query)
}

func (mock *orderServiceMock) SearchCalls() []struct{ Query string } {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *orderServiceMock) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	if mock.ListFunc == nil {
		panic("orderServiceMock.ListFunc: method is nil but orderService.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Filter domain.OrderFilter }{Filter: filter})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *orderServiceMock) ListCalls() []struct{ Filter domain.OrderFilter } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *orderServiceMock) Get(ctx context.Context, id string) (*domain.Order, error) {
	if mock.GetFunc == nil {
		panic("orderServiceMock.GetFunc: method is nil but orderService.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ ID string }{ID: id})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *orderServiceMock) GetCalls() []struct{ ID string } {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *orderServiceMock) Update(ctx context.Context, input order.UpdateInput) (*domain.Order, error) {
	if mock.UpdateFunc == nil {
		panic("orderServiceMock.UpdateFunc: method is nil but orderService.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Input order.UpdateInput }{Input: input})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *orderServiceMock) UpdateCalls() []struct{ Input order.UpdateInput } {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *orderServiceMock) Import(ctx context.Context, input order.ImportInput) (int, error) {
	if mock.ImportFunc == nil {
		panic("orderServiceMock.ImportFunc: method is nil but orderService.Import was just called")
	}
	mock.lockImport.Lock()
	mock.calls.Import = append(mock.calls.Import, struct{ Input order.ImportInput }{Input: input})
	mock.lockImport.Unlock()
	return mock.ImportFunc(ctx, input)
}

func (mock *orderServiceMock) ImportCalls() []struct{ Input order.ImportInput } {
	mock.lockImport.RLock()
	calls := mock.calls.Import
	mock.lockImport.RUnlock()
	return calls
}

type noteServiceMock struct {
	ListNotesFunc   func(ctx context.Context, input notes.ListNotesInput) (*notes.Thread, error)
	AddNoteFunc     func(ctx context.Context, input notes.AddNoteInput) (*domain.NoteEntry, error)
	DraftsFunc      func(ctx context.Context, orderID string) (map[domain.NoteChannel]string, error)
	SaveDraftFunc   func(ctx context.Context, input notes.DraftInput) error
	ClearDraftFunc  func(ctx context.Context, input notes.DraftInput) error
	SubmitDraftFunc func(ctx context.Context, input notes.DraftInput) (*domain.NoteEntry, error)

	calls struct {
		ListNotes   []struct{ Input notes.ListNotesInput }
		AddNote     []struct{ Input notes.AddNoteInput }
		Drafts      []struct{ OrderID string }
		SaveDraft   []struct{ Input notes.DraftInput }
		ClearDraft  []struct{ Input notes.DraftInput }
		SubmitDraft []struct{ Input notes.DraftInput }
	}
	lockListNotes   sync.RWMutex
	lockAddNote     sync.RWMutex
	lockDrafts      sync.RWMutex
	lockSaveDraft   sync.RWMutex
	lockClearDraft  sync.RWMutex
	lockSubmitDraft sync.RWMutex
}

func (mock *noteServiceMock) ListNotes(ctx context.Context, input notes.ListNotesInput) (*notes.Thread, error) {
	if mock.ListNotesFunc == nil {
		panic("noteServiceMock.ListNotesFunc: method is nil but noteService.ListNotes was just called")
	}
	mock.lockListNotes.Lock()
	mock.calls.ListNotes = append(mock.calls.ListNotes, struct{ Input notes.ListNotesInput }{Input: input})
	mock.lockListNotes.Unlock()
	return mock.ListNotesFunc(ctx, input)
}

func (mock *noteServiceMock) ListNotesCalls() []struct{ Input notes.ListNotesInput } {
	mock.lockListNotes.RLock()
	calls := mock.calls.ListNotes
	mock.lockListNotes.RUnlock()
	return calls
}

func (mock *noteServiceMock) AddNote(ctx context.Context, input notes.AddNoteInput) (*domain.NoteEntry, error) {
	if mock.AddNoteFunc == nil {
		panic("noteServiceMock.AddNoteFunc: method is nil but noteService.AddNote was just called")
	}
	mock.lockAddNote.Lock()
	mock.calls.AddNote = append(mock.calls.AddNote, struct{ Input notes.AddNoteInput }{Input: input})
	mock.lockAddNote.Unlock()
	return mock.AddNoteFunc(ctx, input)
}

func (mock *noteServiceMock) AddNoteCalls() []struct{ Input notes.AddNoteInput } {
	mock.lockAddNote.RLock()
	calls := mock.calls.AddNote
	mock.lockAddNote.RUnlock()
	return calls
}

func (mock *noteServiceMock) Drafts(ctx context.Context, orderID string) (map[domain.NoteChannel]string, error) {
	if mock.DraftsFunc == nil {
		panic("noteServiceMock.DraftsFunc: method is nil but noteService.Drafts was just called")
	}
	mock.lockDrafts.Lock()
	mock.calls.Drafts = append(mock.calls.Drafts, struct{ OrderID string }{OrderID: orderID})
	mock.lockDrafts.Unlock()
	return mock.DraftsFunc(ctx, orderID)
}

func (mock *noteServiceMock) DraftsCalls() []struct{ OrderID string } {
	mock.lockDrafts.RLock()
	calls := mock.calls.Drafts
	mock.lockDrafts.RUnlock()
	return calls
}

func (mock *noteServiceMock) SaveDraft(ctx context.Context, input notes.DraftInput) error {
	if mock.SaveDraftFunc == nil {
		panic("noteServiceMock.SaveDraftFunc: method is nil but noteService.SaveDraft was just called")
	}
	mock.lockSaveDraft.Lock()
	mock.calls.SaveDraft = append(mock.calls.SaveDraft, struct{ Input notes.DraftInput }{Input: input})
	mock.lockSaveDraft.Unlock()
	return mock.SaveDraftFunc(ctx, input)
}

func (mock *noteServiceMock) SaveDraftCalls() []struct{ Input notes.DraftInput } {
	mock.lockSaveDraft.RLock()
	calls := mock.calls.SaveDraft
	mock.lockSaveDraft.RUnlock()
	return calls
}

func (mock *noteServiceMock) ClearDraft(ctx context.Context, input notes.DraftInput) error {
	if mock.ClearDraftFunc == nil {
		panic("noteServiceMock.ClearDraftFunc: method is nil but noteService.ClearDraft was just called")
	}
	mock.lockClearDraft.Lock()
	mock.calls.ClearDraft = append(mock.calls.ClearDraft, struct{ Input notes.DraftInput }{Input: input})
	mock.lockClearDraft.Unlock()
	return mock.ClearDraftFunc(ctx, input)
}

func (mock *noteServiceMock) ClearDraftCalls() []struct{ Input notes.DraftInput } {
	mock.lockClearDraft.RLock()
	calls := mock.calls.ClearDraft
	mock.lockClearDraft.RUnlock()
	return calls
}

func (mock *noteServiceMock) SubmitDraft(ctx context.Context, input notes.DraftInput) (*domain.NoteEntry, error) {
	if mock.SubmitDraftFunc == nil {
		panic("noteServiceMock.SubmitDraftFunc: method is nil but noteService.SubmitDraft was just called")
	}
	mock.lockSubmitDraft.Lock()
	mock.calls.SubmitDraft = append(mock.calls.SubmitDraft, struct{ Input notes.DraftInput }{Input: input})
	mock.lockSubmitDraft.Unlock()
	return mock.SubmitDraftFunc(ctx, input)
}

func (mock *noteServiceMock) SubmitDraftCalls() []struct{ Input notes.DraftInput } {
	mock.lockSubmitDraft.RLock()
	calls := mock.calls.SubmitDraft
	mock.lockSubmitDraft.RUnlock()
	return calls
}

type problemPartServiceMock struct {
	SubmitFunc func(ctx context.Context, input problempart.SubmitInput) (*domain.ProblematicPartRecord, error)
	ListFunc   func(ctx context.Context, orderID string) ([]domain.ProblematicPartRecord, error)
	GetFunc    func(ctx context.Context, id string) (*domain.ProblematicPartRecord, error)
	DeleteFunc func(ctx context.Context, id string) error

	calls struct {
		Submit []struct{ Input problempart.SubmitInput }
		List   []struct{ OrderID string }
		Get    []struct{ ID string }
		Delete []struct{ ID string }
	}
	lockSubmit sync.RWMutex
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *problemPartServiceMock) Submit(ctx context.Context, input problempart.SubmitInput) (*domain.ProblematicPartRecord, error) {
	if mock.SubmitFunc == nil {
		panic("problemPartServiceMock.SubmitFunc: method is nil but problemPartService.Submit was just called")
	}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, struct{ Input problempart.SubmitInput }{Input: input})
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *problemPartServiceMock) SubmitCalls() []struct{ Input problempart.SubmitInput } {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *problemPartServiceMock) List(ctx context.Context, orderID string) ([]domain.ProblematicPartRecord, error) {
	if mock.ListFunc == nil {
		panic("problemPartServiceMock.ListFunc: method is nil but problemPartService.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{ OrderID string }{OrderID: orderID})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, orderID)
}

func (mock *problemPartServiceMock) ListCalls() []struct{ OrderID string } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *problemPartServiceMock) Get(ctx context.Context, id string) (*domain.ProblematicPartRecord, error) {
	if mock.GetFunc == nil {
		panic("problemPartServiceMock.GetFunc: method is nil but problemPartService.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ ID string }{ID: id})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *problemPartServiceMock) GetCalls() []struct{ ID string } {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *problemPartServiceMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("problemPartServiceMock.DeleteFunc: method is nil but problemPartService.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID string }{ID: id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *problemPartServiceMock) DeleteCalls() []struct{ ID string } {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

type catalogServiceMock struct {
	VehicleYearsFunc    func(ctx context.Context, vehicleMake string, model string) ([]int, error)
	GroupedProductsFunc func(ctx context.Context, q domain.VehicleQuery) ([]domain.ProductGroup, error)
	PictureURLFunc      func(ctx context.Context, key string) (string, error)

	calls struct {
		VehicleYears    []struct {
			VehicleMake string
			Model       string
		}
		GroupedProducts []struct{ Q domain.VehicleQuery }
		PictureURL      []struct{ Key string }
	}
	lockVehicleYears    sync.RWMutex
	lockGroupedProducts sync.RWMutex
	lockPictureURL      sync.RWMutex
}

func (mock *catalogServiceMock) VehicleYears(ctx context.Context, vehicleMake string, model string) ([]int, error) {
	if mock.VehicleYearsFunc == nil {
		panic("catalogServiceMock.VehicleYearsFunc: method is nil but catalogService.VehicleYears was just called")
	}
	mock.lockVehicleYears.Lock()
	mock.calls.VehicleYears = append(mock.calls.VehicleYears, struct {
		VehicleMake string
		Model       string
	}{VehicleMake: vehicleMake, Model: model})
	mock.lockVehicleYears.Unlock()
	return mock.VehicleYearsFunc(ctx, vehicleMake, model)
}

func (mock *catalogServiceMock) VehicleYearsCalls() []struct {
	VehicleMake string
	Model       string
} {
	mock.lockVehicleYears.RLock()
	calls := mock.calls.VehicleYears
	mock.lockVehicleYears.RUnlock()
	return calls
}

func (mock *catalogServiceMock) GroupedProducts(ctx context.Context, q domain.VehicleQuery) ([]domain.ProductGroup, error) {
	if mock.GroupedProductsFunc == nil {
		panic("catalogServiceMock.GroupedProductsFunc: method is nil but catalogService.GroupedProducts was just called")
	}
	mock.lockGroupedProducts.Lock()
	mock.calls.GroupedProducts = append(mock.calls.GroupedProducts, struct{ Q domain.VehicleQuery }{Q: q})
	mock.lockGroupedProducts.Unlock()
	return mock.GroupedProductsFunc(ctx, q)
}

func (mock *catalogServiceMock) GroupedProductsCalls() []struct{ Q domain.VehicleQuery } {
	mock.lockGroupedProducts.RLock()
	calls := mock.calls.GroupedProducts
	mock.lockGroupedProducts.RUnlock()
	return calls
}

func (mock *catalogServiceMock) PictureURL(ctx context.Context, key string) (string, error) {
	if mock.PictureURLFunc == nil {
		panic("catalogServiceMock.PictureURLFunc: method is nil but catalogService.PictureURL was just called")
	}
	mock.lockPictureURL.Lock()
	mock.calls.PictureURL = append(mock.calls.PictureURL, struct{ Key string }{Key: key})
	mock.lockPictureURL.Unlock()
	return mock.PictureURLFunc(ctx, key)
}

func (mock *catalogServiceMock) PictureURLCalls() []struct{ Key string } {
	mock.lockPictureURL.RLock()
	calls := mock.calls.PictureURL
	mock.lockPictureURL.RUnlock()
	return calls
}
