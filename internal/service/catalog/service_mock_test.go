package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

var _ catalogClient = &catalogClientMock{}

type catalogClientMock struct {
	VehicleYearsFunc    func(ctx context.Context, vehicleMake, model string) ([]int, error)
	GroupedProductsFunc func(ctx context.Context, q domain.VehicleQuery) ([]domain.ProductGroup, error)
	PresignedURLFunc    func(ctx context.Context, key string) (string, error)

	calls struct {
		VehicleYears []struct {
			Make  string
			Model string
		}
		GroupedProducts []struct {
			Q domain.VehicleQuery
		}
		PresignedURL []struct {
			Key string
		}
	}
	lockVehicleYears    sync.RWMutex
	lockGroupedProducts sync.RWMutex
	lockPresignedURL    sync.RWMutex
}

func (mock *catalogClientMock) VehicleYears(ctx context.Context, vehicleMake, model string) ([]int, error) {
	if mock.VehicleYearsFunc == nil {
		panic("catalogClientMock.VehicleYearsFunc: method is nil but catalogClient.VehicleYears was just called")
	}
	mock.lockVehicleYears.Lock()
	mock.calls.VehicleYears = append(mock.calls.VehicleYears, struct {
		Make  string
		Model string
	}{Make: vehicleMake, Model: model})
	mock.lockVehicleYears.Unlock()
	return mock.VehicleYearsFunc(ctx, vehicleMake, model)
}

func (mock *catalogClientMock) VehicleYearsCalls() []struct {
	Make  string
	Model string
} {
	mock.lockVehicleYears.RLock()
	calls := mock.calls.VehicleYears
	mock.lockVehicleYears.RUnlock()
	return calls
}

func (mock *catalogClientMock) GroupedProducts(ctx context.Context, q domain.VehicleQuery) ([]domain.ProductGroup, error) {
	if mock.GroupedProductsFunc == nil {
		panic("catalogClientMock.GroupedProductsFunc: method is nil but catalogClient.GroupedProducts was just called")
	}
	mock.lockGroupedProducts.Lock()
	mock.calls.GroupedProducts = append(mock.calls.GroupedProducts, struct{ Q domain.VehicleQuery }{Q: q})
	mock.lockGroupedProducts.Unlock()
	return mock.GroupedProductsFunc(ctx, q)
}

func (mock *catalogClientMock) GroupedProductsCalls() []struct{ Q domain.VehicleQuery } {
	mock.lockGroupedProducts.RLock()
	calls := mock.calls.GroupedProducts
	mock.lockGroupedProducts.RUnlock()
	return calls
}

func (mock *catalogClientMock) PresignedURL(ctx context.Context, key string) (string, error) {
	if mock.PresignedURLFunc == nil {
		panic("catalogClientMock.PresignedURLFunc: method is nil but catalogClient.PresignedURL was just called")
	}
	mock.lockPresignedURL.Lock()
	mock.calls.PresignedURL = append(mock.calls.PresignedURL, struct{ Key string }{Key: key})
	mock.lockPresignedURL.Unlock()
	return mock.PresignedURLFunc(ctx, key)
}

func (mock *catalogClientMock) PresignedURLCalls() []struct{ Key string } {
	mock.lockPresignedURL.RLock()
	calls := mock.calls.PresignedURL
	mock.lockPresignedURL.RUnlock()
	return calls
}
