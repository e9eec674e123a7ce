package queries_test

import (
	"context"
	"testing"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/core/domain/model/zone"
	"shipping/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockProductCatalog struct {
	mock.Mock
}

func (m *MockProductCatalog) Resolve(ctx context.Context, quantities map[kernel.UUID]int) ([]parcel.LineItem, error) {
	args := m.Called(ctx, quantities)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]parcel.LineItem), args.Error(1)
}

type MockCatalogProvider struct {
	mock.Mock
}

func (m *MockCatalogProvider) Catalog(ctx context.Context) (services.Catalog, error) {
	args := m.Called(ctx)
	return args.Get(0).(services.Catalog), args.Error(1)
}

func (m *MockCatalogProvider) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func usAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("US", "CA", "Los Angeles", "90001", "", "")
	require.NoError(t, err)
	return addr
}

func catalogWithFlatRate(t *testing.T, rate float64) services.Catalog {
	t.Helper()
	flat, err := method.NewFlatRate(rate)
	require.NoError(t, err)
	m, err := method.NewMethod(kernel.NewUUID(), kernel.PlatformOwner(), "GROUND", "Ground", "", flat)
	require.NoError(t, err)

	coverage, err := zone.NewCountryCoverage("US", nil, nil, nil)
	require.NoError(t, err)
	link, err := zone.NewMethodLink(m.ID(), nil)
	require.NoError(t, err)
	z, err := zone.RestoreZone(kernel.NewUUID(), kernel.PlatformOwner(), "Domestic", "",
		[]zone.CountryCoverage{coverage}, []zone.MethodLink{link}, true)
	require.NoError(t, err)

	return services.NewCatalog([]*zone.Zone{z}, []*method.Method{m})
}

func TestCalculateShippingQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	productID := kernel.NewUUID()

	lineItem, err := parcel.NewLineItem(productID, "widget", 2, 25, 1.5, nil)
	require.NoError(t, err)

	t.Run("returns_ranked_options_and_package_summary", func(t *testing.T) {
		query, err := queries.NewCalculateShippingQuery(
			usAddress(t),
			[]queries.ItemQuantity{{ProductID: productID, Quantity: 2}},
			kernel.PlatformOwner(),
		)
		require.NoError(t, err)

		mockProducts := new(MockProductCatalog)
		mockCatalog := new(MockCatalogProvider)
		mockProducts.On("Resolve", ctx, map[kernel.UUID]int{productID: 2}).
			Return([]parcel.LineItem{lineItem}, nil).Once()
		mockCatalog.On("Catalog", ctx).Return(catalogWithFlatRate(t, 9.99), nil).Once()

		handler := queries.NewCalculateShippingQueryHandler(
			mockProducts, mockCatalog, services.NewShippingCalculator(nil, nil),
		)

		response, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, response.Options, 1)
		assert.Equal(t, "GROUND", response.Options[0].MethodCode)
		assert.InDelta(t, 9.99, response.Options[0].Cost, 0.0001)
		assert.InDelta(t, 3.0, response.Package.TotalWeight, 0.0001)
		assert.Equal(t, 2, response.Package.TotalItems)
		mockProducts.AssertExpectations(t)
		mockCatalog.AssertExpectations(t)
	})

	t.Run("duplicate_items_merge_their_quantities", func(t *testing.T) {
		query, err := queries.NewCalculateShippingQuery(
			usAddress(t),
			[]queries.ItemQuantity{
				{ProductID: productID, Quantity: 1},
				{ProductID: productID, Quantity: 1},
			},
			kernel.PlatformOwner(),
		)
		require.NoError(t, err)

		mockProducts := new(MockProductCatalog)
		mockCatalog := new(MockCatalogProvider)
		mockProducts.On("Resolve", ctx, map[kernel.UUID]int{productID: 2}).
			Return([]parcel.LineItem{lineItem}, nil).Once()
		mockCatalog.On("Catalog", ctx).Return(catalogWithFlatRate(t, 5), nil).Once()

		handler := queries.NewCalculateShippingQueryHandler(
			mockProducts, mockCatalog, services.NewShippingCalculator(nil, nil),
		)

		_, err = handler.Handle(ctx, query)

		require.NoError(t, err)
		mockProducts.AssertExpectations(t)
	})

	t.Run("no_coverage_error_passes_through", func(t *testing.T) {
		germany, err := kernel.NewAddress("DE", "", "Berlin", "10115", "", "")
		require.NoError(t, err)
		query, err := queries.NewCalculateShippingQuery(
			germany,
			[]queries.ItemQuantity{{ProductID: productID, Quantity: 1}},
			kernel.PlatformOwner(),
		)
		require.NoError(t, err)

		mockProducts := new(MockProductCatalog)
		mockCatalog := new(MockCatalogProvider)
		mockProducts.On("Resolve", ctx, mock.Anything).Return([]parcel.LineItem{lineItem}, nil).Once()
		mockCatalog.On("Catalog", ctx).Return(catalogWithFlatRate(t, 5), nil).Once()

		handler := queries.NewCalculateShippingQueryHandler(
			mockProducts, mockCatalog, services.NewShippingCalculator(nil, nil),
		)

		_, err = handler.Handle(ctx, query)

		require.ErrorIs(t, err, services.ErrNoCoverage)
	})

	t.Run("unconstructed_query_is_rejected", func(t *testing.T) {
		handler := queries.NewCalculateShippingQueryHandler(
			new(MockProductCatalog), new(MockCatalogProvider), services.NewShippingCalculator(nil, nil),
		)

		_, err := handler.Handle(ctx, queries.CalculateShippingQuery{})

		require.ErrorIs(t, err, queries.ErrCalculateShippingQueryIsNotConstructed)
	})
}

func TestNewCalculateShippingQuery(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("empty_items_are_rejected", func(t *testing.T) {
		_, err := queries.NewCalculateShippingQuery(usAddress(t), nil, kernel.PlatformOwner())
		require.ErrorIs(t, err, queries.ErrItemsAreRequired)
	})

	t.Run("non_positive_quantity_is_rejected", func(t *testing.T) {
		_, err := queries.NewCalculateShippingQuery(
			usAddress(t),
			[]queries.ItemQuantity{{ProductID: productID, Quantity: 0}},
			kernel.PlatformOwner(),
		)
		require.Error(t, err)
	})

	t.Run("unconstructed_address_is_rejected", func(t *testing.T) {
		_, err := queries.NewCalculateShippingQuery(
			kernel.Address{},
			[]queries.ItemQuantity{{ProductID: productID, Quantity: 1}},
			kernel.PlatformOwner(),
		)
		require.Error(t, err)
	})
}
