package catalogcache_test

import (
	"context"
	"errors"
	"testing"

	"shipping/internal/adapters/out/catalogcache"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"
	"shipping/internal/core/domain/model/zone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockZoneRepository struct {
	mock.Mock
}

func (m *MockZoneRepository) Add(ctx context.Context, aggregate *zone.Zone) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockZoneRepository) Update(ctx context.Context, aggregate *zone.Zone) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*zone.Zone), args.Error(1)
}

type MockMethodRepository struct {
	mock.Mock
}

func (m *MockMethodRepository) Add(ctx context.Context, aggregate *method.Method) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMethodRepository) Update(ctx context.Context, aggregate *method.Method) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMethodRepository) Get(ctx context.Context, id kernel.UUID) (*method.Method, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*method.Method), args.Error(1)
}

func (m *MockMethodRepository) GetByCode(ctx context.Context, code string) (*method.Method, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*method.Method), args.Error(1)
}

func (m *MockMethodRepository) GetAll(ctx context.Context) ([]*method.Method, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*method.Method), args.Error(1)
}

func testZone(t *testing.T, name string) *zone.Zone {
	t.Helper()
	coverage, err := zone.NewCountryCoverage("US", nil, nil, nil)
	require.NoError(t, err)
	z, err := zone.NewZone(kernel.NewUUID(), kernel.PlatformOwner(), name, "", []zone.CountryCoverage{coverage})
	require.NoError(t, err)
	return z
}

func testMethod(t *testing.T, code string) *method.Method {
	t.Helper()
	rate, err := method.NewFlatRate(5)
	require.NoError(t, err)
	m, err := method.NewMethod(kernel.NewUUID(), kernel.PlatformOwner(), code, code, "", rate)
	require.NoError(t, err)
	return m
}

func TestProvider_Catalog(t *testing.T) {
	ctx := context.Background()

	t.Run("first_call_loads_the_snapshot_lazily", func(t *testing.T) {
		// Arrange
		zones := &MockZoneRepository{}
		methods := &MockMethodRepository{}
		zones.On("GetAll", ctx).Return([]*zone.Zone{testZone(t, "Domestic")}, nil).Once()
		methods.On("GetAll", ctx).Return([]*method.Method{testMethod(t, "standard")}, nil).Once()
		provider := catalogcache.NewProvider(zones, methods, nil)

		// Act
		catalog, err := provider.Catalog(ctx)

		// Assert
		require.NoError(t, err)
		assert.Len(t, catalog.Zones(), 1)
		assert.Len(t, catalog.Methods(), 1)
		zones.AssertExpectations(t)
		methods.AssertExpectations(t)
	})

	t.Run("subsequent_calls_reuse_the_snapshot", func(t *testing.T) {
		// Arrange
		zones := &MockZoneRepository{}
		methods := &MockMethodRepository{}
		zones.On("GetAll", ctx).Return([]*zone.Zone{}, nil).Once()
		methods.On("GetAll", ctx).Return([]*method.Method{}, nil).Once()
		provider := catalogcache.NewProvider(zones, methods, nil)

		// Act
		_, err1 := provider.Catalog(ctx)
		_, err2 := provider.Catalog(ctx)

		// Assert
		require.NoError(t, err1)
		require.NoError(t, err2)
		zones.AssertNumberOfCalls(t, "GetAll", 1)
	})

	t.Run("load_failure_is_returned", func(t *testing.T) {
		// Arrange
		zones := &MockZoneRepository{}
		methods := &MockMethodRepository{}
		zones.On("GetAll", ctx).Return(nil, errors.New("connection refused"))
		provider := catalogcache.NewProvider(zones, methods, nil)

		// Act
		_, err := provider.Catalog(ctx)

		// Assert
		require.Error(t, err)
		methods.AssertNotCalled(t, "GetAll", ctx)
	})
}

func TestProvider_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("swaps_in_the_fresh_snapshot", func(t *testing.T) {
		// Arrange
		zones := &MockZoneRepository{}
		methods := &MockMethodRepository{}
		zones.On("GetAll", ctx).Return([]*zone.Zone{}, nil).Once()
		methods.On("GetAll", ctx).Return([]*method.Method{}, nil).Once()
		provider := catalogcache.NewProvider(zones, methods, nil)
		_, err := provider.Catalog(ctx)
		require.NoError(t, err)

		zones.On("GetAll", ctx).Return([]*zone.Zone{testZone(t, "Europe")}, nil).Once()
		methods.On("GetAll", ctx).Return([]*method.Method{testMethod(t, "express")}, nil).Once()

		// Act
		err = provider.Refresh(ctx)

		// Assert
		require.NoError(t, err)
		catalog, err := provider.Catalog(ctx)
		require.NoError(t, err)
		assert.Len(t, catalog.Zones(), 1)
		assert.Equal(t, "express", catalog.Methods()[0].Code())
	})

	t.Run("failed_refresh_keeps_the_previous_snapshot", func(t *testing.T) {
		// Arrange
		zones := &MockZoneRepository{}
		methods := &MockMethodRepository{}
		zones.On("GetAll", ctx).Return([]*zone.Zone{testZone(t, "Domestic")}, nil).Once()
		methods.On("GetAll", ctx).Return([]*method.Method{}, nil).Once()
		provider := catalogcache.NewProvider(zones, methods, nil)
		require.NoError(t, provider.Refresh(ctx))

		zones.On("GetAll", ctx).Return(nil, errors.New("connection refused")).Once()

		// Act
		err := provider.Refresh(ctx)

		// Assert
		require.Error(t, err)
		catalog, catalogErr := provider.Catalog(ctx)
		require.NoError(t, catalogErr)
		assert.Len(t, catalog.Zones(), 1)
	})
}
