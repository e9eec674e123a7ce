package zonerepo_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/methodrepo"
	"shipping/internal/adapters/out/postgres/zonerepo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"
	"shipping/internal/core/domain/model/zone"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ZoneRepositoryIntegrationTestSuite provides integration tests for
// ZoneRepository using PostgreSQL containers to verify persistence behavior,
// JSONB coverage round-trips included.
type ZoneRepositoryIntegrationTestSuite struct {
	suite.Suite
	container        *postgres.PostgresContainer
	db               *gorm.DB
	zoneRepository   *zonerepo.GormZoneRepository
	methodRepository *methodrepo.GormMethodRepository
	tracker          *MockAggregateTracker
}

func (suite *ZoneRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(
		&zonerepo.ZoneDTO{},
		&zonerepo.MethodLinkDTO{},
		&methodrepo.MethodDTO{},
	))
}

func (suite *ZoneRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE zone_method_links, shipping_zones, shipping_methods").Error)

	// Create fresh repositories and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.zoneRepository = zonerepo.NewGormZoneRepository(suite.db, suite.tracker)
	suite.methodRepository = methodrepo.NewGormMethodRepository(suite.db, suite.tracker)
}

func (suite *ZoneRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ZoneRepositoryIntegrationTestSuite) newZone(name string, countries []zone.CountryCoverage, links []zone.MethodLink) *zone.Zone {
	z, err := zone.RestoreZone(kernel.NewUUID(), kernel.PlatformOwner(), name, "", countries, links, true)
	suite.Require().NoError(err)
	return z
}

func (suite *ZoneRepositoryIntegrationTestSuite) usCoverage() zone.CountryCoverage {
	postalRange, err := zone.NewPostalCodeRange("90001", "96162")
	suite.Require().NoError(err)
	coverage, err := zone.NewCountryCoverage("US", []string{"CA"}, []zone.PostalCodeRange{postalRange}, []string{"Los Angeles"})
	suite.Require().NoError(err)
	return coverage
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestAddAndGetZone() {
	// Arrange
	ctx := context.Background()
	created := suite.newZone("Domestic", []zone.CountryCoverage{suite.usCoverage()}, nil)

	// Act
	suite.Require().NoError(suite.zoneRepository.Add(ctx, created))
	loaded, err := suite.zoneRepository.Get(ctx, created.ID())

	// Assert: coverage entries round-trip through JSONB intact
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(created))
	suite.Equal("Domestic", loaded.Name())
	suite.Require().Len(loaded.Countries(), 1)

	coverage := loaded.Countries()[0]
	suite.Equal("US", coverage.CountryCode())
	suite.Equal([]string{"CA"}, coverage.Regions())
	suite.Require().Len(coverage.PostalCodes(), 1)
	suite.Equal("90001", coverage.PostalCodes()[0].Min())
	suite.Equal("96162", coverage.PostalCodes()[0].Max())
	suite.Equal([]string{"Los Angeles"}, coverage.Cities())
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestMethodLinksRoundTrip() {
	// Arrange: a link with a custom flat-rate override
	ctx := context.Background()
	override, err := method.NewFlatRate(4.50)
	suite.Require().NoError(err)
	link, err := zone.NewMethodLink(kernel.NewUUID(), override)
	suite.Require().NoError(err)
	inactive, err := zone.RestoreMethodLink(kernel.NewUUID(), false, nil)
	suite.Require().NoError(err)

	created := suite.newZone("Linked", []zone.CountryCoverage{suite.usCoverage()}, []zone.MethodLink{link, inactive})

	// Act
	suite.Require().NoError(suite.zoneRepository.Add(ctx, created))
	loaded, err := suite.zoneRepository.Get(ctx, created.ID())

	// Assert
	suite.Require().NoError(err)
	suite.Require().Len(loaded.MethodLinks(), 2)

	byID := make(map[string]zone.MethodLink, 2)
	for _, l := range loaded.MethodLinks() {
		byID[l.MethodID().String()] = l
	}

	withOverride := byID[link.MethodID().String()]
	suite.True(withOverride.IsActive())
	suite.Require().NotNil(withOverride.CustomRates())
	suite.Equal("flat_rate", withOverride.CustomRates().Type())

	withoutOverride := byID[inactive.MethodID().String()]
	suite.False(withoutOverride.IsActive())
	suite.Nil(withoutOverride.CustomRates())
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestUpdateReplacesLinks() {
	// Arrange
	ctx := context.Background()
	first, err := zone.NewMethodLink(kernel.NewUUID(), nil)
	suite.Require().NoError(err)
	created := suite.newZone("Mutable", []zone.CountryCoverage{suite.usCoverage()}, []zone.MethodLink{first})
	suite.Require().NoError(suite.zoneRepository.Add(ctx, created))

	// Act: drop the old link, add a new one, deactivate the zone
	second, err := zone.NewMethodLink(kernel.NewUUID(), nil)
	suite.Require().NoError(err)
	created.UnlinkMethod(first.MethodID())
	created.LinkMethod(second)
	created.Deactivate()
	suite.Require().NoError(suite.zoneRepository.Update(ctx, created))

	loaded, err := suite.zoneRepository.Get(ctx, created.ID())

	// Assert
	suite.Require().NoError(err)
	suite.False(loaded.IsActive())
	suite.Require().Len(loaded.MethodLinks(), 1)
	suite.True(loaded.MethodLinks()[0].MethodID().IsEqual(second.MethodID()))
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestGetAllPreservesCreationOrder() {
	// Arrange
	ctx := context.Background()
	for _, name := range []string{"First", "Second", "Third"} {
		suite.Require().NoError(suite.zoneRepository.Add(ctx,
			suite.newZone(name, []zone.CountryCoverage{suite.usCoverage()}, nil)))
	}

	// Act
	zones, err := suite.zoneRepository.GetAll(ctx)

	// Assert
	suite.Require().NoError(err)
	suite.Require().Len(zones, 3)
	suite.Equal("First", zones[0].Name())
	suite.Equal("Second", zones[1].Name())
	suite.Equal("Third", zones[2].Name())
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestGetUnknownZoneIsNotFound() {
	// Act
	_, err := suite.zoneRepository.Get(context.Background(), kernel.NewUUID())

	// Assert
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestMethodRepositoryRoundTrip() {
	// Arrange: a fully configured method exercises every mapped column
	ctx := context.Background()
	tier, err := method.NewWeightTier(0, 5, 10, 2)
	suite.Require().NoError(err)
	strategy, err := method.NewWeightBased([]method.WeightTier{tier}, 3)
	suite.Require().NoError(err)

	created, err := method.NewMethod(kernel.NewUUID(), kernel.PlatformOwner(), "ground", "Ground", "5-7 days", strategy)
	suite.Require().NoError(err)
	created.SetCarrier("UPS", "Ground")
	created.SetFeatures([]string{"tracking", "insurance"})

	minCost, maxCost := 5.0, 40.0
	bounds, err := method.NewCostBounds(&minCost, &maxCost)
	suite.Require().NoError(err)
	created.SetCostBounds(bounds)

	estimate, err := method.NewDeliveryEstimate(2, 4)
	suite.Require().NoError(err)
	created.SetDeliveryEstimate(estimate)

	maxWeight := 30.0
	restrictions, err := method.NewRestrictions([]string{"CU"}, &maxWeight, []kernel.UUID{kernel.NewUUID()})
	suite.Require().NoError(err)
	created.SetRestrictions(restrictions)

	// Act
	suite.Require().NoError(suite.methodRepository.Add(ctx, created))
	loaded, err := suite.methodRepository.Get(ctx, created.ID())

	// Assert
	suite.Require().NoError(err)
	suite.Equal("GROUND", loaded.Code())
	suite.Equal("UPS", loaded.CarrierName())
	suite.Equal([]string{"tracking", "insurance"}, loaded.Features())
	suite.Equal("weight_based", loaded.RateCalculation().Type())
	suite.True(loaded.HasDeliveryEstimate())
	suite.Equal(2, loaded.DeliveryEstimate().MinDays())
	suite.True(loaded.Restrictions().ExcludesCountry("cu"))
	suite.Require().NotNil(loaded.CostBounds().MaxCost())
	suite.InDelta(40.0, *loaded.CostBounds().MaxCost(), 0.0001)

	wb, ok := loaded.RateCalculation().(method.WeightBased)
	suite.Require().True(ok)
	suite.Require().Len(wb.Tiers(), 1)
	suite.InDelta(2.0, wb.Tiers()[0].AdditionalRate(), 0.0001)

	// Code uniqueness is backed by a database constraint
	duplicate, err := method.NewMethod(kernel.NewUUID(), kernel.PlatformOwner(), "GROUND", "Ground Again", "", strategy)
	suite.Require().NoError(err)
	suite.Error(suite.methodRepository.Add(ctx, duplicate))
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestGetByCode() {
	// Arrange
	ctx := context.Background()
	flat, err := method.NewFlatRate(8)
	suite.Require().NoError(err)
	created, err := method.NewMethod(kernel.NewUUID(), kernel.PlatformOwner(), "EXPRESS", "Express", "", flat)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.methodRepository.Add(ctx, created))

	// Act
	loaded, err := suite.methodRepository.GetByCode(ctx, "express")

	// Assert: lookup normalizes to upper case
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(created))

	_, err = suite.methodRepository.GetByCode(ctx, "MISSING")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestZoneRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ZoneRepositoryIntegrationTestSuite))
}
