package queries_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/methodrepo"
	"shipping/internal/adapters/out/postgres/zonerepo"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"
	"shipping/internal/core/domain/model/zone"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListQueriesHandlerTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	zonesHandler   queries.ListZonesQueryHandler
	methodsHandler queries.ListMethodsQueryHandler
}

func (suite *ListQueriesHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&zonerepo.ZoneDTO{}, &zonerepo.MethodLinkDTO{}, &methodrepo.MethodDTO{})
	suite.Require().NoError(err)

	suite.zonesHandler = queries.NewListZonesQueryHandler(db)
	suite.methodsHandler = queries.NewListMethodsQueryHandler(db)
}

func (suite *ListQueriesHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListQueriesHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipping_zones CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE shipping_methods CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ListQueriesHandlerTestSuite) TestHandleZones_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewListZonesQuery(kernel.PlatformOwner())

	result, err := suite.zonesHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListQueriesHandlerTestSuite) TestHandleZones_ReturnsZonesInCreationOrder() {
	methodID := suite.saveMethod(kernel.PlatformOwner(), "standard")
	suite.saveZone(kernel.PlatformOwner(), "Domestic", "US", &methodID)
	suite.saveZone(kernel.PlatformOwner(), "Europe", "DE", nil)

	query := queries.NewListZonesQuery(kernel.PlatformOwner())

	result, err := suite.zonesHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("Domestic", result[0].Name)
	suite.Equal([]string{"US"}, result[0].CountryCodes)
	suite.Equal(1, result[0].MethodCount)
	suite.True(result[0].IsActive)

	suite.Equal("Europe", result[1].Name)
	suite.Equal(0, result[1].MethodCount)
}

func (suite *ListQueriesHandlerTestSuite) TestHandleZones_ScopesStoreOwnedZones() {
	storeA, err := kernel.StoreOwner(kernel.NewUUID())
	suite.Require().NoError(err)
	storeB, err := kernel.StoreOwner(kernel.NewUUID())
	suite.Require().NoError(err)

	suite.saveZone(kernel.PlatformOwner(), "Platform", "US", nil)
	suite.saveZone(storeA, "Store A", "CA", nil)
	suite.saveZone(storeB, "Store B", "MX", nil)

	result, err := suite.zonesHandler.Handle(context.Background(), queries.NewListZonesQuery(storeA))

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Platform", result[0].Name)
	suite.Equal("Store A", result[1].Name)
}

func (suite *ListQueriesHandlerTestSuite) TestHandleZones_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListZonesQuery{}

	result, err := suite.zonesHandler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewListZonesQuery constructor")
}

func (suite *ListQueriesHandlerTestSuite) TestHandleMethods_ReturnsReadModels() {
	suite.saveMethod(kernel.PlatformOwner(), "standard")
	suite.saveMethod(kernel.PlatformOwner(), "express")

	query := queries.NewListMethodsQuery(kernel.PlatformOwner())

	result, err := suite.methodsHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("standard", result[0].Code)
	suite.Equal(method.TypeFlatRate, result[0].RateType)
	suite.True(result[0].IsActive)
	suite.Equal("express", result[1].Code)
}

func (suite *ListQueriesHandlerTestSuite) TestHandleMethods_ScopesStoreOwnedMethods() {
	store, err := kernel.StoreOwner(kernel.NewUUID())
	suite.Require().NoError(err)

	suite.saveMethod(kernel.PlatformOwner(), "standard")
	suite.saveMethod(store, "store-only")

	platformResult, err := suite.methodsHandler.Handle(
		context.Background(), queries.NewListMethodsQuery(kernel.PlatformOwner()),
	)
	suite.Require().NoError(err)
	suite.Require().Len(platformResult, 1)
	suite.Equal("standard", platformResult[0].Code)

	storeResult, err := suite.methodsHandler.Handle(
		context.Background(), queries.NewListMethodsQuery(store),
	)
	suite.Require().NoError(err)
	suite.Len(storeResult, 2)
}

func (suite *ListQueriesHandlerTestSuite) saveMethod(owner kernel.Owner, code string) kernel.UUID {
	rate, err := method.NewFlatRate(5)
	suite.Require().NoError(err)

	m, err := method.NewMethod(kernel.NewUUID(), owner, code, code, "", rate)
	suite.Require().NoError(err)

	repo := methodrepo.NewGormMethodRepository(suite.db, &noopAggregateTracker{})
	err = repo.Add(context.Background(), m)
	suite.Require().NoError(err)

	return m.ID()
}

func (suite *ListQueriesHandlerTestSuite) saveZone(owner kernel.Owner, name, country string, methodID *kernel.UUID) {
	coverage, err := zone.NewCountryCoverage(country, nil, nil, nil)
	suite.Require().NoError(err)

	z, err := zone.NewZone(kernel.NewUUID(), owner, name, "", []zone.CountryCoverage{coverage})
	suite.Require().NoError(err)

	if methodID != nil {
		link, linkErr := zone.NewMethodLink(*methodID, nil)
		suite.Require().NoError(linkErr)
		z.LinkMethod(link)
	}

	repo := zonerepo.NewGormZoneRepository(suite.db, &noopAggregateTracker{})
	err = repo.Add(context.Background(), z)
	suite.Require().NoError(err)
}

func TestListQueriesHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListQueriesHandlerTestSuite))
}

// noopAggregateTracker satisfies the repositories' tracker dependency.
// Query tests have no use for aggregate tracking.
type noopAggregateTracker struct{}

func (t *noopAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
