package cmd

import (
	"log/slog"

	"shipping/internal/adapters/out/carrier"
	"shipping/internal/adapters/out/catalogcache"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/postgres/productrepo"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config          Config
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	carrierGateway  *carrier.SimulatedGateway
	catalogProvider *catalogcache.Provider
	logger          *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	// An unopened unit of work binds its repositories to the main connection,
	// which is what the read-only catalog refresh wants.
	catalogUoW := uowFactory.Create()
	catalogProvider := catalogcache.NewProvider(
		catalogUoW.ZoneRepository(), catalogUoW.MethodRepository(), logger,
	)

	return CompositionRoot{
		config:          config,
		gormDB:          gormDB,
		uowFactory:      *uowFactory,
		carrierGateway:  carrier.NewSimulatedGateway(config.CarrierOriginCountry),
		catalogProvider: catalogProvider,
		logger:          logger,
	}
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateZoneCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMethodCommandHandler() commands.CreateMethodCommandHandler {
	var f commands.MethodUoWFactory = FuncMethodUoWFactory(func() commands.MethodUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMethodCommandHandler(f)
}

func (c *CompositionRoot) CreateCalculateShippingQueryHandler() queries.CalculateShippingQueryHandler {
	return queries.NewCalculateShippingQueryHandler(
		productrepo.NewGormProductCatalog(c.gormDB),
		c.catalogProvider,
		services.NewShippingCalculator(c.carrierGateway, c.logger),
	)
}

func (c *CompositionRoot) CreateListZonesQueryHandler() queries.ListZonesQueryHandler {
	return queries.NewListZonesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMethodsQueryHandler() queries.ListMethodsQueryHandler {
	return queries.NewListMethodsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.carrierGateway)
}

func (c *CompositionRoot) CatalogProvider() ports.CatalogProvider {
	return c.catalogProvider
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.catalogProvider, c.config.CatalogRefreshSchedule, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncMethodUoWFactory func() commands.MethodUoW

func (f FuncMethodUoWFactory) Create() commands.MethodUoW {
	return f()
}
