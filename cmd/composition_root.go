package cmd

import (
	"log/slog"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/snapshot"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"github.com/zoobzio/clockz"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	snapshots  *snapshot.Cache
	clock      clockz.Clock
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters. publisher may be nil.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		publisher:  publisher,
		snapshots:  snapshot.NewCache(uowFactory, logger),
		clock:      clockz.RealClock,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateWarehouseRouter() services.WarehouseRouter {
	var opts []services.RouterOption
	if c.config.ShortHopThresholdKm > 0 {
		opts = append(opts, services.WithShortHopThreshold(c.config.ShortHopThresholdKm))
	}
	if c.config.LongHaulThresholdKm > 0 {
		opts = append(opts, services.WithLongHaulThreshold(c.config.LongHaulThresholdKm))
	}
	return services.NewWarehouseRouter(opts...)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewCreateOrderCommandHandler(f, c.publisher, c.CreateWarehouseRouter(),
		c.clock, c.config.DefaultCity, c.logger)
	return &handler
}

func (c *CompositionRoot) CreateCompleteMilestoneCommandHandler() *commands.CompleteMilestoneCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewCompleteMilestoneCommandHandler(f, c.publisher, c.clock, c.logger)
	return &handler
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateQuotePriceQueryHandler() queries.QuotePriceQueryHandler {
	return queries.NewQuotePriceQueryHandler(c.snapshots, c.clock, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCompleteMilestoneCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateQuotePriceQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.snapshots, c.config.SnapshotRefreshSpec, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
