package cmd

import (
	"log/slog"

	httpin "nailorders/internal/adapters/in/http"
	"nailorders/internal/adapters/out/postgres/orderrepo"
	"nailorders/internal/core/application/cache"
	"nailorders/internal/core/application/services"
	"nailorders/internal/core/application/usecases/commands"
	"nailorders/internal/core/application/usecases/queries"
	imagesvc "nailorders/internal/core/domain/services"
	"nailorders/internal/core/ports"
	"nailorders/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot owns the process-wide singletons: the repository, the order
// cache and the services built on them. Handlers are created on demand.
type CompositionRoot struct {
	config       Config
	logger       *slog.Logger
	repo         ports.OrderRepository
	orderService *services.OrderService
	imageSync    *services.ImageSync
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, storage ports.ObjectStorage, logger *slog.Logger) CompositionRoot {
	repo := orderrepo.NewGormOrderRepository(gormDB)

	return CompositionRoot{
		config:       config,
		logger:       logger,
		repo:         repo,
		orderService: services.NewOrderService(repo, cache.NewOrderCache(), logger),
		imageSync: services.NewImageSync(
			storage,
			imagesvc.NewObjectKeyGenerator(),
			imagesvc.NewImageLocator(config.S3PublicURL),
			config.UploadConcurrency,
			logger,
		),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderService, c.imageSync, c.logger)
	return &h
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() *commands.EditOrderCommandHandler {
	h := commands.NewEditOrderCommandHandler(c.repo, c.orderService, c.imageSync, c.logger)
	return &h
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() *commands.AdvanceOrderStatusCommandHandler {
	h := commands.NewAdvanceOrderStatusCommandHandler(c.repo, c.orderService)
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.repo, c.orderService, c.imageSync)
	return &h
}

func (c *CompositionRoot) CreateMigrateInlineImagesCommandHandler() *commands.MigrateInlineImagesCommandHandler {
	h := commands.NewMigrateInlineImagesCommandHandler(c.repo, c.orderService, c.imageSync, c.logger)
	return &h
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.orderService)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderService)
}

func (c *CompositionRoot) CreateGetMonthlyStatsQueryHandler() queries.GetMonthlyStatsQueryHandler {
	return queries.NewGetMonthlyStatsQueryHandler(c.repo, c.config.Location)
}

func (c *CompositionRoot) CreateGetCustomerStatsQueryHandler() queries.GetCustomerStatsQueryHandler {
	return queries.NewGetCustomerStatsQueryHandler(c.repo)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.repo, c.config.Location)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		EditOrder:          c.CreateEditOrderCommandHandler(),
		AdvanceOrderStatus: c.CreateAdvanceOrderStatusCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		GetOrdersByStatus:  c.CreateGetOrdersByStatusQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetMonthlyStats:    c.CreateGetMonthlyStatsQueryHandler(),
		GetCustomerStats:   c.CreateGetCustomerStatsQueryHandler(),
		GetDashboard:       c.CreateGetDashboardQueryHandler(),
	}, c.config.MaxUploadBytes)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.orderService, c.config.CacheWarmupSchedule, c.logger)
}
