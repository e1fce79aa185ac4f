package cmd

import (
	httpin "pharmacygo/internal/adapters/in/http"
	"pharmacygo/internal/adapters/in/http/session"
	"pharmacygo/internal/adapters/in/http/web"
	"pharmacygo/internal/adapters/out/crypto"
	"pharmacygo/internal/adapters/out/postgres"
	"pharmacygo/internal/adapters/out/postgres/accountrepo"
	"pharmacygo/internal/core/application/usecases/commands"
	"pharmacygo/internal/core/application/usecases/queries"
	"pharmacygo/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	hasher     ports.PasswordHasher
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     crypto.NewBcryptHasher(config.BcryptCost),
		logger:     logger,
	}
}

// Commands

func (c *CompositionRoot) CreateSignUpCommandHandler() commands.SignUpCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignUpCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateSeedRecordsCommandHandler() commands.SeedRecordsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedRecordsCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerOrderCommandHandler() commands.CreateCustomerOrderCommandHandler {
	return commands.NewCreateCustomerOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReviewApplicationCommandHandler() commands.ReviewApplicationCommandHandler {
	return commands.NewReviewApplicationCommandHandler(c.applicationUoWFactory())
}

func (c *CompositionRoot) CreateSubmitApplicationCommandHandler() commands.SubmitApplicationCommandHandler {
	return commands.NewSubmitApplicationCommandHandler(c.applicationUoWFactory())
}

func (c *CompositionRoot) CreateChangeDeliveryTaskStatusCommandHandler() commands.ChangeDeliveryTaskStatusCommandHandler {
	return commands.NewChangeDeliveryTaskStatusCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateStatusEntryCommandHandler() commands.UpdateStatusEntryCommandHandler {
	return commands.NewUpdateStatusEntryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateAgeStockCommandHandler() commands.AgeStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAgeStockCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordNotificationCommandHandler() commands.RecordNotificationCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordNotificationCommandHandler(f)
}

func (c *CompositionRoot) CreatePublishOutboxCommandHandler(bus ports.MessageBus) commands.PublishOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPublishOutboxCommandHandler(f, bus)
}

// Queries

func (c *CompositionRoot) CreateAuthenticateQueryHandler() queries.AuthenticateQueryHandler {
	return queries.NewAuthenticateQueryHandler(accountrepo.NewGormAccountRepository(c.gormDB), c.hasher)
}

func (c *CompositionRoot) CreateGetAccountQueryHandler() queries.GetAccountQueryHandler {
	return queries.NewGetAccountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAdminDashboardQueryHandler() queries.GetAdminDashboardQueryHandler {
	return queries.NewGetAdminDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerDashboardQueryHandler() queries.GetCustomerDashboardQueryHandler {
	return queries.NewGetCustomerDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPharmacyStoreDashboardQueryHandler() queries.GetPharmacyStoreDashboardQueryHandler {
	return queries.NewGetPharmacyStoreDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDistributorDashboardQueryHandler() queries.GetDistributorDashboardQueryHandler {
	return queries.NewGetDistributorDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPharmacyDetailQueryHandler() queries.GetPharmacyDetailQueryHandler {
	return queries.NewGetPharmacyDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryDetailQueryHandler() queries.GetDeliveryDetailQueryHandler {
	return queries.NewGetDeliveryDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDeliveryTasksQueryHandler() queries.ListDeliveryTasksQueryHandler {
	return queries.NewListDeliveryTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindRecordQueryHandler() queries.FindRecordQueryHandler {
	return queries.NewFindRecordQueryHandler(c.gormDB)
}

// HTTP

func (c *CompositionRoot) CreateSessionManager(store ports.SessionStore) (*session.Manager, error) {
	return session.NewManager(c.config.SessionSecret, c.config.SessionTTL, store, c.config.SecureCookie)
}

func (c *CompositionRoot) CreatePageHandlers(sessions *session.Manager) *web.Handlers {
	signUp := c.CreateSignUpCommandHandler()
	seed := c.CreateSeedRecordsCommandHandler()
	changeOrderStatus := c.CreateChangeOrderStatusCommandHandler()
	reviewApplication := c.CreateReviewApplicationCommandHandler()
	submitApplication := c.CreateSubmitApplicationCommandHandler()
	createCustomerOrder := c.CreateCreateCustomerOrderCommandHandler()
	changeTaskStatus := c.CreateChangeDeliveryTaskStatusCommandHandler()
	updateStatusEntry := c.CreateUpdateStatusEntryCommandHandler()

	return web.NewHandlers(web.Deps{
		Authenticate:           c.CreateAuthenticateQueryHandler(),
		SignUp:                 &signUp,
		Seed:                   &seed,
		AdminDashboard:         c.CreateGetAdminDashboardQueryHandler(),
		CustomerDashboard:      c.CreateGetCustomerDashboardQueryHandler(),
		PharmacyStoreDashboard: c.CreateGetPharmacyStoreDashboardQueryHandler(),
		DistributorDashboard:   c.CreateGetDistributorDashboardQueryHandler(),
		PharmacyDetail:         c.CreateGetPharmacyDetailQueryHandler(),
		DeliveryDetail:         c.CreateGetDeliveryDetailQueryHandler(),
		ChangeOrderStatus:      &changeOrderStatus,
		ReviewApplication:      &reviewApplication,
		SubmitApplication:      &submitApplication,
		CreateCustomerOrder:    &createCustomerOrder,
		ChangeTaskStatus:       &changeTaskStatus,
		UpdateStatusEntry:      &updateStatusEntry,
		FindRecord:             c.CreateFindRecordQueryHandler(),
	}, sessions, c.logger)
}

func (c *CompositionRoot) CreateAPIServer() *httpin.Server {
	changeOrderStatus := c.CreateChangeOrderStatusCommandHandler()
	changeTaskStatus := c.CreateChangeDeliveryTaskStatusCommandHandler()

	return httpin.NewServer(
		c.CreateListOrdersQueryHandler(),
		&changeOrderStatus,
		c.CreateListDeliveryTasksQueryHandler(),
		&changeTaskStatus,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRouterConfig(sessions *session.Manager) httpin.RouterConfig {
	return httpin.RouterConfig{
		Pages:        c.CreatePageHandlers(sessions),
		API:          c.CreateAPIServer(),
		Sessions:     sessions,
		Accounts:     c.CreateGetAccountQueryHandler(),
		SecureCookie: c.config.SecureCookie,
		Logger:       c.logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) applicationUoWFactory() commands.ApplicationUoWFactory {
	return FuncApplicationUoWFactory(func() commands.ApplicationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncApplicationUoWFactory func() commands.ApplicationUoW

func (f FuncApplicationUoWFactory) Create() commands.ApplicationUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
