// Package web serves the server-rendered pages: access forms, the four role
// dashboards and the POST actions behind their buttons.
package web

import (
	"context"
	"time"

	"pharmacygo/internal/adapters/in/http/session"
	"pharmacygo/internal/core/application/usecases/commands"
	"pharmacygo/internal/core/application/usecases/queries"
	"pharmacygo/internal/core/domain/model/identity"

	"go.uber.org/zap"
)

type Authenticator interface {
	Handle(ctx context.Context, query queries.AuthenticateQuery) (*identity.Account, error)
}

type SignUpHandler interface {
	Handle(ctx context.Context, cmd commands.SignUpCommand) error
}

type SeedHandler interface {
	Handle(ctx context.Context, cmd commands.SeedRecordsCommand) error
}

type AdminDashboardReader interface {
	Handle(ctx context.Context, query queries.GetAdminDashboardQuery) (queries.AdminDashboard, error)
}

type CustomerDashboardReader interface {
	Handle(ctx context.Context, query queries.GetCustomerDashboardQuery) (queries.CustomerDashboard, error)
}

type PharmacyStoreDashboardReader interface {
	Handle(ctx context.Context, query queries.GetPharmacyStoreDashboardQuery) (queries.PharmacyStoreDashboard, error)
}

type DistributorDashboardReader interface {
	Handle(ctx context.Context, query queries.GetDistributorDashboardQuery) (queries.DistributorDashboard, error)
}

type PharmacyDetailReader interface {
	Handle(ctx context.Context, query queries.GetPharmacyDetailQuery) (queries.PharmacyDetail, error)
}

type DeliveryDetailReader interface {
	Handle(ctx context.Context, query queries.GetDeliveryDetailQuery) (queries.DeliveryDetail, error)
}

type OrderStatusChanger interface {
	Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (commands.ChangeOrderStatusResult, error)
}

type ApplicationReviewer interface {
	Handle(ctx context.Context, cmd commands.ReviewApplicationCommand) (string, error)
}

type ApplicationSubmitter interface {
	Handle(ctx context.Context, cmd commands.SubmitApplicationCommand) error
}

type CustomerOrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateCustomerOrderCommand) (string, error)
}

type DeliveryTaskStatusChanger interface {
	Handle(ctx context.Context, cmd commands.ChangeDeliveryTaskStatusCommand) (commands.ChangeDeliveryTaskStatusResult, error)
}

type RecordFinder interface {
	Handle(ctx context.Context, query queries.FindRecordQuery) error
}

type StatusEntryUpdater interface {
	Handle(ctx context.Context, cmd commands.UpdateStatusEntryCommand) (string, error)
}

// Deps are the use cases the pages call into.
type Deps struct {
	Authenticate           Authenticator
	SignUp                 SignUpHandler
	Seed                   SeedHandler
	AdminDashboard         AdminDashboardReader
	CustomerDashboard      CustomerDashboardReader
	PharmacyStoreDashboard PharmacyStoreDashboardReader
	DistributorDashboard   DistributorDashboardReader
	PharmacyDetail         PharmacyDetailReader
	DeliveryDetail         DeliveryDetailReader
	ChangeOrderStatus      OrderStatusChanger
	ReviewApplication      ApplicationReviewer
	SubmitApplication      ApplicationSubmitter
	CreateCustomerOrder    CustomerOrderCreator
	ChangeTaskStatus       DeliveryTaskStatusChanger
	UpdateStatusEntry      StatusEntryUpdater
	FindRecord             RecordFinder
}

type Handlers struct {
	deps     Deps
	sessions *session.Manager
	logger   *zap.Logger
	now      func() time.Time
}

func NewHandlers(deps Deps, sessions *session.Manager, logger *zap.Logger) *Handlers {
	return &Handlers{
		deps:     deps,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}
