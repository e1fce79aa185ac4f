package web

import (
	"pharmacygo/internal/core/application/usecases/queries"
	"pharmacygo/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
)

// Register mounts the pages on e.
func (h *Handlers) Register(e *echo.Echo) {
	e.GET(LoginPath, h.ShowLogin, RedirectSignedIn)
	e.POST(LoginPath, h.Login, RedirectSignedIn)
	e.GET(SignUpPath, h.ShowSignUp, RedirectSignedIn)
	e.POST(SignUpPath, h.SignUp, RedirectSignedIn)
	e.GET(ForgotPasswordPath, h.ShowForgotPassword)
	e.GET(LogoutPath, h.Logout, SignedIn)
	e.POST(LogoutPath, h.Logout, SignedIn)

	admin := e.Group("/dashboard/admin", RoleRequired(identity.Admin))
	admin.GET("/", h.AdminDashboard)
	admin.POST("/orders/:id/:action/", h.ChangeOrderStatus(identity.Admin))
	admin.GET("/orders/:id/:action/", h.RedirectBackFrom(queries.OrderRecord, AdminDashboardPath))
	admin.POST("/applications/:id/:action/", h.ReviewApplication)
	admin.GET("/applications/:id/:action/", h.RedirectBackFrom(queries.ApplicationRecord, AdminDashboardPath))

	customer := e.Group("/dashboard/customer", RoleRequired(identity.Customer))
	customer.GET("/", h.CustomerDashboard)
	customer.POST("/orders/create/", h.CreateCustomerOrder)
	customer.GET("/orders/create/", RedirectBack(CustomerDashboardPath))
	customer.GET("/pharmacies/:id/", h.PharmacyDetail)

	store := e.Group("/dashboard/pharmacy-store", RoleRequired(identity.Pharmacy))
	store.GET("/", h.PharmacyStoreDashboard)
	store.POST("/orders/:id/:action/", h.ChangeOrderStatus(identity.Pharmacy))
	store.GET("/orders/:id/:action/", h.RedirectBackFrom(queries.OrderRecord, PharmacyStoreDashboardPath))
	store.POST("/applications/", h.SubmitApplication)
	store.GET("/applications/", RedirectBack(PharmacyStoreDashboardPath))

	distributor := e.Group("/dashboard/distributor", RoleRequired(identity.Distributor))
	distributor.GET("/", h.DistributorDashboard)
	distributor.POST("/tasks/:id/:action/", h.ChangeDeliveryTaskStatus)
	distributor.GET("/tasks/:id/:action/", h.RedirectBackFrom(queries.DeliveryTaskRecord, DistributorDashboardPath))
	distributor.POST("/status/:id/complete/", h.CompleteStatusEntry)
	distributor.GET("/status/:id/complete/", h.RedirectBackFrom(queries.StatusEntryRecord, DistributorDashboardPath))
	distributor.POST("/status/:id/update/", h.UpdateStatusEntry)
	distributor.GET("/status/:id/update/", h.RedirectBackFrom(queries.StatusEntryRecord, DistributorDashboardPath))
	distributor.GET("/deliveries/:id/", h.DeliveryDetail)
}
