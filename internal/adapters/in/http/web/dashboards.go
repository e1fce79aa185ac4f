package web

import (
	"net/http"

	"pharmacygo/internal/adapters/in/http/session"
	"pharmacygo/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

func (h *Handlers) AdminDashboard(c echo.Context) error {
	if err := h.ensureSeed(c); err != nil {
		return err
	}
	dashboard, err := h.deps.AdminDashboard.Handle(c.Request().Context(), queries.NewGetAdminDashboardQuery(h.now().UTC()))
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, PageAdminDashboard, "Admin control", dashboard)
}

func (h *Handlers) CustomerDashboard(c echo.Context) error {
	if err := h.ensureSeed(c); err != nil {
		return err
	}
	principal, _ := session.Current(c)
	query, err := queries.NewGetCustomerDashboardQuery(principal.AccountID)
	if err != nil {
		return err
	}
	dashboard, err := h.deps.CustomerDashboard.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, PageCustomerDashboard, "Customer journey", dashboard)
}

func (h *Handlers) PharmacyStoreDashboard(c echo.Context) error {
	if err := h.ensureSeed(c); err != nil {
		return err
	}
	principal, _ := session.Current(c)
	query := queries.NewGetPharmacyStoreDashboardQuery(principal.Organization)
	dashboard, err := h.deps.PharmacyStoreDashboard.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, PagePharmacyDashboard, "Pharmacy workspace", dashboard)
}

func (h *Handlers) DistributorDashboard(c echo.Context) error {
	if err := h.ensureSeed(c); err != nil {
		return err
	}
	dashboard, err := h.deps.DistributorDashboard.Handle(c.Request().Context(), queries.NewGetDistributorDashboardQuery())
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, PageDistributorBoard, "Distributor ops", dashboard)
}

func (h *Handlers) PharmacyDetail(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetPharmacyDetailQuery(id)
	if err != nil {
		return err
	}
	detail, err := h.deps.PharmacyDetail.Handle(c.Request().Context(), query)
	if err != nil {
		return notFoundOr(err)
	}
	return h.render(c, http.StatusOK, PagePharmacyDetail, detail.Pharmacy.Name, detail)
}

func (h *Handlers) DeliveryDetail(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetDeliveryDetailQuery(id)
	if err != nil {
		return err
	}
	detail, err := h.deps.DeliveryDetail.Handle(c.Request().Context(), query)
	if err != nil {
		return notFoundOr(err)
	}
	return h.render(c, http.StatusOK, PageDeliveryDetail, detail.Task.Code, detail)
}
