package web

import (
	"fmt"
	"strings"

	"pharmacygo/internal/adapters/in/http/session"
	"pharmacygo/internal/core/application/usecases/commands"
	"pharmacygo/internal/core/application/usecases/queries"
	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const msgOrderCreated = "New delivery request created."

// RedirectBack answers a GET on an action route without changing anything.
func RedirectBack(fallback string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return redirectBack(c, fallback)
	}
}

// RedirectBackFrom is RedirectBack for routes addressing a record by id:
// an unknown record is a 404.
func (h *Handlers) RedirectBackFrom(kind queries.RecordKind, fallback string) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := h.recordParam(c, kind); err != nil {
			return err
		}
		return redirectBack(c, fallback)
	}
}

// recordParam reads the :id parameter and checks the record exists.
func (h *Handlers) recordParam(c echo.Context, kind queries.RecordKind) (kernel.UUID, error) {
	id, err := idParam(c, "id")
	if err != nil {
		return kernel.UUID{}, err
	}
	query, err := queries.NewFindRecordQuery(kind, id)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = h.deps.FindRecord.Handle(c.Request().Context(), query); err != nil {
		return kernel.UUID{}, notFoundOr(err)
	}
	return id, nil
}

// ChangeOrderStatus serves the order buttons of the admin and pharmacy
// store dashboards; actor decides which actions are accepted.
func (h *Handlers) ChangeOrderStatus(actor identity.Role) echo.HandlerFunc {
	fallback := DashboardPath(actor)
	return func(c echo.Context) error {
		id, err := h.recordParam(c, queries.OrderRecord)
		if err != nil {
			return err
		}

		cmd, err := commands.NewChangeOrderStatusCommand(id, c.Param("action"), actor)
		if err != nil {
			return h.actionFailed(c, err, fallback)
		}
		result, err := h.deps.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
		if err != nil {
			return h.actionFailed(c, err, fallback)
		}

		AddFlash(c, FlashSuccess, fmt.Sprintf("Order %s updated.", result.Code))
		return redirectBack(c, fallback)
	}
}

func (h *Handlers) ReviewApplication(c echo.Context) error {
	id, err := h.recordParam(c, queries.ApplicationRecord)
	if err != nil {
		return err
	}

	cmd, err := commands.NewReviewApplicationCommand(id, c.Param("action"))
	if err != nil {
		return h.actionFailed(c, err, AdminDashboardPath)
	}
	name, err := h.deps.ReviewApplication.Handle(c.Request().Context(), cmd)
	if err != nil {
		return h.actionFailed(c, err, AdminDashboardPath)
	}

	AddFlash(c, FlashSuccess, fmt.Sprintf("%s status updated.", name))
	return redirectBack(c, AdminDashboardPath)
}

func (h *Handlers) CreateCustomerOrder(c echo.Context) error {
	var form createOrderForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	if err := c.Validate(form); err != nil {
		return h.formFailed(c, err, CustomerDashboardPath)
	}

	pharmacyID, err := kernel.UUIDFromString(strings.TrimSpace(form.PharmacyID))
	if err != nil {
		return echo.ErrNotFound
	}

	principal, _ := session.Current(c)
	cmd, err := commands.NewCreateCustomerOrderCommand(kernel.NewUUID(), principal.AccountID, pharmacyID,
		form.Items, form.OrderCode)
	if err != nil {
		return h.actionFailed(c, err, CustomerDashboardPath)
	}
	if _, err = h.deps.CreateCustomerOrder.Handle(c.Request().Context(), cmd); err != nil {
		return h.actionFailed(c, err, CustomerDashboardPath)
	}

	AddFlash(c, FlashSuccess, msgOrderCreated)
	return redirectBack(c, CustomerDashboardPath)
}

func (h *Handlers) SubmitApplication(c echo.Context) error {
	var form applicationForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	if err := c.Validate(form); err != nil {
		return h.formFailed(c, err, PharmacyStoreDashboardPath)
	}

	cmd, err := commands.NewSubmitApplicationCommand(kernel.NewUUID(), form.PharmacyName, form.Documents)
	if err != nil {
		return h.actionFailed(c, err, PharmacyStoreDashboardPath)
	}
	if err = h.deps.SubmitApplication.Handle(c.Request().Context(), cmd); err != nil {
		return h.actionFailed(c, err, PharmacyStoreDashboardPath)
	}

	AddFlash(c, FlashSuccess, fmt.Sprintf("Application for %s submitted.", strings.TrimSpace(form.PharmacyName)))
	return redirectBack(c, PharmacyStoreDashboardPath)
}

func (h *Handlers) ChangeDeliveryTaskStatus(c echo.Context) error {
	id, err := h.recordParam(c, queries.DeliveryTaskRecord)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeDeliveryTaskStatusCommand(id, c.Param("action"))
	if err != nil {
		return h.actionFailed(c, err, DistributorDashboardPath)
	}
	result, err := h.deps.ChangeTaskStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return h.actionFailed(c, err, DistributorDashboardPath)
	}

	AddFlash(c, FlashSuccess, fmt.Sprintf("%s set to %s.", result.Code, result.Status))
	return redirectBack(c, DistributorDashboardPath)
}

func (h *Handlers) CompleteStatusEntry(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteStatusEntryCommand(id)
	if err != nil {
		return h.actionFailed(c, err, DistributorDashboardPath)
	}
	code, err := h.deps.UpdateStatusEntry.Handle(c.Request().Context(), cmd)
	if err != nil {
		return h.actionFailed(c, err, DistributorDashboardPath)
	}

	AddFlash(c, FlashSuccess, fmt.Sprintf("%s marked delivered.", code))
	return redirectBack(c, DistributorDashboardPath)
}

func (h *Handlers) UpdateStatusEntry(c echo.Context) error {
	id, err := h.recordParam(c, queries.StatusEntryRecord)
	if err != nil {
		return err
	}

	var form statusEntryForm
	if err = c.Bind(&form); err != nil {
		return err
	}
	if err = c.Validate(form); err != nil {
		return h.formFailed(c, err, DistributorDashboardPath)
	}

	cmd, err := commands.NewUpdateStatusEntryCommand(id, form.Status)
	if err != nil {
		return h.actionFailed(c, err, DistributorDashboardPath)
	}
	code, err := h.deps.UpdateStatusEntry.Handle(c.Request().Context(), cmd)
	if err != nil {
		return h.actionFailed(c, err, DistributorDashboardPath)
	}

	AddFlash(c, FlashSuccess, fmt.Sprintf("%s status updated.", code))
	return redirectBack(c, DistributorDashboardPath)
}

// formFailed reports an invalid action form as a flash message.
func (h *Handlers) formFailed(c echo.Context, err error, fallback string) error {
	fieldErrs, ok := fieldErrorsFrom(err, nil)
	if !ok {
		return err
	}
	AddFlash(c, FlashError, joinMessages(fieldErrs))
	return redirectBack(c, fallback)
}
