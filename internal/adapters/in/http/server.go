package http

import (
	"context"
	"errors"
	"net/http"

	"pharmacygo/internal/adapters/in/http/session"
	"pharmacygo/internal/adapters/in/http/web"
	"pharmacygo/internal/core/application/usecases/commands"
	"pharmacygo/internal/core/application/usecases/queries"
	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/generated/servers"
	"pharmacygo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type OrderLister interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderRow, error)
}

type DeliveryTaskLister interface {
	Handle(ctx context.Context, query queries.ListDeliveryTasksQuery) ([]queries.TaskRow, error)
}

// Server implements servers.ServerInterface on top of the use cases.
type Server struct {
	listOrders        OrderLister
	changeOrderStatus web.OrderStatusChanger
	listTasks         DeliveryTaskLister
	changeTaskStatus  web.DeliveryTaskStatusChanger
	logger            *zap.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(
	listOrders OrderLister,
	changeOrderStatus web.OrderStatusChanger,
	listTasks DeliveryTaskLister,
	changeTaskStatus web.DeliveryTaskStatusChanger,
	logger *zap.Logger,
) *Server {
	return &Server{
		listOrders:        listOrders,
		changeOrderStatus: changeOrderStatus,
		listTasks:         listTasks,
		changeTaskStatus:  changeTaskStatus,
		logger:            logger,
	}
}

// GetHealth handles GET /api/v1/health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Status: "ok"})
}

// ListOrders handles GET /api/v1/orders for admins.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	if _, err := requireRole(ctx, identity.Admin); err != nil {
		return err
	}

	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}
	var limit int
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListOrdersQuery(status, limit)
	if err != nil {
		return s.fail(ctx, err)
	}
	rows, err := s.listOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(rows))
	for i, row := range rows {
		response[i] = servers.Order{
			Id:           row.ID.Bytes(),
			Code:         row.Code,
			CustomerName: row.CustomerName,
			PharmacyId:   row.PharmacyID.Bytes(),
			PharmacyName: row.PharmacyName,
			Status:       servers.OrderStatus(row.Status.Code()),
			StatusLabel:  row.Status.String(),
			Items:        row.Items,
			Progress:     row.Progress,
			Eta:          row.ETA,
			CreatedAt:    row.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status for admins
// and pharmacy stores.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	principal, err := requireRole(ctx, identity.Admin, identity.Pharmacy)
	if err != nil {
		return err
	}

	var body servers.ChangeOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewChangeOrderStatusCommand(id, string(body.Action), principal.Role)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.changeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderStatusChange{
		Code:        result.Code,
		Status:      servers.OrderStatus(result.Status.Code()),
		StatusLabel: result.Status.String(),
		Progress:    result.Progress,
		Eta:         result.ETA,
	})
}

// ListDeliveryTasks handles GET /api/v1/delivery-tasks for distributors.
func (s *Server) ListDeliveryTasks(ctx echo.Context, params servers.ListDeliveryTasksParams) error {
	if _, err := requireRole(ctx, identity.Distributor); err != nil {
		return err
	}

	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewListDeliveryTasksQuery(status)
	if err != nil {
		return s.fail(ctx, err)
	}
	rows, err := s.listTasks.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.DeliveryTask, len(rows))
	for i, row := range rows {
		response[i] = servers.DeliveryTask{
			Id:           row.ID.Bytes(),
			Code:         row.Code,
			PharmacyId:   row.PharmacyID.Bytes(),
			PharmacyName: row.PharmacyName,
			Address:      row.Address,
			Eta:          row.ETA,
			Status:       servers.TaskStatus(row.Status.Code()),
			StatusLabel:  row.Status.String(),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ChangeDeliveryTaskStatus handles POST /api/v1/delivery-tasks/{taskId}/status
// for distributors.
func (s *Server) ChangeDeliveryTaskStatus(ctx echo.Context, taskID servers.TaskId) error {
	if _, err := requireRole(ctx, identity.Distributor); err != nil {
		return err
	}

	var body servers.ChangeDeliveryTaskStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(taskID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewChangeDeliveryTaskStatusCommand(id, string(body.Action))
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.changeTaskStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.TaskStatusChange{
		Code:        result.Code,
		Status:      servers.TaskStatus(result.Status.Code()),
		StatusLabel: result.Status.String(),
	})
}

// requireRole answers 401 without a session and 403 for any other role.
func requireRole(ctx echo.Context, roles ...identity.Role) (*session.Principal, error) {
	principal, ok := session.Current(ctx)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Sign in to use the API")
	}
	for _, role := range roles {
		if principal.Role == role {
			return principal, nil
		}
	}
	return nil, echo.NewHTTPError(http.StatusForbidden, "Your role may not call this endpoint")
}

// fail maps a use case error to the HTTP error the API answers with.
func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Record not found").SetInternal(err)
	case errors.Is(err, commands.ErrActionIsNotAllowed):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return echo.NewHTTPError(http.StatusConflict, "The record was changed concurrently").SetInternal(err)
	case web.IsValidation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("api request failed", zap.String("path", ctx.Path()), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error").SetInternal(err)
	}
}
