package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pharmacygo/internal/adapters/in/http/session"
	"pharmacygo/internal/core/application/usecases/commands"
	"pharmacygo/internal/core/application/usecases/queries"
	"pharmacygo/internal/core/domain/model/delivery"
	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/order"
	"pharmacygo/internal/generated/servers"
	"pharmacygo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockOrderLister struct {
	mock.Mock
}

func (m *MockOrderLister) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderRow, error) {
	args := m.Called(ctx, query)
	rows, _ := args.Get(0).([]queries.OrderRow)
	return rows, args.Error(1)
}

type MockOrderStatusChanger struct {
	mock.Mock
}

func (m *MockOrderStatusChanger) Handle(
	ctx context.Context,
	cmd commands.ChangeOrderStatusCommand,
) (commands.ChangeOrderStatusResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ChangeOrderStatusResult), args.Error(1)
}

type MockTaskLister struct {
	mock.Mock
}

func (m *MockTaskLister) Handle(ctx context.Context, query queries.ListDeliveryTasksQuery) ([]queries.TaskRow, error) {
	args := m.Called(ctx, query)
	rows, _ := args.Get(0).([]queries.TaskRow)
	return rows, args.Error(1)
}

type MockTaskStatusChanger struct {
	mock.Mock
}

func (m *MockTaskStatusChanger) Handle(
	ctx context.Context,
	cmd commands.ChangeDeliveryTaskStatusCommand,
) (commands.ChangeDeliveryTaskStatusResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ChangeDeliveryTaskStatusResult), args.Error(1)
}

type apiFixture struct {
	e          *echo.Echo
	principal  *session.Principal
	orders     *MockOrderLister
	changer    *MockOrderStatusChanger
	tasks      *MockTaskLister
	taskStatus *MockTaskStatusChanger
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	f := &apiFixture{
		orders:     &MockOrderLister{},
		changer:    &MockOrderStatusChanger{},
		tasks:      &MockTaskLister{},
		taskStatus: &MockTaskStatusChanger{},
	}

	swagger, err := servers.GetSwagger()
	require.NoError(t, err)
	validate, err := OpenAPIValidator(swagger)
	require.NoError(t, err)

	f.e = echo.New()
	f.e.HTTPErrorHandler = ErrorHandler(nil, zap.NewNop())
	f.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if f.principal != nil {
				session.WithPrincipal(c, f.principal)
			}
			return next(c)
		}
	})
	f.e.Use(validate)

	server := NewServer(f.orders, f.changer, f.tasks, f.taskStatus, zap.NewNop())
	servers.RegisterHandlers(f.e, server)
	return f
}

func (f *apiFixture) signIn(role identity.Role) {
	f.principal = &session.Principal{AccountID: kernel.NewUUID(), Role: role, DisplayName: "Test"}
}

func (f *apiFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListOrders_RequiresAdmin(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/orders", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, http.StatusUnauthorized, decodeError(t, rec).Code)

	f.signIn(identity.Customer)
	rec = f.do(http.MethodGet, "/api/v1/orders", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	f.orders.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestListOrders(t *testing.T) {
	f := newAPIFixture(t)
	f.signIn(identity.Admin)

	id := kernel.NewUUID()
	created := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	f.orders.On("Handle", mock.Anything, mock.AnythingOfType("queries.ListOrdersQuery")).Return([]queries.OrderRow{{
		ID:           id,
		Code:         "#PG-2148",
		CustomerName: "Laylo Karimova",
		PharmacyID:   kernel.NewUUID(),
		PharmacyName: "Oasis Pharmacy",
		Status:       order.Out,
		Items:        []string{"Xyzal 5mg"},
		Progress:     "75%",
		ETA:          "15 min",
		CreatedAt:    created,
	}}, nil)

	rec := f.do(http.MethodGet, "/api/v1/orders?status=out&limit=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, id.Bytes(), body[0].Id)
	assert.Equal(t, servers.OrderStatusOut, body[0].Status)
	assert.Equal(t, "Out for delivery", body[0].StatusLabel)
	assert.Equal(t, []string{"Xyzal 5mg"}, body[0].Items)
	f.orders.AssertExpectations(t)
}

func TestListOrders_RejectsUnknownStatus(t *testing.T) {
	f := newAPIFixture(t)
	f.signIn(identity.Admin)

	rec := f.do(http.MethodGet, "/api/v1/orders?status=lost", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.orders.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestChangeOrderStatus(t *testing.T) {
	f := newAPIFixture(t)
	f.signIn(identity.Pharmacy)

	f.changer.On("Handle", mock.Anything, mock.AnythingOfType("commands.ChangeOrderStatusCommand")).
		Return(commands.ChangeOrderStatusResult{
			Code: "#PG-2148", Status: order.Packed, Progress: "50%", ETA: "30 min",
		}, nil)

	rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"action":"pack"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body servers.OrderStatusChange
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "#PG-2148", body.Code)
	assert.Equal(t, servers.OrderStatusPacked, body.Status)
	assert.Equal(t, "50%", body.Progress)
	f.changer.AssertExpectations(t)
}

func TestChangeOrderStatus_Failures(t *testing.T) {
	tests := map[string]struct {
		err  error
		code int
	}{
		"missing order":      {errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		"role may not act":   {commands.ErrActionIsNotAllowed, http.StatusForbidden},
		"concurrent change":  {errs.NewVersionIsInvalidError("version"), http.StatusConflict},
		"invalid transition": {errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		"database down":      {assert.AnError, http.StatusInternalServerError},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.signIn(identity.Admin)
			f.changer.On("Handle", mock.Anything, mock.Anything).
				Return(commands.ChangeOrderStatusResult{}, tt.err)

			rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"action":"deliver"}`)

			assert.Equal(t, tt.code, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.code, body.Code)
			if tt.code == http.StatusInternalServerError {
				assert.NotContains(t, body.Message, assert.AnError.Error())
			}
		})
	}
}

func TestChangeOrderStatus_ContractViolations(t *testing.T) {
	tests := map[string]struct {
		target string
		body   string
	}{
		"unknown action": {"/api/v1/orders/" + kernel.NewUUID().String() + "/status", `{"action":"teleport"}`},
		"missing action": {"/api/v1/orders/" + kernel.NewUUID().String() + "/status", `{}`},
		"malformed id":   {"/api/v1/orders/not-a-uuid/status", `{"action":"pack"}`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.signIn(identity.Admin)

			rec := f.do(http.MethodPost, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			f.changer.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestOpenAPIValidator_UnknownRoutes(t *testing.T) {
	f := newAPIFixture(t)
	f.signIn(identity.Admin)

	rec := f.do(http.MethodGet, "/api/v1/couriers", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodDelete, "/api/v1/orders", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestListDeliveryTasks(t *testing.T) {
	f := newAPIFixture(t)

	f.signIn(identity.Admin)
	rec := f.do(http.MethodGet, "/api/v1/delivery-tasks", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	f.signIn(identity.Distributor)
	f.tasks.On("Handle", mock.Anything, mock.Anything).Return([]queries.TaskRow{{
		ID:           kernel.NewUUID(),
		Code:         "DLV-1042",
		PharmacyID:   kernel.NewUUID(),
		PharmacyName: "Oasis Pharmacy",
		Address:      "Amir Temur 12",
		ETA:          "12:40",
		Status:       delivery.Awaiting,
	}}, nil)

	rec = f.do(http.MethodGet, "/api/v1/delivery-tasks?status=awaiting", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []servers.DeliveryTask
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "DLV-1042", body[0].Code)
	assert.Equal(t, servers.TaskStatusAwaiting, body[0].Status)
}

func TestChangeDeliveryTaskStatus(t *testing.T) {
	f := newAPIFixture(t)
	f.signIn(identity.Distributor)

	f.taskStatus.On("Handle", mock.Anything, mock.AnythingOfType("commands.ChangeDeliveryTaskStatusCommand")).
		Return(commands.ChangeDeliveryTaskStatusResult{Code: "DLV-1042", Status: delivery.InProgress}, nil)

	rec := f.do(http.MethodPost, "/api/v1/delivery-tasks/"+kernel.NewUUID().String()+"/status", `{"action":"accept"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"code":"DLV-1042","status":"in_progress","statusLabel":"In progress"}`, rec.Body.String())
	f.taskStatus.AssertExpectations(t)
}
