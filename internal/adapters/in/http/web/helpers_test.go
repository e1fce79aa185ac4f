package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"pharmacygo/internal/adapters/in/http/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type testApp struct {
	e         *echo.Echo
	store     *memoryStore
	principal *session.Principal
}

func newTestApp(t *testing.T, deps Deps) *testApp {
	t.Helper()

	if deps.FindRecord == nil {
		deps.FindRecord = existingRecords{}
	}

	store := newMemoryStore()
	sessions, err := session.NewManager(testSecret, time.Hour, store, false)
	require.NoError(t, err)

	renderer, err := NewRenderer()
	require.NoError(t, err)

	app := &testApp{e: echo.New(), store: store}
	app.e.Renderer = renderer
	app.e.Validator = NewValidator()
	app.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if app.principal != nil {
				session.WithPrincipal(c, app.principal)
			}
			return next(c)
		}
	})

	h := NewHandlers(deps, sessions, zap.NewNop())
	h.now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	h.Register(app.e)
	return app
}

func (a *testApp) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) post(target string, form url.Values, referer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

// flashesOf decodes the flash cookie set by a response.
func flashesOf(t *testing.T, rec *httptest.ResponseRecorder) []Flash {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name != flashCookieName || cookie.Value == "" {
			continue
		}
		flashes, err := decodeFlashes(cookie.Value)
		require.NoError(t, err)
		return flashes
	}
	return nil
}

func hasCookie(rec *httptest.ResponseRecorder, name string) bool {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name && cookie.Value != "" {
			return true
		}
	}
	return false
}
