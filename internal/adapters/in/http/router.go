package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pharmacygo/internal/adapters/in/http/session"
	"pharmacygo/internal/adapters/in/http/web"
	"pharmacygo/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const (
	csrfField     = "csrf_token"
	csrfCookie    = "pg_csrf"
	swaggerPrefix = "/swagger/"
	msgServerFail = "Something went wrong on our side. Please try again."
)

type RouterConfig struct {
	Pages        *web.Handlers
	API          *Server
	Sessions     *session.Manager
	Accounts     session.AccountLoader
	SecureCookie bool
	Logger       *zap.Logger
}

// NewRouter assembles the echo instance serving both the pages and the
// JSON API.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = RegisterDocs(swagger); err != nil {
		return nil, fmt.Errorf("register openapi document: %w", err)
	}
	validate, err := OpenAPIValidator(swagger)
	if err != nil {
		return nil, fmt.Errorf("build openapi validator: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = web.NewValidator()
	e.HTTPErrorHandler = ErrorHandler(cfg.Pages, cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(RequestLogger(cfg.Logger))
	e.Use(session.Load(cfg.Sessions, cfg.Accounts, cfg.Logger))
	e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasPrefix(path, APIPrefix) || strings.HasPrefix(path, swaggerPrefix)
		},
		TokenLookup:    "form:" + csrfField,
		CookieName:     csrfCookie,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.SecureCookie,
		CookieSameSite: http.SameSiteLaxMode,
	}))
	e.Use(validate)

	cfg.Pages.Register(e)
	servers.RegisterHandlers(e, cfg.API)
	e.GET(swaggerPrefix+"*", echoSwagger.WrapHandler)

	return e, nil
}

// RequestLogger writes one zap entry per request.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency.Round(time.Microsecond)),
				zap.String("remote_ip", v.RemoteIP),
			}
			switch {
			case v.Status >= http.StatusInternalServerError:
				logger.Error("request", append(fields, zap.Error(v.Error))...)
			case v.Error != nil:
				logger.Debug("request", append(fields, zap.Error(v.Error))...)
			default:
				logger.Info("request", fields...)
			}
			return nil
		},
	})
}

// ErrorHandler answers API failures with a JSON Error body and page
// failures with the error page. Messages of 5xx errors are not shown;
// RequestLogger records them.
func ErrorHandler(pages *web.Handlers, logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		}

		var respErr error
		switch {
		case isAPIRequest(c):
			if code >= http.StatusInternalServerError {
				message = http.StatusText(code)
			}
			if c.Request().Method == http.MethodHead {
				respErr = c.NoContent(code)
			} else {
				respErr = c.JSON(code, servers.Error{Code: code, Message: message})
			}
		default:
			respErr = pages.RenderError(c, code, pageMessage(code, message))
		}
		if respErr != nil {
			logger.Warn("writing error response", zap.Error(respErr))
		}
	}
}

func pageMessage(code int, message string) string {
	switch {
	case code >= http.StatusInternalServerError:
		return msgServerFail
	case code == http.StatusNotFound:
		return "The page you are looking for does not exist."
	case code == http.StatusForbidden && message == http.StatusText(code):
		return "You do not have access to this page."
	}
	return message
}
