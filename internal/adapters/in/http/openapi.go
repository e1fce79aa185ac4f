package http

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// APIPrefix is where the JSON API lives; everything else is a page.
const APIPrefix = "/api/"

func isAPIRequest(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, APIPrefix)
}

// OpenAPIValidator rejects API requests that do not match the contract
// before they reach a handler. Authentication is left to the handlers.
func OpenAPIValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	// paths in the document carry the full /api/v1 prefix, so match them
	// against the raw request path
	swagger.Servers = nil

	router, err := legacyrouter.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !isAPIRequest(c) {
				return next(c)
			}

			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				var routeErr *routers.RouteError
				if errors.As(err, &routeErr) && routeErr.Reason == routers.ErrMethodNotAllowed.Error() {
					return echo.ErrMethodNotAllowed
				}
				return echo.ErrNotFound
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationSummary(err)).SetInternal(err)
			}
			return next(c)
		}
	}, nil
}

// validationSummary keeps the first line of a kin-openapi error; the rest
// repeats the schema.
func validationSummary(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		msg := requestErr.Error()
		if i := strings.IndexByte(msg, '\n'); i >= 0 {
			msg = msg[:i]
		}
		return msg
	}
	return "Request does not match the API contract"
}

type apiDoc struct {
	json string
}

func (d apiDoc) ReadDoc() string {
	return d.json
}

var registerDocOnce sync.Once

// RegisterDocs publishes the OpenAPI document for the Swagger UI.
func RegisterDocs(swagger *openapi3.T) error {
	raw, err := swagger.MarshalJSON()
	if err != nil {
		return err
	}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{json: string(raw)})
	})
	return nil
}
