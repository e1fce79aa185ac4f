package web

import (
	"errors"
	"net/http"
	"net/url"

	"pharmacygo/internal/core/application/usecases/commands"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	msgNotAllowed      = "This action is not available for your role."
	msgVersionConflict = "This record was changed by someone else. Reload and try again."
	msgInvalidChange   = "That change cannot be applied."
)

// IsValidation reports whether err was caused by bad input or a refused
// state change rather than a failure of the system.
func IsValidation(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, errs.ErrVersionIsInvalid) ||
		errors.Is(err, commands.ErrActionIsNotAllowed)
}

func validationMessageFor(err error) string {
	var fieldErrs commands.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		return joinMessages(fieldErrs)
	case errors.Is(err, commands.ErrActionIsNotAllowed):
		return msgNotAllowed
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return msgVersionConflict
	default:
		return msgInvalidChange
	}
}

// actionFailed turns a use case error into the response of a dashboard
// action: 404 for a missing record, a flash and a redirect for a refused
// change, and a server error otherwise.
func (h *Handlers) actionFailed(c echo.Context, err error, fallback string) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return echo.ErrNotFound
	}
	if IsValidation(err) {
		h.logger.Debug("dashboard action refused", zap.String("path", c.Path()), zap.Error(err))
		AddFlash(c, FlashError, validationMessageFor(err))
		return redirectBack(c, fallback)
	}
	return err
}

// redirectBack follows the Referer when it points at this site.
func redirectBack(c echo.Context, fallback string) error {
	req := c.Request()
	if ref := req.Referer(); ref != "" {
		if u, err := url.Parse(ref); err == nil && (u.Host == "" || u.Host == req.Host) {
			return c.Redirect(http.StatusFound, u.RequestURI())
		}
	}
	return c.Redirect(http.StatusFound, fallback)
}

// idParam reads a record id from the path. Malformed ids are reported as a
// missing record.
func idParam(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, echo.ErrNotFound
	}
	return id, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return echo.ErrNotFound
	}
	return err
}

// ErrorView is the data of the error page.
type ErrorView struct {
	Code    int
	Message string
}

// RenderError shows the error page with status code.
func (h *Handlers) RenderError(c echo.Context, code int, message string) error {
	return h.render(c, code, PageError, http.StatusText(code), ErrorView{Code: code, Message: message})
}
