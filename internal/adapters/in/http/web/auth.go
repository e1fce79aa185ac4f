package web

import (
	"errors"
	"net/http"

	"pharmacygo/internal/adapters/in/http/session"
	"pharmacygo/internal/core/application/usecases/commands"
	"pharmacygo/internal/core/application/usecases/queries"
	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	msgWelcome   = "Welcome to PharmacyGo! Your workspace is ready."
	msgSignedOut = "Signed out of PharmacyGo."
)

func (h *Handlers) ShowLogin(c echo.Context) error {
	if err := h.ensureSeed(c); err != nil {
		return err
	}
	return h.renderForm(c, http.StatusOK, PageLogin, "Access", emptyForm())
}

// Login checks the submitted identifier and password and opens a session.
func (h *Handlers) Login(c echo.Context) error {
	if err := h.ensureSeed(c); err != nil {
		return err
	}

	var form loginForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	view := FormView{Values: form.values(), Errors: commands.FieldErrors{}}

	if err := c.Validate(form); err != nil {
		fieldErrs, ok := fieldErrorsFrom(err, loginFieldNames)
		if !ok {
			return err
		}
		view.Errors = fieldErrs
		return h.renderForm(c, http.StatusOK, PageLogin, "Access", view)
	}

	query, err := queries.NewAuthenticateQuery(form.Identifier, form.Password, form.RoleHint)
	if err != nil {
		view.Errors.Add("role_hint", "Select a valid choice.")
		return h.renderForm(c, http.StatusOK, PageLogin, "Access", view)
	}

	account, err := h.deps.Authenticate.Handle(c.Request().Context(), query)
	if err != nil {
		var mismatch *queries.RoleMismatchError
		if errors.Is(err, queries.ErrInvalidCredentials) || errors.As(err, &mismatch) {
			view.Errors.Add(commands.FormField, err.Error())
			return h.renderForm(c, http.StatusOK, PageLogin, "Access", view)
		}
		return err
	}

	if err = h.openSession(c, account.ID(), account.Role()); err != nil {
		return err
	}
	h.logger.Info("signed in", zap.String("account_id", account.ID().String()), zap.String("role", account.Role().Code()))
	return c.Redirect(http.StatusFound, DashboardPath(account.Role()))
}

func (h *Handlers) ShowSignUp(c echo.Context) error {
	return h.renderForm(c, http.StatusOK, PageSignUp, "Create account", emptyForm())
}

// SignUp registers the account and signs it in straight away.
func (h *Handlers) SignUp(c echo.Context) error {
	var form signUpForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	view := FormView{Values: form.values(), Errors: commands.FieldErrors{}}

	if err := c.Validate(form); err != nil {
		fieldErrs, ok := fieldErrorsFrom(err, signUpFieldNames)
		if !ok {
			return err
		}
		view.Errors = fieldErrs
		return h.renderForm(c, http.StatusOK, PageSignUp, "Create account", view)
	}

	cmd, err := commands.NewSignUpCommand(kernel.NewUUID(), form.Role, form.FullName, form.Email, form.Phone,
		form.Organization, form.Password1, form.Password2)
	if err == nil {
		err = h.deps.SignUp.Handle(c.Request().Context(), cmd)
	}
	if err != nil {
		fieldErrs, ok := fieldErrorsFrom(err, signUpFieldNames)
		if !ok {
			return err
		}
		view.Errors = fieldErrs
		return h.renderForm(c, http.StatusOK, PageSignUp, "Create account", view)
	}

	if err = h.openSession(c, cmd.AccountID(), cmd.Role()); err != nil {
		return err
	}
	h.logger.Info("account created", zap.String("account_id", cmd.AccountID().String()), zap.String("role", cmd.Role().Code()))
	AddFlash(c, FlashSuccess, msgWelcome)
	return c.Redirect(http.StatusFound, DashboardPath(cmd.Role()))
}

func (h *Handlers) ShowForgotPassword(c echo.Context) error {
	return h.render(c, http.StatusOK, PageForgotPassword, "Reset password", nil)
}

// Logout revokes the session and returns to the sign-in page.
func (h *Handlers) Logout(c echo.Context) error {
	if principal, ok := session.Current(c); ok {
		if err := h.sessions.Revoke(c.Request().Context(), principal.SessionID); err != nil {
			h.logger.Warn("revoke session", zap.String("session_id", principal.SessionID), zap.Error(err))
		}
	}
	h.sessions.ClearCookie(c)
	AddFlash(c, FlashInfo, msgSignedOut)
	return c.Redirect(http.StatusFound, LoginPath)
}

func (h *Handlers) openSession(c echo.Context, accountID kernel.UUID, role identity.Role) error {
	token, err := h.sessions.Issue(c.Request().Context(), accountID, role)
	if err != nil {
		return err
	}
	h.sessions.SetCookie(c, token)
	return nil
}

func (h *Handlers) ensureSeed(c echo.Context) error {
	return h.deps.Seed.Handle(c.Request().Context(), commands.NewSeedRecordsCommand())
}

func (h *Handlers) render(c echo.Context, status int, page, title string, data any) error {
	return c.Render(status, page, h.newPage(c, title, data))
}

func (h *Handlers) renderForm(c echo.Context, status int, page, title string, form FormView) error {
	p := h.newPage(c, title, nil)
	p.Form = form
	p.Roles = roleChoices()
	return c.Render(status, page, p)
}
