package web

import (
	"pharmacygo/internal/adapters/in/http/session"
	"pharmacygo/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const guestName = "Guest"

// Page is the context every template renders against.
type Page struct {
	Title            string
	CurrentYear      int
	ActiveUser       string
	SignedIn         bool
	PrimaryDashboard string
	Flashes          []Flash
	CSRF             string
	Form             FormView
	Roles            []RoleChoice
	Data             any
}

// RoleChoice is one selectable role on the sign-in and sign-up forms.
type RoleChoice struct {
	Code        string
	Label       string
	Description string
}

func roleChoices() []RoleChoice {
	roles := identity.Roles()
	choices := make([]RoleChoice, 0, len(roles))
	for _, role := range roles {
		choices = append(choices, RoleChoice{
			Code:        role.Code(),
			Label:       role.String(),
			Description: role.Description(),
		})
	}
	return choices
}

func (h *Handlers) newPage(c echo.Context, title string, data any) Page {
	p := Page{
		Title:            title,
		CurrentYear:      h.now().Year(),
		ActiveUser:       guestName,
		PrimaryDashboard: DashboardPath(identity.UnknownRole),
		Flashes:          PopFlashes(c),
		Form:             emptyForm(),
		Data:             data,
	}

	if token, ok := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string); ok {
		p.CSRF = token
	}

	if principal, ok := session.Current(c); ok {
		p.SignedIn = true
		p.ActiveUser = principal.DisplayName
		p.PrimaryDashboard = DashboardPath(principal.Role)
	}
	return p
}
