package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"pharmacygo/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	baseTemplate = "templates/base.html"
	layoutName   = "base"
)

// Page names accepted by Renderer.Render.
const (
	PageLogin             = "login"
	PageSignUp            = "signup"
	PageForgotPassword    = "forgot_password"
	PageAdminDashboard    = "admin_dashboard"
	PageCustomerDashboard = "customer_dashboard"
	PagePharmacyDashboard = "pharmacy_store_dashboard"
	PageDistributorBoard  = "distributor_dashboard"
	PagePharmacyDetail    = "pharmacy_detail"
	PageDeliveryDetail    = "delivery_detail"
	PageError             = "error"
)

// Renderer executes one of the embedded pages inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		if file == baseTemplate {
			continue
		}

		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New(name).Funcs(templateFuncs()).ParseFS(templateFS, baseTemplate, file)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("page %q is not defined", name)
	}
	return tmpl.ExecuteTemplate(w, layoutName, data)
}

type segmentView struct {
	Title string
	Rows  []queries.ProfileRow
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"list": func(items ...string) []string {
			return items
		},
		"segment": func(title string, rows []queries.ProfileRow) segmentView {
			return segmentView{Title: title, Rows: rows}
		},
		"join": strings.Join,
		"flashClass": func(level FlashLevel) string {
			return "alert alert-" + string(level)
		},
	}
}
