// Package view renders the dashboard HTML from embedded templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"go-weather/internal/application/format"
	"go-weather/internal/domain/model"
)

//go:embed templates/*.html.tmpl
var templatesFS embed.FS

const iconURLPattern = "https://openweathermap.org/img/wn/%s@2x.png"

// DashboardTemplate is the name passed to echo.Context.Render for the dashboard page
const DashboardTemplate = "dashboard.html.tmpl"

// Banner kinds map to CSS classes in the template
const (
	BannerWarning  = "warning"
	BannerNotFound = "not-found"
	BannerError    = "error"
)

// Banner is an error or warning shown above the report
type Banner struct {
	Kind    string
	Message string
}

// DashboardPage is the data of the dashboard template
type DashboardPage struct {
	Title    string
	City     string
	Days     int
	MaxDays  int
	Banners  []Banner
	Current  *model.CurrentReport
	Forecast *model.ForecastReport
}

// Renderer implements echo.Renderer
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

var funcs = template.FuncMap{
	"num":     format.Number,
	"percent": format.Percent,
	"coord":   format.Coordinate,
	"day":     format.Day,
	"utc":     format.UTC,
	"wind":    format.Wind,
	"orDash":  format.OrPlaceholder,
	"iconURL": func(icon string) string { return fmt.Sprintf(iconURLPattern, icon) },
}
