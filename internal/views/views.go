// Package views - серверные шаблоны страниц (html/template, встроены в бинарник).
package views

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"recruitment-form/internal/branchselect"
)

const BranchSelectTemplate = "branch_select.html"

//go:embed templates/*.html
var files embed.FS

// BranchSelectPage - данные страницы выбора филиала.
type BranchSelectPage struct {
	Options       []branchselect.Option
	Total         int
	Query         string
	Selected      string
	SelectedCode  string
	UsingFallback bool
	Error         string
}

// Renderer реализует echo.Renderer.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
