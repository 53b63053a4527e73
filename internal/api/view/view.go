// Package view renders the server-side HTML pages.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
)

// Page names accepted by Renderer.
const (
	Login       = "login"
	Register    = "register"
	Home        = "home"
	AddItem     = "add_item"
	ItemDetails = "item_details"
	Error       = "error"
)

//go:embed templates/*.html
var files embed.FS

// Page is the data handed to every template.
type Page struct {
	Title         string
	Authenticated bool
	Flashes       []domain.Flash
	Data          any
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page together with the shared layout.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{Login, Register, Home, AddItem, ItemDetails, Error} {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// MustRenderer is like NewRenderer but panics on error.
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format(domain.HireDateLayout)
	},
}
