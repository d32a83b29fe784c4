// Package web renders server-side pages on top of a shared layout set.
// Layouts are parsed once; each page is cloned from them when first requested.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// PageData is passed to the layout when rendering. BasePath enables portable
// URL generation in templates via {{ .BasePath }}.
type PageData struct {
	Title    string
	Locale   string
	BasePath string
	Data     any
}

// Templates holds the parsed layouts and the directory pages are read from.
type Templates struct {
	layouts *template.Template
	pages   fs.FS
	layout  string
}

// NewTemplates parses the layouts matched by layoutGlob and verifies the
// entry layout exists. Pages are read from pageDir on demand.
func NewTemplates(fsys fs.FS, layoutGlob, pageDir, layout string) (*Templates, error) {
	layouts, err := template.ParseFS(fsys, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}
	if layouts.Lookup(layout) == nil {
		return nil, fmt.Errorf("layout %s not found", layout)
	}

	pages, err := fs.Sub(fsys, pageDir)
	if err != nil {
		return nil, err
	}

	return &Templates{
		layouts: layouts,
		pages:   pages,
		layout:  layout,
	}, nil
}

// Page clones the layouts and parses the named page on top of them.
func (t *Templates) Page(name string) (*Page, error) {
	tmpl, err := t.layouts.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone layouts for %s: %w", name, err)
	}
	if _, err := tmpl.ParseFS(t.pages, name); err != nil {
		return nil, fmt.Errorf("parse template: %s: %w", name, err)
	}
	return &Page{name: name, layout: t.layout, tmpl: tmpl}, nil
}

// Page is a parsed page ready to render.
type Page struct {
	name   string
	layout string
	tmpl   *template.Template
}

func (p *Page) Name() string {
	return p.name
}

// Render executes the layout into a buffer and writes it with status.
// Nothing is written when execution fails.
func (p *Page) Render(w http.ResponseWriter, status int, data PageData) error {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, p.layout, data); err != nil {
		return fmt.Errorf("render %s: %w", p.name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
