// Package i18n provides flat key lookups over TOML message catalogs.
//
// Nested tables flatten to dotted keys:
//
//	[page.system]
//	title = "System"
//
// yields "page.system.title". Missing keys translate to themselves.
package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Catalog holds the messages of one locale.
type Catalog struct {
	locale   string
	messages map[string]string
}

// Parse builds a catalog from TOML data.
func Parse(locale string, data []byte) (*Catalog, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", locale, err)
	}

	messages := make(map[string]string)
	if err := flatten("", raw, messages); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", locale, err)
	}

	return &Catalog{locale: locale, messages: messages}, nil
}

// Load reads <dir>/<locale>.toml from fsys.
func Load(fsys fs.FS, dir, locale string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path.Join(dir, locale+".toml"))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", locale, err)
	}
	return Parse(locale, data)
}

func flatten(prefix string, in map[string]any, out map[string]string) error {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("key %s: messages must be strings, got %T", key, v)
		}
	}
	return nil
}

func (c *Catalog) Locale() string {
	return c.locale
}

// Translate returns the message for key, or key when absent.
func (c *Catalog) Translate(key string) string {
	if msg, ok := c.messages[key]; ok {
		return msg
	}
	return key
}

// Bundle selects among catalogs by locale, falling back to a default.
type Bundle struct {
	fallback string
	catalogs map[string]*Catalog
}

// LoadBundle reads every *.toml file in dir. fallback must be among them.
func LoadBundle(fsys fs.FS, dir, fallback string) (*Bundle, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	b := &Bundle{fallback: fallback, catalogs: make(map[string]*Catalog)}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		locale := strings.TrimSuffix(e.Name(), ".toml")
		c, err := Load(fsys, dir, locale)
		if err != nil {
			return nil, err
		}
		b.catalogs[locale] = c
	}

	if _, ok := b.catalogs[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not found", fallback)
	}
	return b, nil
}

// Catalog returns the catalog for locale, or the fallback catalog.
func (b *Bundle) Catalog(locale string) *Catalog {
	if c, ok := b.catalogs[locale]; ok {
		return c
	}
	return b.catalogs[b.fallback]
}
