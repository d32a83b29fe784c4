package i18n_test

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/admin-console/pkg/i18n"
)

const enUS = `
[page.system]
title = "System Management"
user = "Users"

[page.dashboard]
title = "Dashboard"
`

func TestParse(t *testing.T) {
	c, err := i18n.Parse("en-US", []byte(enUS))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"page.system.title", "System Management"},
		{"page.system.user", "Users"},
		{"page.dashboard.title", "Dashboard"},
		{"page.system.role", "page.system.role"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := c.Translate(tt.key); got != tt.want {
				t.Errorf("Translate(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	if got := c.Translate("page.system"); got != "page.system" {
		t.Errorf("tables are not messages: got %q", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `[page`},
		{"non-string", "count = 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := i18n.Parse("x", []byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadBundle(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US.toml": {Data: []byte(enUS)},
		"locales/zh-CN.toml": {Data: []byte("[page.system]\ntitle = \"系统管理\"\n")},
		"locales/README.md":  {Data: []byte("ignored")},
	}

	b, err := i18n.LoadBundle(fsys, "locales", "en-US")
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}

	if got := b.Catalog("zh-CN").Locale(); got != "zh-CN" {
		t.Errorf("zh-CN catalog locale = %q", got)
	}
	if got := b.Catalog("zh-CN").Translate("page.system.title"); got != "系统管理" {
		t.Errorf("zh-CN title = %q", got)
	}
	if got := b.Catalog("fr-FR").Locale(); got != "en-US" {
		t.Errorf("unknown locale served %q, want fallback", got)
	}
}

func TestLoadBundle_MissingFallback(t *testing.T) {
	fsys := fstest.MapFS{"locales/zh-CN.toml": {Data: []byte("")}}
	if _, err := i18n.LoadBundle(fsys, "locales", "en-US"); err == nil {
		t.Error("expected error for missing fallback")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := i18n.Load(fstest.MapFS{}, "locales", "en-US")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}
