package navigation_test

import (
	"testing"

	"github.com/JaimeStill/admin-console/pkg/navigation"
)

type dict map[string]string

func (d dict) Translate(key string) string {
	if v, ok := d[key]; ok {
		return v
	}
	return key
}

func names(items []navigation.MenuItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildMenu_FullGrant(t *testing.T) {
	tr := dict{"page.system.title": "System", "page.system.user": "Users"}
	menu := navigation.BuildMenu(sampleTable(), navigation.AllowAll{}, tr)

	if got := names(menu); !equal(got, []string{"Dashboard", "System"}) {
		t.Fatalf("top level = %v, want ordered by Order", got)
	}

	system := menu[1]
	if system.Title != "System" || system.Icon != "lucide:settings" {
		t.Errorf("system item = %+v", system)
	}
	if got := names(system.Children); !equal(got, []string{"UserManagement", "RoleManagement"}) {
		t.Errorf("children = %v, want declaration order", got)
	}
	if system.Children[0].Title != "Users" {
		t.Errorf("user title = %q", system.Children[0].Title)
	}
	if system.Children[1].Title != "page.system.role" {
		t.Errorf("missing translation should fall back to key, got %q", system.Children[1].Title)
	}
}

func TestBuildMenu_Filtering(t *testing.T) {
	tests := []struct {
		name         string
		authz        navigation.Authorizer
		wantTop      []string
		wantChildren []string
	}{
		{"no grants drops empty group", navigation.NewGrantSet(), []string{"Dashboard"}, nil},
		{"partial grant", navigation.NewGrantSet("system:role:view"), []string{"Dashboard", "System"}, []string{"RoleManagement"}},
		{"nil authorizer", nil, []string{"Dashboard"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu := navigation.BuildMenu(sampleTable(), tt.authz, nil)
			if got := names(menu); !equal(got, tt.wantTop) {
				t.Fatalf("top = %v, want %v", got, tt.wantTop)
			}
			if tt.wantChildren == nil {
				return
			}
			if got := names(menu[1].Children); !equal(got, tt.wantChildren) {
				t.Errorf("children = %v, want %v", got, tt.wantChildren)
			}
		})
	}
}

func TestBuildMenu_StableOrder(t *testing.T) {
	table := navigation.Table{
		{Name: "B", Path: "/b", Meta: navigation.Meta{Order: 5}, View: view("b")},
		{Name: "A", Path: "/a", Meta: navigation.Meta{Order: 5}, View: view("a")},
		{Name: "C", Path: "/c", Meta: navigation.Meta{Order: -1}, View: view("c")},
	}

	menu := navigation.BuildMenu(table, nil, nil)
	if got := names(menu); !equal(got, []string{"C", "B", "A"}) {
		t.Errorf("order = %v", got)
	}
	if menu[0].Title != "" {
		t.Errorf("nil translator should return key, got %q", menu[0].Title)
	}
}
