package console

import "github.com/JaimeStill/admin-console/pkg/navigation"

// HomePath is the landing leaf; the console root redirects here.
const HomePath = "/dashboard"

const (
	PermUserView navigation.Permission = "system:user:view"
	PermRoleView navigation.Permission = "system:role:view"
	PermMenuView navigation.Permission = "system:menu:view"
	PermDeptView navigation.Permission = "system:dept:view"
)

// Table declares every console path. view maps a page template to the
// loader that produces it on first navigation.
func Table(view func(page string) navigation.Loader) navigation.Table {
	return navigation.Table{
		{
			Name: "Dashboard",
			Path: HomePath,
			Meta: navigation.Meta{
				Title: "page.dashboard.title",
				Icon:  "lucide:layout-dashboard",
				Order: 0,
			},
			View: view("dashboard.html"),
		},
		{
			Name: "System",
			Path: "/system",
			Meta: navigation.Meta{
				Title: "page.system.title",
				Icon:  "lucide:settings",
				Order: 1000,
			},
			Children: []navigation.Node{
				{
					Name: "UserManagement",
					Path: "/system/user",
					Meta: navigation.Meta{
						Title:      "page.system.user",
						Icon:       "lucide:users",
						Permission: PermUserView,
					},
					View: view("user.html"),
				},
				{
					Name: "RoleManagement",
					Path: "/system/role",
					Meta: navigation.Meta{
						Title:      "page.system.role",
						Icon:       "lucide:user-check",
						Permission: PermRoleView,
					},
					View: view("role.html"),
				},
				{
					Name: "MenuManagement",
					Path: "/system/menu",
					Meta: navigation.Meta{
						Title:      "page.system.menu",
						Icon:       "lucide:menu",
						Permission: PermMenuView,
					},
					View: view("menu.html"),
				},
				{
					Name: "DeptManagement",
					Path: "/system/dept",
					Meta: navigation.Meta{
						Title:      "page.system.dept",
						Icon:       "lucide:building",
						Permission: PermDeptView,
					},
					View: view("dept.html"),
				},
			},
		},
	}
}
