// Package menus manages sys_menu records and builds the enabled menu tree
// served at /menu/all. Permission tokens stored on menus are what
// /auth/codes reports to the console.
package menus

import "time"

// Type distinguishes directories, navigable menus and buttons.
type Type int

const (
	TypeDirectory Type = 0
	TypeMenu      Type = 1
	TypeButton    Type = 2
)

type Menu struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Path       *string    `json:"path,omitempty"`
	Component  *string    `json:"component,omitempty"`
	Redirect   *string    `json:"redirect,omitempty"`
	ParentID   int64      `json:"parent_id"`
	Type       Type       `json:"type"`
	Permission *string    `json:"permission,omitempty"`
	Icon       *string    `json:"icon,omitempty"`
	Sort       int        `json:"sort"`
	Status     bool       `json:"status"`
	IsVisible  bool       `json:"isVisible"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// Node is a Menu with its children. Leaves omit children on the wire.
type Node struct {
	Menu
	Children []Node `json:"children,omitempty"`
}

// Command is the body of menu create and update.
type Command struct {
	Name       string  `json:"name" validate:"required,max=50"`
	Path       *string `json:"path,omitempty" validate:"omitempty,max=100"`
	Component  *string `json:"component,omitempty" validate:"omitempty,max=255"`
	Redirect   *string `json:"redirect,omitempty" validate:"omitempty,max=100"`
	ParentID   int64   `json:"parent_id" validate:"gte=0"`
	Type       Type    `json:"type" validate:"oneof=0 1 2"`
	Permission *string `json:"permission,omitempty" validate:"omitempty,max=100"`
	Icon       *string `json:"icon,omitempty" validate:"omitempty,max=50"`
	Sort       int     `json:"sort"`
	Status     bool    `json:"status"`
	IsVisible  bool    `json:"isVisible"`
}

type DeleteCommand struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

// BuildTree nests menus under their parents, keeping input order among
// siblings. Roots have parent id 0. A menu whose parent is absent from
// menus is dropped with its subtree.
func BuildTree(menus []Menu) []Node {
	children := make(map[int64][]Menu, len(menus))
	for _, m := range menus {
		children[m.ParentID] = append(children[m.ParentID], m)
	}
	return nest(children, 0)
}

func nest(children map[int64][]Menu, parent int64) []Node {
	items := children[parent]
	nodes := make([]Node, 0, len(items))
	for _, m := range items {
		nodes = append(nodes, Node{
			Menu:     m,
			Children: nest(children, m.ID),
		})
	}
	return nodes
}
