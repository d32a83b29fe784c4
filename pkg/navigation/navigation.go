// Package navigation models the console's static route tree: which paths exist,
// how they appear in the menu, which permission token guards them, and which
// view each leaf renders. The table only declares; hosts enforce permissions
// and resolve views.
package navigation

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidTable = errors.New("invalid route table")
	ErrUnknownView  = errors.New("unknown view")
)

// Permission is an opaque capability token compared by equality only.
type Permission string

// Meta carries presentation data for a node. Title is a translation key.
// Order only affects the placement of top-level menu entries.
type Meta struct {
	Title      string
	Icon       string
	Order      int
	Permission Permission
}

// Loader produces a leaf's view on first navigation.
type Loader func(ctx context.Context) (any, error)

// Node is one navigable path. A node either groups children or renders a view.
type Node struct {
	Name     string
	Path     string
	Meta     Meta
	Children []Node
	View     Loader
}

func (n Node) IsGroup() bool {
	return len(n.Children) > 0
}

// Table is the ordered set of top-level nodes.
type Table []Node

// Validate checks the structural rules of the tree.
func (t Table) Validate() error {
	names := make(map[string]struct{})
	paths := make(map[string]struct{})
	for _, n := range t {
		if err := validateNode(n, "", names, paths); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(n Node, parent string, names, paths map[string]struct{}) error {
	if n.Name == "" {
		return fmt.Errorf("%w: node under %q has no name", ErrInvalidTable, parent)
	}
	if !strings.HasPrefix(n.Path, "/") {
		return fmt.Errorf("%w: %s: path %q must be absolute", ErrInvalidTable, n.Name, n.Path)
	}
	if parent != "" && !strings.HasPrefix(n.Path, parent+"/") {
		return fmt.Errorf("%w: %s: path %q is not under %q", ErrInvalidTable, n.Name, n.Path, parent)
	}
	if _, ok := names[n.Name]; ok {
		return fmt.Errorf("%w: duplicate name %s", ErrInvalidTable, n.Name)
	}
	if _, ok := paths[n.Path]; ok {
		return fmt.Errorf("%w: duplicate path %s", ErrInvalidTable, n.Path)
	}
	names[n.Name] = struct{}{}
	paths[n.Path] = struct{}{}

	if n.IsGroup() {
		if n.View != nil {
			return fmt.Errorf("%w: %s: group cannot have a view", ErrInvalidTable, n.Name)
		}
		for _, c := range n.Children {
			if err := validateNode(c, n.Path, names, paths); err != nil {
				return err
			}
		}
		return nil
	}

	if n.View == nil {
		return fmt.Errorf("%w: %s: leaf has no view", ErrInvalidTable, n.Name)
	}
	return nil
}

// Find returns the leaf at path together with its ancestors, outermost first.
func (t Table) Find(path string) (Node, []Node, bool) {
	return find(t, path, nil)
}

func find(nodes []Node, path string, ancestors []Node) (Node, []Node, bool) {
	for _, n := range nodes {
		if n.IsGroup() {
			if leaf, chain, ok := find(n.Children, path, append(ancestors, n)); ok {
				return leaf, chain, true
			}
			continue
		}
		if n.Path == path {
			return n, ancestors, true
		}
	}
	return Node{}, nil, false
}

// Walk visits every node depth first in declaration order.
func (t Table) Walk(fn func(n Node)) {
	var walk func([]Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			fn(n)
			walk(n.Children)
		}
	}
	walk(t)
}

// Loaders indexes the leaf views by node name.
func (t Table) Loaders() map[string]Loader {
	loaders := make(map[string]Loader)
	t.Walk(func(n Node) {
		if n.View != nil {
			loaders[n.Name] = n.View
		}
	})
	return loaders
}

// Permissions lists every token declared in the table, in declaration order.
func (t Table) Permissions() []Permission {
	var perms []Permission
	t.Walk(func(n Node) {
		if n.Meta.Permission != "" {
			perms = append(perms, n.Meta.Permission)
		}
	})
	return perms
}
