package navigation

import "sort"

// Translator resolves a translation key. Implementations return the key itself
// when no entry exists.
type Translator interface {
	Translate(key string) string
}

// MenuItem is a node as presented to one caller.
type MenuItem struct {
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	Title    string     `json:"title"`
	Icon     string     `json:"icon,omitempty"`
	Children []MenuItem `json:"children,omitempty"`
}

// BuildMenu projects the table for one caller. Nodes the caller may not see are
// dropped, groups left without visible children are dropped, and top-level
// entries are stably ordered by Meta.Order. Children keep declaration order.
func BuildMenu(t Table, authz Authorizer, tr Translator) []MenuItem {
	type ranked struct {
		order int
		item  MenuItem
	}

	var top []ranked
	for _, n := range t {
		if item, ok := project(n, authz, tr); ok {
			top = append(top, ranked{order: n.Meta.Order, item: item})
		}
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].order < top[j].order
	})

	items := make([]MenuItem, len(top))
	for i, r := range top {
		items[i] = r.item
	}
	return items
}

func project(n Node, authz Authorizer, tr Translator) (MenuItem, bool) {
	if !Permitted(n, authz) {
		return MenuItem{}, false
	}

	item := MenuItem{
		Name:  n.Name,
		Path:  n.Path,
		Title: translate(tr, n.Meta.Title),
		Icon:  n.Meta.Icon,
	}

	if !n.IsGroup() {
		return item, true
	}

	for _, c := range n.Children {
		if child, ok := project(c, authz, tr); ok {
			item.Children = append(item.Children, child)
		}
	}
	return item, len(item.Children) > 0
}

func translate(tr Translator, key string) string {
	if tr == nil {
		return key
	}
	return tr.Translate(key)
}
