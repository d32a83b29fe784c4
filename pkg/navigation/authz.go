package navigation

// Authorizer answers whether the current principal holds a token.
type Authorizer interface {
	Granted(p Permission) bool
}

// GrantSet is an Authorizer backed by a fixed set of tokens.
type GrantSet map[Permission]struct{}

func NewGrantSet(tokens ...string) GrantSet {
	g := make(GrantSet, len(tokens))
	for _, t := range tokens {
		g[Permission(t)] = struct{}{}
	}
	return g
}

func (g GrantSet) Granted(p Permission) bool {
	_, ok := g[p]
	return ok
}

// AllowAll grants every token.
type AllowAll struct{}

func (AllowAll) Granted(Permission) bool { return true }

// Permitted reports whether a node's own token is satisfied.
// Unguarded nodes are open to every authenticated caller.
func Permitted(n Node, authz Authorizer) bool {
	if n.Meta.Permission == "" {
		return true
	}
	return authz != nil && authz.Granted(n.Meta.Permission)
}

// Visible reports whether the leaf at path, and every ancestor on the way to it,
// is permitted.
func Visible(t Table, path string, authz Authorizer) bool {
	leaf, ancestors, ok := t.Find(path)
	if !ok {
		return false
	}
	for _, a := range ancestors {
		if !Permitted(a, authz) {
			return false
		}
	}
	return Permitted(leaf, authz)
}
