package navigation

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Resolver loads leaf views on demand. Each view is loaded at most once
// successfully; concurrent first requests share a single load and failures
// are retried on the next request.
type Resolver struct {
	loaders map[string]Loader
	group   singleflight.Group

	mu    sync.RWMutex
	views map[string]any
}

func NewResolver(t Table) *Resolver {
	return &Resolver{
		loaders: t.Loaders(),
		views:   make(map[string]any),
	}
}

// Resolve returns the view registered under name. A caller whose ctx ends
// while waiting gets ctx.Err(); the shared load keeps running for the others.
func (r *Resolver) Resolve(ctx context.Context, name string) (any, error) {
	if v, ok := r.cached(name); ok {
		return v, nil
	}

	load, ok := r.loaders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownView, name)
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := r.group.DoChan(name, func() (any, error) {
		if v, ok := r.cached(name); ok {
			return v, nil
		}
		v, err := load(loadCtx)
		if err != nil {
			return nil, fmt.Errorf("load view %s: %w", name, err)
		}
		r.mu.Lock()
		r.views[name] = v
		r.mu.Unlock()
		return v, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

// Resolved reports whether name has a memoized view.
func (r *Resolver) Resolved(name string) bool {
	_, ok := r.cached(name)
	return ok
}

func (r *Resolver) cached(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.views[name]
	return v, ok
}
