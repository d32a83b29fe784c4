package main

import (
	"context"
	"database/sql"
	"fmt"
)

// DeptSeeder upserts departments keyed by (parent, name). Parents must be
// listed before their children.
type DeptSeeder struct {
	depts []DeptSeed
}

func (s *DeptSeeder) Name() string {
	return "depts"
}

func (s *DeptSeeder) Description() string {
	return "Seeds the department tree"
}

func (s *DeptSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	const q = `
		INSERT INTO public.sys_dept (name, parent_id, leader, sort)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (parent_id, name) DO UPDATE
		SET leader = EXCLUDED.leader, sort = EXCLUDED.sort, updated_at = NOW()
		RETURNING id`

	ids := make(map[string]int64, len(s.depts))
	for _, d := range s.depts {
		parent, err := parentID(ids, d.Parent)
		if err != nil {
			return fmt.Errorf("dept %s: %w", d.Name, err)
		}

		var id int64
		if err := tx.QueryRowContext(ctx, q, d.Name, parent, d.Leader, d.Sort).Scan(&id); err != nil {
			return fmt.Errorf("dept %s: %w", d.Name, err)
		}
		ids[d.Name] = id
	}
	return nil
}

// parentID resolves a parent declared earlier in the same seed. An empty
// name is the root.
func parentID(ids map[string]int64, name string) (int64, error) {
	if name == "" {
		return 0, nil
	}
	id, ok := ids[name]
	if !ok {
		return 0, fmt.Errorf("parent %s not seeded before child", name)
	}
	return id, nil
}
