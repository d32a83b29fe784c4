package main

import (
	"context"
	"database/sql"
	"fmt"
)

// MenuSeeder upserts menus keyed by (parent, name).
type MenuSeeder struct {
	menus []MenuSeed
}

func (s *MenuSeeder) Name() string {
	return "menus"
}

func (s *MenuSeeder) Description() string {
	return "Seeds the system menu tree and its permission tokens"
}

func (s *MenuSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	const q = `
		INSERT INTO public.sys_menu (name, path, component, parent_id, type, permission, icon, sort)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (parent_id, name) DO UPDATE
		SET path = EXCLUDED.path,
			component = EXCLUDED.component,
			type = EXCLUDED.type,
			permission = EXCLUDED.permission,
			icon = EXCLUDED.icon,
			sort = EXCLUDED.sort,
			updated_at = NOW()
		RETURNING id`

	ids := make(map[string]int64, len(s.menus))
	for _, m := range s.menus {
		parent, err := parentID(ids, m.Parent)
		if err != nil {
			return fmt.Errorf("menu %s: %w", m.Name, err)
		}

		var id int64
		err = tx.QueryRowContext(ctx, q,
			m.Name, m.Path, m.Component, parent, m.Type, m.Permission, m.Icon, m.Sort,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("menu %s: %w", m.Name, err)
		}
		ids[m.Name] = id
	}
	return nil
}
