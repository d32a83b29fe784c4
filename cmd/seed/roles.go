package main

import (
	"context"
	"database/sql"
	"fmt"
)

// RoleSeeder upserts roles keyed by code and grants their menus by name.
// Existing grants are kept.
type RoleSeeder struct {
	roles []RoleSeed
}

func (s *RoleSeeder) Name() string {
	return "roles"
}

func (s *RoleSeeder) Description() string {
	return "Seeds roles and their menu grants"
}

func (s *RoleSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	const upsert = `
		INSERT INTO public.sys_role (name, code, remark)
		VALUES ($1, $2, $3)
		ON CONFLICT (code) DO UPDATE
		SET name = EXCLUDED.name, remark = EXCLUDED.remark, updated_at = NOW()
		RETURNING id`

	const grant = `
		INSERT INTO public.sys_role_menu (role_id, menu_id)
		SELECT $1, m.id FROM public.sys_menu m WHERE m.name = $2
		ON CONFLICT DO NOTHING`

	for _, r := range s.roles {
		var id int64
		if err := tx.QueryRowContext(ctx, upsert, r.Name, r.Code, r.Remark).Scan(&id); err != nil {
			return fmt.Errorf("role %s: %w", r.Code, err)
		}

		for _, menu := range r.Menus {
			if _, err := tx.ExecContext(ctx, grant, id, menu); err != nil {
				return fmt.Errorf("role %s: grant %s: %w", r.Code, menu, err)
			}
		}
	}
	return nil
}
