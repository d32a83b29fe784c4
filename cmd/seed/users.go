package main

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// UserSeeder creates users keyed by username. Re-seeding refreshes profile
// fields and role assignments but never resets a password.
type UserSeeder struct {
	users []UserSeed
	cost  int
}

func (s *UserSeeder) Name() string {
	return "users"
}

func (s *UserSeeder) Description() string {
	return "Seeds the superuser and its role assignments"
}

func (s *UserSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	const upsert = `
		INSERT INTO public.sys_user (username, password, nickname, email, dept_id, is_superuser)
		VALUES ($1, $2, $3, $4, (SELECT d.id FROM public.sys_dept d WHERE d.name = $5 ORDER BY d.id LIMIT 1), $6)
		ON CONFLICT (username) DO UPDATE
		SET nickname = EXCLUDED.nickname,
			email = EXCLUDED.email,
			dept_id = EXCLUDED.dept_id,
			is_superuser = EXCLUDED.is_superuser,
			updated_at = NOW()
		RETURNING id`

	const assign = `
		INSERT INTO public.sys_user_role (user_id, role_id)
		SELECT $1, r.id FROM public.sys_role r WHERE r.code = $2
		ON CONFLICT DO NOTHING`

	cost := s.cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	for _, u := range s.users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), cost)
		if err != nil {
			return fmt.Errorf("user %s: hash password: %w", u.Username, err)
		}

		var id int64
		err = tx.QueryRowContext(ctx, upsert,
			u.Username, string(hash), u.Nickname, u.Email, u.Dept, u.Superuser,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("user %s: %w", u.Username, err)
		}

		for _, code := range u.Roles {
			if _, err := tx.ExecContext(ctx, assign, id, code); err != nil {
				return fmt.Errorf("user %s: assign %s: %w", u.Username, code, err)
			}
		}
	}
	return nil
}
