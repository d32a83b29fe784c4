// Package main provides the seed command for populating the database with
// the baseline departments, menus, roles and superuser. Seeders run in
// dependency order, individually or together within a single transaction.
package main

import (
	"context"
	"database/sql"
	"fmt"
)

// Seeder populates one domain's data.
type Seeder interface {
	// Name returns the unique identifier for this seeder.
	Name() string

	Description() string

	// Seed executes within tx. Running it twice leaves the same rows behind.
	Seed(ctx context.Context, tx *sql.Tx) error
}

// newSeeders returns every seeder in dependency order.
func newSeeders(data *SeedData) []Seeder {
	return []Seeder{
		&DeptSeeder{depts: data.Depts},
		&MenuSeeder{menus: data.Menus},
		&RoleSeeder{roles: data.Roles},
		&UserSeeder{users: data.Users},
	}
}

func findSeeder(seeders []Seeder, name string) (Seeder, bool) {
	for _, s := range seeders {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// runSeeders executes seeders in order within one transaction.
// If any seeder fails, the entire transaction is rolled back.
func runSeeders(ctx context.Context, db *sql.DB, seeders ...Seeder) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	for _, s := range seeders {
		if err := s.Seed(ctx, tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
