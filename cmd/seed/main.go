package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/JaimeStill/admin-console/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn  = flag.String("dsn", "", "Database connection string (defaults to config.toml)")
		only = flag.String("only", "", "Run a single seeder by name")
		file = flag.String("file", "", "External seed file (overrides embedded)")
		list = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	data, err := loadSeedData(*file)
	if err != nil {
		log.Fatalf("load seed data: %v", err)
	}
	seeders := newSeeders(data)

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range seeders {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if *only != "" {
		s, ok := findSeeder(seeders, *only)
		if !ok {
			log.Fatalf("seeder not found: %s", *only)
		}
		seeders = []Seeder{s}
	}

	conn, err := resolveDSN(*dsn)
	if err != nil {
		log.Fatalf("resolve database: %v", err)
	}

	db, err := sql.Open("pgx", conn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := runSeeders(ctx, db, seeders...); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	for _, s := range seeders {
		fmt.Printf("%s seeded\n", s.Name())
	}
}

// resolveDSN prefers the flag, then DATABASE_DSN, then the service config.
func resolveDSN(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if v := os.Getenv(EnvDatabaseDSN); v != "" {
		return v, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.Database.Dsn(), nil
}
