package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

//go:embed seed.toml
var embeddedSeed []byte

// SeedData is the TOML document consumed by every seeder. Cross references
// use natural keys: department and menu names, role codes.
type SeedData struct {
	Depts []DeptSeed `toml:"depts"`
	Menus []MenuSeed `toml:"menus"`
	Roles []RoleSeed `toml:"roles"`
	Users []UserSeed `toml:"users"`
}

type DeptSeed struct {
	Name   string  `toml:"name"`
	Parent string  `toml:"parent"`
	Leader *string `toml:"leader"`
	Sort   int     `toml:"sort"`
}

type MenuSeed struct {
	Name       string  `toml:"name"`
	Parent     string  `toml:"parent"`
	Path       *string `toml:"path"`
	Component  *string `toml:"component"`
	Type       int     `toml:"type"`
	Permission *string `toml:"permission"`
	Icon       *string `toml:"icon"`
	Sort       int     `toml:"sort"`
}

type RoleSeed struct {
	Name   string   `toml:"name"`
	Code   string   `toml:"code"`
	Remark *string  `toml:"remark"`
	Menus  []string `toml:"menus"`
}

type UserSeed struct {
	Username  string   `toml:"username"`
	Password  string   `toml:"password"`
	Nickname  *string  `toml:"nickname"`
	Email     *string  `toml:"email"`
	Dept      string   `toml:"dept"`
	Superuser bool     `toml:"superuser"`
	Roles     []string `toml:"roles"`
}

// loadSeedData parses file, or the embedded seed when file is empty.
func loadSeedData(file string) (*SeedData, error) {
	raw := embeddedSeed
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}

	var data SeedData
	if err := toml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}
