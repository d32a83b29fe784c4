package migrations_test

import (
	"io"
	"strings"
	"testing"

	"github.com/JaimeStill/admin-console/internal/migrations"
)

func TestSource_Versions(t *testing.T) {
	src, err := migrations.Source()
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	defer src.Close()

	first, err := src.First()
	if err != nil {
		t.Fatalf("First: %v", err)
	}
	if first != 1 {
		t.Errorf("first version = %d, want 1", first)
	}

	up, _, err := src.ReadUp(first)
	if err != nil {
		t.Fatalf("ReadUp: %v", err)
	}
	defer up.Close()

	body, err := io.ReadAll(up)
	if err != nil {
		t.Fatalf("read up: %v", err)
	}

	for _, table := range []string{"sys_dept", "sys_menu", "sys_role", "sys_user", "sys_user_role", "sys_role_menu"} {
		if !strings.Contains(string(body), "CREATE TABLE IF NOT EXISTS "+table+" ") {
			t.Errorf("up migration missing %s", table)
		}
	}

	down, _, err := src.ReadDown(first)
	if err != nil {
		t.Fatalf("ReadDown: %v", err)
	}
	down.Close()
}
