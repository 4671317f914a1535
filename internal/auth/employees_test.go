package auth_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"hangarops/labour-reporting/internal/auth"
)

func writeRoster(t *testing.T, content string) *auth.Source {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return auth.NewSource(path, zap.NewNop())
}

func TestLoadRoster(t *testing.T) {
	src := writeRoster(t, "name,pin\nJohn Smith,1234\n M Lee , 99 \n,777\nNoPin,\n")

	employees, err := src.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(employees) != 3 {
		t.Fatalf("employees = %d, want 3 (nameless row dropped)", len(employees))
	}
	if employees[0].Name != "John Smith" || employees[0].PIN != "1234" {
		t.Errorf("first = %+v", employees[0])
	}
	if employees[1].Name != "M Lee" || employees[1].PIN != "99" {
		t.Errorf("second not trimmed: %+v", employees[1])
	}
	if employees[2].PIN != "" {
		t.Errorf("third pin = %q, want empty", employees[2].PIN)
	}
}

func TestLoadRosterMissingNameColumn(t *testing.T) {
	src := writeRoster(t, "user,code\nJohn,1\n")
	if _, err := src.Load(); err == nil {
		t.Fatal("expected error for roster without a name column")
	}
}

func TestLoadRosterMissingFile(t *testing.T) {
	src := auth.NewSource(filepath.Join(t.TempDir(), "absent.csv"), zap.NewNop())
	if _, err := src.Load(); err == nil {
		t.Fatal("expected error for missing roster file")
	}
}

func TestAuthenticate(t *testing.T) {
	src := writeRoster(t, "name,pin\nJohn Smith,1234\nM Lee,\n")

	cases := []struct {
		name, pin string
		want      bool
	}{
		{"John Smith", "1234", true},
		{"John Smith", " 1234 ", true},
		{"John Smith", "0000", false},
		{"john smith", "1234", false},
		{"Nobody", "1234", false},
		{"M Lee", "", true},
		{"M Lee", "  ", true},
	}
	for _, c := range cases {
		ok, err := src.Authenticate(c.name, c.pin)
		if err != nil {
			t.Fatalf("Authenticate(%q): %v", c.name, err)
		}
		if ok != c.want {
			t.Errorf("Authenticate(%q, %q) = %v, want %v", c.name, c.pin, ok, c.want)
		}
	}
}
