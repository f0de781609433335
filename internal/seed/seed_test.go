package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/empdir/internal/validate"
)

func TestRoster(t *testing.T) {
	entries, err := Roster()
	if err != nil {
		t.Fatalf("Roster failed: %v", err)
	}
	if len(entries) != 23 {
		t.Fatalf("roster holds %d entries, want 23", len(entries))
	}

	// Every shipped entry must pass the form rules it will be run
	// through at seed time (uniqueness aside).
	seen := map[string]bool{}
	for _, in := range entries {
		if errs := validate.Employee(in, "", nil); len(errs) != 0 {
			t.Errorf("roster entry %s %s is invalid: %v", in.FirstName, in.LastName, errs)
		}
		if seen[in.Email] {
			t.Errorf("duplicate roster email: %s", in.Email)
		}
		seen[in.Email] = true
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team.yaml")
	content := `
- firstName: Jane
  lastName: Doe
  email: jane@x.com
  phone: "+90 532 111 22 33"
  department: Tech
  position: Junior
  dateOfEmployment: "2024-02-01"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("loaded %d entries, want 1", len(entries))
	}
	if entries[0].FirstName != "Jane" || entries[0].Department != "Tech" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
	if entries[0].DateOfBirth != "" {
		t.Errorf("absent birth date parsed as %q, want empty", entries[0].DateOfBirth)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("::not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
