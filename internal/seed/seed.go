// Package seed ships the demo roster embedded in the binary.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/empdir/internal/ports/primary"
)

//go:embed roster.yaml
var rosterYAML []byte

// Roster returns the embedded demo employees.
func Roster() ([]primary.EmployeeInput, error) {
	return parse(rosterYAML)
}

// Load parses a roster from an alternate YAML file.
func Load(path string) ([]primary.EmployeeInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]primary.EmployeeInput, error) {
	var entries []primary.EmployeeInput
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}
	return entries, nil
}
