// Package auth checks submitters against the site's employee roster, a
// hand-maintained CSV file with name and pin columns.
package auth

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"hangarops/labour-reporting/internal/models"
)

// Source reads the employee roster file on demand, so edits to the file
// take effect without a restart.
type Source struct {
	path   string
	logger *zap.Logger
}

// NewSource returns a roster source over the CSV file at path.
func NewSource(path string, logger *zap.Logger) *Source {
	return &Source{path: path, logger: logger}
}

// Load reads the roster. Header cells locate the name and pin columns;
// names and pins are trimmed and rows without a name are dropped.
func (s *Source) Load() ([]models.Employee, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open employee roster: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// The file is edited by hand; tolerate ragged rows.
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse employee roster %s: %w", s.path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	nameIdx, pinIdx := -1, -1
	for i, h := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name":
			nameIdx = i
		case "pin":
			pinIdx = i
		}
	}
	if nameIdx < 0 {
		return nil, fmt.Errorf("employee roster %s has no name column", s.path)
	}

	var employees []models.Employee
	for _, row := range rows[1:] {
		if nameIdx >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[nameIdx])
		if name == "" {
			continue
		}
		pin := ""
		if pinIdx >= 0 && pinIdx < len(row) {
			pin = strings.TrimSpace(row[pinIdx])
		}
		employees = append(employees, models.Employee{Name: name, PIN: pin})
	}
	s.logger.Debug("Loaded employee roster",
		zap.String("path", s.path),
		zap.Int("count", len(employees)))
	return employees, nil
}

// Authenticate reports whether name and pin match a roster row. The name
// must match exactly; the pin comparison ignores surrounding whitespace on
// both sides. A missing user and a wrong pin are indistinguishable to the
// caller.
func (s *Source) Authenticate(name, pin string) (bool, error) {
	employees, err := s.Load()
	if err != nil {
		return false, err
	}
	pin = strings.TrimSpace(pin)
	for _, e := range employees {
		if e.Name == name && e.PIN == pin {
			return true, nil
		}
	}
	return false, nil
}

// Names lists the roster names in file order, for building pickers.
func (s *Source) Names() ([]string, error) {
	employees, err := s.Load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(employees))
	for _, e := range employees {
		names = append(names, e.Name)
	}
	return names, nil
}
