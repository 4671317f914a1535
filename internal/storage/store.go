// Package storage is the flat-file persistence engine for occupation
// records: a per-day id counter, a per-day aggregate document shared by
// every writer, and one self-contained document per record under each
// user's folder. The data directory may be mounted by several machines at
// once, so every read-modify-write of a shared file runs under an
// exclusive file lock and every fresh file lands via an atomic rename.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"hangarops/labour-reporting/internal/timeutil"
)

// Store reads and writes every on-disk artifact for one reporting site.
type Store struct {
	dir         string
	loc         *time.Location
	counterBase int
	logger      *zap.Logger
}

// New ensures dir exists and returns a store over it. Timestamps are
// interpreted and files are keyed in loc's calendar; counterBase is the
// first id handed out for a new day.
func New(dir string, loc *time.Location, counterBase int, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	logger.Info("Storage ready",
		zap.String("dir", dir),
		zap.String("timezone", loc.String()),
		zap.Int("counter_base", counterBase))
	return &Store{dir: dir, loc: loc, counterBase: counterBase, logger: logger}, nil
}

// Dir returns the root data directory.
func (s *Store) Dir() string { return s.dir }

// Location returns the store's time zone.
func (s *Store) Location() *time.Location { return s.loc }

// Zone returns the IANA name of the store's time zone, as stamped into
// every document envelope.
func (s *Store) Zone() string { return s.loc.String() }

// UserDir returns the folder holding user's per-record documents.
func (s *Store) UserDir(user string) string {
	return filepath.Join(s.dir, SanitizeFolder(user))
}

func (s *Store) counterPath(day time.Time) string {
	return filepath.Join(s.dir, timeutil.DayKey(day.In(s.loc))+"_counter.txt")
}

func (s *Store) aggregatePath(day time.Time) string {
	return filepath.Join(s.dir, timeutil.DayKey(day.In(s.loc))+"_allEmployee.xml")
}

// SanitizeFolder maps a free-form user name onto a safe folder name:
// letters, digits, dash and underscore survive, everything else is
// dropped. A name with nothing left becomes "USER".
func SanitizeFolder(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "USER"
	}
	return b.String()
}
