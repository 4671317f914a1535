package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"

	"hangarops/labour-reporting/internal/codec"
	"hangarops/labour-reporting/internal/models"
	"hangarops/labour-reporting/internal/timeutil"
)

// RebuildAggregate regenerates day's aggregate document from the per-user
// logs. The two views can diverge when a submission writes its user
// document but fails the aggregate append; the user logs are the source of
// truth, so the aggregate is rewritten from them. The aggregate lock is
// held across the whole scan and rewrite, which keeps concurrent appends
// from slipping in between and being lost. Records are ordered by id.
// Returns the record count written.
func (s *Store) RebuildAggregate(day time.Time) (int, error) {
	path := s.aggregatePath(day)
	lf, err := openLocked(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return 0, err
	}
	defer lf.Close()

	previous := 0
	if raw, err := io.ReadAll(lf.f); err == nil && len(raw) > 0 {
		if env, derr := codec.DecodeEnvelope(raw); derr == nil {
			previous = len(env.Occupations)
		}
	}

	recs, err := s.scanDay(day.In(s.loc))
	if err != nil {
		return 0, err
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })

	env := codec.NewEnvelope(s.Zone())
	for _, rec := range recs {
		env.Occupations = append(env.Occupations, codec.FromRecord(rec))
	}
	data, err := codec.EncodeEnvelope(env)
	if err != nil {
		return 0, fmt.Errorf("failed to encode aggregate: %w", err)
	}
	if err := overwriteAndSync(lf.f, data); err != nil {
		return 0, fmt.Errorf("failed to rewrite aggregate %s: %w", path, err)
	}
	s.logger.Info("Rebuilt aggregate from user logs",
		zap.String("path", path),
		zap.Int("previous_records", previous),
		zap.Int("records", len(recs)))
	return len(recs), nil
}

// scanDay collects every decodable record on day from every user folder.
func (s *Store) scanDay(day time.Time) ([]models.OccupationRecord, error) {
	dirs, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %s: %w", s.dir, err)
	}
	var recs []models.OccupationRecord
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		userDir := filepath.Join(s.dir, d.Name())
		docs, err := os.ReadDir(userDir)
		if err != nil {
			s.logger.Warn("Skipping unreadable user directory", zap.String("path", userDir), zap.Error(err))
			continue
		}
		for _, doc := range docs {
			rec, ok := s.readRecord(filepath.Join(userDir, doc.Name()), doc)
			if ok && timeutil.SameDay(rec.OccurredAt, day) {
				recs = append(recs, rec)
			}
		}
	}
	return recs, nil
}
