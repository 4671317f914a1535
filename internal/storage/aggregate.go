package storage

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"hangarops/labour-reporting/internal/codec"
	"hangarops/labour-reporting/internal/models"
)

// AppendAggregate merges rec into day's shared aggregate document. The
// file is opened (created when missing) and locked once; the whole
// read-merge-rewrite happens inside that single critical section, so
// records from concurrent writers land whole, in lock-acquisition order.
// Existing content that no longer parses is discarded in favour of a fresh
// envelope: future appends must keep working even after corruption, and
// the loss is logged rather than silently absorbed.
func (s *Store) AppendAggregate(day time.Time, rec models.OccupationRecord) error {
	path := s.aggregatePath(day)
	lf, err := openLocked(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	defer lf.Close()

	raw, err := io.ReadAll(lf.f)
	if err != nil {
		return fmt.Errorf("failed to read aggregate %s: %w", path, err)
	}
	env := codec.NewEnvelope(s.Zone())
	if len(raw) > 0 {
		parsed, derr := codec.DecodeEnvelope(raw)
		if derr != nil {
			s.logger.Warn("Aggregate document is unreadable, starting a fresh envelope",
				zap.String("path", path),
				zap.Int("discarded_bytes", len(raw)),
				zap.Error(derr))
		} else {
			env = parsed
		}
	}
	env.Occupations = append(env.Occupations, codec.FromRecord(rec))

	data, err := codec.EncodeEnvelope(env)
	if err != nil {
		return fmt.Errorf("failed to encode aggregate: %w", err)
	}
	if err := overwriteAndSync(lf.f, data); err != nil {
		return fmt.Errorf("failed to rewrite aggregate %s: %w", path, err)
	}
	s.logger.Debug("Appended record to aggregate",
		zap.String("path", path),
		zap.Int("record_id", rec.ID),
		zap.Int("records", len(env.Occupations)))
	return nil
}
