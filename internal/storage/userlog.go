package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"hangarops/labour-reporting/internal/codec"
	"hangarops/labour-reporting/internal/models"
	"hangarops/labour-reporting/internal/timeutil"
)

// WriteUserRecord writes rec as its own single-occupation document under
// user's folder, named by the record's timestamp at second resolution. A
// second record in the same second gets a _2, _3, ... suffix instead of
// overwriting the first. The document lands via an atomic rename, so a
// concurrent day query never sees a half-written file. No lock is taken:
// each record is its own file, nothing shared is mutated. Returns the
// path written.
func (s *Store) WriteUserRecord(user string, rec models.OccupationRecord) (string, error) {
	dir := s.UserDir(user)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create user directory %s: %w", dir, err)
	}
	data, err := codec.EncodeRecord(rec, s.Zone())
	if err != nil {
		return "", err
	}
	stamp := rec.OccurredAt.In(s.loc).Format(timeutil.FileStampLayout)
	path := filepath.Join(dir, stamp+".xml")
	for n := 2; ; n++ {
		taken, err := nameTaken(path)
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !taken {
			break
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%d.xml", stamp, n))
	}
	if err := WriteFileAtomic(path, data, 0o644); err != nil {
		return "", err
	}
	s.logger.Debug("Wrote user record",
		zap.String("path", path),
		zap.Int("record_id", rec.ID))
	return path, nil
}

// nameTaken reports whether path already names an entry. Only
// fs.ErrNotExist reads as a free name; any other stat failure is returned
// to the caller.
func nameTaken(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
