package storage

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// NextID hands out the next record id for day. The counter file always
// holds the next id to assign; the read-increment-rewrite runs inside one
// lock acquisition, so concurrent callers, including ones in other
// processes, never receive the same id. A missing file starts the day at
// the configured base, and a stored value that is unparsable or below the
// base is clamped back to it: the counter heals upward, never backward.
func (s *Store) NextID(day time.Time) (int, error) {
	path := s.counterPath(day)
	lf, err := openLocked(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return 0, err
	}
	defer lf.Close()

	raw, err := io.ReadAll(lf.f)
	if err != nil {
		return 0, fmt.Errorf("failed to read counter %s: %w", path, err)
	}
	stored := strings.TrimSpace(string(raw))
	current, convErr := strconv.Atoi(stored)
	switch {
	case stored == "":
		current = s.counterBase
	case convErr != nil:
		s.logger.Warn("Counter file is unreadable, clamping to base",
			zap.String("path", path),
			zap.Int("base", s.counterBase))
		current = s.counterBase
	case current < s.counterBase:
		s.logger.Warn("Counter value below base, clamping",
			zap.String("path", path),
			zap.Int("value", current),
			zap.Int("base", s.counterBase))
		current = s.counterBase
	}

	if err := overwriteAndSync(lf.f, []byte(strconv.Itoa(current+1))); err != nil {
		return 0, fmt.Errorf("failed to persist counter %s: %w", path, err)
	}
	return current, nil
}
