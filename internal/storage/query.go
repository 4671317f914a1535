package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"hangarops/labour-reporting/internal/codec"
	"hangarops/labour-reporting/internal/models"
	"hangarops/labour-reporting/internal/timeutil"
)

// EntriesForDay reconstructs the rows user logged on day by decoding every
// document in the user's folder and keeping those whose timestamp falls on
// day in the store's zone. A document that cannot be read or decoded is
// logged and skipped, never fatal; the per-user log is scanned read-only.
// Rows come back sorted by time of day, then work-order code.
func (s *Store) EntriesForDay(user string, day time.Time) ([]models.DayEntry, error) {
	dir := s.UserDir(user)
	docs, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user directory %s: %w", dir, err)
	}

	day = day.In(s.loc)
	var entries []models.DayEntry
	for _, doc := range docs {
		rec, ok := s.readRecord(filepath.Join(dir, doc.Name()), doc)
		if !ok || !timeutil.SameDay(rec.OccurredAt, day) {
			continue
		}
		entries = append(entries, models.DayEntry{
			Time:           rec.OccurredAt.In(s.loc).Format(timeutil.ClockLayout),
			WorkOrderCode:  rec.WorkOrderCode,
			HourType:       rec.HourType,
			OccupationType: rec.OccupationType,
			Hours:          timeutil.Round(rec.DurationHours, 3),
			Comment:        rec.Comment,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Time != entries[j].Time {
			return entries[i].Time < entries[j].Time
		}
		return entries[i].WorkOrderCode < entries[j].WorkOrderCode
	})
	return entries, nil
}

// readRecord decodes one per-user document, reporting ok=false for
// anything that should be skipped.
func (s *Store) readRecord(path string, doc fs.DirEntry) (models.OccupationRecord, bool) {
	if doc.IsDir() || !strings.HasSuffix(doc.Name(), ".xml") {
		return models.OccupationRecord{}, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("Skipping unreadable document", zap.String("path", path), zap.Error(err))
		return models.OccupationRecord{}, false
	}
	rec, err := codec.DecodeRecord(data, s.loc)
	if err != nil {
		s.logger.Warn("Skipping undecodable document", zap.String("path", path), zap.Error(err))
		return models.OccupationRecord{}, false
	}
	return rec, true
}

// WorkOrderTotals groups entries by work-order code and sums the hours,
// largest total first. Codes with equal totals keep first-appearance order.
func WorkOrderTotals(entries []models.DayEntry) []models.WorkOrderTotal {
	sums := make(map[string]float64)
	var order []string
	for _, e := range entries {
		if _, seen := sums[e.WorkOrderCode]; !seen {
			order = append(order, e.WorkOrderCode)
		}
		sums[e.WorkOrderCode] += e.Hours
	}
	totals := make([]models.WorkOrderTotal, 0, len(order))
	for _, code := range order {
		totals = append(totals, models.WorkOrderTotal{
			WorkOrderCode: code,
			Hours:         timeutil.Round(sums[code], 3),
		})
	}
	sort.SliceStable(totals, func(i, j int) bool { return totals[i].Hours > totals[j].Hours })
	return totals
}

// TotalHours sums the hours across entries.
func TotalHours(entries []models.DayEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Hours
	}
	return timeutil.Round(total, 3)
}
