package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"hangarops/labour-reporting/internal/models"
	"hangarops/labour-reporting/internal/storage"
	"hangarops/labour-reporting/internal/timeutil"
)

// ErrValidation marks submission input the caller can fix. Check with
// errors.Is to separate bad input from storage failures.
var ErrValidation = errors.New("invalid submission")

// LabourService validates submissions and drives the two storage views:
// every accepted entry lands in the submitter's own log and in the day's
// shared aggregate.
type LabourService struct {
	store  *storage.Store
	logger *zap.Logger
}

func NewLabourService(store *storage.Store, logger *zap.Logger) *LabourService {
	return &LabourService{store: store, logger: logger}
}

// Submit validates req, assigns the next id for the target day and writes
// the record to both logs. The record is stamped with the submission
// instant regardless of a backdated target day; the day only selects which
// counter and aggregate the entry joins. The returned record carries the
// assigned id.
func (s *LabourService) Submit(req models.SubmissionRequest) (models.OccupationRecord, error) {
	var zero models.OccupationRecord

	user := strings.TrimSpace(req.User)
	if user == "" {
		return zero, fmt.Errorf("%w: user is required", ErrValidation)
	}
	tech := strings.TrimSpace(req.TechnicianCode)
	if tech == "" {
		tech = DefaultTechnicianCode(user)
	}
	wo := strings.TrimSpace(req.WorkOrderCode)
	if wo == "" {
		return zero, fmt.Errorf("%w: work order code is required", ErrValidation)
	}
	hours, err := timeutil.ParseHHMM(req.Duration)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	hourType := strings.ToUpper(strings.TrimSpace(req.HourType))
	if hourType == "" {
		hourType = models.HourTypeNormal
	}
	day, err := s.resolveDay(req.Date)
	if err != nil {
		return zero, err
	}

	now := time.Now().In(s.store.Location())
	rec := models.OccupationRecord{
		TechnicianCode: tech,
		OccurredAt:     now,
		DurationHours:  hours,
		WorkOrderCode:  wo,
		HourType:       hourType,
		OccupationType: strings.TrimSpace(req.OccupationType),
		Comment:        collapseNewlines(req.Comment),
	}

	rec.ID, err = s.store.NextID(day)
	if err != nil {
		return zero, fmt.Errorf("failed to assign id: %w", err)
	}
	path, err := s.store.WriteUserRecord(user, rec)
	if err != nil {
		return zero, fmt.Errorf("failed to write user record: %w", err)
	}
	if err := s.store.AppendAggregate(day, rec); err != nil {
		// The user record is already on disk; the aggregate can be
		// reconverged later with a rebuild.
		s.logger.Error("Aggregate append failed after user record was written",
			zap.Int("record_id", rec.ID),
			zap.String("user_record", path),
			zap.Error(err))
		return zero, fmt.Errorf("failed to append to aggregate: %w", err)
	}

	s.logger.Info("Occupation recorded",
		zap.Int("record_id", rec.ID),
		zap.String("user", user),
		zap.String("technician", tech),
		zap.String("work_order", wo),
		zap.Float64("hours", hours))
	return rec, nil
}

// Day reconstructs user's sheet for date (YYYY-MM-DD, today when empty).
func (s *LabourService) Day(user, date string) (models.DaySheet, error) {
	var zero models.DaySheet
	user = strings.TrimSpace(user)
	if user == "" {
		return zero, fmt.Errorf("%w: user is required", ErrValidation)
	}
	day, err := s.resolveDay(date)
	if err != nil {
		return zero, err
	}
	entries, err := s.store.EntriesForDay(user, day)
	if err != nil {
		return zero, err
	}
	return models.DaySheet{
		User:            user,
		Date:            day.Format(timeutil.DateLayout),
		Entries:         entries,
		WorkOrderTotals: storage.WorkOrderTotals(entries),
		TotalHours:      storage.TotalHours(entries),
	}, nil
}

// Rebuild regenerates the aggregate for date from the per-user logs and
// returns the record count written.
func (s *LabourService) Rebuild(date string) (int, error) {
	day, err := s.resolveDay(date)
	if err != nil {
		return 0, err
	}
	return s.store.RebuildAggregate(day)
}

func (s *LabourService) resolveDay(date string) (time.Time, error) {
	if strings.TrimSpace(date) == "" {
		return time.Now().In(s.store.Location()), nil
	}
	day, err := time.ParseInLocation(timeutil.DateLayout, strings.TrimSpace(date), s.store.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not in YYYY-MM-DD form", ErrValidation, date)
	}
	return day, nil
}

// DefaultTechnicianCode derives a technician code from a user name: upper
// case, spaces removed. Used when a submission leaves the code blank.
func DefaultTechnicianCode(user string) string {
	return strings.ToUpper(strings.ReplaceAll(user, " ", ""))
}

// collapseNewlines folds a multi-line comment onto one line; the document
// format stores comments as single-line text.
func collapseNewlines(comment string) string {
	r := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
	return strings.TrimSpace(r.Replace(comment))
}
