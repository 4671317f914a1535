// Package timeutil holds the fixed-zone time helpers shared by the storage
// engine and its callers: day keys, document timestamps, and the HH:MM
// duration format used on the entry form.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// StampLayout is the date+time text stored in occupation documents.
	StampLayout = "2006-01-02 15:04:05"
	// DayLayout keys the per-day counter and aggregate file names.
	DayLayout = "2006-01-02_Mon"
	// FileStampLayout names per-user record files to second resolution.
	FileStampLayout = "2006-01-02_Mon_15-04-05"
	// ClockLayout is the time-of-day column in day listings.
	ClockLayout = "15:04:05"
	// DateLayout is the calendar-date input format accepted by the CLI and
	// HTTP surfaces.
	DateLayout = "2006-01-02"
)

// LoadZone resolves an IANA zone name (e.g. "Australia/Sydney").
func LoadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, nil
}

// DayKey formats the calendar day of t in its location, e.g. "2026-01-08_Thu".
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// FormatStamp renders t for storage inside a document.
func FormatStamp(t time.Time) string {
	return t.Format(StampLayout)
}

// ParseStamp parses a stored document timestamp in the given zone.
func ParseStamp(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(StampLayout, s, loc)
}

// SameDay reports whether t falls on the calendar day of day, both
// interpreted in day's location.
func SameDay(t, day time.Time) bool {
	ty, tm, td := t.In(day.Location()).Date()
	dy, dm, dd := day.Date()
	return ty == dy && tm == dm && td == dd
}

// ParseHHMM converts an "HH:MM" duration into fractional hours. Hours may
// exceed 23; minutes must be in [0, 60).
func ParseHHMM(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("duration %q is not in HH:MM form", s)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("duration %q has a bad hour component", s)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("duration %q has a bad minute component", s)
	}
	if hh < 0 || mm < 0 || mm >= 60 {
		return 0, fmt.Errorf("duration %q is out of range", s)
	}
	return float64(hh) + float64(mm)/60.0, nil
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}
