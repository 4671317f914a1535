package models

import "time"

// OccupationRecord is one logged unit of labour time. Once written to either
// log it is never mutated or deleted.
type OccupationRecord struct {
	ID             int       `json:"id"`
	TechnicianCode string    `json:"technician_code"`
	OccurredAt     time.Time `json:"occurred_at"`
	DurationHours  float64   `json:"duration_hours"`
	WorkOrderCode  string    `json:"work_order_code"`
	HourType       string    `json:"hour_type"`
	OccupationType string    `json:"occupation_type,omitempty"`
	Comment        string    `json:"comment,omitempty"`
}

// SubmissionRequest carries one validated labour entry from the CLI or HTTP
// surface into the service layer. Duration is the raw HH:MM input.
type SubmissionRequest struct {
	User           string `json:"user"`
	TechnicianCode string `json:"technician_code"`
	Duration       string `json:"duration"`
	WorkOrderCode  string `json:"work_order_code"`
	HourType       string `json:"hour_type"`
	OccupationType string `json:"occupation_type,omitempty"`
	Comment        string `json:"comment,omitempty"`
	Date           string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

// DayEntry is one display row reconstructed from a user's per-record
// documents for a single day.
type DayEntry struct {
	Time           string  `json:"time"` // HH:MM:SS in the fixed zone
	WorkOrderCode  string  `json:"work_order_code"`
	HourType       string  `json:"hour_type"`
	OccupationType string  `json:"occupation_type,omitempty"`
	Hours          float64 `json:"hours"`
	Comment        string  `json:"comment,omitempty"`
}

// WorkOrderTotal is the summed hours for one work order within a day.
type WorkOrderTotal struct {
	WorkOrderCode string  `json:"work_order_code"`
	Hours         float64 `json:"hours"`
}

// DaySheet is one user's reconstructed day: the individual rows plus the
// per-work-order aggregation derived from them.
type DaySheet struct {
	User            string           `json:"user"`
	Date            string           `json:"date"`
	Entries         []DayEntry       `json:"entries"`
	WorkOrderTotals []WorkOrderTotal `json:"work_order_totals"`
	TotalHours      float64          `json:"total_hours"`
}

// Hour type constants offered by the entry form. The storage layer keeps the
// value as free text and does not enforce membership.
const (
	HourTypeNormal   = "NORMAL"
	HourTypeOvertime = "OVERTIME"
	HourTypeShift    = "SHIFT"
)
