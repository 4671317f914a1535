// Package codec serializes occupation records to and from the OCCUPATION_IN
// exchange documents shared with the external system. A document that cannot
// be parsed is reported as such so callers can skip or discard it, never
// abort a whole read.
package codec

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"hangarops/labour-reporting/internal/models"
	"hangarops/labour-reporting/internal/timeutil"
)

// docHeader precedes every document. The blank line after the declaration
// matches the files already produced by the external system.
const docHeader = xml.Header + "\n"

// Envelope is the root element of both the per-day aggregate document and
// the single-record per-user documents.
type Envelope struct {
	XMLName           xml.Name     `xml:"entities"`
	ExchangeInterface string       `xml:"exchangeInterface,attr"`
	ExternalSystem    string       `xml:"externalSystem,attr"`
	Timezone          string       `xml:"timezone,attr"`
	Occupations       []Occupation `xml:"occupation"`
}

// Occupation is the wire form of one occupation record.
type Occupation struct {
	ID             int       `xml:"id,attr"`
	Technician     CodeAttr  `xml:"occupation_technician"`
	OccupationDate string    `xml:"occupation_occupationDate"`
	Duration       string    `xml:"occupation_duration"`
	WorkOrder      CodeAttr  `xml:"occupation_WO"`
	HourType       CodeAttr  `xml:"occupation_hourType"`
	Type           *CodeAttr `xml:"occupation_type,omitempty"`
	Comments       Comments  `xml:"occupation_comments"`
	OccupationID   string    `xml:"occupation_id"`
}

// CodeAttr is a child element whose payload is a single code attribute.
type CodeAttr struct {
	Code string `xml:"code,attr"`
}

// Comments nests the free-text comment one level down, as the exchange
// format requires.
type Comments struct {
	Description string `xml:"description_description"`
}

// NewEnvelope returns an empty envelope carrying the fixed exchange
// attributes for the given zone name.
func NewEnvelope(zone string) *Envelope {
	return &Envelope{
		ExchangeInterface: "OCCUPATION_IN",
		ExternalSystem:    "",
		Timezone:          zone,
	}
}

// FromRecord converts a record into its wire form. An empty occupation type
// is omitted from the document entirely.
func FromRecord(rec models.OccupationRecord) Occupation {
	occ := Occupation{
		ID:             rec.ID,
		Technician:     CodeAttr{Code: rec.TechnicianCode},
		OccupationDate: timeutil.FormatStamp(rec.OccurredAt),
		Duration:       FormatHours(rec.DurationHours),
		WorkOrder:      CodeAttr{Code: rec.WorkOrderCode},
		HourType:       CodeAttr{Code: rec.HourType},
		Comments:       Comments{Description: rec.Comment},
		OccupationID:   strconv.Itoa(rec.ID),
	}
	if rec.OccupationType != "" {
		occ.Type = &CodeAttr{Code: rec.OccupationType}
	}
	return occ
}

// Record converts the wire form back into a record, resolving the stored
// timestamp in loc. The timestamp is the only field whose absence makes the
// document unusable; missing codes decode as empty strings and an
// unparsable duration decodes as zero hours.
func (o Occupation) Record(loc *time.Location) (models.OccupationRecord, error) {
	if o.OccupationDate == "" {
		return models.OccupationRecord{}, fmt.Errorf("occupation %d has no occupationDate", o.ID)
	}
	occurredAt, err := timeutil.ParseStamp(o.OccupationDate, loc)
	if err != nil {
		return models.OccupationRecord{}, fmt.Errorf("occupation %d has a bad occupationDate: %w", o.ID, err)
	}
	hours, err := strconv.ParseFloat(o.Duration, 64)
	if err != nil || hours < 0 {
		hours = 0
	}
	rec := models.OccupationRecord{
		ID:             o.ID,
		TechnicianCode: o.Technician.Code,
		OccurredAt:     occurredAt,
		DurationHours:  hours,
		WorkOrderCode:  o.WorkOrder.Code,
		HourType:       o.HourType.Code,
		Comment:        o.Comments.Description,
	}
	if o.Type != nil {
		rec.OccupationType = o.Type.Code
	}
	return rec, nil
}

// EncodeEnvelope renders a complete document, declaration included.
func EncodeEnvelope(env *Envelope) ([]byte, error) {
	body, err := xml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to encode envelope: %w", err)
	}
	return append([]byte(docHeader), body...), nil
}

// EncodeRecord renders a single-occupation document for the per-user log.
func EncodeRecord(rec models.OccupationRecord, zone string) ([]byte, error) {
	env := NewEnvelope(zone)
	env.Occupations = append(env.Occupations, FromRecord(rec))
	return EncodeEnvelope(env)
}

// DecodeEnvelope parses a document into an envelope. Leading NUL bytes and
// whitespace are stripped first; they are an artifact of implementations
// that pad empty files before locking them. A parse failure or a root tag
// other than entities is returned as an error for the caller to act on.
func DecodeEnvelope(data []byte) (*Envelope, error) {
	data = trimLeadingPadding(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("document is empty")
	}
	var env Envelope
	if err := xml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &env, nil
}

// DecodeRecord parses a per-user document, which must hold exactly one
// occupation, and resolves it in loc.
func DecodeRecord(data []byte, loc *time.Location) (models.OccupationRecord, error) {
	env, err := DecodeEnvelope(data)
	if err != nil {
		return models.OccupationRecord{}, err
	}
	if len(env.Occupations) != 1 {
		return models.OccupationRecord{}, fmt.Errorf("document holds %d occupations, want 1", len(env.Occupations))
	}
	return env.Occupations[0].Record(loc)
}

// FormatHours renders a duration for storage: rounded to six decimal places,
// shortest decimal form.
func FormatHours(hours float64) string {
	return strconv.FormatFloat(timeutil.Round(hours, 6), 'f', -1, 64)
}

func trimLeadingPadding(data []byte) []byte {
	return bytes.TrimLeft(data, "\x00 \t\r\n")
}
