package codec_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"hangarops/labour-reporting/internal/codec"
	"hangarops/labour-reporting/internal/models"
)

func sampleRecord() models.OccupationRecord {
	return models.OccupationRecord{
		ID:             314,
		TechnicianCode: "JSMITH",
		OccurredAt:     time.Date(2026, 3, 9, 14, 30, 5, 0, time.UTC),
		DurationHours:  1.75,
		WorkOrderCode:  "WO-7731",
		HourType:       models.HourTypeNormal,
		OccupationType: "MAINT",
		Comment:        "Replaced hydraulic line",
	}
}

func TestEncodeRecordHeader(t *testing.T) {
	data, err := codec.EncodeRecord(sampleRecord(), "Australia/Sydney")
	if err != nil {
		t.Fatalf("EncodeRecord: %v", err)
	}
	want := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n\n<entities "
	if !bytes.HasPrefix(data, []byte(want)) {
		t.Errorf("document starts with %q, want prefix %q", data[:len(want)], want)
	}
	if !strings.Contains(string(data), `exchangeInterface="OCCUPATION_IN"`) {
		t.Error("document is missing the exchangeInterface attribute")
	}
	if !strings.Contains(string(data), `timezone="Australia/Sydney"`) {
		t.Error("document is missing the timezone attribute")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	rec := sampleRecord()
	data, err := codec.EncodeRecord(rec, "Australia/Sydney")
	if err != nil {
		t.Fatalf("EncodeRecord: %v", err)
	}
	got, err := codec.DecodeRecord(data, time.UTC)
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	if got != rec {
		t.Errorf("round trip changed the record:\n got %+v\nwant %+v", got, rec)
	}
}

func TestOccupationTypeOmittedWhenEmpty(t *testing.T) {
	rec := sampleRecord()
	rec.OccupationType = ""
	data, err := codec.EncodeRecord(rec, "Australia/Sydney")
	if err != nil {
		t.Fatalf("EncodeRecord: %v", err)
	}
	if strings.Contains(string(data), "occupation_type") {
		t.Error("document contains occupation_type for a record without one")
	}
	got, err := codec.DecodeRecord(data, time.UTC)
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	if got.OccupationType != "" {
		t.Errorf("OccupationType = %q, want empty", got.OccupationType)
	}
}

func TestDecodeEnvelopeStripsPadding(t *testing.T) {
	rec := sampleRecord()
	data, err := codec.EncodeRecord(rec, "Australia/Sydney")
	if err != nil {
		t.Fatalf("EncodeRecord: %v", err)
	}
	padded := append([]byte("\x00\x00 \n"), data...)
	env, err := codec.DecodeEnvelope(padded)
	if err != nil {
		t.Fatalf("DecodeEnvelope on padded document: %v", err)
	}
	if len(env.Occupations) != 1 {
		t.Fatalf("occupations = %d, want 1", len(env.Occupations))
	}
	if env.Occupations[0].ID != rec.ID {
		t.Errorf("ID = %d, want %d", env.Occupations[0].ID, rec.ID)
	}
}

func TestDecodeEnvelopeRejectsWrongRoot(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?><records></records>`
	if _, err := codec.DecodeEnvelope([]byte(doc)); err == nil {
		t.Error("expected error for a document with the wrong root element")
	}
}

func TestDecodeEnvelopeRejectsEmpty(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("\x00\x00\x00"), []byte("   \n")} {
		if _, err := codec.DecodeEnvelope(data); err == nil {
			t.Errorf("expected error for %q", data)
		}
	}
}

func TestDecodeRecordRequiresExactlyOne(t *testing.T) {
	env := codec.NewEnvelope("Australia/Sydney")
	env.Occupations = append(env.Occupations, codec.FromRecord(sampleRecord()), codec.FromRecord(sampleRecord()))
	data, err := codec.EncodeEnvelope(env)
	if err != nil {
		t.Fatalf("EncodeEnvelope: %v", err)
	}
	if _, err := codec.DecodeRecord(data, time.UTC); err == nil {
		t.Error("expected error for a document holding two occupations")
	}
}

func TestRecordToleratesBadDuration(t *testing.T) {
	occ := codec.FromRecord(sampleRecord())
	occ.Duration = "not-a-number"
	rec, err := occ.Record(time.UTC)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.DurationHours != 0 {
		t.Errorf("DurationHours = %v, want 0", rec.DurationHours)
	}
}

func TestRecordRejectsMissingDate(t *testing.T) {
	occ := codec.FromRecord(sampleRecord())
	occ.OccupationDate = ""
	if _, err := occ.Record(time.UTC); err == nil {
		t.Error("expected error for a missing occupationDate")
	}
}

func TestFormatHours(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{0.75, "0.75"},
		{1.2345678911, "1.234568"},
		{8.25, "8.25"},
	}
	for _, c := range cases {
		if got := codec.FormatHours(c.in); got != c.want {
			t.Errorf("FormatHours(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
