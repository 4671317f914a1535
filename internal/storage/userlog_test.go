package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hangarops/labour-reporting/internal/codec"
	"hangarops/labour-reporting/internal/storage"
)

func TestWriteUserRecord(t *testing.T) {
	s := newTestStore(t)
	at := time.Date(2026, 1, 8, 14, 30, 5, 0, time.UTC)
	rec := testRecord(300, at)

	path, err := s.WriteUserRecord("John Smith", rec)
	if err != nil {
		t.Fatalf("WriteUserRecord: %v", err)
	}
	wantDir := filepath.Join(s.Dir(), "JohnSmith")
	if filepath.Dir(path) != wantDir {
		t.Errorf("written under %q, want %q", filepath.Dir(path), wantDir)
	}
	if got := filepath.Base(path); got != "2026-01-08_Thu_14-30-05.xml" {
		t.Errorf("file name = %q, want %q", got, "2026-01-08_Thu_14-30-05.xml")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got, err := codec.DecodeRecord(raw, time.UTC)
	if err != nil {
		t.Fatalf("written document does not decode: %v", err)
	}
	if got != rec {
		t.Errorf("decoded record = %+v, want %+v", got, rec)
	}
}

func TestWriteUserRecordSameSecond(t *testing.T) {
	s := newTestStore(t)
	at := time.Date(2026, 1, 8, 14, 30, 5, 0, time.UTC)

	first, err := s.WriteUserRecord("jsmith", testRecord(300, at))
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.WriteUserRecord("jsmith", testRecord(301, at))
	if err != nil {
		t.Fatal(err)
	}
	if second == first {
		t.Fatal("second record overwrote the first")
	}
	if got := filepath.Base(second); got != "2026-01-08_Thu_14-30-05_2.xml" {
		t.Errorf("second file name = %q, want %q", got, "2026-01-08_Thu_14-30-05_2.xml")
	}
	for _, p := range []string{first, second} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing %s: %v", p, err)
		}
	}
}

func TestSanitizeFolder(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"John Smith", "JohnSmith"},
		{"j.smith@example", "jsmithexample"},
		{"../../etc", "etc"},
		{"tech_2-b", "tech_2-b"},
		{"!!!", "USER"},
		{"", "USER"},
	}
	for _, c := range cases {
		if got := storage.SanitizeFolder(c.in); got != c.want {
			t.Errorf("SanitizeFolder(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
