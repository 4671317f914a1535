package storage_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"hangarops/labour-reporting/internal/storage"
	"hangarops/labour-reporting/internal/timeutil"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.New(t.TempDir(), time.UTC, 300, zap.NewNop())
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	return s
}

func TestNextIDCreatesCounterAtBase(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC)

	id, err := s.NextID(day)
	if err != nil {
		t.Fatalf("NextID: %v", err)
	}
	if id != 300 {
		t.Errorf("first id = %d, want 300", id)
	}

	path := filepath.Join(s.Dir(), timeutil.DayKey(day)+"_counter.txt")
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("counter file not created: %v", err)
	}
	if string(raw) != "301" {
		t.Errorf("counter file holds %q, want %q", raw, "301")
	}
}

func TestNextIDSequence(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC)

	for i, want := range []int{300, 301, 302} {
		id, err := s.NextID(day)
		if err != nil {
			t.Fatalf("NextID call %d: %v", i, err)
		}
		if id != want {
			t.Errorf("id %d = %d, want %d", i, id, want)
		}
	}
}

func TestNextIDIndependentPerDay(t *testing.T) {
	s := newTestStore(t)
	d1 := time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)

	if id, _ := s.NextID(d1); id != 300 {
		t.Errorf("day 1 first id = %d, want 300", id)
	}
	if id, _ := s.NextID(d2); id != 300 {
		t.Errorf("day 2 first id = %d, want 300", id)
	}
	if id, _ := s.NextID(d1); id != 301 {
		t.Errorf("day 1 second id = %d, want 301", id)
	}
}

func TestNextIDClampsBadValues(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC)
	path := filepath.Join(s.Dir(), timeutil.DayKey(day)+"_counter.txt")

	cases := []struct {
		name   string
		stored string
	}{
		{"garbage", "not-a-number"},
		{"below base", "12"},
		{"negative", "-5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := os.WriteFile(path, []byte(c.stored), 0o644); err != nil {
				t.Fatal(err)
			}
			id, err := s.NextID(day)
			if err != nil {
				t.Fatalf("NextID: %v", err)
			}
			if id != 300 {
				t.Errorf("id after storing %q = %d, want clamp to 300", c.stored, id)
			}
		})
	}
}

func TestNextIDConcurrent(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC)

	const n = 25
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := s.NextID(day)
			if err != nil {
				t.Errorf("NextID: %v", err)
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		if seen[id] {
			t.Errorf("id %d handed out twice", id)
		}
		seen[id] = true
	}
	for want := 300; want < 300+n; want++ {
		if !seen[want] {
			t.Errorf("id %d never handed out", want)
		}
	}
}
