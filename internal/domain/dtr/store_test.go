package dtr

import (
	"errors"
	"testing"
	"time"
)

// fakeRows yields a fixed number of rows and then reports a deferred
// iteration error, the way a dropped connection does.
type fakeRows struct {
	rows    int
	yielded int
	err     error
}

func (f *fakeRows) Next() bool {
	if f.yielded >= f.rows {
		return false
	}
	f.yielded++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	for _, d := range dest {
		switch v := d.(type) {
		case *string:
			*v = "x"
		case *float64:
			*v = 0
		case *bool:
			*v = false
		case *time.Time:
			*v = time.Time{}
		}
	}
	return nil
}

func (f *fakeRows) Err() error { return f.err }

func TestScanEntriesSurfacesIterationError(t *testing.T) {
	broken := errors.New("connection reset")
	entries, err := scanEntries(&fakeRows{rows: 2, err: broken})
	if !errors.Is(err, broken) {
		t.Fatalf("expected the iteration error, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected the partial rows alongside the error, got %d", len(entries))
	}
}

func TestScanEntriesCleanRead(t *testing.T) {
	entries, err := scanEntries(&fakeRows{rows: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}
