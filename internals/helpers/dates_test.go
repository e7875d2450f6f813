package helper

import (
	"testing"
	"time"
)

func TestParseDateYMD(t *testing.T) {
	t.Parallel()
	got, err := ParseDateYMD(" 2024-03-01 ")
	if err != nil {
		t.Fatalf("ParseDateYMD error: %v", err)
	}
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if _, err := ParseDateYMD("01/03/2024"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestFormatDateYMDPtr(t *testing.T) {
	t.Parallel()
	if got := FormatDateYMDPtr(nil); got != nil {
		t.Fatalf("nil input should return nil, got %v", *got)
	}
	d := time.Date(2024, 12, 31, 15, 4, 5, 0, time.UTC)
	got := FormatDateYMDPtr(&d)
	if got == nil || *got != "2024-12-31" {
		t.Fatalf("got %v, want 2024-12-31", got)
	}
}
