package helper

import (
	"strings"
	"time"
)

const DateYMD = "2006-01-02"

// ParseDateYMD: "YYYY-MM-DD" → time.Time (UTC, jam 00:00)
func ParseDateYMD(s string) (time.Time, error) {
	return time.Parse(DateYMD, strings.TrimSpace(s))
}

func FormatDateYMD(t time.Time) string {
	return t.Format(DateYMD)
}

// FormatDateYMDPtr: nil-safe formatter untuk response DTO
func FormatDateYMDPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateYMD)
	return &s
}
