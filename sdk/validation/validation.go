// Package validation holds small helpers for optional values and input checks.
package validation

import (
	"strings"
	"time"
)

func StringPtr(s string) *string {
	return &s
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FormatTimePtr formats t as RFC3339, or nil when t is nil.
func FormatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
