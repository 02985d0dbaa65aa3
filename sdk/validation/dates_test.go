package validation_test

import (
	"testing"
	"time"

	"github.com/taskvault/taskvault/sdk/validation"
)

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", input: "2025-03-14", want: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", input: "2025-03-14T10:30:00Z", want: time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)},
		{name: "rfc3339 offset", input: "2025-03-14T10:30:00+02:00", want: time.Date(2025, 3, 14, 8, 30, 0, 0, time.UTC)},
		{name: "no zone", input: "2025-03-14T10:30:00", want: time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)},
		{name: "us slashes", input: "03/14/2025", want: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{name: "padded", input: "  2025-03-14 ", want: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", input: "tomorrow", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "impossible date", input: "2025-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.ParseFlexibleDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFlexibleDate(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlexibleDate(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseFlexibleDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
