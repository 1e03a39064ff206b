package utils

import (
	"testing"
	"time"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "Zero", d: 0, want: "0m"},
		{name: "RoundsUpSeconds", d: 30 * time.Second, want: "1m"},
		{name: "ExactMinutes", d: 45 * time.Minute, want: "45m"},
		{name: "JustUnderHour", d: 89*time.Minute + 59*time.Second, want: "1h 30m"},
		{name: "ExactHours", d: 4 * time.Hour, want: "4h"},
		{name: "HoursAndMinutes", d: 23*time.Hour + 59*time.Minute, want: "23h 59m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRemaining(tt.d); got != tt.want {
				t.Errorf("FormatRemaining(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
