package utils

import (
	"fmt"
	"time"
)

// FormatRemaining renders a cooldown duration for users, rounding up so
// the displayed wait is never shorter than the real one.
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "0m"
	}

	minutes := int64((d + time.Minute - 1) / time.Minute)
	hours := minutes / 60
	minutes %= 60

	if hours > 0 && minutes > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatKoins renders a koin amount with its currency suffix.
func FormatKoins(amount int64) string {
	return fmt.Sprintf("%d koins", amount)
}
