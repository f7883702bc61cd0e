// Package timefmt computes the display labels derived from record
// timestamps. Every function takes now explicitly so callers own the
// clock; watch mode re-invokes them on each tick.
package timefmt

import (
	"fmt"
	"math"
	"time"
)

const day = 24 * time.Hour

// PostedLabel renders how long ago a job was posted. Elapsed days are
// rounded up, so anything within the first day reads "Posted today".
// The week label is intentionally not pluralized ("Posted 1 weeks ago");
// consumers rely on the literal wording.
func PostedLabel(postedAt, now time.Time) string {
	elapsed := now.Sub(postedAt)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	days := int(math.Ceil(elapsed.Hours() / 24))
	if days == 1 {
		return "Posted today"
	}
	if days <= 7 {
		return fmt.Sprintf("Posted %d days ago", days)
	}
	return fmt.Sprintf("Posted %d weeks ago", days/7)
}

// CountdownLabel renders the time remaining until an offer expires as
// "2d 5h 30m", dropping leading zero units, or "Expired" once the
// deadline has passed.
func CountdownLabel(expiresAt, now time.Time) string {
	remaining := expiresAt.Sub(now)
	if remaining <= 0 {
		return "Expired"
	}

	days := int(remaining / day)
	hours := int(remaining % day / time.Hour)
	minutes := int(remaining % time.Hour / time.Minute)

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// ExpiringSoon reports whether an offer is within two whole days of its
// expiry.
func ExpiringSoon(expiresAt, now time.Time) bool {
	return int(expiresAt.Sub(now)/day) <= 2
}

// DeadlineSoon reports whether a job application deadline falls within
// the next seven days.
func DeadlineSoon(deadline, now time.Time) bool {
	return !deadline.After(now.Add(7 * day))
}

// DeadlineLabel renders a job application deadline as "Apply by Sep 5",
// with " - Closing Soon!" appended when the deadline is near.
func DeadlineLabel(deadline, now time.Time) string {
	label := "Apply by " + deadline.Format("Jan 2")
	if DeadlineSoon(deadline, now) {
		label += " - Closing Soon!"
	}
	return label
}
