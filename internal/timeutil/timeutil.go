// Package timeutil provides utility functions for formatting countdown values.
package timeutil

import "fmt"

const secondsInAMinute = 60

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
// Negative values are treated as zero.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	if val < 0 {
		val = 0
	}

	mins = val / secondsInAMinute
	secs = val % secondsInAMinute

	return
}

// Clock formats a seconds value as "MM:SS". Minutes are not wrapped into
// hours.
func Clock(val int) string {
	m, s := SecsToMinsAndSecs(val)

	return fmt.Sprintf("%02d:%02d", m, s)
}
