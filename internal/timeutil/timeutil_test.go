package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	testCases := []struct {
		Secs int
		Want string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{60, "01:00"},
		{1500, "25:00"},
		{1499, "24:59"},
		{6000, "100:00"},
		{-3, "00:00"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Want, Clock(tc.Secs), tc.Secs)
	}
}
