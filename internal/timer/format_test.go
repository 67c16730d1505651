package timer

import (
	"testing"
	"time"
)

func TestFormatMillis(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "0s"},
		{-500, "0s"},
		{45000, "45s"},
		{60000, "1m"},
		{90000, "2m"}, // %.0f rounds
		{180000, "3m"},
		{3600000, "1.0h"},
		{5400000, "1.5h"},
		{86400000, "24.0h"},
	}
	for _, c := range cases {
		if got := FormatMillis(c.ms); got != c.want {
			t.Errorf("FormatMillis(%d) = %q, want %q", c.ms, got, c.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00:00"},
		{-time.Second, "0:00:00"},
		{45 * time.Second, "0:00:45"},
		{time.Minute + 5*time.Second, "0:01:05"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{25 * time.Hour, "25:00:00"},
	}
	for _, c := range cases {
		if got := FormatClock(c.d); got != c.want {
			t.Errorf("FormatClock(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}
