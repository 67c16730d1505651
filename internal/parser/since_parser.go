package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseSince parses a point in the past for log range filters
// Supported formats:
// - dd/mm/yyyy (e.g., "15/12/2025")
// - X days (e.g., "3 days", "1 day")
// - X hours (e.g., "24 hours", "1 hour")
// - X weeks (e.g., "2 weeks", "1 week")
func ParseSince(input string) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}

	input = strings.TrimSpace(input)

	// Try dd/mm/yyyy format first
	if since, err := parseDateFormat(input); err == nil {
		return since, nil
	}

	// Try relative time formats
	if since, err := parseRelativeTime(input); err == nil {
		return since, nil
	}

	return nil, fmt.Errorf("invalid date format. Use: dd/mm/yyyy, X days, X hours, or X weeks")
}

// parseDateFormat parses dd/mm/yyyy format
func parseDateFormat(input string) (*time.Time, error) {
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := dateRegex.FindStringSubmatch(input)

	if len(matches) != 4 {
		return nil, fmt.Errorf("invalid date format")
	}

	day, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, fmt.Errorf("invalid day")
	}
	month, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, fmt.Errorf("invalid month")
	}
	year, err := strconv.Atoi(matches[3])
	if err != nil {
		return nil, fmt.Errorf("invalid year")
	}

	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}
	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day must be between 1 and 31")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	return &date, nil
}

// parseRelativeTime parses "X days", "X hours", "X weeks" as offsets into
// the past from now.
func parseRelativeTime(input string) (*time.Time, error) {
	relativeRegex := regexp.MustCompile(`^(\d+)\s*(day|days|hour|hours|week|weeks)$`)
	matches := relativeRegex.FindStringSubmatch(strings.ToLower(input))

	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid relative time format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, fmt.Errorf("invalid number")
	}

	var offset time.Duration
	switch matches[2] {
	case "hour", "hours":
		offset = time.Duration(amount) * time.Hour
	case "day", "days":
		offset = time.Duration(amount) * 24 * time.Hour
	case "week", "weeks":
		offset = time.Duration(amount) * 7 * 24 * time.Hour
	}

	since := time.Now().Add(-offset)
	return &since, nil
}
