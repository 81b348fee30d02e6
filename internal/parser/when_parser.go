package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// wall-clock layouts accepted by ParseWhen, tried in order
var whenLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"01/02/06 03:04 PM",
	"01/02/2006 03:04 PM",
}

// ParseWhen parses a timestamp override for the --at flag.
// Supported formats:
// - full timestamps (e.g., "2024-01-15 09:00", "01/15/24 09:00 AM")
// - time of day today (e.g., "9:00", "17:30", "5:30pm")
// - relative offsets into the past (e.g., "10 minutes", "2 hours")
// All results are local naive wall-clock times.
func ParseWhen(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range whenLayouts {
		if t, err := time.ParseInLocation(layout, strings.ToUpper(input), time.Local); err == nil {
			return t, nil
		}
	}

	if t, err := parseClockToday(input, now); err == nil {
		return t, nil
	}

	if t, err := parseRelativePast(input, now); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid timestamp %q. Use: YYYY-MM-DD HH:MM, HH:MM, H:MMpm, or X minutes/hours ago", input)
}

// parseClockToday parses a bare time of day like "9:00", "17:30" or
// "5:30pm" and anchors it to now's date.
func parseClockToday(input string, now time.Time) (time.Time, error) {
	clockRegex := regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(am|pm|AM|PM)?$`)
	matches := clockRegex.FindStringSubmatch(input)

	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid clock format")
	}

	hour, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid hour")
	}
	minute, err := strconv.Atoi(matches[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid minute")
	}

	meridiem := strings.ToLower(matches[3])
	switch meridiem {
	case "am":
		if hour < 1 || hour > 12 {
			return time.Time{}, fmt.Errorf("hour must be between 1 and 12")
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return time.Time{}, fmt.Errorf("hour must be between 1 and 12")
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return time.Time{}, fmt.Errorf("hour must be between 0 and 23")
		}
	}
	if minute > 59 {
		return time.Time{}, fmt.Errorf("minute must be between 0 and 59")
	}

	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.Local), nil
}

// parseRelativePast parses offsets like "10 minutes" or "2 hours",
// meaning that far into the past from now. An optional trailing "ago" is
// accepted.
func parseRelativePast(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(input)
	input = strings.TrimSuffix(input, " ago")

	relativeRegex := regexp.MustCompile(`^(\d+)\s+(minute|minutes|hour|hours)$`)
	matches := relativeRegex.FindStringSubmatch(input)

	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid relative time format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number")
	}

	switch matches[2] {
	case "minute", "minutes":
		if amount < 1 || amount > 1440 { // Max 1 day in minutes
			return time.Time{}, fmt.Errorf("minutes must be between 1 and 1440")
		}
		return now.Add(-time.Duration(amount) * time.Minute), nil

	case "hour", "hours":
		if amount < 1 || amount > 24 { // Max 1 day in hours
			return time.Time{}, fmt.Errorf("hours must be between 1 and 24")
		}
		return now.Add(-time.Duration(amount) * time.Hour), nil

	default:
		return time.Time{}, fmt.Errorf("unsupported time unit")
	}
}
