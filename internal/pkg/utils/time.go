package utils

import (
	"cosmek-web/internal/pkg/constvars"
	"fmt"
	"time"
)

// timestampLayouts lists the layouts the salon API has been seen to emit for
// appointment times and availability slots.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 MST",
}

// localTimestampLayouts carry no offset and are read as wall time in the
// salon location.
var localTimestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	for _, layout := range localTimestampLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// BuildSalonTimestamp turns a form date (YYYY-MM-DD) and clock (HH:MM) into
// the RFC3339 timestamp the salon API expects, offset included, e.g.
// 2025-06-01T10:00:00+10:00 for Pacific/Guam.
func BuildSalonTimestamp(date, clock string, loc *time.Location) (string, error) {
	t, err := time.ParseInLocation(constvars.LayoutDate+" "+constvars.LayoutSlotValue, fmt.Sprintf("%s %s", date, clock), loc)
	if err != nil {
		return "", err
	}
	return t.Format(time.RFC3339), nil
}

func SlotValue(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(constvars.LayoutSlotValue)
}

func SlotLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(constvars.LayoutSlotLabel)
}

func FormatDisplayDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(constvars.LayoutDisplayDate)
}

// FormatClockRange renders "3:04 PM - 4:04 PM" for an appointment that
// starts at start and lasts durationInMinutes.
func FormatClockRange(start time.Time, durationInMinutes int, loc *time.Location) string {
	end := start.Add(time.Duration(durationInMinutes) * time.Minute)
	return fmt.Sprintf("%s - %s", start.In(loc).Format(constvars.LayoutDisplayClock), end.In(loc).Format(constvars.LayoutDisplayClock))
}

func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

func Today(loc *time.Location) string {
	return time.Now().In(loc).Format(constvars.LayoutDate)
}
