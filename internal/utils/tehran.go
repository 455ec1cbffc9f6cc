package utils

import (
	"fmt"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// TehranZone is Iran Standard Time. Iran dropped daylight saving in 2022.
var TehranZone = time.FixedZone("Asia/Tehran", 3*3600+30*60)

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z0700",
	"2006-01-02 15:04:05Z0700",
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006-01-02",
}

// ParsePartnerTime parses a partner timestamp. Values carrying an explicit
// offset or Z are taken as-is; naive values are Tehran wall-clock time.
// The result is always in UTC.
func ParsePartnerTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time value")
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, TehranZone); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format %q", value)
}

// TehranDayRange returns the UTC bounds [start, end) of a YYYY-MM-DD day in Tehran
func TehranDayRange(day string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(day), TehranZone)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid day %q: %w", day, err)
	}
	return start.UTC(), start.AddDate(0, 0, 1).UTC(), nil
}

// JalaliDate formats t as a Solar Hijri YYYY/MM/DD date on the Tehran calendar
func JalaliDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	pt := ptime.New(t.In(TehranZone))
	return fmt.Sprintf("%04d/%02d/%02d", pt.Year(), int(pt.Month()), pt.Day())
}

// TehranClock formats t as HH:mm Tehran wall-clock time
func TehranClock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(TehranZone).Format("15:04")
}
