package hardwareservice

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var dayFirstPattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)

var fallbackLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"02-Jan-2006",
}

// ParseDate accepts YYYY-MM-DD, DD/MM/YYYY, DD-MM-YYYY, a handful of common
// layouts and five digit spreadsheet serials. Anything else yields nil.
func ParseDate(raw string) *time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t
	}

	if m := dayFirstPattern.FindStringSubmatch(value); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if t.Year() != year || int(t.Month()) != month || t.Day() != day {
			return nil
		}
		return &t
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t
		}
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial >= 10000 && serial < 100000 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return nil
		}
		t = t.UTC().Truncate(24 * time.Hour)
		return &t
	}
	return nil
}

// FormatDate is the inverse used when a row is turned back into an edit.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func exportDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("02/01/2006")
}
