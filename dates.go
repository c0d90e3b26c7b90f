package toolsite

import (
	"fmt"
	"time"
)

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseISO parses the timestamp formats that appear in the manifests:
// RFC 3339 with "Z" or a numeric offset, naive date-times, and bare
// dates.
func ParseISO(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Ordinal returns the day with its English ordinal suffix. Days 11-20
// always take "th"; otherwise the suffix follows the last digit.
func Ordinal(day int) string {
	suffix := "th"
	if day%100 < 11 || day%100 > 20 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

// DisplayDate renders a timestamp the way the index page shows it,
// e.g. "3rd June 2024".
func DisplayDate(t time.Time) string {
	return fmt.Sprintf("%s %s", Ordinal(t.Day()), t.Format("January 2006"))
}

// CommitDate renders a commit timestamp for the colophon. Values that
// fail to parse are shown verbatim.
func CommitDate(value string) string {
	t, ok := ParseISO(value)
	if !ok {
		return value
	}
	return t.Format("January 02, 2006 15:04")
}
