package analytics

import "time"

// Period keys accepted by ResolvePeriod. Anything else falls back to
// last_30_days.
const (
	PeriodToday      = "today"
	PeriodLast7Days  = "last_7_days"
	PeriodLast30Days = "last_30_days"
	PeriodThisMonth  = "this_month"
	PeriodLastMonth  = "last_month"
	PeriodCustom     = "custom"
)

// Period is a resolved [start, end] range, inclusive on both ends.
// A degenerate period (custom bounds that failed to parse) contains
// nothing: the caller still gets a structurally valid, empty report.
type Period struct {
	Key   string
	Start time.Time
	End   time.Time

	degenerate bool
}

// Contains reports whether t falls inside the period, inclusive.
func (p Period) Contains(t time.Time) bool {
	if p.degenerate {
		return false
	}
	return !t.Before(p.Start) && !t.After(p.End)
}

// ResolvePeriod turns a symbolic period key plus optional custom bounds into
// a concrete range. Bounds are computed in now's location. Custom bounds are
// trusted as-is: no reordering, and unparseable input degrades silently into
// a period that matches nothing.
func ResolvePeriod(key, startRaw, endRaw string, now time.Time) Period {
	dayStart := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	dayEnd := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
	}

	var start, end time.Time

	switch key {
	case PeriodToday:
		start = dayStart(now)
		end = dayEnd(now)

	case PeriodLast7Days:
		start = dayStart(now.AddDate(0, 0, -6))
		end = dayEnd(now)

	case PeriodThisMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = dayEnd(now)

	case PeriodLastMonth:
		// time.Date normalizes month 0 to December of the previous year.
		start = time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		end = dayEnd(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1))

	case PeriodCustom:
		p := Period{Key: key}
		p.Start = dayStart(now.AddDate(0, 0, -29))
		p.End = dayEnd(now)
		if startRaw != "" {
			t, ok := parseBound(startRaw, now.Location())
			if !ok {
				p.degenerate = true
			}
			p.Start = t
		}
		if endRaw != "" {
			t, ok := parseBound(endRaw, now.Location())
			if !ok {
				p.degenerate = true
			}
			p.End = t
		}
		return p

	default: // last_30_days and unrecognized keys
		start = dayStart(now.AddDate(0, 0, -29))
		end = dayEnd(now)
	}

	return Period{Key: key, Start: start, End: end}
}

// parseBound accepts RFC 3339 timestamps as well as bare dates and
// zone-less datetimes, interpreted in loc.
func parseBound(raw string, loc *time.Location) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
