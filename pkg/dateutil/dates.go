package dateutil

import "time"

// ParseISO parses an ISO calendar date ("2006-01-02") as UTC midnight.
func ParseISO(date string) (time.Time, error) {
	return time.Parse(ISODateFormat, date)
}

// OverdueDays returns how many whole days the deadline lies behind the
// canonical current date, clamped at zero: due today, due in the future
// and unparsable dates all report 0.
func OverdueDays(todayISO, deadline string) int {
	today, err := ParseISO(todayISO)
	if err != nil {
		return 0
	}
	due, err := ParseISO(deadline)
	if err != nil {
		return 0
	}
	days := int(today.Sub(due) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days
}

// ISOWeek returns the ISO-8601 week-numbering year and week for an ISO date
// (Thursday-anchored, weeks start Monday). ok is false if the date does not
// parse.
func ISOWeek(date string) (year, week int, ok bool) {
	t, err := ParseISO(date)
	if err != nil {
		return 0, 0, false
	}
	year, week = t.ISOWeek()
	return year, week, true
}

// SameMonth reports whether two ISO dates fall in the same calendar month
// and year. False if either date does not parse.
func SameMonth(a, b string) bool {
	ta, err := ParseISO(a)
	if err != nil {
		return false
	}
	tb, err := ParseISO(b)
	if err != nil {
		return false
	}
	return ta.Year() == tb.Year() && ta.Month() == tb.Month()
}

// SameISOWeek reports whether two ISO dates fall in the same ISO week and
// week-numbering year. False if either date does not parse.
func SameISOWeek(a, b string) bool {
	ya, wa, okA := ISOWeek(a)
	yb, wb, okB := ISOWeek(b)
	return okA && okB && ya == yb && wa == wb
}
