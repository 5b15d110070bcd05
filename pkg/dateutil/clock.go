package dateutil

import (
	"fmt"
	"time"
)

// ISODateFormat is the canonical calendar date layout used everywhere.
const ISODateFormat = "2006-01-02"

// Clock derives the two "current date" notions the tracker uses: a long
// display form localized to a fixed timezone, and a canonical ISO calendar
// date obtained by shifting the current instant by a fixed UTC offset. All
// due/earnings comparisons use the canonical date so both users bucket
// identically regardless of their device clocks.
type Clock struct {
	offset  time.Duration
	display *time.Location
}

// NewClock creates a Clock with the given canonical UTC offset in hours and
// an IANA timezone name for the display form, e.g. (3, "Africa/Nairobi").
func NewClock(offsetHours int, displayTimezone string) (*Clock, error) {
	loc, err := time.LoadLocation(displayTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", displayTimezone, err)
	}
	return &Clock{
		offset:  time.Duration(offsetHours) * time.Hour,
		display: loc,
	}, nil
}

// TodayISO returns the canonical ISO calendar date for the given instant:
// the instant shifted by the fixed offset, truncated to the date portion.
func (c *Clock) TodayISO(now time.Time) string {
	return now.UTC().Add(c.offset).Format(ISODateFormat)
}

// DisplayDate returns the long localized date used for the UI header only,
// e.g. "January 2, 2026".
func (c *Clock) DisplayDate(now time.Time) string {
	return now.In(c.display).Format("January 2, 2006")
}
