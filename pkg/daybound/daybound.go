// Package daybound converts calendar-day strings into the instants that
// bound that day in a given location.
package daybound

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the accepted date format.
const Layout = "2006-01-02"

var ErrInvertedRange = errors.New("end date before start date")

// Start returns 00:00:00 of date in loc, expressed in UTC.
func Start(date string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(Layout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}

	return d.UTC(), nil
}

// End returns the last microsecond of date in loc, expressed in UTC.
// It is computed from the next day's midnight, so days shortened or
// lengthened by a DST switch are still covered exactly.
func End(date string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(Layout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}

	next := time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, loc)

	return next.Add(-time.Microsecond).UTC(), nil
}

// Range resolves optional start and end dates. Empty strings leave the
// matching bound nil. When both are set, start must not be after end.
func Range(start, end string, loc *time.Location) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if start != "" {
		t, err := Start(start, loc)
		if err != nil {
			return nil, nil, err
		}

		from = &t
	}

	if end != "" {
		t, err := End(end, loc)
		if err != nil {
			return nil, nil, err
		}

		to = &t
	}

	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("%s > %s: %w", start, end, ErrInvertedRange)
	}

	return from, to, nil
}
