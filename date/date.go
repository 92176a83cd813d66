// Package date implements a small calendar date value used as a queue
// priority. The calendar is simplified: every month has exactly 30 days.
package date

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-pq/sortable"
)

const (
	daysInMonth  = 30
	monthsInYear = 12
)

// ErrInvalidDate is returned when the day or month is out of range.
var ErrInvalidDate = errors.New("invalid date")

// Date is an immutable day/month/year triple.
type Date struct {
	day   int
	month int
	year  int
}

var _ sortable.Sortable[Date] = Date{}

// New returns the date for the given day (1..30), month (1..12) and year.
func New(day, month, year int) (Date, error) {
	if day < 1 || day > daysInMonth || month < 1 || month > monthsInYear {
		return Date{}, fmt.Errorf("%w: %02d/%02d/%04d", ErrInvalidDate, day, month, year)
	}

	return Date{day: day, month: month, year: year}, nil
}

// MustNew is like New but panics on an invalid date.
func MustNew(day, month, year int) Date {
	d, err := New(day, month, year)
	if err != nil {
		panic(err)
	}

	return d
}

// Get returns the components of the date.
func (d Date) Get() (day, month, year int) {
	return d.day, d.month, d.year
}

// Tick returns the day after d.
func (d Date) Tick() Date {
	switch {
	case d.day < daysInMonth:
		d.day++
	case d.month < monthsInYear:
		d.day = 1
		d.month++
	default:
		d.day = 1
		d.month = 1
		d.year++
	}

	return d
}

// Compare orders dates chronologically: positive if a is later than b,
// negative if earlier, zero if they are the same day.
func Compare(a, b Date) int {
	switch {
	case a.year != b.year:
		return sign(a.year - b.year)
	case a.month != b.month:
		return sign(a.month - b.month)
	default:
		return sign(a.day - b.day)
	}
}

// Copy returns d. Dates are values, so a copy never fails; the signature
// matches the queue's copy behavior.
func Copy(d Date) (Date, error) {
	return d, nil
}

// Equals reports whether d and other are the same day.
func (d Date) Equals(other Date) bool {
	return d == other
}

// LessThan reports whether d is earlier than other.
func (d Date) LessThan(other Date) bool {
	return Compare(d, other) < 0
}

// String formats the date as DD/MM/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.day, d.month, d.year)
}

// Parse reads a date in DD/MM/YYYY form. Anything other than three
// slash-separated integers is rejected.
func Parse(s string) (Date, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 { //nolint:mnd
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	var fields [3]int

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}

		fields[i] = n
	}

	return New(fields[0], fields[1], fields[2])
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
