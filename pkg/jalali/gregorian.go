package jalali

import (
	"fmt"
	"strings"
	"time"
)

// gregorianMonthOffsets holds the number of days before the first of each month in a common year.
var gregorianMonthOffsets = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// GregorianDate is a civil calendar date without time of day or location.
type GregorianDate struct {
	Year  int
	Month int
	Day   int
}

// GregorianFromTime returns the calendar date of t in t's location.
func GregorianFromTime(t time.Time) GregorianDate {
	y, m, d := t.Date()
	return GregorianDate{Year: y, Month: int(m), Day: d}
}

// ParseGregorian parses a date in Y-m-d format (e.g., "2024-03-20").
func ParseGregorian(s string) (GregorianDate, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return GregorianDate{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return GregorianFromTime(t), nil
}

// String formats the date as Y-m-d.
func (g GregorianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", g.Year, g.Month, g.Day)
}

// IsZero reports whether g is the zero value.
func (g GregorianDate) IsZero() bool {
	return g == GregorianDate{}
}

// IsValid reports whether g names an existing day in year 1 or later.
func (g GregorianDate) IsValid() bool {
	if g.Year < 1 || g.Month < 1 || g.Month > 12 || g.Day < 1 {
		return false
	}
	return g.Day <= gregorianMonthLength(g.Year, g.Month)
}

// DayNumber returns the day count since 0001-01-01, which is day 1.
// The result is meaningless for invalid dates.
func (g GregorianDate) DayNumber() int {
	return gregorianDayNumber(g.Year, g.Month, g.Day)
}

// AddDays returns the date n days after g. Results before 0001-01-01 are the zero date.
func (g GregorianDate) AddDays(n int) GregorianDate {
	return gregorianFromDayNumber(g.DayNumber() + n)
}

// FirstOfMonth returns the first day of g's month.
func (g GregorianDate) FirstOfMonth() GregorianDate {
	return GregorianDate{Year: g.Year, Month: g.Month, Day: 1}
}

// Compare returns -1, 0 or +1 depending on whether g is before, equal to or after o.
func (g GregorianDate) Compare(o GregorianDate) int {
	a, b := g.DayNumber(), o.DayNumber()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (g GregorianDate) Before(o GregorianDate) bool { return g.Compare(o) < 0 }
func (g GregorianDate) After(o GregorianDate) bool  { return g.Compare(o) > 0 }

// Weekday returns the day of the week (Sunday = 0).
func (g GregorianDate) Weekday() time.Weekday {
	// 0001-01-01 was a Monday
	return time.Weekday(g.DayNumber() % 7)
}

// Time returns midnight of g in loc.
func (g GregorianDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(g.Year, time.Month(g.Month), g.Day, 0, 0, 0, 0, loc)
}

func isGregorianLeap(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

func gregorianMonthLength(y, m int) int {
	if m == 12 {
		return 31
	}
	return gregorianMonthOffset(y, m+1) - gregorianMonthOffset(y, m)
}

func gregorianMonthOffset(y, m int) int {
	off := gregorianMonthOffsets[m-1]
	if m > 2 && isGregorianLeap(y) {
		off++
	}
	return off
}

func gregorianDayNumber(y, m, d int) int {
	py := y - 1
	return 365*py + py/4 - py/100 + py/400 + gregorianMonthOffset(y, m) + d
}

func gregorianFromDayNumber(n int) GregorianDate {
	if n < 1 {
		return GregorianDate{}
	}

	d0 := n - 1
	n400, d1 := d0/146097, d0%146097
	n100, d2 := d1/36524, d1%36524
	n4, d3 := d2/1461, d2%1461
	n1 := d3 / 365

	year := 400*n400 + 100*n100 + 4*n4 + n1
	if n100 == 4 || n1 == 4 {
		// Last day of a leap year
		return GregorianDate{Year: year, Month: 12, Day: 31}
	}
	year++

	doy := d3%365 + 1
	month := 12
	for month > 1 && doy <= gregorianMonthOffset(year, month) {
		month--
	}
	return GregorianDate{Year: year, Month: month, Day: doy - gregorianMonthOffset(year, month)}
}
