package jalali

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDate is returned for malformed dates and for dates outside the supported range.
var ErrInvalidDate = errors.New("invalid date")

// Supported Jalali years. Every date in this range converts to Gregorian and back.
const (
	MinYear = 1
	MaxYear = 3176
)

// breaks are the Jalali years at which the 33-year leap sub-cycle of the 2820-year cycle shifts.
var breaks = [...]int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181, 1210,
	1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

// jalaliMonthOffsets holds the number of days before the first of each Jalali month.
var jalaliMonthOffsets = [12]int{0, 31, 62, 93, 124, 155, 186, 216, 246, 276, 306, 336}

// Date is a date in the Jalali (Persian solar Hijri) calendar.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String formats the date as Y/m/d (e.g., "1403/01/01")
func (d Date) String() string {
	return fmt.Sprintf("%d/%02d/%02d", d.Year, d.Month, d.Day)
}

// IsValid reports whether d names an existing day inside the supported range.
func (d Date) IsValid() bool {
	if d.Year < MinYear || d.Year > MaxYear || d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= MonthLength(d.Year, d.Month)
}

// ParseDate parses a Jalali date string in Y/m/d format (e.g., "1403/01/01").
// Digits must already be Latin; see helpers.ParseJalaliDate for Persian input.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: expected Y/m/d, got %q", ErrInvalidDate, s)
	}

	var fields [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
		}
		fields[i] = n
	}

	d := Date{Year: fields[0], Month: fields[1], Day: fields[2]}
	if !d.IsValid() {
		return Date{}, fmt.Errorf("%w: %s", ErrInvalidDate, d)
	}
	return d, nil
}

// yearInfo describes where a Jalali year sits relative to the Gregorian calendar.
type yearInfo struct {
	gy    int // Gregorian year in which the Jalali year begins
	march int // day of March on which Farvardin 1 falls
	leap  int // years since the last leap year; 0 means the year itself is leap
}

// yearInfoFor walks the break table to find Nowruz and the leap position of jy.
func yearInfoFor(jy int) (yearInfo, error) {
	if jy < breaks[0] || jy >= breaks[len(breaks)-1] {
		return yearInfo{}, fmt.Errorf("%w: jalali year %d out of range", ErrInvalidDate, jy)
	}

	gy := jy + 621
	leapJ := -14
	jp := breaks[0]
	jump := 0
	for i := 1; i < len(breaks); i++ {
		jm := breaks[i]
		jump = jm - jp
		if jy < jm {
			break
		}
		leapJ += jump/33*8 + jump%33/4
		jp = jm
	}
	n := jy - jp

	// Leap days in the Jalali calendar from AD 621 up to the start of jy
	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}

	// And in the Gregorian calendar up to gy
	leapG := gy/4 - (gy/100+1)*3/4 - 150
	march := 20 + leapJ - leapG

	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap := ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}

	return yearInfo{gy: gy, march: march, leap: leap}, nil
}

// IsLeapYear reports whether the Jalali year has a 30-day Esfand.
// Years outside the supported range are reported as common years.
func IsLeapYear(jy int) bool {
	if jy < MinYear || jy > MaxYear {
		return false
	}
	info, err := yearInfoFor(jy)
	if err != nil {
		return false
	}
	return info.leap == 0
}

// MonthLength returns the number of days in a Jalali month, or 0 for an invalid month.
func MonthLength(jy, jm int) int {
	switch {
	case jm >= 1 && jm <= 6:
		return 31
	case jm >= 7 && jm <= 11:
		return 30
	case jm == 12:
		if IsLeapYear(jy) {
			return 30
		}
		return 29
	}
	return 0
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(jy int) int {
	if IsLeapYear(jy) {
		return 366
	}
	return 365
}

// ToJalali converts a Gregorian date to its Jalali equivalent.
func ToJalali(g GregorianDate) (Date, error) {
	if !g.IsValid() {
		return Date{}, fmt.Errorf("%w: %s", ErrInvalidDate, g)
	}

	jy := g.Year - 621
	info, err := yearInfoFor(jy)
	if err != nil {
		return Date{}, err
	}

	// Days since Farvardin 1 of jy
	k := g.DayNumber() - gregorianDayNumber(info.gy, 3, info.march)

	var d Date
	switch {
	case k >= 0 && k <= 185:
		d = Date{Year: jy, Month: 1 + k/31, Day: k%31 + 1}
	case k > 185:
		k -= 186
		d = Date{Year: jy, Month: 7 + k/30, Day: k%30 + 1}
	default:
		// Still in the last months of the previous Jalali year
		k += 179
		if info.leap == 1 {
			k++
		}
		d = Date{Year: jy - 1, Month: 7 + k/30, Day: k%30 + 1}
	}

	if d.Year < MinYear || d.Year > MaxYear {
		return Date{}, fmt.Errorf("%w: %s is outside the supported range", ErrInvalidDate, g)
	}
	return d, nil
}

// ToGregorian converts a Jalali date to its Gregorian equivalent.
func ToGregorian(j Date) (GregorianDate, error) {
	if !j.IsValid() {
		return GregorianDate{}, fmt.Errorf("%w: %s", ErrInvalidDate, j)
	}

	info, err := yearInfoFor(j.Year)
	if err != nil {
		return GregorianDate{}, err
	}

	n := gregorianDayNumber(info.gy, 3, info.march) + jalaliMonthOffsets[j.Month-1] + j.Day - 1
	return gregorianFromDayNumber(n), nil
}
