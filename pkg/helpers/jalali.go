package helpers

import (
	"fmt"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"

	"taskboard/pkg/jalali"
)

// FormatJalaliDate converts Gregorian date to Jalali format Y/m/d
// Example: 2025-10-30 -> 1404/08/08
func FormatJalaliDate(t time.Time) string {
	pt := ptime.New(t)
	return pt.Format("yyyy/MM/dd")
}

// FormatJalaliDateTime converts Gregorian datetime to Jalali format Y/m/d H:m:s
// Example: 2025-10-30 14:30:45 -> 1404/08/08 14:30:45
func FormatJalaliDateTime(t time.Time) string {
	pt := ptime.New(t)
	return pt.Format("yyyy/MM/dd HH:mm:ss")
}

// IranLocation is the default calendar time zone.
func IranLocation() *time.Location {
	return ptime.Iran()
}

// ParseJalaliDate parses "1403/01/01", accepting Persian or Arabic digits.
func ParseJalaliDate(s string) (jalali.Date, error) {
	return jalali.ParseDate(NormalizePersianNumbers(strings.TrimSpace(s)))
}

// ParseCalendarDate accepts either a Jalali date (1403/01/01) or a Gregorian one (2024-03-20)
// and returns the Gregorian day it names.
func ParseCalendarDate(s string) (jalali.GregorianDate, error) {
	s = NormalizePersianNumbers(strings.TrimSpace(s))

	switch {
	case strings.Contains(s, "/"):
		j, err := jalali.ParseDate(s)
		if err != nil {
			return jalali.GregorianDate{}, err
		}
		return jalali.ToGregorian(j)
	case strings.Contains(s, "-"):
		return jalali.ParseGregorian(s)
	default:
		return jalali.GregorianDate{}, fmt.Errorf("%w: %q", jalali.ErrInvalidDate, s)
	}
}

// FormatJalaliLabel renders a Jalali date with Persian digits: ۱۴۰۳/۰۱/۰۱
func FormatJalaliLabel(d jalali.Date) string {
	return ToPersianDigits(d.String())
}

// JalaliMonthTitle renders the month heading of a view, e.g. "فروردین ۱۴۰۳".
func JalaliMonthTitle(d jalali.Date) string {
	return fmt.Sprintf("%s %s", jalali.MonthName(d.Month), ToPersianDigits(fmt.Sprint(d.Year)))
}
