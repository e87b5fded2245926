package jalali

var monthNames = [12]string{
	"فروردین",
	"اردیبهشت",
	"خرداد",
	"تیر",
	"مرداد",
	"شهریور",
	"مهر",
	"آبان",
	"آذر",
	"دی",
	"بهمن",
	"اسفند",
}

// Week starts on Saturday (شنبه).
var weekdayNames = [7]string{"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنج‌شنبه", "جمعه"}

var weekdayShortNames = [7]string{"ش", "ی", "د", "س", "چ", "پ", "ج"}

// MonthName returns the Persian name of a Jalali month (1-12), or "" when out of range.
func MonthName(jm int) string {
	if jm < 1 || jm > 12 {
		return ""
	}
	return monthNames[jm-1]
}

// WeekdayName returns the full Persian weekday name for a Saturday-based index (0-6).
func WeekdayName(index int) string {
	if index < 0 || index > 6 {
		return ""
	}
	return weekdayNames[index]
}

// WeekdayShortName returns the one-letter weekday abbreviation for a Saturday-based index.
func WeekdayShortName(index int) string {
	if index < 0 || index > 6 {
		return ""
	}
	return weekdayShortNames[index]
}

// WeekdayIndex maps g's day of week onto the Saturday-first week: Saturday is 0, Friday is 6.
func WeekdayIndex(g GregorianDate) int {
	wd := int(g.Weekday())
	if wd == 6 {
		return 0
	}
	return wd + 1
}
