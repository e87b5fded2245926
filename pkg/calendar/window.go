package calendar

import "taskboard/pkg/jalali"

// MonthWindow returns the first and last day shown by the month grid for reference.
// Callers use it as the date range to load tasks for.
func MonthWindow(reference jalali.GregorianDate) (from, to jalali.GregorianDate) {
	first := reference.FirstOfMonth()
	from = first.AddDays(-jalali.WeekdayIndex(first))
	return from, from.AddDays(GridSize - 1)
}

// WeekWindow returns the Saturday and Friday bounding the week that contains reference.
func WeekWindow(reference jalali.GregorianDate) (from, to jalali.GregorianDate) {
	from = reference.AddDays(-jalali.WeekdayIndex(reference))
	return from, from.AddDays(DaysPerWeek - 1)
}

// ShiftMonth returns the first day of the month n months away from reference.
func ShiftMonth(reference jalali.GregorianDate, n int) jalali.GregorianDate {
	m := reference.Year*12 + reference.Month - 1 + n
	return jalali.GregorianDate{Year: m / 12, Month: m%12 + 1, Day: 1}
}
