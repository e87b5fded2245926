package calendar

import (
	"fmt"

	"taskboard/pkg/jalali"
)

const (
	DaysPerWeek = 7
	GridWeeks   = 6
	GridSize    = DaysPerWeek * GridWeeks
)

// TaskRef is the read-only projection of a task that the calendar places on days.
// Start and End form an inclusive range only when both are set.
type TaskRef struct {
	ID        string
	Title     string
	Date      jalali.GregorianDate
	Start     *jalali.GregorianDate
	End       *jalali.GregorianDate
	ProjectID string
	Private   bool
}

// Predicate decides whether a task is shown. A nil Predicate shows every task.
type Predicate func(TaskRef) bool

// CalendarDay is one cell of a calendar view.
type CalendarDay struct {
	Date           jalali.GregorianDate
	Jalali         jalali.Date
	InCurrentMonth bool
	IsToday        bool
	Tasks          []TaskRef
}

// MonthGrid is six Saturday-first weeks covering the reference date's Gregorian month.
type MonthGrid struct {
	Reference jalali.GregorianDate
	Days      [GridSize]CalendarDay
}

// Weeks returns the grid as rows of seven days.
func (g MonthGrid) Weeks() [GridWeeks][DaysPerWeek]CalendarDay {
	var rows [GridWeeks][DaysPerWeek]CalendarDay
	for i, day := range g.Days {
		rows[i/DaysPerWeek][i%DaysPerWeek] = day
	}
	return rows
}

// Week is the Saturday-first week containing the reference date.
type Week struct {
	Reference jalali.GregorianDate
	Days      [DaysPerWeek]CalendarDay
}

// BuildMonthGrid lays out the 42 days around reference's month and attaches the visible tasks
// to every day they fall on. Task order within a day follows the order of tasks.
// The only error is an invalid reference date.
func BuildMonthGrid(reference, today jalali.GregorianDate, tasks []TaskRef, isVisible Predicate) (MonthGrid, error) {
	if !reference.IsValid() {
		return MonthGrid{}, fmt.Errorf("%w: reference date %s", jalali.ErrInvalidDate, reference)
	}

	from, _ := MonthWindow(reference)
	grid := MonthGrid{Reference: reference}
	if err := fillDays(grid.Days[:], from, reference, today, placements(tasks, isVisible)); err != nil {
		return MonthGrid{}, err
	}
	return grid, nil
}

// BuildWeek lays out the week containing reference. InCurrentMonth refers to reference's month.
func BuildWeek(reference, today jalali.GregorianDate, tasks []TaskRef, isVisible Predicate) (Week, error) {
	if !reference.IsValid() {
		return Week{}, fmt.Errorf("%w: reference date %s", jalali.ErrInvalidDate, reference)
	}

	from, _ := WeekWindow(reference)
	week := Week{Reference: reference}
	if err := fillDays(week.Days[:], from, reference, today, placements(tasks, isVisible)); err != nil {
		return Week{}, err
	}
	return week, nil
}

// BuildDay returns the single cell for reference.
func BuildDay(reference, today jalali.GregorianDate, tasks []TaskRef, isVisible Predicate) (CalendarDay, error) {
	if !reference.IsValid() {
		return CalendarDay{}, fmt.Errorf("%w: reference date %s", jalali.ErrInvalidDate, reference)
	}

	days := make([]CalendarDay, 1)
	if err := fillDays(days, reference, reference, today, placements(tasks, isVisible)); err != nil {
		return CalendarDay{}, err
	}
	return days[0], nil
}

// placement is a visible task resolved to day numbers.
type placement struct {
	task     TaskRef
	date     int
	hasRange bool
	first    int
	last     int
}

func (p placement) covers(day int) bool {
	if day == p.date {
		return true
	}
	return p.hasRange && day >= p.first && day <= p.last
}

// placements resolves the tasks once per build. Tasks with an invalid date are dropped,
// and a range whose end precedes its start shrinks to the start day.
func placements(tasks []TaskRef, isVisible Predicate) []placement {
	out := make([]placement, 0, len(tasks))
	for _, t := range tasks {
		p, ok := resolve(t)
		if !ok {
			continue
		}
		if isVisible != nil && !isVisible(t) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func resolve(t TaskRef) (placement, bool) {
	if !t.Date.IsValid() {
		return placement{}, false
	}
	p := placement{task: t, date: t.Date.DayNumber()}

	if t.Start != nil && t.End != nil {
		if !t.Start.IsValid() || !t.End.IsValid() {
			return placement{}, false
		}
		p.hasRange = true
		p.first = t.Start.DayNumber()
		p.last = t.End.DayNumber()
		if p.last < p.first {
			p.last = p.first
		}
	}
	return p, true
}

func fillDays(dst []CalendarDay, start, reference, today jalali.GregorianDate, tasks []placement) error {
	todayNumber := 0
	if today.IsValid() {
		todayNumber = today.DayNumber()
	}

	for i := range dst {
		date := start.AddDays(i)
		j, err := jalali.ToJalali(date)
		if err != nil {
			return fmt.Errorf("failed to label %s: %w", date, err)
		}

		n := date.DayNumber()
		var dayTasks []TaskRef
		for _, p := range tasks {
			if p.covers(n) {
				dayTasks = append(dayTasks, p.task)
			}
		}

		dst[i] = CalendarDay{
			Date:           date,
			Jalali:         j,
			InCurrentMonth: date.Year == reference.Year && date.Month == reference.Month,
			IsToday:        n == todayNumber,
			Tasks:          dayTasks,
		}
	}
	return nil
}
