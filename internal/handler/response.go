package handler

import (
	"fmt"
	"strconv"
	"time"

	"taskboard/internal/calendarpb"
	"taskboard/internal/models"
	"taskboard/internal/service"
	"taskboard/pkg/calendar"
	"taskboard/pkg/helpers"
	"taskboard/pkg/jalali"
)

func buildMonthResponse(view *service.MonthView, now time.Time) *calendarpb.MonthResponse {
	reference := view.Grid.Reference

	weeks := make([][]*calendarpb.CalendarDay, 0, calendar.GridWeeks)
	for _, row := range view.Grid.Weeks() {
		days := make([]*calendarpb.CalendarDay, 0, calendar.DaysPerWeek)
		for _, day := range row {
			days = append(days, buildDay(day, view.Details))
		}
		weeks = append(weeks, days)
	}

	return &calendarpb.MonthResponse{
		Title:          helpers.JalaliMonthTitle(jalaliOf(view.Grid.Days[:], reference)),
		GregorianTitle: fmt.Sprintf("%s %d", time.Month(reference.Month), reference.Year),
		Reference:      reference.String(),
		Navigation: &calendarpb.Navigation{
			Prev:  calendar.ShiftMonth(reference, -1).String(),
			Next:  calendar.ShiftMonth(reference, 1).String(),
			Today: view.Today.String(),
		},
		WeekdayNames: weekdayNames(),
		Weeks:        weeks,
		Projects:     buildProjects(view.Projects, view.HiddenProjects),
		GeneratedAt:  helpers.FormatJalaliDateTime(now),
	}
}

func buildWeekResponse(view *service.WeekView, now time.Time) *calendarpb.WeekResponse {
	reference := view.Week.Reference

	days := make([]*calendarpb.CalendarDay, 0, calendar.DaysPerWeek)
	for _, day := range view.Week.Days {
		days = append(days, buildDay(day, view.Details))
	}

	first, last := view.Week.Days[0].Jalali, view.Week.Days[calendar.DaysPerWeek-1].Jalali
	return &calendarpb.WeekResponse{
		Title:     fmt.Sprintf("%s - %s", helpers.FormatJalaliLabel(first), helpers.FormatJalaliLabel(last)),
		Reference: reference.String(),
		Navigation: &calendarpb.Navigation{
			Prev:  reference.AddDays(-calendar.DaysPerWeek).String(),
			Next:  reference.AddDays(calendar.DaysPerWeek).String(),
			Today: view.Today.String(),
		},
		WeekdayNames: weekdayNames(),
		Days:         days,
		Projects:     buildProjects(view.Projects, view.HiddenProjects),
		GeneratedAt:  helpers.FormatJalaliDateTime(now),
	}
}

func buildDayResponse(view *service.DayView, now time.Time) *calendarpb.DayResponse {
	reference := view.Day.Date
	weekday := jalali.WeekdayName(jalali.WeekdayIndex(reference))

	return &calendarpb.DayResponse{
		Title:     fmt.Sprintf("%s %s", weekday, helpers.FormatJalaliLabel(view.Day.Jalali)),
		Reference: reference.String(),
		Navigation: &calendarpb.Navigation{
			Prev:  reference.AddDays(-1).String(),
			Next:  reference.AddDays(1).String(),
			Today: view.Today.String(),
		},
		Day:         buildDay(view.Day, view.Details),
		Projects:    buildProjects(view.Projects, view.HiddenProjects),
		GeneratedAt: helpers.FormatJalaliDateTime(now),
	}
}

func buildDay(day calendar.CalendarDay, details map[string]service.TaskDetail) *calendarpb.CalendarDay {
	tasks := make([]*calendarpb.Task, 0, len(day.Tasks))
	for _, ref := range day.Tasks {
		tasks = append(tasks, buildTask(ref, details[ref.ID]))
	}

	return &calendarpb.CalendarDay{
		Date:           day.Date.String(),
		Jalali:         day.Jalali.String(),
		Label:          helpers.ToPersianDigits(strconv.Itoa(day.Jalali.Day)),
		Weekday:        jalali.WeekdayName(jalali.WeekdayIndex(day.Date)),
		InCurrentMonth: day.InCurrentMonth,
		IsToday:        day.IsToday,
		Tasks:          tasks,
	}
}

func buildTask(ref calendar.TaskRef, detail service.TaskDetail) *calendarpb.Task {
	task := &calendarpb.Task{
		ID:        ref.ID,
		Title:     ref.Title,
		Date:      ref.Date.String(),
		StartTime: detail.Task.StartTime,
		Priority:  detail.Task.Priority,
		Status:    detail.Task.Status,
		ProjectID: ref.ProjectID,
		Color:     models.ColorDefault,
		Private:   ref.Private,
	}
	if ref.Start != nil && ref.End != nil {
		task.StartDate = ref.Start.String()
		task.EndDate = ref.End.String()
	}
	if detail.Project != nil {
		task.ProjectName = detail.Project.Name
		task.Color = detail.Project.Color()
	}
	return task
}

func buildProjects(projects []models.Project, hidden map[string]bool) []*calendarpb.Project {
	out := make([]*calendarpb.Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, &calendarpb.Project{
			ID:     p.ID,
			Name:   p.Name,
			Status: p.Status,
			Color:  p.Color(),
			Hidden: hidden[strconv.FormatUint(p.ID, 10)],
		})
	}
	return out
}

func weekdayNames() []string {
	names := make([]string, 0, calendar.DaysPerWeek)
	for i := 0; i < calendar.DaysPerWeek; i++ {
		names = append(names, jalali.WeekdayName(i))
	}
	return names
}

// jalaliOf finds the Jalali label of g among already converted days
func jalaliOf(days []calendar.CalendarDay, g jalali.GregorianDate) jalali.Date {
	for _, day := range days {
		if day.Date == g {
			return day.Jalali
		}
	}
	return jalali.Date{}
}
