package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"taskboard/pkg/calendar"
	"taskboard/pkg/jalali"
)

// Skip reasons reported when a row cannot be placed on the calendar.
const (
	SkipMissingDate  = "missing_date"
	SkipInvalidDate  = "invalid_date"
	SkipInvalidRange = "invalid_range"
)

// Task is a tasks row. Dates are kept as the yyyy-mm-dd strings the store returns; empty means NULL.
type Task struct {
	ID        uint64
	OwnerID   uint64
	ProjectID *uint64
	Title     string
	Date      string
	StartDate string
	EndDate   string
	Deadline  string
	StartTime string
	Priority  string
	Status    string
	IsPrivate bool
	CreatedAt time.Time
}

// Project is a projects row
type Project struct {
	ID     uint64
	Name   string
	Status string
}

// SkipError explains why a task was left off the calendar
type SkipError struct {
	TaskID uint64
	Reason string
	Err    error
}

func (e *SkipError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("task %d skipped: %s", e.TaskID, e.Reason)
	}
	return fmt.Sprintf("task %d skipped: %s: %v", e.TaskID, e.Reason, e.Err)
}

func (e *SkipError) Unwrap() error { return e.Err }

// ToTaskRef normalizes a row into the calendar's task shape.
//
// The primary date is Date, falling back to StartDate. StartDate and EndDate form the
// range; Deadline stands in for a missing EndDate. Without a StartDate there is no range.
func (t Task) ToTaskRef() (calendar.TaskRef, error) {
	ref := calendar.TaskRef{
		ID:      strconv.FormatUint(t.ID, 10),
		Title:   t.Title,
		Private: t.IsPrivate,
	}
	if t.ProjectID != nil {
		ref.ProjectID = strconv.FormatUint(*t.ProjectID, 10)
	}

	primary := t.Date
	if primary == "" {
		primary = t.StartDate
	}
	if primary == "" {
		return calendar.TaskRef{}, &SkipError{TaskID: t.ID, Reason: SkipMissingDate}
	}

	var err error
	if ref.Date, err = jalali.ParseGregorian(primary); err != nil {
		return calendar.TaskRef{}, &SkipError{TaskID: t.ID, Reason: SkipInvalidDate, Err: err}
	}

	end := t.EndDate
	if end == "" {
		end = t.Deadline
	}
	if t.StartDate == "" || end == "" {
		return ref, nil
	}

	start, err := jalali.ParseGregorian(t.StartDate)
	if err != nil {
		return calendar.TaskRef{}, &SkipError{TaskID: t.ID, Reason: SkipInvalidRange, Err: err}
	}
	last, err := jalali.ParseGregorian(end)
	if err != nil {
		return calendar.TaskRef{}, &SkipError{TaskID: t.ID, Reason: SkipInvalidRange, Err: err}
	}
	ref.Start, ref.End = &start, &last

	return ref, nil
}

// SkipReason returns the skip reason carried by err, or "".
func SkipReason(err error) string {
	var skip *SkipError
	if errors.As(err, &skip) {
		return skip.Reason
	}
	return ""
}
