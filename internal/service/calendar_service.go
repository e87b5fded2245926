package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskboard/internal/export"
	"taskboard/internal/models"
	"taskboard/internal/repository"
	"taskboard/pkg/calendar"
	"taskboard/pkg/helpers"
	"taskboard/pkg/jalali"
	"taskboard/pkg/logger"
	"taskboard/pkg/metrics"
)

var (
	ErrAccessDenied   = errors.New("access denied")
	ErrMissingViewer  = errors.New("viewer id is required")
	ErrInvalidProject = errors.New("project id is required")
)

// Query selects whose calendar to show, around which day, and for whom
type Query struct {
	ViewerID uint64
	// OwnerID defaults to ViewerID.
	OwnerID uint64
	// Date defaults to today.
	Date   jalali.GregorianDate
	Search string
}

// TaskDetail is a visible task with the row and project it came from
type TaskDetail struct {
	Ref     calendar.TaskRef
	Task    models.Task
	Project *models.Project
}

// ViewData is what every view carries besides its days
type ViewData struct {
	OwnerID        uint64
	Today          jalali.GregorianDate
	Details        map[string]TaskDetail
	Projects       []models.Project
	HiddenProjects map[string]bool
}

type MonthView struct {
	Grid calendar.MonthGrid
	ViewData
}

type WeekView struct {
	Week calendar.Week
	ViewData
}

type DayView struct {
	Day calendar.CalendarDay
	ViewData
}

type CalendarService struct {
	tasks   repository.TaskRepositoryInterface
	prefs   repository.PreferenceRepository
	metrics *metrics.Metrics
	log     *logger.Logger
	loc     *time.Location
	now     func() time.Time
}

func NewCalendarService(tasks repository.TaskRepositoryInterface, prefs repository.PreferenceRepository, m *metrics.Metrics, log *logger.Logger, loc *time.Location) *CalendarService {
	if loc == nil {
		loc = time.UTC
	}
	return &CalendarService{
		tasks:   tasks,
		prefs:   prefs,
		metrics: m,
		log:     log,
		loc:     loc,
		now:     time.Now,
	}
}

// Now returns the current time in the service's time zone
func (s *CalendarService) Now() time.Time {
	return s.now().In(s.loc)
}

// Today returns the current calendar day in the service's time zone
func (s *CalendarService) Today() jalali.GregorianDate {
	return jalali.GregorianFromTime(s.Now())
}

// MonthView builds the month grid around q.Date
func (s *CalendarService) MonthView(ctx context.Context, q Query) (*MonthView, error) {
	reference, today := s.reference(q)
	from, to := calendar.MonthWindow(reference)

	refs, isVisible, data, err := s.load(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	data.Today = today

	grid, err := calendar.BuildMonthGrid(reference, today, refs, isVisible)
	if err != nil {
		return nil, fmt.Errorf("failed to build month grid: %w", err)
	}
	return &MonthView{Grid: grid, ViewData: data}, nil
}

// WeekView builds the Saturday-first week around q.Date
func (s *CalendarService) WeekView(ctx context.Context, q Query) (*WeekView, error) {
	reference, today := s.reference(q)
	from, to := calendar.WeekWindow(reference)

	refs, isVisible, data, err := s.load(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	data.Today = today

	week, err := calendar.BuildWeek(reference, today, refs, isVisible)
	if err != nil {
		return nil, fmt.Errorf("failed to build week: %w", err)
	}
	return &WeekView{Week: week, ViewData: data}, nil
}

// DayView builds the single day q.Date
func (s *CalendarService) DayView(ctx context.Context, q Query) (*DayView, error) {
	reference, today := s.reference(q)

	refs, isVisible, data, err := s.load(ctx, q, reference, reference)
	if err != nil {
		return nil, err
	}
	data.Today = today

	day, err := calendar.BuildDay(reference, today, refs, isVisible)
	if err != nil {
		return nil, fmt.Errorf("failed to build day: %w", err)
	}
	return &DayView{Day: day, ViewData: data}, nil
}

// SetProjectVisibility shows or hides a project on the viewer's calendars
func (s *CalendarService) SetProjectVisibility(ctx context.Context, viewerID, projectID uint64, visible bool) error {
	if viewerID == 0 {
		return ErrMissingViewer
	}
	if projectID == 0 {
		return ErrInvalidProject
	}
	return s.prefs.SetProjectVisibility(ctx, viewerID, projectID, visible)
}

// ExportMonth renders the visible tasks of the month grid around q.Date as iCalendar
func (s *CalendarService) ExportMonth(ctx context.Context, q Query) (string, error) {
	view, err := s.MonthView(ctx, q)
	if err != nil {
		return "", err
	}

	visible := VisibleTasks(view.Grid.Days[:], view.Details)
	events := make([]export.Event, 0, len(visible))
	for _, d := range visible {
		events = append(events, exportEvent(d))
	}

	title, err := jalali.ToJalali(view.Grid.Reference)
	if err != nil {
		return "", fmt.Errorf("failed to name export: %w", err)
	}
	return export.Calendar(helpers.JalaliMonthTitle(title), events, s.Now()), nil
}

func exportEvent(d TaskDetail) export.Event {
	e := export.Event{
		UID:     export.TaskUID(d.Ref.ID),
		Summary: d.Ref.Title,
		Start:   d.Ref.Date,
		End:     d.Ref.Date,
	}
	if d.Ref.Start != nil && d.Ref.End != nil {
		e.Start, e.End = *d.Ref.Start, *d.Ref.End
	}
	if j, err := jalali.ToJalali(e.Start); err == nil {
		e.Description = helpers.FormatJalaliLabel(j)
	}
	if d.Project != nil {
		e.Categories = []string{d.Project.Name}
		e.Color = d.Project.Color()
	}
	return e
}

func (s *CalendarService) reference(q Query) (reference, today jalali.GregorianDate) {
	today = s.Today()
	if q.Date.IsZero() {
		return today, today
	}
	return q.Date, today
}

// load fetches the owner's tasks for the window and prepares the viewer's filter.
// Rows that cannot be normalized are counted and dropped here.
func (s *CalendarService) load(ctx context.Context, q Query, from, to jalali.GregorianDate) ([]calendar.TaskRef, calendar.Predicate, ViewData, error) {
	if q.ViewerID == 0 {
		return nil, nil, ViewData{}, ErrMissingViewer
	}
	if !q.Date.IsZero() && !q.Date.IsValid() {
		return nil, nil, ViewData{}, fmt.Errorf("%w: %s", jalali.ErrInvalidDate, q.Date)
	}
	owner := q.OwnerID
	if owner == 0 {
		owner = q.ViewerID
	}

	allowed, err := s.tasks.CanView(ctx, owner, q.ViewerID)
	if err != nil {
		return nil, nil, ViewData{}, err
	}
	if !allowed {
		return nil, nil, ViewData{}, ErrAccessDenied
	}

	rows, err := s.tasks.ListTasks(ctx, owner, from, to)
	if err != nil {
		return nil, nil, ViewData{}, err
	}
	projects, err := s.tasks.ListProjects(ctx, owner)
	if err != nil {
		return nil, nil, ViewData{}, err
	}

	data := ViewData{
		OwnerID:        owner,
		Details:        make(map[string]TaskDetail, len(rows)),
		Projects:       projects,
		HiddenProjects: s.hiddenProjects(ctx, q.ViewerID),
	}

	byID := make(map[uint64]*models.Project, len(projects))
	for i := range projects {
		byID[projects[i].ID] = &projects[i]
	}

	refs := make([]calendar.TaskRef, 0, len(rows))
	for _, row := range rows {
		ref, err := row.ToTaskRef()
		if err != nil {
			s.metrics.RecordSkippedTask(models.SkipReason(err))
			s.log.FromContext(ctx).WithField("task_id", row.ID).Debugf("task left off calendar: %v", err)
			continue
		}

		detail := TaskDetail{Ref: ref, Task: row}
		if row.ProjectID != nil {
			detail.Project = byID[*row.ProjectID]
		}
		data.Details[ref.ID] = detail
		refs = append(refs, ref)
	}

	visibility := Visibility{
		ViewerID:       q.ViewerID,
		OwnerID:        owner,
		HiddenProjects: data.HiddenProjects,
		Search:         q.Search,
	}
	return refs, visibility.Allows, data, nil
}

// hiddenProjects degrades to "nothing hidden" when the preference store is unavailable
func (s *CalendarService) hiddenProjects(ctx context.Context, viewerID uint64) map[string]bool {
	if s.prefs == nil {
		return map[string]bool{}
	}
	hidden, err := s.prefs.HiddenProjects(ctx, viewerID)
	if err != nil {
		s.log.FromContext(ctx).WithField("viewer_id", viewerID).Warnf("failed to load hidden projects: %v", err)
		return map[string]bool{}
	}
	return hidden
}

// VisibleTasks returns the tasks of view in the order the days list them, each once
func VisibleTasks(days []calendar.CalendarDay, details map[string]TaskDetail) []TaskDetail {
	seen := make(map[string]bool)
	var out []TaskDetail
	for _, day := range days {
		for _, t := range day.Tasks {
			if seen[t.ID] {
				continue
			}
			seen[t.ID] = true
			if d, ok := details[t.ID]; ok {
				out = append(out, d)
			}
		}
	}
	return out
}

