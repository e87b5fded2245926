// Package calendarpb holds the wire contract of taskboard.calendar.v1.CalendarService.
package calendarpb

// ViewRequest selects a calendar view. Date is Jalali (1403/01/01) or Gregorian (2024-03-20);
// empty means today. OwnerID zero means the viewer's own calendar.
type ViewRequest struct {
	ViewerID uint64 `json:"viewer_id"`
	OwnerID  uint64 `json:"owner_id,omitempty"`
	Date     string `json:"date,omitempty"`
	Search   string `json:"search,omitempty"`
}

type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Status      string `json:"status,omitempty"`
	ProjectID   string `json:"project_id,omitempty"`
	ProjectName string `json:"project_name,omitempty"`
	Color       string `json:"color"`
	Private     bool   `json:"private"`
}

type CalendarDay struct {
	Date           string  `json:"date"`
	Jalali         string  `json:"jalali"`
	Label          string  `json:"label"`
	Weekday        string  `json:"weekday"`
	InCurrentMonth bool    `json:"in_current_month"`
	IsToday        bool    `json:"is_today"`
	Tasks          []*Task `json:"tasks"`
}

type Project struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Color  string `json:"color"`
	Hidden bool   `json:"hidden"`
}

// Navigation links a view to its neighbours; dates are Gregorian yyyy-mm-dd.
type Navigation struct {
	Prev  string `json:"prev"`
	Next  string `json:"next"`
	Today string `json:"today"`
}

type MonthResponse struct {
	Title          string           `json:"title"`
	GregorianTitle string           `json:"gregorian_title"`
	Reference      string           `json:"reference"`
	Navigation     *Navigation      `json:"navigation"`
	WeekdayNames   []string         `json:"weekday_names"`
	Weeks          [][]*CalendarDay `json:"weeks"`
	Projects       []*Project       `json:"projects"`
	GeneratedAt    string           `json:"generated_at"`
}

type WeekResponse struct {
	Title        string         `json:"title"`
	Reference    string         `json:"reference"`
	Navigation   *Navigation    `json:"navigation"`
	WeekdayNames []string       `json:"weekday_names"`
	Days         []*CalendarDay `json:"days"`
	Projects     []*Project     `json:"projects"`
	GeneratedAt  string         `json:"generated_at"`
}

type DayResponse struct {
	Title       string       `json:"title"`
	Reference   string       `json:"reference"`
	Navigation  *Navigation  `json:"navigation"`
	Day         *CalendarDay `json:"day"`
	Projects    []*Project   `json:"projects"`
	GeneratedAt string       `json:"generated_at"`
}

type SetProjectVisibilityRequest struct {
	ViewerID  uint64 `json:"viewer_id"`
	ProjectID uint64 `json:"project_id"`
	Visible   bool   `json:"visible"`
}

type SetProjectVisibilityResponse struct {
	ProjectID uint64 `json:"project_id"`
	Visible   bool   `json:"visible"`
}

type ExportResponse struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
