package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskboard/internal/calendarpb"
	"taskboard/internal/service"
	"taskboard/pkg/helpers"
	"taskboard/pkg/jalali"
)

// CalendarService is the service surface the gRPC handler needs
type CalendarService interface {
	MonthView(ctx context.Context, q service.Query) (*service.MonthView, error)
	WeekView(ctx context.Context, q service.Query) (*service.WeekView, error)
	DayView(ctx context.Context, q service.Query) (*service.DayView, error)
	SetProjectVisibility(ctx context.Context, viewerID, projectID uint64, visible bool) error
	ExportMonth(ctx context.Context, q service.Query) (string, error)
	Now() time.Time
}

type CalendarHandler struct {
	calendarpb.UnimplementedCalendarServiceServer
	service CalendarService
}

func NewCalendarHandler(svc CalendarService) *CalendarHandler {
	return &CalendarHandler{service: svc}
}

func RegisterCalendarHandler(grpcServer *grpc.Server, svc CalendarService) {
	calendarpb.RegisterCalendarServiceServer(grpcServer, NewCalendarHandler(svc))
}

// GetMonth returns the 42-day grid around the requested date
func (h *CalendarHandler) GetMonth(ctx context.Context, req *calendarpb.ViewRequest) (*calendarpb.MonthResponse, error) {
	q, err := toQuery(req)
	if err != nil {
		return nil, err
	}

	view, err := h.service.MonthView(ctx, q)
	if err != nil {
		return nil, toStatus(err)
	}

	return buildMonthResponse(view, h.service.Now()), nil
}

// GetWeek returns the Saturday-first week around the requested date
func (h *CalendarHandler) GetWeek(ctx context.Context, req *calendarpb.ViewRequest) (*calendarpb.WeekResponse, error) {
	q, err := toQuery(req)
	if err != nil {
		return nil, err
	}

	view, err := h.service.WeekView(ctx, q)
	if err != nil {
		return nil, toStatus(err)
	}

	return buildWeekResponse(view, h.service.Now()), nil
}

// GetDay returns a single day
func (h *CalendarHandler) GetDay(ctx context.Context, req *calendarpb.ViewRequest) (*calendarpb.DayResponse, error) {
	q, err := toQuery(req)
	if err != nil {
		return nil, err
	}

	view, err := h.service.DayView(ctx, q)
	if err != nil {
		return nil, toStatus(err)
	}

	return buildDayResponse(view, h.service.Now()), nil
}

// SetProjectVisibility shows or hides a project on the viewer's calendars
func (h *CalendarHandler) SetProjectVisibility(ctx context.Context, req *calendarpb.SetProjectVisibilityRequest) (*calendarpb.SetProjectVisibilityResponse, error) {
	if err := h.service.SetProjectVisibility(ctx, req.ViewerID, req.ProjectID, req.Visible); err != nil {
		return nil, toStatus(err)
	}

	return &calendarpb.SetProjectVisibilityResponse{
		ProjectID: req.ProjectID,
		Visible:   req.Visible,
	}, nil
}

// ExportMonth returns the month window's visible tasks as an iCalendar file
func (h *CalendarHandler) ExportMonth(ctx context.Context, req *calendarpb.ViewRequest) (*calendarpb.ExportResponse, error) {
	q, err := toQuery(req)
	if err != nil {
		return nil, err
	}

	content, err := h.service.ExportMonth(ctx, q)
	if err != nil {
		return nil, toStatus(err)
	}

	reference := q.Date
	if reference.IsZero() {
		reference = jalali.GregorianFromTime(h.service.Now())
	}
	return &calendarpb.ExportResponse{
		Filename: fmt.Sprintf("calendar-%04d-%02d.ics", reference.Year, reference.Month),
		Content:  content,
	}, nil
}

func toQuery(req *calendarpb.ViewRequest) (service.Query, error) {
	q := service.Query{
		ViewerID: req.ViewerID,
		OwnerID:  req.OwnerID,
		Search:   req.Search,
	}

	if req.Date != "" {
		date, err := helpers.ParseCalendarDate(req.Date)
		if err != nil {
			return service.Query{}, invalidField("date", helpers.GetLocaleTranslations("en").CalendarDate)
		}
		q.Date = date
	}

	return q, nil
}

// invalidField builds an InvalidArgument status whose message is the encoded field error
func invalidField(field, format string) error {
	return status.Error(codes.InvalidArgument, helpers.EncodeValidationError(map[string]string{
		field: fmt.Sprintf(format, field),
	}))
}

func toStatus(err error) error {
	en := helpers.GetLocaleTranslations("en")

	switch {
	case errors.Is(err, service.ErrAccessDenied):
		return status.Error(codes.PermissionDenied, "you do not have access to this calendar")
	case errors.Is(err, service.ErrMissingViewer):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, service.ErrInvalidProject):
		return invalidField("project_id", en.Required)
	case errors.Is(err, jalali.ErrInvalidDate):
		return invalidField("date", en.CalendarDate)
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Errorf(codes.Internal, "failed to build calendar: %v", err)
	}
}
