package calendarpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ServiceName = "taskboard.calendar.v1.CalendarService"

	CalendarService_GetMonth_FullMethodName             = "/" + ServiceName + "/GetMonth"
	CalendarService_GetWeek_FullMethodName              = "/" + ServiceName + "/GetWeek"
	CalendarService_GetDay_FullMethodName               = "/" + ServiceName + "/GetDay"
	CalendarService_SetProjectVisibility_FullMethodName = "/" + ServiceName + "/SetProjectVisibility"
	CalendarService_ExportMonth_FullMethodName          = "/" + ServiceName + "/ExportMonth"
)

// CalendarServiceClient is the client API for CalendarService.
type CalendarServiceClient interface {
	GetMonth(ctx context.Context, in *ViewRequest, opts ...grpc.CallOption) (*MonthResponse, error)
	GetWeek(ctx context.Context, in *ViewRequest, opts ...grpc.CallOption) (*WeekResponse, error)
	GetDay(ctx context.Context, in *ViewRequest, opts ...grpc.CallOption) (*DayResponse, error)
	SetProjectVisibility(ctx context.Context, in *SetProjectVisibilityRequest, opts ...grpc.CallOption) (*SetProjectVisibilityResponse, error)
	ExportMonth(ctx context.Context, in *ViewRequest, opts ...grpc.CallOption) (*ExportResponse, error)
}

type calendarServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCalendarServiceClient(cc grpc.ClientConnInterface) CalendarServiceClient {
	return &calendarServiceClient{cc: cc}
}

func (c *calendarServiceClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *calendarServiceClient) GetMonth(ctx context.Context, in *ViewRequest, opts ...grpc.CallOption) (*MonthResponse, error) {
	out := new(MonthResponse)
	if err := c.invoke(ctx, CalendarService_GetMonth_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) GetWeek(ctx context.Context, in *ViewRequest, opts ...grpc.CallOption) (*WeekResponse, error) {
	out := new(WeekResponse)
	if err := c.invoke(ctx, CalendarService_GetWeek_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) GetDay(ctx context.Context, in *ViewRequest, opts ...grpc.CallOption) (*DayResponse, error) {
	out := new(DayResponse)
	if err := c.invoke(ctx, CalendarService_GetDay_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) SetProjectVisibility(ctx context.Context, in *SetProjectVisibilityRequest, opts ...grpc.CallOption) (*SetProjectVisibilityResponse, error) {
	out := new(SetProjectVisibilityResponse)
	if err := c.invoke(ctx, CalendarService_SetProjectVisibility_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) ExportMonth(ctx context.Context, in *ViewRequest, opts ...grpc.CallOption) (*ExportResponse, error) {
	out := new(ExportResponse)
	if err := c.invoke(ctx, CalendarService_ExportMonth_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// CalendarServiceServer is the server API for CalendarService.
type CalendarServiceServer interface {
	GetMonth(context.Context, *ViewRequest) (*MonthResponse, error)
	GetWeek(context.Context, *ViewRequest) (*WeekResponse, error)
	GetDay(context.Context, *ViewRequest) (*DayResponse, error)
	SetProjectVisibility(context.Context, *SetProjectVisibilityRequest) (*SetProjectVisibilityResponse, error)
	ExportMonth(context.Context, *ViewRequest) (*ExportResponse, error)
}

// UnimplementedCalendarServiceServer can be embedded to have forward compatible implementations.
type UnimplementedCalendarServiceServer struct{}

func (UnimplementedCalendarServiceServer) GetMonth(context.Context, *ViewRequest) (*MonthResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMonth not implemented")
}
func (UnimplementedCalendarServiceServer) GetWeek(context.Context, *ViewRequest) (*WeekResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetWeek not implemented")
}
func (UnimplementedCalendarServiceServer) GetDay(context.Context, *ViewRequest) (*DayResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDay not implemented")
}
func (UnimplementedCalendarServiceServer) SetProjectVisibility(context.Context, *SetProjectVisibilityRequest) (*SetProjectVisibilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetProjectVisibility not implemented")
}
func (UnimplementedCalendarServiceServer) ExportMonth(context.Context, *ViewRequest) (*ExportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportMonth not implemented")
}

func RegisterCalendarServiceServer(s grpc.ServiceRegistrar, srv CalendarServiceServer) {
	s.RegisterService(&CalendarService_ServiceDesc, srv)
}

// unaryHandler adapts one typed server method to the grpc method handler shape
func unaryHandler[Req any, Resp any](fullMethod string, call func(CalendarServiceServer, context.Context, *Req) (*Resp, error)) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CalendarServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(CalendarServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// CalendarService_ServiceDesc is the grpc.ServiceDesc for CalendarService.
var CalendarService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CalendarServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetMonth",
			Handler:    unaryHandler(CalendarService_GetMonth_FullMethodName, CalendarServiceServer.GetMonth),
		},
		{
			MethodName: "GetWeek",
			Handler:    unaryHandler(CalendarService_GetWeek_FullMethodName, CalendarServiceServer.GetWeek),
		},
		{
			MethodName: "GetDay",
			Handler:    unaryHandler(CalendarService_GetDay_FullMethodName, CalendarServiceServer.GetDay),
		},
		{
			MethodName: "SetProjectVisibility",
			Handler:    unaryHandler(CalendarService_SetProjectVisibility_FullMethodName, CalendarServiceServer.SetProjectVisibility),
		},
		{
			MethodName: "ExportMonth",
			Handler:    unaryHandler(CalendarService_ExportMonth_FullMethodName, CalendarServiceServer.ExportMonth),
		},
	},
	Streams:     []grpc.StreamDesc{},
}
