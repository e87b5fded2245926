package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// Logger wraps a logrus entry carrying the service field
type Logger struct {
	*logrus.Entry
}

// NewLogger creates a new logger instance writing JSON to stdout at LOG_LEVEL
func NewLogger(serviceName string) *Logger {
	return New(serviceName, os.Stdout, os.Getenv("LOG_LEVEL"))
}

// New creates a logger with an explicit output and level
func New(serviceName string, out io.Writer, level string) *Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	log.SetOutput(out)

	switch level {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	return &Logger{Entry: log.WithField("service", serviceName)}
}

// WithRequestID adds request ID to logger
func (l *Logger) WithRequestID(requestID string) *logrus.Entry {
	return l.WithField("request_id", requestID)
}

// WithUserID adds user ID to logger
func (l *Logger) WithUserID(userID uint64) *logrus.Entry {
	return l.WithField("user_id", userID)
}

// FromContext returns an entry tagged with the request id stored in ctx, if any
func (l *Logger) FromContext(ctx context.Context) *logrus.Entry {
	if id := RequestIDFromContext(ctx); id != "" {
		return l.WithRequestID(id)
	}
	return l.Entry
}

type requestIDKey struct{}

// ContextWithRequestID stores a request id in ctx
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id stored in ctx, or ""
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// UnaryServerInterceptor returns a new unary server interceptor for logging.
// A request id sent as x-request-id metadata is carried into the handler context.
func UnaryServerInterceptor(logger *Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get("x-request-id"); len(ids) > 0 {
				ctx = ContextWithRequestID(ctx, ids[0])
			}
		}

		start := time.Now()
		resp, err := handler(ctx, req)

		entry := logger.FromContext(ctx).WithFields(logrus.Fields{
			"method":      info.FullMethod,
			"type":        "unary",
			"duration_ms": time.Since(start).Milliseconds(),
		})
		if err != nil {
			entry.WithField("error", err.Error()).Error("gRPC request failed")
		} else {
			entry.Info("gRPC request")
		}

		return resp, err
	}
}
