package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"taskboard/internal/calendarpb"
	"taskboard/internal/config"
	"taskboard/internal/gateway"
	"taskboard/internal/handler"
	"taskboard/internal/repository"
	"taskboard/internal/service"
	"taskboard/pkg/db"
	"taskboard/pkg/logger"
	"taskboard/pkg/metrics"
)

const poolStatsInterval = 15 * time.Second

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	log := logger.NewLogger(cfg.ServiceName)
	if envErr != nil {
		log.WithError(envErr).Warn(".env file not found")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(cfg.ServiceName, registry)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := db.NewSchemaGuard(conn.DB).ValidateTables(ctx, repository.Schemas()); err != nil {
		log.WithError(err).Fatal("Database schema does not match")
	}
	log.Info("Successfully connected to database")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("Redis unavailable, project visibility preferences are ignored until it recovers")
	}
	cancel()

	calendarService := service.NewCalendarService(
		repository.NewTaskRepository(conn.DB),
		repository.NewPreferenceRepository(rdb),
		m,
		log,
		cfg.Location,
	)

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		logger.UnaryServerInterceptor(log),
		metrics.UnaryServerInterceptor(m),
	))
	handler.RegisterCalendarHandler(grpcServer, calendarService)

	listener, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		log.WithError(err).Fatalf("Failed to listen on port %s", cfg.GRPCPort)
	}

	go func() {
		log.Infof("Calendar service listening on port %s", cfg.GRPCPort)
		if err := grpcServer.Serve(listener); err != nil {
			log.WithError(err).Fatal("Failed to serve gRPC")
		}
	}()

	calendarConn, err := grpc.NewClient("localhost:"+cfg.GRPCPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.WithError(err).Fatal("Failed to dial calendar service")
	}

	mux := http.NewServeMux()
	gateway.NewCalendarHandler(calendarpb.NewCalendarServiceClient(calendarConn), log).Routes(mux, m)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", healthHandler(conn))

	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           gateway.CORSMiddleware(logger.HTTPMiddleware(log)(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("HTTP gateway listening on port %s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to serve HTTP")
		}
	}()

	stopStats := make(chan struct{})
	go recordPoolStats(conn.DB, m, stopStats)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	close(stopStats)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("HTTP shutdown did not complete")
	}
	calendarConn.Close()
	grpcServer.GracefulStop()

	rdb.Close()
	conn.Close()
	log.Info("Server stopped")
}

func healthHandler(conn *db.Connection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		code, state := http.StatusOK, "ok"
		if err := conn.Ping(ctx); err != nil {
			code, state = http.StatusServiceUnavailable, "database unavailable"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]string{"status": state})
	}
}

func recordPoolStats(database *sql.DB, m *metrics.Metrics, stop <-chan struct{}) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s := database.Stats()
			m.RecordDBPoolStats(s.OpenConnections, s.InUse, s.Idle, s.WaitCount, s.WaitDuration)
		case <-stop:
			return
		}
	}
}
