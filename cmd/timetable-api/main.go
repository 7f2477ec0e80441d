package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/iiitdwd/timetable-api/internal/handler"
	"github.com/iiitdwd/timetable-api/internal/middleware"
	"github.com/iiitdwd/timetable-api/internal/repository"
	"github.com/iiitdwd/timetable-api/internal/service"
	"github.com/iiitdwd/timetable-api/pkg/config"
	"github.com/iiitdwd/timetable-api/pkg/logger"
	corsmiddleware "github.com/iiitdwd/timetable-api/pkg/middleware/cors"
	reqidmiddleware "github.com/iiitdwd/timetable-api/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()
	repo := repository.New()
	metrics := service.NewMetricsService()

	catalogSvc := service.NewCatalogService(repo, validate, logr)
	scheduleSvc := service.NewScheduleService(repo, cfg.Scheduler, validate, logr, metrics)
	exportSvc := service.NewExportService(repo, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Courses:    handler.NewCourseHandler(catalogSvc),
		Professors: handler.NewProfessorHandler(catalogSvc),
		Rooms:      handler.NewRoomHandler(catalogSvc),
		TimeSlots:  handler.NewTimeSlotHandler(catalogSvc),
		Schedules:  handler.NewScheduleHandler(scheduleSvc, exportSvc),
		Metrics:    handler.NewMetricsHandler(metrics),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}
