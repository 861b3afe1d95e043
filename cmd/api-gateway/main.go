package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	_ "github.com/examcell/exam-admin-api/api/swagger"
	"github.com/examcell/exam-admin-api/internal/handler"
	"github.com/examcell/exam-admin-api/internal/middleware"
	"github.com/examcell/exam-admin-api/internal/repository"
	"github.com/examcell/exam-admin-api/internal/service"
	"github.com/examcell/exam-admin-api/pkg/cache"
	"github.com/examcell/exam-admin-api/pkg/config"
	"github.com/examcell/exam-admin-api/pkg/database"
	"github.com/examcell/exam-admin-api/pkg/logger"
	corsmiddleware "github.com/examcell/exam-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/examcell/exam-admin-api/pkg/middleware/requestid"
)

// @title Exam Admin API
// @version 1.0.0
// @description Exam-administration backend: duty allocation, seating, booklets, absentees, timetables.
// @BasePath /
// @schemes http

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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		}
	}

	validate := validator.New()

	// Repositories.
	classroomRepo := repository.NewClassroomRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	allocationRepo := repository.NewAllocationRepository(db)
	seatingRoomRepo := repository.NewSeatingRoomRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	arrangementRepo := repository.NewSeatArrangementRepository(db)
	bookletRepo := repository.NewBookletRepository(db)
	absenteeRepo := repository.NewAbsenteeRepository(db)
	timetableRepo := repository.NewTimetableRepository(db)
	rosterRepo := repository.NewDutyRosterRepository(db)
	userRepo := repository.NewUserRepository(db)
	facultyRepo := repository.NewFacultyRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	// Services.
	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.ClassroomTTL, logr, cfg.Redis.Enabled && redisClient != nil)
	ingestSvc := service.NewIngestService(cfg.Seed.DataDir, classroomRepo, teacherRepo, allocationRepo, seatingRoomRepo, studentRepo, logr)
	allocationSvc := service.NewDutyAllocationService(classroomRepo, teacherRepo, allocationRepo, db, validate, logr)
	seatingSvc := service.NewSeatingService(seatingRoomRepo, studentRepo, arrangementRepo, db, logr)
	classroomSvc := service.NewClassroomService(classroomRepo, seatingRoomRepo, cacheSvc, validate, logr)
	teacherSvc := service.NewTeacherService(teacherRepo, classroomRepo, ingestSvc, logr)
	bookletSvc := service.NewBookletService(bookletRepo, db, validate, logr)
	absenteeSvc := service.NewAbsenteeService(absenteeRepo, validate, logr)
	timetableSvc := service.NewTimetableService(timetableRepo, rosterRepo, db, validate, logr)
	facultySvc := service.NewFacultyService(facultyRepo, cacheSvc, cfg.Cache.FacultyTTL, logr)
	exportSvc := service.NewExportService(arrangementRepo, rosterRepo, nil, nil, logr)
	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})

	if cfg.Seed.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		if err := ingestSvc.Run(ctx); err != nil {
			logr.Sugar().Fatalw("seed load failed", "error", err)
		}
		cancel()
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	handler.RegisterRoutes(r, cfg, handler.Handlers{
		Allocations: handler.NewAllocationHandler(allocationSvc),
		Teachers:    handler.NewTeacherHandler(teacherSvc),
		Classrooms:  handler.NewClassroomHandler(classroomSvc),
		Seating:     handler.NewSeatingHandler(seatingSvc, exportSvc),
		Booklets:    handler.NewBookletHandler(bookletSvc),
		Absentees:   handler.NewAbsenteeHandler(absenteeSvc),
		Timetables:  handler.NewTimetableHandler(timetableSvc, exportSvc),
		Auth:        handler.NewAuthHandler(authSvc),
		Faculty:     handler.NewFacultyHandler(facultySvc),
		Metrics:     handler.NewMetricsHandler(metricsSvc),
	}, authSvc)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
