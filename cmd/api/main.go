package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	dbadapter "taskhub/internal/adapter/db"
	httpadapter "taskhub/internal/adapter/http"
	"taskhub/internal/adapter/http/handlers"
	httpmiddleware "taskhub/internal/adapter/http/middleware"
	"taskhub/internal/adapter/http/validation"
	"taskhub/internal/adapter/realtime"
	"taskhub/internal/app/service"
	"taskhub/internal/app/store"
	"taskhub/internal/config"
	"taskhub/internal/core/ports"
	"taskhub/pkg/translator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationDir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageIt},
	})
	validation.RegisterValidators()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()
	if err := dbadapter.Migrate(ctx, db); err != nil {
		logger.Fatal("failed to apply schema", zap.Error(err))
	}

	loc := cfg.Location()
	clock := ports.Clock(func() time.Time { return time.Now().In(loc) })

	broker := realtime.NewBroker(uuid.NewString(), realtime.DefaultBufferSize)
	var publisher ports.EventPublisher = broker
	deps := []handlers.Dependency{{Name: cfg.DbDriver, Ping: db.PingContext}}

	if cfg.RedisURL != "" {
		rdb, err := realtime.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				logger.Warn("failed to close redis connection", zap.Error(err))
			}
		}()

		feed := realtime.NewRedisFeed(rdb, broker, cfg.RedisChannel)
		publisher = feed
		deps = append(deps, handlers.Dependency{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
		go func() {
			if err := feed.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("redis change feed stopped", zap.Error(err))
			}
		}()
	}

	taskRepository := dbadapter.NewTaskRepository(db)
	subjectRepository := dbadapter.NewSubjectRepository(db)
	professorRepository := dbadapter.NewProfessorRepository(db)
	scheduleRepository := dbadapter.NewScheduleRepository(db)
	noteRepository := dbadapter.NewNoteRepository(db)
	profileRepository := dbadapter.NewProfileRepository(db)

	taskStore := store.NewTaskStore(taskRepository, clock)
	storeEvents, cancelStoreEvents := broker.Subscribe("")
	defer cancelStoreEvents()
	go taskStore.Watch(ctx, storeEvents, broker.Origin())

	taskService := service.NewTaskService(taskRepository, subjectRepository, professorRepository, taskStore, publisher, clock)
	subjectService := service.NewSubjectService(subjectRepository, professorRepository, taskStore, publisher, clock)
	professorService := service.NewProfessorService(professorRepository, taskStore, publisher, clock)
	scheduleService := service.NewScheduleService(scheduleRepository, subjectRepository, publisher, clock)
	noteService := service.NewNoteService(noteRepository, subjectRepository, publisher, clock)
	profileService := service.NewProfileService(profileRepository, taskStore, publisher, clock, cfg.ProfileTimeout)

	scheduler := service.NewSchedulerService(loc)
	if _, err := scheduler.SchedulePriorityRefresh(cfg.PriorityRefresh, taskService); err != nil {
		logger.Fatal("failed to schedule priority refresh", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger), httpmiddleware.MetricsMiddleware())
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:    handlers.NewHealthHandler(deps...),
		Task:      handlers.NewTaskHandler(taskService, clock),
		Subject:   handlers.NewSubjectHandler(subjectService),
		Professor: handlers.NewProfessorHandler(professorService),
		Schedule:  handlers.NewScheduleHandler(scheduleService),
		Note:      handlers.NewNoteHandler(noteService),
		Profile:   handlers.NewProfileHandler(profileService),
		Events:    handlers.NewEventsHandler(broker, handlers.DefaultHeartbeat),
	}, cfg.JWTSecret)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	// Request contexts derive from ctx so event streams end on shutdown.
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     r,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
}
