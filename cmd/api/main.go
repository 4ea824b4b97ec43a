package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Chikimuras/ezlife/internal/adapter/auth"
	dbadapter "github.com/Chikimuras/ezlife/internal/adapter/db"
	httpadapter "github.com/Chikimuras/ezlife/internal/adapter/http"
	"github.com/Chikimuras/ezlife/internal/adapter/http/handlers"
	httpmiddleware "github.com/Chikimuras/ezlife/internal/adapter/http/middleware"
	"github.com/Chikimuras/ezlife/internal/adapter/recurrence"
	"github.com/Chikimuras/ezlife/internal/app/jobs"
	"github.com/Chikimuras/ezlife/internal/app/service"
	"github.com/Chikimuras/ezlife/internal/config"
	"github.com/Chikimuras/ezlife/pkg/translator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg)
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

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	location, err := cfg.Location()
	if err != nil {
		logger.Fatal("invalid timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close postgres connection", zap.Error(err))
		}
	}()
	if cfg.DbAutoMigrate {
		if err := dbadapter.Migrate(db); err != nil {
			logger.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWTSecret, cfg.AccessTokenTTL)
	if err != nil {
		logger.Fatal("invalid access token configuration", zap.Error(err))
	}
	if cfg.GoogleClientID == "" {
		logger.Warn("GOOGLE_CLIENT_ID is empty, google login will reject every token")
	}

	clock := service.SystemClock{Location: location}

	groups := dbadapter.NewGroupRepository(db)
	categories := dbadapter.NewCategoryRepository(db)
	activities := dbadapter.NewActivityRepository(db)
	taskLists := dbadapter.NewTaskListRepository(db)
	tasks := dbadapter.NewTaskRepository(db)
	links := dbadapter.NewTaskActivityRepository(db)

	authService := service.NewAuthService(
		dbadapter.NewUserRepository(db),
		dbadapter.NewRefreshTokenRepository(db),
		auth.NewGoogleVerifier(cfg.GoogleClientID),
		jwtManager,
		clock,
		service.AuthConfig{RefreshTokenTTL: cfg.RefreshTokenTTL},
	)
	activityService := service.NewActivityService(activities, categories, links, clock)
	taskService := service.NewTaskService(
		service.TaskRepositories{
			Tasks:      tasks,
			Lists:      taskLists,
			Links:      links,
			Activities: activities,
			Categories: categories,
		},
		recurrence.NewParser(),
		dbadapter.NewTransactor(db),
		clock,
		service.DefaultTaskConfig(),
	)

	scheduler := jobs.NewScheduler(location)
	if err := scheduler.Schedule(jobs.TokenCleanupJob, cfg.TokenCleanupSchedule, jobs.TokenCleanup(authService)); err != nil {
		logger.Fatal("failed to schedule token cleanup", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger), httpmiddleware.CORSMiddleware(cfg.FrontendURLs))

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:     handlers.NewHealthHandler(db, handlers.AppInfo{Name: cfg.AppName, Version: cfg.AppVersion}),
		Auth:       handlers.NewAuthHandler(authService, handlers.CookieConfig{Secure: cfg.CookieSecure, MaxAge: cfg.RefreshTokenTTL}),
		Admin:      handlers.NewAdminHandler(authService),
		Groups:     handlers.NewGroupHandler(service.NewGroupService(groups)),
		Categories: handlers.NewCategoryHandler(service.NewCategoryService(categories, groups)),
		Activities: handlers.NewActivityHandler(activityService),
		Timer:      handlers.NewTimerHandler(activityService),
		TaskLists:  handlers.NewTaskListHandler(service.NewTaskListService(taskLists)),
		Tasks:      handlers.NewTaskHandler(taskService),
		Insights:   handlers.NewInsightsHandler(service.NewInsightsService(dbadapter.NewInsightsRepository(db)), clock),
	}, authService)

	port := cfg.AppPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zapCfg = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
