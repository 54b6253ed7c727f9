package app

import (
	"context"
	"errors"
	"habit_tracker/internal/config"
	"habit_tracker/internal/controller"
	"habit_tracker/internal/middleware"
	"habit_tracker/internal/repository"
	"habit_tracker/internal/service"
	"habit_tracker/pkg/configwatcher"
	"habit_tracker/pkg/database"
	"habit_tracker/pkg/logger"
	"habit_tracker/pkg/monitoring"
	"habit_tracker/pkg/security"
	"habit_tracker/pkg/tracing"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
	// 停止中间件的后台协程（限流清理）
	stopBackground context.CancelFunc
}

type repositories struct {
	habit   *repository.HabitRepository
	checkin *repository.CheckinRepository
}

type services struct {
	habit   *service.HabitService
	checkin *service.CheckinService
}

type controllers struct {
	habit   *controller.HabitController
	checkin *controller.CheckinController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		habit:   repository.NewHabitRepository(db),
		checkin: repository.NewCheckinRepository(db),
	}
}

func (a *App) initServices(repos *repositories) *services {
	return &services{
		habit:   service.NewHabitService(repos.habit),
		checkin: service.NewCheckinService(repos.checkin, repos.habit),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		habit:   controller.NewHabitController(s.habit),
		checkin: controller.NewCheckinController(s.checkin),
		health:  controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(ctx context.Context, router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(ctx, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window()))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp 初始化日志、数据库连接（按需迁移）和路由
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		return nil, err
	}

	// release 模式下默认不自动迁移，除非显式指定
	if cfg.Server.Mode != gin.ReleaseMode || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
	}

	app := NewAppWithDB(cfg, db)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			app.stopBackground()
			return nil, err
		}
		app.tracer = tp
	}

	return app, nil
}

// NewAppWithDB 使用已打开的数据库构建应用，测试中直接使用
func NewAppWithDB(cfg *config.Config, db *gorm.DB) *App {
	gin.SetMode(cfg.Server.Mode)

	bgCtx, stop := context.WithCancel(context.Background())
	app := &App{
		Config:         cfg,
		DB:             db,
		stopBackground: stop,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.New()
	app.Router = router

	app.setupMiddlewares(bgCtx, router, cfg)
	app.registerRoutes(router, controllers)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetLevel(newCfg.Server.Mode)
	})

	return app
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

// Run 启动 HTTP 服务，收到 SIGINT/SIGTERM 后优雅退出
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if a.Config.File != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.Config.File, a.applyConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	logger.Log.Info("Shutting down server...")

	// 设置5秒的超时时间
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	a.Close(shutdownCtx)
	logger.Log.Info("Server exiting")
	return nil
}

// Close 停止后台协程，释放数据库连接和 tracer
func (a *App) Close(ctx context.Context) {
	a.stopBackground()
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Log.Error("Failed to close database", zap.Error(err))
		}
	}
	_ = logger.Log.Sync()
}
