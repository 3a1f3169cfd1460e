package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"verdant_backend/internal/config"
	"verdant_backend/internal/controller"
	"verdant_backend/internal/middleware"
	"verdant_backend/internal/repository"
	"verdant_backend/internal/service"
	"verdant_backend/internal/util"
	"verdant_backend/pkg/configwatcher"
	"verdant_backend/pkg/database"
	"verdant_backend/pkg/logger"
	"verdant_backend/pkg/monitoring"
	"verdant_backend/pkg/security"
	"verdant_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	services        *services
	origins         *security.OriginPolicy
	limiter         *security.IPRateLimiter
	tracer          *sdktrace.TracerProvider
	closeAI         func() error
	stop            chan struct{}
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user           *repository.UserRepository
	plant          *repository.PlantRepository
	identification *repository.IdentificationRepository
	quiz           *repository.QuizRepository
	activeQuiz     repository.ActiveQuizStore
}

type services struct {
	auth           *service.AuthService
	plant          *service.PlantService
	identification *service.IdentificationService
	quiz           *service.QuizService
}

type controllers struct {
	auth     *controller.AuthController
	plant    *controller.PlantController
	identify *controller.IdentifyController
	quiz     *controller.QuizController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	repos := &repositories{
		user:           repository.NewUserRepository(db),
		plant:          repository.NewPlantRepository(db),
		identification: repository.NewIdentificationRepository(db),
		quiz:           repository.NewQuizRepository(db),
	}

	if cfg.Quiz.ActiveStore == config.ActiveStoreRedis && rdb != nil {
		ttl := time.Duration(cfg.Quiz.ActiveTTLMinutes) * time.Minute
		repos.activeQuiz = repository.NewRedisActiveQuizStore(rdb, ttl)
	} else {
		repos.activeQuiz = repository.NewGormActiveQuizStore(db)
	}
	return repos
}

func (a *App) initServices(repos *repositories, cfg *config.Config, ai service.AIGateway, archive service.ImageArchive) *services {
	tokens := service.NewTokenService(cfg.JWT)
	return &services{
		auth:           service.NewAuthService(repos.user, tokens),
		plant:          service.NewPlantService(repos.plant),
		identification: service.NewIdentificationService(repos.identification, ai, archive, cfg.Quiz),
		quiz:           service.NewQuizService(repos.quiz, repos.activeQuiz, ai, cfg.Quiz),
	}
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		plant:    controller.NewPlantController(s.plant),
		identify: controller.NewIdentifyController(s.identification),
		quiz:     controller.NewQuizController(s.quiz),
		health:   controller.NewHealthController(a.DB, a.Redis),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	a.origins = security.NewOriginPolicy(cfg.CORS.AllowedOrigins)
	a.limiter = security.NewIPRateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)

	router.Use(security.CORS(a.origins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.limiter))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware(otel.GetTracerProvider()))
	}

	router.Use(monitoring.MetricsMiddleware())

	// CORS 白名单和限流参数支持热更新
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		a.origins.Update(newCfg.CORS.AllowedOrigins)
		a.limiter.Update(newCfg.RateLimit.MaxRequests, time.Duration(newCfg.RateLimit.WindowMinutes)*time.Minute)
	})
}

// New wires an App around already opened resources. rdb may be nil.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, ai service.AIGateway, archive service.ImageArchive) *App {
	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		closeAI: func() error { return nil },
		stop:    make(chan struct{}),
	}

	repos := app.initRepositories(db, rdb, cfg)
	app.services = app.initServices(repos, cfg, ai, archive)
	ctrls := app.initControllers(app.services)

	monitoring.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode != gin.ReleaseMode {
		router.Use(gin.Logger())
	}
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls)

	// 本地归档的图片只对上传者本人开放
	if archive != nil && (cfg.Storage.Type == "" || cfg.Storage.Type == util.StorageLocal) {
		ctrls.identify.UploadRoot = cfg.Storage.LocalPath
		uploads := router.Group("/uploads")
		uploads.Use(middleware.AuthMiddleware(app.services.auth))
		uploads.GET("/*filepath", ctrls.identify.ServeUpload)
	}

	return app
}

// NewApp opens every external resource named by cfg and returns a ready App.
func NewApp(cfg *config.Config) (*App, error) {
	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			database.Close(db)
			return nil, err
		}
	}

	ai, closeAI, err := service.NewAIGateway(context.Background(), cfg.AI)
	if err != nil {
		database.Close(db)
		if rdb != nil {
			rdb.Close()
		}
		return nil, err
	}

	archive, err := service.NewImageArchive(&cfg.Storage)
	if err != nil {
		logger.Log.Warn("Image archive disabled", zap.Error(err))
		archive = nil
	}

	app := New(cfg, db, rdb, ai, archive)
	app.closeAI = closeAI

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := app.services.plant.SeedIfEmpty(ctx); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// Close releases everything NewApp acquired.
func (a *App) Close() {
	select {
	case <-a.stop:
	default:
		close(a.stop)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if err := a.closeAI(); err != nil {
		logger.Log.Error("Failed to close AI client", zap.Error(err))
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
	if err := database.Close(a.DB); err != nil {
		logger.Log.Error("Failed to close database", zap.Error(err))
	}
}

func (a *App) startBackgroundTasks(configDir string) {
	go a.limiter.Run(a.stop)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-a.stop
		cancel()
	}()
	go func() {
		if err := configwatcher.WatchConfig(ctx, configDir, a.applyConfig); err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		}
	}()
}

func (a *App) Run(configDir string) {
	defer a.Close()

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	a.startBackgroundTasks(configDir)

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("Server exiting")
}
