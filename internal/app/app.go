package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/jakpabi/churchbase/internal/config"
	"github.com/jakpabi/churchbase/internal/domain"
	"github.com/jakpabi/churchbase/internal/middleware"
	"github.com/jakpabi/churchbase/internal/module/auth"
	"github.com/jakpabi/churchbase/internal/module/driver"
	"github.com/jakpabi/churchbase/internal/module/group"
	"github.com/jakpabi/churchbase/internal/module/member"
	"github.com/jakpabi/churchbase/internal/module/transaction"
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine     *gin.Engine
	db         *gorm.DB
	logger     *logger.Logger
	cfg        *config.Config
	jwtService jwt.Service
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

var newJWTService = func(secret string) (jwt.Service, error) {
	return jwt.New(secret)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, database, the repository engine per entity, services,
// handlers, middleware, and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 may expose debug behavior and permissive CORS")
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	// 2. Setup database with pool configuration.
	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	// 3. AutoMigrate in debug mode only.
	if cfg.Server.Mode == gin.DebugMode {
		if err := db.AutoMigrate(
			&domain.Member{},
			&domain.Group{},
			&domain.Driver{},
			&domain.Transaction{},
			&domain.Role{},
			&domain.User{},
		); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed")
	}

	// 4. Manual dependency injection per module: repository → service → handler.
	memberRepo, err := member.NewRepository(db)
	if err != nil {
		return nil, fmt.Errorf("member repository: %w", err)
	}
	groupRepo, err := group.NewRepository(db)
	if err != nil {
		return nil, fmt.Errorf("group repository: %w", err)
	}
	driverRepo, err := driver.NewRepository(db)
	if err != nil {
		return nil, fmt.Errorf("driver repository: %w", err)
	}
	transactionRepo, err := transaction.NewRepository(db)
	if err != nil {
		return nil, fmt.Errorf("transaction repository: %w", err)
	}

	modules := []Module{
		member.NewModule(member.NewHandler(member.NewService(memberRepo))),
		group.NewModule(group.NewHandler(group.NewService(groupRepo))),
		driver.NewModule(driver.NewHandler(driver.NewService(driverRepo))),
		transaction.NewModule(transaction.NewHandler(transaction.NewService(transactionRepo))),
	}

	// 5. Auth wiring when enabled: jwt service + auth module + API token gate.
	var jwtService jwt.Service
	var authMiddleware gin.HandlerFunc
	if cfg.Auth.Enabled {
		jwtService, err = newJWTService(cfg.Auth.JWTSecret)
		if err != nil {
			return nil, fmt.Errorf("setup jwt service: %w", err)
		}
		defer func() {
			if success {
				return
			}
			jwtService.Close()
		}()

		tokenExpiry, err := time.ParseDuration(cfg.Auth.TokenExpiry)
		if err != nil {
			return nil, fmt.Errorf("invalid auth.token_expiry %q: %w", cfg.Auth.TokenExpiry, err)
		}

		userRepo, err := auth.NewUserRepository(db)
		if err != nil {
			return nil, fmt.Errorf("user repository: %w", err)
		}
		roleRepo, err := auth.NewRoleRepository(db)
		if err != nil {
			return nil, fmt.Errorf("role repository: %w", err)
		}

		authSvc := auth.NewService(jwtService, userRepo, roleRepo, tokenExpiry)
		modules = append(modules, auth.NewModule(auth.NewHandler(authSvc)))
		authMiddleware = middleware.Auth(jwtService, cfg.Auth.PublicPaths)
	}

	// 6. Create Gin engine with custom middleware (not gin.Default()).
	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	// Build CORS config from application settings.
	// In release mode, when no allowlist is configured, default to deny cross-origin requests.
	corsConfig := resolveCORSConfig(cfg.Server.Mode, cfg.Server.CORS.AllowOrigins)

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
		middleware.Tenant(middleware.TenantConfig{
			Header:  cfg.Tenant.Header,
			Default: cfg.Tenant.Default,
			Allowed: cfg.Tenant.Allowed,
		}),
	)

	// 7. Register all routes.
	if err := RegisterRoutes(engine, &RouteDeps{
		Modules:        modules,
		DB:             db,
		AuthMiddleware: authMiddleware,
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine:     engine,
		db:         db,
		logger:     log,
		cfg:        cfg,
		jwtService: jwtService,
	}, nil
}

func resolveCORSConfig(mode string, configuredAllowOrigins []string) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(configuredAllowOrigins) > 0 {
		corsConfig.AllowOrigins = configuredAllowOrigins
		return corsConfig
	}

	if mode == gin.ReleaseMode {
		corsConfig.AllowOrigins = []string{}
	}

	return corsConfig
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout and closes the
// database connection and jwt service.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		a.logInfo("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
		a.logInfo("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		// Graceful shutdown with 5-second deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logError("server shutdown error", slog.Any("error", err))
		}
	}

	if a.jwtService != nil {
		a.jwtService.Close()
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.logError("database close error", slog.Any("error", err))
			} else {
				a.logInfo("database connection closed")
			}
		}
	}

	a.logInfo("server stopped")
	if a.logger != nil {
		if err := a.logger.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}

	return runErr
}

func (a *App) logInfo(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Info(msg, args...)
		return
	}
	slog.Info(msg, args...)
}

func (a *App) logError(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Error(msg, args...)
		return
	}
	slog.Error(msg, args...)
}
