package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/LibraryBooker/internal/cache"
	"github.com/stpnv0/LibraryBooker/internal/config"
	"github.com/stpnv0/LibraryBooker/internal/handler"
	"github.com/stpnv0/LibraryBooker/internal/middleware"
	"github.com/stpnv0/LibraryBooker/internal/notification"
	"github.com/stpnv0/LibraryBooker/internal/repository"
	"github.com/stpnv0/LibraryBooker/internal/repository/memory"
	"github.com/stpnv0/LibraryBooker/internal/router"
	"github.com/stpnv0/LibraryBooker/internal/scheduler"
	"github.com/stpnv0/LibraryBooker/internal/service"
	"github.com/stpnv0/LibraryBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg          *config.Config
	log          logger.Logger
	db           *dbpg.DB
	redis        *redis.Client
	httpServer   *http.Server
	scheduler    *scheduler.Scheduler
	reservations *service.ReservationService
}

type stores struct {
	books  ports.BookRepo
	users  ports.UserRepo
	ledger ports.LedgerStore
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"LibraryBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	st, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(st); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (stores, error) {
	if a.cfg.Storage.Driver == config.StorageMemory {
		a.log.Warn("using in-memory storage, data is lost on restart")
		m := memory.New()
		return stores{books: m.Books(), users: m.Users(), ledger: m.Ledger()}, nil
	}

	if err := a.runMigrations(); err != nil {
		return stores{}, fmt.Errorf("migrations: %w", err)
	}
	if err := a.initDB(); err != nil {
		return stores{}, fmt.Errorf("init db: %w", err)
	}

	return stores{
		books:  repository.NewBookRepo(a.db),
		users:  repository.NewUserRepo(a.db),
		ledger: repository.NewLedgerRepo(a.db),
	}, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initCache() ports.BookCache {
	if a.cfg.Redis.Addr == "" {
		a.log.Info("redis address is empty, book cache disabled")
		return cache.Noop{}
	}

	a.redis = redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := a.redis.Ping(context.Background()).Err(); err != nil {
		a.log.Warn("redis is unreachable, cache reads will miss",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
	}

	return cache.NewBookCache(a.redis, a.cfg.Redis.TTL, a.log)
}

func (a *App) initServices(st stores) error {
	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	bookCache := a.initCache()

	bookService := service.NewBookService(st.books, bookCache)
	userService := service.NewUserService(st.users)
	a.reservations = service.NewReservationService(
		st.ledger, bookCache, n, a.log,
		service.WithLegacyAdminOverwrite(a.cfg.Ledger.LegacyAdminOverwrite),
	)
	if a.cfg.Ledger.LegacyAdminOverwrite {
		a.log.Warn("legacy admin overwrite enabled, admin status changes bypass the transition table")
	}

	if a.cfg.Scheduler.Enabled {
		a.scheduler = scheduler.New(
			a.reservations,
			a.cfg.Scheduler.Interval,
			a.log,
		)
	}

	h := handler.NewHandler(bookService, userService, a.reservations)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth([]byte(a.cfg.Auth.JWTSecret)),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.reservations.Wait()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "pending notifications flushed")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
