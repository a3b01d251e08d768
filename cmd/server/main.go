package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/kdimtricp/repcheck/internal/analysis"
	"github.com/kdimtricp/repcheck/internal/api"
	"github.com/kdimtricp/repcheck/internal/config"
	"github.com/kdimtricp/repcheck/internal/database"
	"github.com/kdimtricp/repcheck/internal/session"
	"github.com/kdimtricp/repcheck/internal/storage"
	"github.com/kdimtricp/repcheck/web"
)

var (
	configPath string
	portFlag   string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "repcheck",
	Short: "RepCheck exercise video scoring server",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if portFlag != "" {
			cfg.Server.Port = portFlag
		}

		logger, err = newLogger(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the fixture tables and seed mock records",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.NewDB(dbConfig(cfg.Database))
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		logger.Info("fixtures ready", zap.String("type", db.Type()))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVarP(&portFlag, "port", "p", "", "listen port (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newLogger(c config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

func dbConfig(c config.DatabaseConfig) database.Config {
	return database.Config{
		Type:       c.Type,
		Host:       c.Host,
		Port:       c.Port,
		User:       c.User,
		Password:   c.Password,
		Name:       c.Name,
		SQLitePath: c.SQLitePath,
	}
}

func serve(ctx context.Context) error {
	localStorage, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	db, err := database.NewDB(dbConfig(cfg.Database))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	templates, err := web.Load()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	app := &api.App{
		Storage:       localStorage,
		DB:            db,
		ResultRepo:    database.NewResultRepository(db),
		ReviewRepo:    database.NewReviewRepository(db),
		Sessions:      session.NewStore(),
		Templates:     templates,
		Logger:        logger,
		MaxUploadSize: cfg.Server.MaxUploadSize,
		Analysis: analysis.Config{
			TickInterval:    cfg.Analysis.TickInterval,
			CompletionDelay: cfg.Analysis.CompletionDelay,
		},
		PreviewTTL: cfg.Storage.PreviewTTL,
	}

	g, gctx := errgroup.WithContext(ctx)

	// Request contexts derive from gctx so open analysis streams end on
	// shutdown instead of holding it up.
	srv := &http.Server{
		Addr:        ":" + cfg.Server.Port,
		Handler:     api.NewRouter(app),
		BaseContext: func(net.Listener) context.Context { return gctx },
	}

	logger.Info("server starting",
		zap.String("port", cfg.Server.Port),
		zap.String("upload_dir", cfg.Storage.UploadDir),
		zap.String("db_type", cfg.Database.Type),
		zap.Int64("max_upload_size", cfg.Server.MaxUploadSize),
		zap.Duration("tick_interval", cfg.Analysis.TickInterval))

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return app.RunJanitor(gctx, max(cfg.Storage.PreviewTTL/4, time.Second))
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
