package main

import (
	"context"
	"database/sql"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"eduaventuras/internal/api"
	"eduaventuras/internal/cache"
	"eduaventuras/internal/config"
	"eduaventuras/internal/database"
	"eduaventuras/internal/entity"
	"eduaventuras/internal/handler"
	"eduaventuras/internal/i18n"
	"eduaventuras/internal/logger"
	"eduaventuras/internal/middleware"
	"eduaventuras/internal/session"
	"eduaventuras/internal/validation"
	"eduaventuras/internal/view"
)

const (
	shutdownTimeout = 10 * time.Second
	cleanupInterval = time.Hour
)

func newServeCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFile)
			if err != nil {
				return err
			}
			log := logger.New(cfg.Log.Level, cfg.Log.Format)
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	backend, db, err := sessionBackend(cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
		go backend.(*session.PGStore).Cleanup(ctx, cleanupInterval, log)
	}

	materias, usuarios, err := snapshots(ctx, cfg, log)
	if err != nil {
		return err
	}

	client := api.New(cfg.API.BaseURL, cfg.API.Timeout, log)
	bundle := i18n.NewBundle(log)
	languages := i18n.Languages
	if cfg.I18n.Remote {
		for _, l := range i18n.Languages {
			// failures are logged by the bundle; the built-in table stays
			_ = bundle.Refresh(ctx, client, l.Code)
		}
		languages = bundle.Available(ctx, client)
	}

	renderer, err := view.New(log)
	if err != nil {
		return err
	}
	validator, err := validation.New()
	if err != nil {
		return err
	}

	router, err := handler.NewRouter(&handler.Deps{
		API:            client,
		View:           renderer,
		I18n:           bundle,
		Validator:      validator,
		Guard:          middleware.NewGuard(log),
		Sessions:       session.NewStore(backend, cfg.Session.MaxAge, log),
		Materias:       materias,
		Usuarios:       usuarios,
		Languages:      languages,
		RemoteMessages: cfg.I18n.Remote,
		Log:            log,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"address": cfg.Server.Address, "api": cfg.API.BaseURL}).Info("server started")
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server stopped")
		}
		return nil
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("could not stop server gracefully")
		return server.Close()
	}
	return nil
}

// sessionBackend picks where session values live. The database is only returned for the
// postgres backend.
func sessionBackend(cfg *config.Config, log *logrus.Logger) (sessions.Store, *sql.DB, error) {
	if cfg.Session.Secret == "" {
		log.Warn("session.secret is empty: sessions will not survive a restart")
	}
	switch cfg.Session.Backend {
	case "", "cookie":
		store, err := session.NewCookieBackend(cfg.Session.Secret, cfg.Session.MaxAge, cfg.Session.Secure)
		return store, nil, err
	case "postgres":
		db, err := database.Open(cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		hashKey, blockKey, err := session.DeriveKeys(cfg.Session.Secret)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		store := session.NewPGStore(db, cfg.Session.Secure, hashKey, blockKey)
		return store, db, nil
	default:
		return nil, nil, errors.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

// snapshots keeps the admin listings in redis when configured, in memory otherwise.
func snapshots(ctx context.Context, cfg *config.Config, log *logrus.Logger) (cache.Snapshots[entity.Materia], cache.Snapshots[entity.Usuario], error) {
	if cfg.Cache.RedisAddr == "" {
		return cache.NewMemory[entity.Materia](cfg.Cache.TTL), cache.NewMemory[entity.Usuario](cfg.Cache.TTL), nil
	}
	rc, err := cache.NewRedisClient(ctx, cfg.Cache.RedisAddr)
	if err != nil {
		return nil, nil, err
	}
	log.WithField("addr", cfg.Cache.RedisAddr).Info("listing snapshots kept in redis")
	return cache.NewRedis[entity.Materia](rc, cfg.Cache.TTL), cache.NewRedis[entity.Usuario](rc, cfg.Cache.TTL), nil
}
