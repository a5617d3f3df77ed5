package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/linkvaulthq/linkvault/modules/auth"
	"github.com/linkvaulthq/linkvault/pkg/config"
	"github.com/linkvaulthq/linkvault/pkg/email"
	"github.com/linkvaulthq/linkvault/pkg/httpserver"
	"github.com/linkvaulthq/linkvault/pkg/logger"
	"github.com/linkvaulthq/linkvault/pkg/pg"
	"github.com/linkvaulthq/linkvault/pkg/redis"
	authsvc "github.com/linkvaulthq/linkvault/svc/auth"
	"github.com/linkvaulthq/linkvault/svc/mail"
)

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"linkvault"`

	HTTP   httpserver.Config
	PG     pg.Config
	Redis  redis.Config
	Email  email.Config
	Mail   mail.Config
	Auth   authsvc.Config
	Google authsvc.GoogleOAuthConfig
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Environment, cfg.ServiceName))
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.PG, log); err != nil {
		return err
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	sender, err := newEmailSender(cfg, log)
	if err != nil {
		return err
	}
	dispatcher := mail.NewDispatcher(sender, cfg.Mail, mail.WithLogger(log))
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	sessions, err := authsvc.NewSessionManager(cfg.Auth.JWTSigningKey, cfg.Auth.SessionTTL)
	if err != nil {
		return err
	}

	redisStore := authsvc.NewRedisStore(redisClient)
	opts := []authsvc.Option{
		authsvc.WithLogger(log),
		authsvc.WithProfileCache(redisStore),
	}
	if cfg.Google.Enabled() {
		opts = append(opts, authsvc.WithGoogleFederation(
			authsvc.NewGoogleAdapter(cfg.Google), cfg.Google, redisStore))
	}
	svc := authsvc.NewService(cfg.Auth, authsvc.NewPostgresStorage(pool), sessions, dispatcher, opts...)

	authModule := auth.NewModule(svc,
		auth.WithLogger(log),
		auth.WithSecureCookie(cfg.Environment != "development"),
	)

	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Get("/health", httpserver.HealthCheckHandler(log,
		pg.Healthcheck(pool),
		redis.Healthcheck(redisClient),
	))
	router.Mount("/api/auth", authModule.Router())

	return httpserver.Run(ctx, router,
		httpserver.WithConfig(cfg.HTTP),
		httpserver.WithLogger(log),
	)
}

func newEmailSender(cfg appConfig, log *slog.Logger) (email.EmailSender, error) {
	if cfg.Email.PostmarkServerToken == "" && cfg.Environment == "development" {
		log.Warn("postmark is not configured, writing emails to ./tmp/emails")
		return email.NewDevSender("./tmp/emails"), nil
	}
	return email.NewPostmarkClient(cfg.Email)
}
