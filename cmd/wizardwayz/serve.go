package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wizardwayz/portal/handler"
	"github.com/wizardwayz/portal/modules/pillars"
	"github.com/wizardwayz/portal/pkg/accesslog"
	"github.com/wizardwayz/portal/pkg/clientip"
	"github.com/wizardwayz/portal/pkg/config"
	"github.com/wizardwayz/portal/pkg/httpserver"
	"github.com/wizardwayz/portal/pkg/logger"
	"github.com/wizardwayz/portal/pkg/pillar"
	"github.com/wizardwayz/portal/pkg/requestid"
	"github.com/wizardwayz/portal/web"
)

func runServe(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	cfg.Env = cfg.Env.Normalize()

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "wizardwayz"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	router, err := newRouter(cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to build router", logger.Error(err))
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}

func newRouter(cfg appConfig, log *slog.Logger) (http.Handler, error) {
	registry, err := loadRegistry(cfg)
	if err != nil {
		return nil, err
	}

	renderer, err := web.New(web.Options{AppName: cfg.Name, DatastarURL: cfg.DatastarURL})
	if err != nil {
		return nil, err
	}

	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage: renderer.ErrorPage,
		ReturnURL: cfg.Pillars.ReturnURL,
	})

	svc := pillars.NewService(
		cfg.Pillars,
		registry,
		pillar.NewSelector(nil),
		renderer.Views(),
		errorHandler,
		log,
	)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(cfg.TrustProxy),
		accesslog.Middleware(log, "/healthz"),
		middleware.Recoverer,
	)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Handle("/static/*", web.Static())
	r.Mount("/", svc.Handle())

	log.Info("router ready",
		slog.Int("pillars", len(registry.All())),
		slog.String("env", string(cfg.Env)),
	)
	return r, nil
}
