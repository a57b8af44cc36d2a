package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/denik/internal/collaborator"
	"github.com/nfrund/denik/internal/config"
	"github.com/nfrund/denik/internal/diagnostics"
	"github.com/nfrund/denik/internal/handlers"
	"github.com/nfrund/denik/internal/middleware"
	"github.com/nfrund/denik/internal/pubsub"
	"github.com/nfrund/denik/internal/rendering"
	"github.com/nfrund/denik/internal/theme"
	"github.com/nfrund/denik/web"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// StaticDir is where disk-served assets live, relative to the working directory.
const StaticDir = "web/static"

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider

	injector     *do.RootScope
	bus          *pubsub.WatermillBridge
	stopRelay    context.CancelFunc
	closeBackend collaborator.Closer
}

// backend pairs the configured collaborators with their cleanup.
type backend struct {
	collaborator.Backend
	close collaborator.Closer
}

// New wires the application. ctx bounds the backend connection. The
// diagnostics relay outlives ctx and runs until Close, so requests still
// draining during shutdown get their attempts logged.
func New(ctx context.Context, cfg config.Provider, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	i := do.New()
	do.ProvideValue(i, cfg)
	do.ProvideValue(i, logger)
	do.ProvideValue(i, theme.Default())
	do.Provide(i, func(do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})
	do.Provide(i, func(i do.Injector) (diagnostics.Sink, error) {
		bus := do.MustInvoke[*pubsub.WatermillBridge](i)
		return diagnostics.NewBusSink(bus, cfg.GetDiagnosticsTopic()), nil
	})
	do.Provide(i, func(do.Injector) (*backend, error) {
		b, closer, err := collaborator.NewFromConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &backend{Backend: b, close: closer}, nil
	})
	do.Provide(i, func(i do.Injector) (*handlers.AuthHandler, error) {
		sink := do.MustInvoke[diagnostics.Sink](i)
		b, err := do.Invoke[*backend](i)
		if err != nil {
			return nil, err
		}
		if b.Backend == nil {
			return handlers.NewAuthHandler(sink, nil, nil, cfg.GetAppLocale()), nil
		}
		return handlers.NewAuthHandler(sink, b.Backend, b.Backend, cfg.GetAppLocale()), nil
	})
	do.Provide(i, func(do.Injector) (*handlers.HomeHandler, error) {
		return handlers.NewHomeHandler(cfg.GetAppLocale()), nil
	})
	do.Provide(i, func(i do.Injector) (*handlers.ThemeHandler, error) {
		return handlers.NewThemeHandler(do.MustInvoke[theme.Theme](i)), nil
	})

	b, err := do.Invoke[*backend](i)
	if err != nil {
		return nil, fmt.Errorf("failed to set up auth backend: %w", err)
	}
	bus := do.MustInvoke[*pubsub.WatermillBridge](i)

	// Attempts go out on the bus; the relay writes them to the log.
	relayCtx, stopRelay := context.WithCancel(context.WithoutCancel(ctx))
	if err := diagnostics.Relay(relayCtx, bus, cfg.GetDiagnosticsTopic(), diagnostics.NewLogSink(logger)); err != nil {
		stopRelay()
		_ = b.close(ctx)
		return nil, fmt.Errorf("failed to start diagnostics relay: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = rendering.New()
	e.Validator = handlers.NewValidator()

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger(logger))
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	static, err := StaticFS(cfg.GetStaticSource())
	if err != nil {
		stopRelay()
		_ = b.close(ctx)
		return nil, err
	}
	e.StaticFS("/static", static)

	s := &Server{
		E:            e,
		Cfg:          cfg,
		injector:     i,
		bus:          bus,
		stopRelay:    stopRelay,
		closeBackend: b.close,
	}
	s.RegisterRoutes()
	return s, nil
}

// StaticFS returns the asset filesystem for source: the embedded copy or
// the files under StaticDir.
func StaticFS(source string) (fs.FS, error) {
	var afs afero.Fs
	switch source {
	case config.StaticDisk:
		afs = afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), StaticDir))
	case config.StaticEmbed, "":
		sub, err := fs.Sub(web.FS, "static")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded assets: %w", err)
		}
		afs = afero.FromIOFS{FS: sub}
	default:
		return nil, fmt.Errorf("unknown static source %q", source)
	}
	return afero.NewIOFS(afs), nil
}

// Close releases the bus and the backend connection.
func (s *Server) Close(ctx context.Context) error {
	err := s.bus.Close()
	s.stopRelay()
	return errors.Join(err, s.closeBackend(ctx))
}
