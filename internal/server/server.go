package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/shivendra100/devops-jokes-dispenser/internal/jokes"
)

// DefaultAddress binds every interface on port 5000.
const DefaultAddress = "0.0.0.0:5000"

type ServerOptions struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Logger          *slog.Logger
}

type Server struct {
	echo   *echo.Echo
	picker *jokes.Picker
	logger *slog.Logger
	opts   ServerOptions
}

// NewServer builds a server around picker. Nothing listens until Start.
func NewServer(picker *jokes.Picker, opts ServerOptions) *Server {
	if picker == nil {
		panic("server.NewServer: picker is nil")
	}
	if opts.Addr == "" {
		opts.Addr = DefaultAddress
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 5 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = 60 * time.Second
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = opts.ReadTimeout
	e.Server.WriteTimeout = opts.WriteTimeout
	e.Server.IdleTimeout = opts.IdleTimeout

	s := &Server{
		echo:   e,
		picker: picker,
		logger: opts.Logger,
		opts:   opts,
	}

	e.Use(middleware.Recover())
	e.Use(s.requestLogger())
	e.Use(allowAnyOrigin)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	e.GET("/api/joke", s.handleJoke)
	e.GET("/healthz", s.handleHealthz)

	return s
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Addr returns the bound listener address, or nil before Start has bound.
func (s *Server) Addr() net.Addr {
	return s.echo.ListenerAddr()
}

// Start serves in a background goroutine. The returned channel receives the
// error if serving ends for any reason other than Stop, and is closed once
// serving has ended.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		s.logger.Info("server.listening", "addr", s.opts.Addr)
		if err := s.echo.Start(s.opts.Addr); !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server.failed", "addr", s.opts.Addr, "error", err)
			errCh <- err
		}
	}()
	return errCh
}

// Stop gracefully shuts down the server, waiting up to ShutdownTimeout.
func (s *Server) Stop(ctx context.Context) error {
	if s.opts.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.ShutdownTimeout)
		defer cancel()
	}
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleJoke(c echo.Context) error {
	return c.JSON(http.StatusOK, JokeResponse{Joke: s.picker.Pick()})
}

func (s *Server) handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// allowAnyOrigin sets the wildcard origin even when the request carries no
// Origin header; the CORS middleware only answers browsers that send one.
func allowAnyOrigin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")
		return next(c)
	}
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
			}
			if v.Error != nil {
				s.logger.Warn("http.request", append(attrs, "error", v.Error.Error())...)
				return nil
			}
			s.logger.Info("http.request", attrs...)
			return nil
		},
	})
}
