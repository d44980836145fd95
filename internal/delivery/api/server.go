package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"inkq/config"
	"inkq/internal/delivery"
	apimiddleware "inkq/internal/delivery/api/middleware"
	"inkq/internal/delivery/api/router"
	"inkq/internal/delivery/api/validator"
	"inkq/internal/delivery/middleware"
	"inkq/internal/domain/lifecycle"
	"inkq/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	ErrorHandler *apimiddleware.ErrorMiddleware
	RouterParams router.RouterParams
}

// httpServer serves the InkQ JSON API over h2c.
type httpServer struct {
	addr        string
	logger      *slog.Logger
	echo        *echo.Echo
	h2IdleLimit http2.Server
}

// NewServer builds the echo instance with the API routes and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	httpCfg := params.Cfg.HTTP

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = params.ErrorHandler.HandleHTTPError
	e.Validator = validator.New()

	e.Server.ReadTimeout = httpCfg.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = httpCfg.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = httpCfg.Timeouts.WriteTimeout
	e.Server.IdleTimeout = httpCfg.Timeouts.IdleTimeout

	// Order matters: request IDs must exist before the access log reads them.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		echomiddleware.CORSWithConfig(corsConfig(httpCfg.CORSOrigins)),
		echomiddleware.BodyLimit(httpCfg.MaxRequestBodySize),
	)

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &httpServer{
		addr:        net.JoinHostPort("0.0.0.0", strconv.Itoa(httpCfg.Port)),
		logger:      params.Logger,
		echo:        e,
		h2IdleLimit: http2.Server{IdleTimeout: httpCfg.Timeouts.IdleTimeout},
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

// corsConfig allows any origin by default. Listed origins may also send the session cookie.
func corsConfig(origins []string) echomiddleware.CORSConfig {
	cfg := echomiddleware.DefaultCORSConfig
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}

	return cfg
}

func (s *httpServer) Serve(_ context.Context) error {
	s.logger.Info("Starting API HTTP server", slog.String("host_port", s.addr))

	err := s.echo.StartH2CServer(s.addr, &s.h2IdleLimit)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
