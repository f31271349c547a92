package mockapi

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"agriproxy/config"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

const shutdownTimeout = 10 * time.Second

// ServerParams collects the server dependencies.
type ServerParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	RouterParams RouterParams
}

// Server is the local mock backend over echo.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer assembles the echo application.
func NewServer(params ServerParams) (*Server, error) {
	if params.Config.MockAPI == nil {
		return nil, errors.New("mockApi config section is missing")
	}

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Validator = newRequestValidator()
	echoServer.Use(middleware.Recover())
	echoServer.Use(middleware.CORS())

	NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	srv := &Server{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Handler exposes the assembled echo instance. Integration tests mount it
// on an httptest server instead of a real port.
func (s *Server) Handler() *echo.Echo {
	return s.server
}

// Serve blocks serving the configured port.
func (s *Server) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.MockAPI.Port))
	s.logger.Info("Starting mock API server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve mock API")
	}

	return nil
}

func (s *Server) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down mock API server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
