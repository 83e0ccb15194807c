package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"

	registry "pkg.world.dev/world-registry"
	"pkg.world.dev/world-registry/server/handler"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	app  *fiber.App
	port string
}

// New returns an HTTP server exposing the registry operations.
func New(r *registry.Registry, port string) (*Server, error) {
	if r == nil {
		return nil, eris.New("server requires a non-nil registry")
	}

	app := fiber.New(fiber.Config{
		Network:               "tcp",
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
	})

	s := &Server{
		app:  app,
		port: port,
	}
	s.setupRoutes(r)

	return s, nil
}

func (s *Server) setupRoutes(r *registry.Registry) {
	s.app.Get("/health", handler.GetHealth())
	s.app.Get("/world", handler.GetWorld(r))
	s.app.Post("/genesis", handler.PostGenesis(r))
	s.app.Post("/entity/spawn", handler.PostSpawn(r))
	s.app.Post("/entity/despawn", handler.PostDespawn(r))
	s.app.Post("/system", handler.PostSystem(r))
	s.app.Delete("/system", handler.DeleteSystem(r))
}

// Serve serves the application, blocking the calling goroutine until the
// context is canceled or the listener fails.
func (s *Server) Serve(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		log.Info().Msgf("starting HTTP server at port %s", s.port)
		if err := s.app.Listen(":" + s.port); err != nil {
			serverErr <- eris.Wrap(err, "error starting http server")
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		return eris.Wrap(s.app.ShutdownWithTimeout(shutdownTimeout), "error shutting down server")
	}
}

// App exposes the underlying fiber app so tests can dispatch requests
// without a listener.
func (s *Server) App() *fiber.App {
	return s.app
}
