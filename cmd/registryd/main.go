package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	registry "pkg.world.dev/world-registry"
	"pkg.world.dev/world-registry/server"
	redisstorage "pkg.world.dev/world-registry/storage/redis"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("registryd exited with error")
	}
}

func run() error {
	cfg := registry.GetConfig()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	store := redisstorage.NewStorage(redisstorage.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
	}, cfg.Namespace)

	reg := registry.New(&store).WithLogger(logger)
	defer func() {
		if err := reg.Close(); err != nil {
			logger.Err(err).Msg("failed to close storage")
		}
	}()

	srv, err := server.New(reg, cfg.Port)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return srv.Serve(ctx)
	})
	return group.Wait()
}
