package main

import (
	"context"
	"log/slog"
	"os"

	"agriproxy/config"
	"agriproxy/internal/infra/auth"
	logs "agriproxy/internal/infra/log"
	"agriproxy/internal/mockapi"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mockapi.NewUserStore,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			mockapi.NewAuthHandler,
			mockapi.NewProfileHandler,
			mockapi.NewCropHandler,
			mockapi.NewAuthMiddleware,
			mockapi.NewServer,
		),
	)
}

func startServer(ctx context.Context, server *mockapi.Server) {
	go func() {
		if err := server.Serve(ctx); err != nil {
			slog.Error("Failed to start mock API server", slog.Any("error", err))
			os.Exit(1)
		}
	}()
}
