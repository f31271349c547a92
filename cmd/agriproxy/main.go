package main

import (
	"context"
	"log/slog"

	"agriproxy/config"
	"agriproxy/internal/domain/repository"
	"agriproxy/internal/domain/service"
	"agriproxy/internal/infra/api"
	"agriproxy/internal/infra/i18n"
	logs "agriproxy/internal/infra/log"
	"agriproxy/internal/infra/persistence/sqlite"
	"agriproxy/internal/usecase"
	"agriproxy/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			restoreOnStart,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
		api.NewTokenStore,
		api.NewClient,
		i18n.NewBundle,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewSessionRepository,
			sqlite.NewPreferenceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			api.NewAuthGateway,
			api.NewProfileGateway,
			api.NewSoilLab,
			api.NewDiseaseDetector,
			func(tokens *api.TokenStore) service.TokenCache { return tokens },
			func(client *api.Client) service.UnauthorizedNotifier { return client },
			func(bundle *i18n.Bundle) service.Translator { return bundle },
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAppStateService,
			impl.NewSessionService,
			impl.NewCropCareService,
			newLocalizationUsecase,
		),
	)
}

func newLocalizationUsecase(
	preferences repository.PreferenceRepository,
	translator service.Translator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LocalizationUsecase {
	return impl.NewLocalizationService(preferences, translator, cfg.Localization.DefaultLanguage, logger)
}

type restoreParams struct {
	fx.In
	fx.Lifecycle

	Logger       *slog.Logger
	Session      usecase.SessionUsecase
	Localization usecase.LocalizationUsecase
}

// restoreOnStart brings the durable state back before anything uses the
// stores: the language selection first, then the persisted session.
func restoreOnStart(params restoreParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Localization.Restore(ctx); err != nil {
				params.Logger.Warn("Failed to restore language selection", slog.Any("error", err))
			}

			user, err := params.Session.Restore(ctx)
			if err != nil {
				params.Logger.Warn("Failed to restore session", slog.Any("error", err))

				return nil
			}
			if user != nil {
				params.Logger.Info("Session active", slog.String("userID", user.ID))
			}

			return nil
		},
	})
}
