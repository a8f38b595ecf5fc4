//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/matsols/matsols-api/internal/config"
	"github.com/matsols/matsols-api/internal/domain/advisor"
	"github.com/matsols/matsols-api/internal/domain/chat"
	"github.com/matsols/matsols-api/internal/domain/degree"
	"github.com/matsols/matsols-api/internal/domain/lead"
	"github.com/matsols/matsols-api/internal/domain/update"
	"github.com/matsols/matsols-api/internal/domain/user"
	"github.com/matsols/matsols-api/internal/infrastructure/auth"
	"github.com/matsols/matsols-api/internal/infrastructure/database"
	"github.com/matsols/matsols-api/internal/infrastructure/logger"
	chatrepo "github.com/matsols/matsols-api/internal/infrastructure/repository/chat"
	degreerepo "github.com/matsols/matsols-api/internal/infrastructure/repository/degree"
	leadrepo "github.com/matsols/matsols-api/internal/infrastructure/repository/lead"
	updaterepo "github.com/matsols/matsols-api/internal/infrastructure/repository/update"
	userrepo "github.com/matsols/matsols-api/internal/infrastructure/repository/user"
	"github.com/matsols/matsols-api/internal/infrastructure/retention"
	"github.com/matsols/matsols-api/internal/infrastructure/telemetry"
	"github.com/matsols/matsols-api/internal/interfaces/httpserver"
	"github.com/matsols/matsols-api/internal/interfaces/httpserver/handlers"
)

var repositorySet = wire.NewSet(
	degreerepo.NewDegreeRepository,
	wire.Bind(new(degree.Repository), new(*degreerepo.DegreeRepository)),
	chatrepo.NewChatRepository,
	wire.Bind(new(chat.Repository), new(*chatrepo.ChatRepository)),
	leadrepo.NewLeadRepository,
	wire.Bind(new(lead.Repository), new(*leadrepo.LeadRepository)),
	updaterepo.NewUpdateRepository,
	wire.Bind(new(update.Repository), new(*updaterepo.UpdateRepository)),
	userrepo.NewUserRepository,
	wire.Bind(new(user.Repository), new(*userrepo.UserRepository)),
)

var serviceSet = wire.NewSet(
	degree.NewService,
	chat.NewService,
	wire.Bind(new(advisor.ConversationStore), new(*chat.Service)),
	wire.Bind(new(handlers.TranscriptReader), new(*chat.Service)),
	wire.Bind(new(retention.Pruner), new(*chat.Service)),
	advisor.NewCatalogCorpus,
	wire.Bind(new(advisor.CorpusReader), new(*advisor.CatalogCorpus)),
	advisor.NewService,
	lead.NewService,
	update.NewService,
	newPasswordHasher,
	wire.Bind(new(user.PasswordHasher), new(*auth.BcryptHasher)),
	auth.NewTokenIssuer,
	wire.Bind(new(user.TokenIssuer), new(*auth.TokenIssuer)),
	user.NewService,
)

// BuildApplication assembles the API with Wire. main wires the same graph by
// hand so the binary does not depend on generated code.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		database.ConfigFrom,
		newGormDB,
		newRedisClient,
		newDegreeCache,
		newRetentionLocker,
		auth.NewValidator,
		repositorySet,
		serviceSet,
		handlers.NewProvider,
		httpserver.New,
		newScheduler,
		newRedactor,
		NewApplication,
	)
	return nil, nil
}

func newPasswordHasher() *auth.BcryptHasher {
	return auth.NewBcryptHasher(0)
}

func newRedactor(cfg *config.Config) *telemetry.Redactor {
	return telemetry.NewRedactor(telemetry.Mode(cfg.ChatLogPII), cfg.PIIHashSalt)
}

func newScheduler(cfg *config.Config, pruner retention.Pruner, locker retention.Locker, log zerolog.Logger) *retention.Scheduler {
	return retention.NewScheduler(pruner, locker, cfg.ChatRetention, cfg.ChatPruneSchedule, log)
}

