package fx

import (
	"github.com/brandonyen/scout-gg/internal/config"
	"github.com/brandonyen/scout-gg/internal/database"
	"github.com/brandonyen/scout-gg/internal/logger"
	"github.com/brandonyen/scout-gg/internal/repository"
	"github.com/brandonyen/scout-gg/internal/riot"
	"github.com/brandonyen/scout-gg/internal/server"
	"github.com/brandonyen/scout-gg/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// ProvideGateway wires the riot client behind the match cache so the
// pipeline only ever sees the Gateway interface.
func ProvideGateway(client *riot.Client, cache *repository.MatchCacheRepository, log zerolog.Logger) service.Gateway {
	return riot.NewCachedGateway(client, cache, log)
}

func ProvideLookupStore(repo *repository.LookupRepository) service.LookupStore {
	return repo
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewLookupRepository),
	fx.Provide(repository.NewMatchCacheRepository),
	fx.Provide(ProvideLookupStore),
	// api client
	fx.Provide(riot.NewClient),
	fx.Provide(ProvideGateway),
	// svc
	fx.Provide(service.NewAggregationService),
	fx.Provide(service.NewLookupService),
	// server
	fx.Provide(server.New),
)
