package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/clientpulse/dashboard/internal/api/handler"
	"github.com/clientpulse/dashboard/internal/core/ports"
	"github.com/clientpulse/dashboard/internal/infrastructure/db/memory"
	mongodb "github.com/clientpulse/dashboard/internal/infrastructure/db/mongo"
	"github.com/clientpulse/dashboard/internal/infrastructure/seed"
	"github.com/clientpulse/dashboard/internal/pkg/config"
)

// clientSource is a repository that can also report connectivity.
type clientSource interface {
	ports.ClientRepository
	handler.Pinger
}

// openSource returns the configured client repository and a function that
// releases it.
func openSource(ctx context.Context, c *config.Config, log zerolog.Logger) (clientSource, func(context.Context) error, error) {
	switch c.DataSource {
	case config.SourceMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: c.Mongo.URI, Database: c.Mongo.Database})
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongo: %w", err)
		}
		repo := mongodb.NewClientRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("could not ensure client indexes")
		}
		log.Info().Str("database", c.Mongo.Database).Msg("reading clients from mongo")
		return repo, client.Disconnect, nil
	default:
		clients := seed.Clients(time.Now())
		log.Info().Int("clients", len(clients)).Msg("serving static sample data")
		return memory.NewClientRepository(clients), func(context.Context) error { return nil }, nil
	}
}
