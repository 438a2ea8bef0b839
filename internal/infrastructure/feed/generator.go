// Package feed synthesizes the live-ops activity stream from the client list.
package feed

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clientpulse/dashboard/internal/core/domain"
	"github.com/clientpulse/dashboard/internal/core/ports"
)

const defaultInterval = 3 * time.Second

// ErrNoClients is returned when there is nobody to generate activity for.
var ErrNoClients = errors.New("no clients to generate events for")

// Enqueuer accepts generated events for asynchronous recording.
type Enqueuer interface {
	Enqueue(event domain.FeedEvent)
}

// Generator draws random events for random clients.
type Generator struct {
	repo     ports.ClientRepository
	sink     Enqueuer
	src      *rand.ChaCha8
	rng      *rand.Rand
	now      func() time.Time
	interval time.Duration
	log      zerolog.Logger
}

// Options tune a Generator. Zero values pick defaults.
type Options struct {
	Interval time.Duration
	Seed     [32]byte // zero seeds from the runtime source
	Now      func() time.Time
}

func NewGenerator(repo ports.ClientRepository, sink Enqueuer, opts Options, log zerolog.Logger) *Generator {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Seed == ([32]byte{}) {
		for i := 0; i < len(opts.Seed); i += 8 {
			v := rand.Uint64()
			for j := 0; j < 8; j++ {
				opts.Seed[i+j] = byte(v >> (8 * j))
			}
		}
	}

	src := rand.NewChaCha8(opts.Seed)
	return &Generator{
		repo:     repo,
		sink:     sink,
		src:      src,
		rng:      rand.New(src),
		now:      opts.Now,
		interval: opts.Interval,
		log:      log,
	}
}

// Run emits one event per interval until ctx is cancelled.
func (g *Generator) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	g.log.Info().Dur("interval", g.interval).Msg("feed generator started")
	for {
		select {
		case <-ctx.Done():
			g.log.Info().Msg("feed generator stopped")
			return nil
		case <-ticker.C:
			ev, err := g.Next(ctx)
			if err != nil {
				g.log.Warn().Err(err).Msg("feed generator skipped a tick")
				continue
			}
			g.sink.Enqueue(ev)
		}
	}
}

// Next builds a single event. It is not safe for concurrent use.
func (g *Generator) Next(ctx context.Context) (domain.FeedEvent, error) {
	clients, err := g.repo.List(ctx)
	if err != nil {
		return domain.FeedEvent{}, fmt.Errorf("generate feed event: %w", err)
	}
	if len(clients) == 0 {
		return domain.FeedEvent{}, ErrNoClients
	}

	c := clients[g.rng.IntN(len(clients))]
	types := eventTypesFor(c.Status)
	typ := types[g.rng.IntN(len(types))]

	id, err := uuid.NewRandomFromReader(g.src)
	if err != nil {
		return domain.FeedEvent{}, fmt.Errorf("generate feed event id: %w", err)
	}

	ev := domain.FeedEvent{
		ID:         id.String(),
		Type:       typ,
		ClientID:   c.ID,
		ClientName: c.Name,
		OccurredAt: g.now().UTC(),
	}

	switch typ {
	case domain.FeedJobCompleted:
		ev.Message = c.Name + " completed a job"
	case domain.FeedPaymentReceived:
		ev.Amount = math.Round((50+g.rng.Float64()*450)*100) / 100
		ev.Message = fmt.Sprintf("Payment of $%.2f received from %s", ev.Amount, c.Name)
	case domain.FeedFeatureUsed:
		ev.Message = c.Name + " used " + featureName(c, g.rng)
	case domain.FeedStaffLogin:
		ev.Message = staffName(c, g.rng) + " logged in at " + c.Name
	case domain.FeedTrialStarted:
		ev.Message = c.Name + " is exploring their trial"
	}
	return ev, nil
}

// eventTypesFor restricts billing events to the statuses they make sense for.
func eventTypesFor(status domain.SubscriptionStatus) []domain.FeedEventType {
	types := []domain.FeedEventType{domain.FeedJobCompleted, domain.FeedFeatureUsed, domain.FeedStaffLogin}
	switch status {
	case domain.StatusPaid:
		types = append(types, domain.FeedPaymentReceived)
	case domain.StatusTrial:
		types = append(types, domain.FeedTrialStarted)
	}
	return types
}

func featureName(c domain.Client, rng *rand.Rand) string {
	if len(c.FeatureUsage) == 0 {
		return "Scheduling"
	}
	return c.FeatureUsage[rng.IntN(len(c.FeatureUsage))].Name
}

func staffName(c domain.Client, rng *rand.Rand) string {
	if len(c.StaffStats) == 0 {
		return "The owner"
	}
	return c.StaffStats[rng.IntN(len(c.StaffStats))].Name
}
