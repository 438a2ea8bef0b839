package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/clientpulse/dashboard/internal/core/domain"
	"github.com/clientpulse/dashboard/internal/core/ports"
	"github.com/clientpulse/dashboard/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes feed events to a fixed set of workers using consistent
// hashing on the client id, guaranteeing per-client event ordering.
type Dispatcher struct {
	workers []chan domain.FeedEvent
	service ports.FeedService
	log     zerolog.Logger
	wg      sync.WaitGroup
	done    <-chan struct{} // set by Start
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.FeedService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.FeedEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.FeedEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled,
// after which Enqueue drops events instead of blocking.
func (d *Dispatcher) Start(ctx context.Context) {
	d.done = ctx.Done()
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue sends an event to the worker responsible for its client.
// The call is non-blocking up to channelBuffer capacity. Once the dispatcher
// is stopping, the event is dropped and counted.
func (d *Dispatcher) Enqueue(event domain.FeedEvent) {
	idx := d.shardIndex(event.ClientID)
	select {
	case d.workers[idx] <- event:
		metrics.FeedQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	case <-d.done:
		metrics.FeedDroppedTotal.Inc()
		d.log.Debug().Str("event_id", event.ID).Msg("dispatcher stopped, feed event dropped")
	}
}

// shardIndex maps a client id deterministically to a worker index.
func (d *Dispatcher) shardIndex(clientID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(clientID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.FeedEvent) {
	defer d.wg.Done()
	depth := metrics.FeedQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			depth.Set(float64(len(ch)))
			if err := d.service.Record(ctx, event); err != nil {
				metrics.FeedErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("event_id", event.ID).
					Str("client_id", event.ClientID).
					Int("worker_id", id).
					Msg("feed event recording failed")
			}
		}
	}
}
