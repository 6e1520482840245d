package queue

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/resourcespen/storefront/internal/core/domain"
	"github.com/resourcespen/storefront/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	processTimeout = 5 * time.Second
)

// Dispatcher routes activity events to a fixed set of workers using consistent
// hashing on the device id, preserving per-device ordering.
type Dispatcher struct {
	workers []chan domain.ActivityEvent
	service ports.ActivityService
	log     zerolog.Logger

	wg      sync.WaitGroup
	dropped atomic.Uint64
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.ActivityEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ActivityEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. When ctx is cancelled each worker
// persists the events already queued on its shard and returns.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Record hands an event to the worker responsible for its device. It never
// blocks the request path: when the shard is full the event is dropped.
func (d *Dispatcher) Record(event domain.ActivityEvent) {
	select {
	case d.workers[d.shardIndex(event.DeviceID)] <- event:
	default:
		d.dropped.Add(1)
		d.log.Warn().
			Str("device_id", event.DeviceID).
			Str("action", string(event.Action)).
			Msg("activity queue full, event dropped")
	}
}

// Depth returns the number of events waiting across all shards.
func (d *Dispatcher) Depth() int {
	n := 0
	for _, ch := range d.workers {
		n += len(ch)
	}
	return n
}

// Dropped returns the number of events discarded because a shard was full.
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// shardIndex maps a device id deterministically to a worker index.
func (d *Dispatcher) shardIndex(deviceID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(deviceID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ActivityEvent) {
	defer d.wg.Done()
	persistCtx := context.WithoutCancel(ctx)
	for {
		select {
		case <-ctx.Done():
			d.drain(persistCtx, id, ch)
			return
		case event := <-ch:
			d.process(persistCtx, id, event)
		}
	}
}

// drain processes whatever is left on ch without waiting for more.
func (d *Dispatcher) drain(ctx context.Context, id int, ch <-chan domain.ActivityEvent) {
	n := 0
	for {
		select {
		case event := <-ch:
			d.process(ctx, id, event)
			n++
		default:
			if n > 0 {
				d.log.Debug().Int("worker_id", id).Int("events", n).Msg("activity shard drained")
			}
			return
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, id int, event domain.ActivityEvent) {
	ctx, cancel := context.WithTimeout(ctx, processTimeout)
	defer cancel()
	if err := d.service.Process(ctx, event); err != nil {
		d.log.Error().Err(err).
			Str("device_id", event.DeviceID).
			Int("worker_id", id).
			Msg("activity processing failed")
	}
}
