// Package queue runs remote media deletions in the background so request
// handlers never wait on the media host.
package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/bandsite/cms-api/internal/api/metrics"
	"github.com/bandsite/cms-api/internal/core/ports"
)

const (
	defaultWorkers = 2
	channelBuffer  = 128
	deleteTimeout  = 30 * time.Second
)

// Deleter removes one remote asset.
type Deleter interface {
	Delete(ctx context.Context, publicID string) error
}

// Dispatcher routes public ids to a fixed set of workers by hash, so repeated
// requests for the same asset are handled in order by one worker.
type Dispatcher struct {
	workers []chan string
	host    Deleter
	log     zerolog.Logger
}

var _ ports.MediaCleaner = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, host Deleter, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan string, numWorkers),
		host:    host,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue schedules publicID for deletion. It never blocks: when the
// worker's channel is full the id is dropped and logged.
func (d *Dispatcher) Enqueue(publicID string) {
	if publicID == "" {
		return
	}
	idx := d.shardIndex(publicID)
	select {
	case d.workers[idx] <- publicID:
		metrics.MediaCleanupQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	default:
		metrics.MediaCleanupTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("public_id", publicID).Int("worker_id", idx).Msg("media cleanup queue full, asset left behind")
	}
}

// shardIndex maps a public id deterministically to a worker index.
func (d *Dispatcher) shardIndex(publicID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(publicID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case publicID, ok := <-ch:
			if !ok {
				return
			}
			metrics.MediaCleanupQueueDepth.WithLabelValues(label).Dec()
			d.process(ctx, id, publicID)
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, id int, publicID string) {
	ctx, cancel := context.WithTimeout(ctx, deleteTimeout)
	defer cancel()

	if err := d.host.Delete(ctx, publicID); err != nil {
		metrics.MediaCleanupTotal.WithLabelValues("error").Inc()
		d.log.Error().Err(err).
			Str("public_id", publicID).
			Int("worker_id", id).
			Msg("media cleanup failed")
		return
	}
	metrics.MediaCleanupTotal.WithLabelValues("ok").Inc()
	d.log.Debug().Str("public_id", publicID).Msg("media asset deleted")
}
