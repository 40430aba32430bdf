package notifications

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	kind      string
	ref       string
	recipient string
	send      func(ctx context.Context) (string, error)
}

// Dispatcher executes queued email sends on a single background worker.
// Sends are one-shot best-effort: a failure is logged, never retried, and
// never reaches the request that queued it.
type Dispatcher struct {
	jobs    chan job
	log     *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewDispatcher(log *slog.Logger, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		jobs:    make(chan job, queueSize),
		log:     log,
		timeout: 8 * time.Second,
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// Enqueue never blocks. A full queue drops the send, which keeps the same
// contract as a failed delivery: logged, not surfaced.
func (d *Dispatcher) Enqueue(kind, ref, recipient string, send func(ctx context.Context) (string, error)) bool {
	if send == nil {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.log.Warn("notifications: enqueue after close", slog.String("kind", kind), slog.String("ref", ref))
		return false
	}

	select {
	case d.jobs <- job{kind: kind, ref: ref, recipient: recipient, send: send}:
		return true
	default:
		d.log.Warn("notifications: queue full, dropping send",
			slog.String("kind", kind),
			slog.String("ref", ref),
		)
		return false
	}
}

// Close stops accepting jobs and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.jobs)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for j := range d.jobs {
		d.execute(j)
	}
}

func (d *Dispatcher) execute(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	messageID, err := j.send(ctx)
	if err != nil {
		d.log.Warn("notifications: send failed",
			slog.String("kind", j.kind),
			slog.String("ref", j.ref),
			slog.String("recipient", j.recipient),
			slog.String("error", err.Error()),
		)
		return
	}

	d.log.Info("notifications: sent",
		slog.String("kind", j.kind),
		slog.String("ref", j.ref),
		slog.String("recipient", j.recipient),
		slog.String("message_id", messageID),
	)
}
