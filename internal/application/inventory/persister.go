package inventory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

const defaultWriteTimeout = 10 * time.Second

// Persister is the Observer that writes committed state to storage in the background. Keys
// touched by consecutive transitions are coalesced and written from the latest snapshot by a
// single goroutine, so writes never run out of order. Failures are logged and dropped: the
// in-memory state stays authoritative.
type Persister struct {
	storage *Storage
	log     *logger.Logger
	timeout time.Duration

	mu     sync.Mutex
	dirty  map[string]struct{}
	latest State
	closed bool

	signal chan struct{}
	done   chan struct{}
}

// NewPersister starts the writer goroutine. Close stops it.
func NewPersister(storage *Storage, log *logger.Logger) *Persister {
	p := &Persister{
		storage: storage,
		log:     log,
		timeout: defaultWriteTimeout,
		dirty:   make(map[string]struct{}),
		signal:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

// StateChanged queues the keys for writing. It never blocks.
func (p *Persister) StateChanged(st State, keys []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		p.log.Warn().Strs("keys", keys).Msg("persister closed, change not written")
		return
	}
	p.latest = st
	for _, k := range keys {
		p.dirty[k] = struct{}{}
	}
	select {
	case p.signal <- struct{}{}:
	default:
	}
}

func (p *Persister) run() {
	defer close(p.done)
	for range p.signal {
		p.flush()
	}
	p.flush()
}

func (p *Persister) flush() {
	p.mu.Lock()
	if len(p.dirty) == 0 {
		p.mu.Unlock()
		return
	}
	keys := make([]string, 0, len(p.dirty))
	for k := range p.dirty {
		keys = append(keys, k)
	}
	clear(p.dirty)
	st := p.latest
	p.mu.Unlock()

	slices.Sort(keys)
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	if err := p.storage.Save(ctx, st, keys...); err != nil {
		p.log.Error().Err(err).Strs("keys", keys).Msg("persist inventory state")
		return
	}
	p.log.Debug().Strs("keys", keys).Msg("inventory state persisted")
}

// Close writes whatever is still queued and stops the writer. It returns ctx.Err() if the
// drain does not finish in time.
func (p *Persister) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.signal)
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
