package ws

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Esw4r/surplus-sync/internal/domain"
)

// Sender delivers one event to a single connected client. Implementations
// must bound Send with their own deadline; a Send that errors marks the
// observer dead.
type Sender interface {
	Send(event domain.Event) error
	Close() error
}

// Observer is a live client connection registered with the hub. The hub
// owns the handle for the lifetime of the connection.
type Observer struct {
	id     string
	sender Sender
}

// ID returns the connection id, used for logging only.
func (o *Observer) ID() string { return o.id }

// Hub maintains the set of live observers and fans domain events out to all
// of them with best-effort delivery. The mutex protects only the membership
// map; sends never happen while it is held.
type Hub struct {
	mu        sync.Mutex
	observers map[*Observer]struct{}
	logger    zerolog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		observers: make(map[*Observer]struct{}),
		logger:    logger,
	}
}

// Register adds a new observer. Every broadcast begun after Register
// returns will reach the observer until it is unregistered.
func (h *Hub) Register(sender Sender) *Observer {
	o := &Observer{id: uuid.NewString(), sender: sender}
	h.mu.Lock()
	h.observers[o] = struct{}{}
	total := len(h.observers)
	h.mu.Unlock()
	h.logger.Info().Str("conn_id", o.id).Int("total", total).Msg("observer connected")
	return o
}

// Unregister removes the observer and releases its connection. Safe to call
// for an observer the hub already pruned.
func (h *Hub) Unregister(o *Observer) {
	h.mu.Lock()
	_, present := h.observers[o]
	delete(h.observers, o)
	total := len(h.observers)
	h.mu.Unlock()
	if present {
		_ = o.sender.Close()
		h.logger.Info().Str("conn_id", o.id).Int("total", total).Msg("observer disconnected")
	}
}

// Count returns the number of live observers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers)
}

// Broadcast fans the event out to every currently registered observer.
// Membership is snapshotted under the lock, sends run outside it and
// independently of each other, and observers whose delivery fails are
// pruned in the same pass. Delivery is fire-and-forget: no per-observer
// outcome is reported to the caller.
func (h *Hub) Broadcast(event domain.Event) {
	h.mu.Lock()
	snapshot := make([]*Observer, 0, len(h.observers))
	for o := range h.observers {
		snapshot = append(snapshot, o)
	}
	h.mu.Unlock()

	var (
		wg       sync.WaitGroup
		failedMu sync.Mutex
		failed   []*Observer
	)
	for _, o := range snapshot {
		wg.Add(1)
		go func(o *Observer) {
			defer wg.Done()
			if err := o.sender.Send(event); err != nil {
				h.logger.Warn().Err(err).Str("conn_id", o.id).Str("event", string(event.Kind)).Msg("broadcast delivery failed")
				failedMu.Lock()
				failed = append(failed, o)
				failedMu.Unlock()
			}
		}(o)
	}
	wg.Wait()

	for _, o := range failed {
		h.Unregister(o)
	}
}
