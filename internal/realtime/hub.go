// Package realtime keeps connected panels synchronized with the store.
//
// One persistent subscription lifecycle serves both collections: on every
// catalog write the hub re-reads categorias and productos and pushes a full
// snapshot to every subscriber, replacing their local state wholesale. A
// Redis channel fans the change signal out across instances, so a write
// handled by one replica refreshes panels connected to another.
package realtime

import (
	"context"
	"sync"

	"github.com/MaxiBlanc/Krevo-control/internal/dto"
	"github.com/MaxiBlanc/Krevo-control/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// canalCambios is the Redis pub/sub channel carrying change signals.
const canalCambios = "catalogo:cambios"

// subscriberBuffer bounds the per-client snapshot queue. Sends never block:
// a full queue drops the snapshot, and the next one supersedes it anyway.
const subscriberBuffer = 8

// Snapshot is the full catalog state pushed to subscribers. Categorias come
// ordered by nombre ascending; productos carry no ordering.
type Snapshot struct {
	Categorias []dto.CategoriaResponse `json:"categorias"`
	Productos  []dto.ProductoResponse  `json:"productos"`
}

// Hub owns the subscriber registry and the last observed snapshot.
type Hub struct {
	categorias repository.CategoriaRepository
	productos  repository.ProductoRepository
	rdb        *redis.Client // nil disables cross-instance fanout

	mu          sync.RWMutex
	subscribers map[string]chan Snapshot
	last        Snapshot
}

func NewHub(categorias repository.CategoriaRepository, productos repository.ProductoRepository, rdb *redis.Client) *Hub {
	return &Hub{
		categorias:  categorias,
		productos:   productos,
		rdb:         rdb,
		subscribers: make(map[string]chan Snapshot),
	}
}

// Run loads the initial snapshot and then consumes change signals until ctx
// is cancelled. Call it from its own goroutine.
func (h *Hub) Run(ctx context.Context) {
	if err := h.refresh(ctx); err != nil {
		log.Error().Err(err).Msg("hub: initial catalog load failed")
	}

	if h.rdb == nil {
		<-ctx.Done()
		return
	}

	sub := h.rdb.Subscribe(ctx, canalCambios)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			if err := h.refresh(ctx); err != nil {
				log.Error().Err(err).Msg("hub: catalog refresh failed")
			}
		}
	}
}

// Notify signals that the catalog changed. With Redis configured the signal
// goes through pub/sub and comes back to every instance's Run loop; without
// it the refresh happens inline.
func (h *Hub) Notify(ctx context.Context) {
	if h.rdb != nil {
		if err := h.rdb.Publish(ctx, canalCambios, "cambio").Err(); err != nil {
			log.Error().Err(err).Msg("hub: publish change signal failed")
		}
		return
	}
	if err := h.refresh(ctx); err != nil {
		log.Error().Err(err).Msg("hub: catalog refresh failed")
	}
}

// Subscribe registers a client and immediately queues the current snapshot.
// The returned channel is owned by the hub; it is closed on Unsubscribe, so
// the paired release must always run (defer it next to the Subscribe call).
func (h *Hub) Subscribe() (string, <-chan Snapshot) {
	id := uuid.NewString()
	ch := make(chan Snapshot, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[id] = ch
	ch <- h.last
	h.mu.Unlock()

	log.Debug().Str("subscriber", id).Msg("hub: client subscribed")
	return id, ch
}

// Unsubscribe releases a client registration and closes its channel.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	if ch, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(ch)
	}
	h.mu.Unlock()

	log.Debug().Str("subscriber", id).Msg("hub: client unsubscribed")
}

// Snapshot returns the last observed catalog state.
func (h *Hub) Snapshot() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.last
}

func (h *Hub) refresh(ctx context.Context) error {
	cats, err := h.categorias.Listar(ctx)
	if err != nil {
		return err
	}
	prods, err := h.productos.Listar(ctx, "")
	if err != nil {
		return err
	}

	snap := Snapshot{
		Categorias: make([]dto.CategoriaResponse, 0, len(cats)),
		Productos:  make([]dto.ProductoResponse, 0, len(prods)),
	}
	for _, c := range cats {
		snap.Categorias = append(snap.Categorias, dto.FromCategoria(c))
	}
	for _, p := range prods {
		snap.Productos = append(snap.Productos, dto.FromProducto(p))
	}

	h.mu.Lock()
	h.last = snap
	for id, ch := range h.subscribers {
		select {
		case ch <- snap:
		default:
			// Slow client: drop this snapshot, the next one supersedes it.
			log.Warn().Str("subscriber", id).Msg("hub: subscriber queue full, snapshot dropped")
		}
	}
	h.mu.Unlock()
	return nil
}
