package catalog

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/booking-core/internal/store"
)

// Cart é o estado de staging de UM agendamento em andamento: um conjunto
// de ids de serviço sem ordem relevante, zerado ao confirmar ou resetar.
// Não vira entidade de booking.
type Cart struct {
	mu    sync.Mutex
	store store.Store

	ids []string
}

func NewCart(ctx context.Context, st store.Store) *Cart {
	c := &Cart{
		store: st,
		ids:   []string{},
	}

	st.Load(ctx, store.KeyCart, &c.ids)
	return c
}

func (c *Cart) persist(ctx context.Context) {
	c.store.Save(ctx, store.KeyCart, c.ids)
}

func (c *Cart) IDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Add tem semântica de conjunto: adicionar o que já está no carrinho é no-op.
func (c *Cart) Add(ctx context.Context, serviceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range c.ids {
		if id == serviceID {
			return
		}
	}

	c.ids = append(c.ids, serviceID)
	c.persist(ctx)
}

func (c *Cart) Remove(ctx context.Context, serviceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, id := range c.ids {
		if id == serviceID {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			c.persist(ctx)
			return
		}
	}
}

func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ids = []string{}
	c.persist(ctx)
}
