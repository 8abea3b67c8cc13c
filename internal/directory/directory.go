package directory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/store"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
)

// Directory é o dono do cadastro de barbeiros. Barbeiro nunca é removido,
// só editado ou colocado offline.
type Directory struct {
	mu    sync.Mutex
	store store.Store
	now   func() time.Time

	providers []models.Provider
}

func New(ctx context.Context, st store.Store) *Directory {
	d := &Directory{
		store:     st,
		now:       timezone.Now,
		providers: []models.Provider{},
	}

	st.Load(ctx, store.KeyProviders, &d.providers)
	return d
}

func (d *Directory) persist(ctx context.Context) {
	d.store.Save(ctx, store.KeyProviders, d.providers)
}

func (d *Directory) List() []models.Provider {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]models.Provider, len(d.providers))
	copy(out, d.providers)
	return out
}

func (d *Directory) Get(id string) (*models.Provider, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.providers {
		if d.providers[i].ID == id {
			p := d.providers[i]
			return &p, nil
		}
	}

	return nil, httperr.ErrBusiness(httperr.CodeProviderNotFound)
}

// Seed popula o cadastro inicial quando o store veio vazio.
func (d *Directory) Seed(ctx context.Context, providers []models.Provider) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.providers) > 0 {
		return
	}

	d.providers = providers
	d.persist(ctx)
}

// ======================================================
// MUTAÇÕES (admin)
// ======================================================

type ProviderInput struct {
	Name      string
	Specialty string
	Level     string
	Location  *models.Coordinate
}

func (d *Directory) Add(ctx context.Context, in ProviderInput) (*models.Provider, error) {
	if in.Name == "" || !models.ValidLevel(in.Level) {
		return nil, httperr.ErrBusiness("invalid_provider")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	p := models.Provider{
		ID:          uuid.NewString(),
		Name:        in.Name,
		IsAvailable: true,
		Specialty:   in.Specialty,
		Level:       in.Level,
		Location:    in.Location,
		Reviews:     []models.Review{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	d.providers = append(d.providers, p)
	d.persist(ctx)

	return &p, nil
}

func (d *Directory) Update(ctx context.Context, id string, in ProviderInput) (*models.Provider, error) {
	if in.Level != "" && !models.ValidLevel(in.Level) {
		return nil, httperr.ErrBusiness("invalid_provider")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.providers {
		if d.providers[i].ID != id {
			continue
		}

		p := &d.providers[i]
		if in.Name != "" {
			p.Name = in.Name
		}
		if in.Specialty != "" {
			p.Specialty = in.Specialty
		}
		if in.Level != "" {
			p.Level = in.Level
		}
		if in.Location != nil {
			p.Location = in.Location
		}
		p.UpdatedAt = d.now()

		d.persist(ctx)

		out := *p
		return &out, nil
	}

	return nil, httperr.ErrBusiness(httperr.CodeProviderNotFound)
}

// SetAvailability liga/desliga o barbeiro manualmente, independente da
// ocupação da agenda.
func (d *Directory) SetAvailability(ctx context.Context, id string, available bool) (*models.Provider, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.providers {
		if d.providers[i].ID != id {
			continue
		}

		d.providers[i].IsAvailable = available
		d.providers[i].UpdatedAt = d.now()
		d.persist(ctx)

		out := d.providers[i]
		return &out, nil
	}

	return nil, httperr.ErrBusiness(httperr.CodeProviderNotFound)
}

// AddReview anexa a avaliação e recalcula a média do barbeiro.
func (d *Directory) AddReview(ctx context.Context, id string, review models.Review) (*models.Provider, error) {
	if review.Stars < 1 || review.Stars > 5 {
		return nil, httperr.ErrBusiness("invalid_review")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.providers {
		if d.providers[i].ID != id {
			continue
		}

		p := &d.providers[i]
		review.CreatedAt = d.now()
		p.Reviews = append(p.Reviews, review)

		sum := 0
		for _, r := range p.Reviews {
			sum += r.Stars
		}
		p.Rating = float64(sum) / float64(len(p.Reviews))
		p.UpdatedAt = d.now()

		d.persist(ctx)

		out := *p
		return &out, nil
	}

	return nil, httperr.ErrBusiness(httperr.CodeProviderNotFound)
}
