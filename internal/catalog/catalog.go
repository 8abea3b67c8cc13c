package catalog

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

// Catalog guarda os serviços agendáveis e os produtos de vitrine.
type Catalog struct {
	mu    sync.Mutex
	store store.Store
	now   func() time.Time

	services []models.ServiceOffering
	products []models.Product
}

func New(ctx context.Context, st store.Store) *Catalog {
	c := &Catalog{
		store:    st,
		now:      timezone.Now,
		services: []models.ServiceOffering{},
		products: []models.Product{},
	}

	st.Load(ctx, store.KeyServices, &c.services)
	st.Load(ctx, store.KeyProducts, &c.products)
	return c
}

func (c *Catalog) persistServices(ctx context.Context) {
	c.store.Save(ctx, store.KeyServices, c.services)
}

func (c *Catalog) persistProducts(ctx context.Context) {
	c.store.Save(ctx, store.KeyProducts, c.products)
}

// SeedServices popula o catálogo inicial quando o store veio vazio.
func (c *Catalog) SeedServices(ctx context.Context, services []models.ServiceOffering) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.services) > 0 {
		return
	}

	c.services = services
	c.persistServices(ctx)
}

// ======================================================
// SERVIÇOS
// ======================================================

func (c *Catalog) Services() []models.ServiceOffering {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.ServiceOffering, len(c.services))
	copy(out, c.services)
	return out
}

func (c *Catalog) Service(id string) (*models.ServiceOffering, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.services {
		if c.services[i].ID == id {
			svc := c.services[i]
			return &svc, nil
		}
	}

	return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
}

// ServicesByIDs resolve a seleção do carrinho; qualquer id desconhecido
// derruba a resolução inteira.
func (c *Catalog) ServicesByIDs(ids []string) ([]models.ServiceOffering, error) {
	out := make([]models.ServiceOffering, 0, len(ids))
	for _, id := range ids {
		svc, err := c.Service(id)
		if err != nil {
			return nil, err
		}
		out = append(out, *svc)
	}
	return out, nil
}

type ServiceInput struct {
	Name          string
	Price         int
	DurationMin   int
	EligibleLevel string
}

func (c *Catalog) AddService(ctx context.Context, in ServiceInput) (*models.ServiceOffering, error) {
	if in.Name == "" || in.Price < 0 || in.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_service")
	}

	level := in.EligibleLevel
	if level == "" {
		level = "all"
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	svc := models.ServiceOffering{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Price:         in.Price,
		DurationMin:   in.DurationMin,
		EligibleLevel: level,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	c.services = append(c.services, svc)
	c.persistServices(ctx)

	return &svc, nil
}

// ServiceUpdate usa ponteiros para distinguir "não enviado" de zero:
// preço 0 (cortesia) é um valor válido.
type ServiceUpdate struct {
	Name          *string
	Price         *int
	DurationMin   *int
	EligibleLevel *string
}

func (c *Catalog) UpdateService(ctx context.Context, id string, in ServiceUpdate) (*models.ServiceOffering, error) {
	if in.Price != nil && *in.Price < 0 {
		return nil, httperr.ErrBusiness("invalid_service")
	}
	if in.DurationMin != nil && *in.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_service")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.services {
		if c.services[i].ID != id {
			continue
		}

		svc := &c.services[i]
		if in.Name != nil && *in.Name != "" {
			svc.Name = *in.Name
		}
		if in.Price != nil {
			svc.Price = *in.Price
		}
		if in.DurationMin != nil {
			svc.DurationMin = *in.DurationMin
		}
		if in.EligibleLevel != nil && *in.EligibleLevel != "" {
			svc.EligibleLevel = *in.EligibleLevel
		}
		svc.UpdatedAt = c.now()

		c.persistServices(ctx)

		out := *svc
		return &out, nil
	}

	return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
}

// ======================================================
// PRODUTOS
// ======================================================

func (c *Catalog) Products() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Product(id string) (*models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			p := c.products[i]
			return &p, nil
		}
	}

	return nil, httperr.ErrBusiness(httperr.CodeProductNotFound)
}

type ProductInput struct {
	Name        string
	Description string
	Price       int
}

func (c *Catalog) AddProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	if in.Name == "" || in.Price < 0 {
		return nil, httperr.ErrBusiness("invalid_product")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	p := models.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	c.products = append(c.products, p)
	c.persistProducts(ctx)

	return &p, nil
}

// SetProductDescription grava o texto polido vindo do serviço de geração.
func (c *Catalog) SetProductDescription(ctx context.Context, id string, description string) (*models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID != id {
			continue
		}

		c.products[i].Description = description
		c.products[i].UpdatedAt = c.now()
		c.persistProducts(ctx)

		out := c.products[i]
		return &out, nil
	}

	return nil, httperr.ErrBusiness(httperr.CodeProductNotFound)
}
