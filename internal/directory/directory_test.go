package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/store"
)

func testProviders() []models.Provider {
	return []models.Provider{
		{
			ID:          "p1",
			Name:        "Ricardo Teixeira",
			IsAvailable: true,
			Specialty:   "classic",
			Level:       models.LevelMaster,
			Location:    &models.Coordinate{Lat: -23.5505, Lng: -46.6333},
		},
		{
			ID:          "p2",
			Name:        "Jonas Andrade",
			IsAvailable: false,
			Specialty:   "fade",
			Level:       models.LevelArtist,
			Location:    &models.Coordinate{Lat: -22.9068, Lng: -43.1729}, // Rio, ~357 km
		},
		{
			ID:          "p3",
			Name:        "Cauê Martins",
			IsAvailable: true,
			Specialty:   "fade",
			Level:       models.LevelSenior,
			// sem localização cadastrada
		},
	}
}

func newTestDirectory(t *testing.T) *Directory {
	t.Helper()

	d := New(context.Background(), store.NewMemoryStore())
	d.Seed(context.Background(), testProviders())
	return d
}

// ======================================================
// FILTER
// ======================================================

func TestFilterNoCriteriaReturnsAll(t *testing.T) {
	d := newTestDirectory(t)

	assert.Len(t, d.Filter(FilterInput{}), 3)
}

func TestFilterAvailableOnly(t *testing.T) {
	d := newTestDirectory(t)

	out := d.Filter(FilterInput{AvailableOnly: true})
	require.Len(t, out, 2)
	for _, p := range out {
		assert.True(t, p.IsAvailable)
	}
}

func TestFilterSpecialtyAndWildcard(t *testing.T) {
	d := newTestDirectory(t)

	assert.Len(t, d.Filter(FilterInput{Specialty: "fade"}), 2)
	assert.Len(t, d.Filter(FilterInput{Specialty: Wildcard}), 3)
}

func TestFilterConjunction(t *testing.T) {
	d := newTestDirectory(t)

	out := d.Filter(FilterInput{
		AvailableOnly: true,
		Specialty:     "fade",
		Level:         models.LevelSenior,
	})

	require.Len(t, out, 1)
	assert.Equal(t, "p3", out[0].ID)
}

func TestFilterByDistance(t *testing.T) {
	d := newTestDirectory(t)
	origin := &models.Coordinate{Lat: -23.5505, Lng: -46.6333} // São Paulo

	out := d.Filter(FilterInput{MaxDistanceKm: 10, Origin: origin})

	ids := []string{}
	for _, p := range out {
		ids = append(ids, p.ID)
	}

	// p2 está a ~357 km e cai fora; p3 sem localização passa
	assert.ElementsMatch(t, []string{"p1", "p3"}, ids)
}

func TestFilterDistanceSkippedWithoutOrigin(t *testing.T) {
	d := newTestDirectory(t)

	// raio escolhido mas sem origem: degradação graciosa, ninguém é cortado
	assert.Len(t, d.Filter(FilterInput{MaxDistanceKm: 1}), 3)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	providers := testProviders()

	Apply(providers, FilterInput{AvailableOnly: true})

	assert.Len(t, providers, 3)
	assert.False(t, providers[1].IsAvailable)
}

// ======================================================
// MUTAÇÕES
// ======================================================

func TestAddAndGet(t *testing.T) {
	d := New(context.Background(), store.NewMemoryStore())

	p, err := d.Add(context.Background(), ProviderInput{
		Name:      "Novo Barbeiro",
		Specialty: "beard",
		Level:     models.LevelArtist,
	})
	require.NoError(t, err)
	assert.True(t, p.IsAvailable, "barbeiro novo entra online")

	got, err := d.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Novo Barbeiro", got.Name)
}

func TestAddRejectsInvalidLevel(t *testing.T) {
	d := New(context.Background(), store.NewMemoryStore())

	_, err := d.Add(context.Background(), ProviderInput{Name: "X", Level: "wizard"})
	assert.Error(t, err)
}

func TestSetAvailability(t *testing.T) {
	d := newTestDirectory(t)

	p, err := d.SetAvailability(context.Background(), "p1", false)
	require.NoError(t, err)
	assert.False(t, p.IsAvailable)

	_, err = d.SetAvailability(context.Background(), "ghost", true)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeProviderNotFound))
}

func TestAddReviewRecomputesRating(t *testing.T) {
	d := newTestDirectory(t)

	_, err := d.AddReview(context.Background(), "p1", models.Review{Author: "Ana", Stars: 5})
	require.NoError(t, err)

	p, err := d.AddReview(context.Background(), "p1", models.Review{Author: "Bia", Stars: 4})
	require.NoError(t, err)

	assert.InDelta(t, 4.5, p.Rating, 1e-9)
	assert.Len(t, p.Reviews, 2)
}

func TestAddReviewRejectsOutOfRangeStars(t *testing.T) {
	d := newTestDirectory(t)

	_, err := d.AddReview(context.Background(), "p1", models.Review{Author: "Ana", Stars: 6})
	assert.Error(t, err)
}

func TestSeedIsNoOpWhenLoaded(t *testing.T) {
	st := store.NewMemoryStore()

	d1 := New(context.Background(), st)
	d1.Seed(context.Background(), testProviders())

	d2 := New(context.Background(), st)
	d2.Seed(context.Background(), []models.Provider{{ID: "other", Name: "Outro"}})

	assert.Len(t, d2.List(), 3, "seed não sobrescreve cadastro existente")
}
