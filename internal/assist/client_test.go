package assist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-core/internal/models"
)

func testServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, 2*time.Second)
}

func TestRecommendHappyPath(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recommend", r.URL.Path)
		w.Write([]byte(`{
			"recommended_service_ids": ["svc-degrade"],
			"explanation": "Combina com rosto oval.",
			"image_urls": ["https://example.com/a.jpg"]
		}`))
	})

	rec := c.Recommend(context.Background(), "corte para rosto oval", models.ClientProfile{ID: "local"})

	require.False(t, rec.Fallback)
	assert.Equal(t, []string{"svc-degrade"}, rec.RecommendedServiceIDs)
	assert.Equal(t, "Combina com rosto oval.", rec.Explanation)
}

func TestRecommendMalformedJSONFallsBack(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"recommended_service_ids": [`)) // oráculo não confiável
	})

	rec := c.Recommend(context.Background(), "qualquer coisa", models.ClientProfile{})

	assert.True(t, rec.Fallback)
	assert.NotEmpty(t, rec.Explanation)
	assert.Empty(t, rec.RecommendedServiceIDs)
}

func TestRecommendHTTPErrorFallsBack(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	rec := c.Recommend(context.Background(), "x", models.ClientProfile{})
	assert.True(t, rec.Fallback)
}

func TestRecommendEmptyPayloadFallsBack(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`)) // JSON válido porém vazio
	})

	rec := c.Recommend(context.Background(), "x", models.ClientProfile{})
	assert.True(t, rec.Fallback)
}

func TestRecommendWithoutBaseURL(t *testing.T) {
	c := NewClient("", time.Second)

	rec := c.Recommend(context.Background(), "x", models.ClientProfile{})
	assert.True(t, rec.Fallback)
}

func TestDescribePolishes(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/describe", r.URL.Path)
		w.Write([]byte(`{"text": "Pomada de fixação forte com acabamento seco."}`))
	})

	out := c.Describe(context.Background(), "Pomada matte", "pomada forte, seca")
	assert.Equal(t, "Pomada de fixação forte com acabamento seco.", out)
}

func TestDescribeKeepsDraftOnFailure(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	})

	out := c.Describe(context.Background(), "Pomada matte", "pomada forte, seca")
	assert.Equal(t, "pomada forte, seca", out)
}
