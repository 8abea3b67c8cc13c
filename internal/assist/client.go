package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/BruksfildServices01/booking-core/internal/models"
)

// O serviço de geração de texto é um oráculo externo que pode devolver
// JSON malformado, estourar timeout ou estar fora do ar. Nada disso entra
// no core: toda falha vira o fallback neutro.

type Recommendation struct {
	RecommendedServiceIDs []string `json:"recommended_service_ids"`
	Explanation           string   `json:"explanation"`
	ImageURLs             []string `json:"image_urls,omitempty"`
	WebSources            []string `json:"web_sources,omitempty"`

	// Fallback indica ao chamador que a resposta é o default neutro,
	// para exibir o aviso ao usuário.
	Fallback bool `json:"fallback"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// ======================================================
// RECOMENDAÇÃO DE ESTILO
// ======================================================

type recommendRequest struct {
	Prompt  string               `json:"prompt"`
	Profile models.ClientProfile `json:"profile"`
}

func (c *Client) Recommend(ctx context.Context, prompt string, profile models.ClientProfile) Recommendation {
	if c.baseURL == "" {
		return fallbackRecommendation()
	}

	var rec Recommendation
	if err := c.post(ctx, "/recommend", recommendRequest{Prompt: prompt, Profile: profile}, &rec); err != nil {
		log.Println("assist: recommend failed, using fallback:", err)
		return fallbackRecommendation()
	}

	if rec.Explanation == "" && len(rec.RecommendedServiceIDs) == 0 {
		return fallbackRecommendation()
	}

	return rec
}

func fallbackRecommendation() Recommendation {
	return Recommendation{
		RecommendedServiceIDs: []string{},
		Explanation:           "Não foi possível gerar uma recomendação agora. Escolha um serviço do catálogo ou tente de novo.",
		Fallback:              true,
	}
}

// ======================================================
// DESCRIÇÃO DE PRODUTO
// ======================================================

type describeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type describeResponse struct {
	Text string `json:"text"`
}

// Describe pede o polimento de uma descrição de produto. Em falha devolve
// o rascunho original intacto.
func (c *Client) Describe(ctx context.Context, name string, rough string) string {
	if c.baseURL == "" {
		return rough
	}

	var resp describeResponse
	if err := c.post(ctx, "/describe", describeRequest{Name: name, Description: rough}, &resp); err != nil {
		log.Println("assist: describe failed, keeping draft:", err)
		return rough
	}

	if resp.Text == "" {
		return rough
	}

	return resp.Text
}

// ======================================================
// TRANSPORTE
// ======================================================

func (c *Client) post(ctx context.Context, path string, payload any, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &statusError{status: resp.StatusCode}
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}

type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return http.StatusText(e.status)
}
