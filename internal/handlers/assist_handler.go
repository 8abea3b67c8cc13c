package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-core/internal/assist"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/httpresp"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/store"
)

type AssistHandler struct {
	assist  *assist.Client
	staging store.Store
}

func NewAssistHandler(assistClient *assist.Client, staging store.Store) *AssistHandler {
	return &AssistHandler{
		assist:  assistClient,
		staging: staging,
	}
}

type RecommendRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Recommend repassa o pedido de estilo ao serviço externo. Resposta
// malformada nunca vira erro aqui: o fallback neutro volta com Fallback=true
// para a interface avisar o usuário.
func (h *AssistHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	profile := models.ClientProfile{ID: "local"}
	h.staging.Load(c.Request.Context(), store.KeyProfile, &profile)

	httpresp.OK(c, h.assist.Recommend(c.Request.Context(), req.Prompt, profile))
}
