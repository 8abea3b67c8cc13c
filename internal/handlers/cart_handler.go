package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-core/internal/catalog"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/httpresp"
)

type CartHandler struct {
	cart    *catalog.Cart
	catalog *catalog.Catalog
}

func NewCartHandler(cart *catalog.Cart, cat *catalog.Catalog) *CartHandler {
	return &CartHandler{
		cart:    cart,
		catalog: cat,
	}
}

type CartResponse struct {
	ServiceIDs    []string `json:"service_ids"`
	TotalPrice    int      `json:"total_price"`
	TotalDuration int      `json:"total_duration"`
}

func (h *CartHandler) Get(c *gin.Context) {
	ids := h.cart.IDs()

	resp := CartResponse{ServiceIDs: ids}

	// ids órfãos (serviço removido do catálogo) não somam nos totais
	if services, err := h.catalog.ServicesByIDs(ids); err == nil {
		for _, svc := range services {
			resp.TotalPrice += svc.Price
			resp.TotalDuration += svc.DurationMin
		}
	}

	httpresp.OK(c, resp)
}

type CartItemRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

func (h *CartHandler) Add(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if _, err := h.catalog.Service(req.ServiceID); err != nil {
		writeBusinessError(c, err)
		return
	}

	h.cart.Add(c.Request.Context(), req.ServiceID)
	h.Get(c)
}

func (h *CartHandler) Remove(c *gin.Context) {
	h.cart.Remove(c.Request.Context(), c.Param("serviceId"))
	h.Get(c)
}

func (h *CartHandler) Clear(c *gin.Context) {
	h.cart.Clear(c.Request.Context())
	h.Get(c)
}
