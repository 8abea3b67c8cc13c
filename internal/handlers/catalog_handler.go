package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-core/internal/assist"
	"github.com/BruksfildServices01/booking-core/internal/catalog"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/httpresp"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
	assist  *assist.Client
}

func NewCatalogHandler(cat *catalog.Catalog, assistClient *assist.Client) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
		assist:  assistClient,
	}
}

// ======================================================
// PÚBLICO
// ======================================================

func (h *CatalogHandler) ListServices(c *gin.Context) {
	httpresp.List(c, h.catalog.Services())
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	httpresp.List(c, h.catalog.Products())
}

// ======================================================
// ADMIN: SERVIÇOS
// ======================================================

type ServiceRequest struct {
	Name          string `json:"name"`
	Price         int    `json:"price"`
	DurationMin   int    `json:"duration_min"`
	EligibleLevel string `json:"eligible_level"`
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc, err := h.catalog.AddService(c.Request.Context(), catalog.ServiceInput{
		Name:          req.Name,
		Price:         req.Price,
		DurationMin:   req.DurationMin,
		EligibleLevel: req.EligibleLevel,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, svc)
}

type ServiceUpdateRequest struct {
	Name          *string `json:"name"`
	Price         *int    `json:"price"`
	DurationMin   *int    `json:"duration_min"`
	EligibleLevel *string `json:"eligible_level"`
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var req ServiceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc, err := h.catalog.UpdateService(c.Request.Context(), c.Param("id"), catalog.ServiceUpdate{
		Name:          req.Name,
		Price:         req.Price,
		DurationMin:   req.DurationMin,
		EligibleLevel: req.EligibleLevel,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, svc)
}

// ======================================================
// ADMIN: PRODUTOS
// ======================================================

type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.catalog.AddProduct(c.Request.Context(), catalog.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, p)
}

type DescribeProductRequest struct {
	Draft string `json:"draft" binding:"required"`
}

// DescribeProduct pede o texto polido ao serviço de geração e grava o
// resultado (o rascunho original em caso de falha externa).
func (h *CatalogHandler) DescribeProduct(c *gin.Context) {
	var req DescribeProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	id := c.Param("id")
	product, err := h.catalog.Product(id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	polished := h.assist.Describe(c.Request.Context(), product.Name, req.Draft)

	product, err = h.catalog.SetProductDescription(c.Request.Context(), id, polished)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, product)
}
