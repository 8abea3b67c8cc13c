package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-core/internal/directory"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/httpresp"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

type ProviderHandler struct {
	directory *directory.Directory
}

func NewProviderHandler(dir *directory.Directory) *ProviderHandler {
	return &ProviderHandler{directory: dir}
}

// ======================================================
// LISTAGEM COM FILTROS
// ======================================================

// List aceita ?available=true&specialty=fade&level=master&max_distance_km=5&lat=&lng=
func (h *ProviderHandler) List(c *gin.Context) {
	in := directory.FilterInput{
		Specialty: c.Query("specialty"),
		Level:     c.Query("level"),
	}

	if c.Query("available") == "true" {
		in.AvailableOnly = true
	}

	if raw := c.Query("max_distance_km"); raw != "" {
		km, err := strconv.ParseFloat(raw, 64)
		if err != nil || km < 0 {
			httperr.BadRequest(c, "invalid_filter", "Raio de distância inválido.")
			return
		}
		in.MaxDistanceKm = km
	}

	latRaw, lngRaw := c.Query("lat"), c.Query("lng")
	if latRaw != "" && lngRaw != "" {
		lat, errLat := strconv.ParseFloat(latRaw, 64)
		lng, errLng := strconv.ParseFloat(lngRaw, 64)
		if errLat != nil || errLng != nil {
			httperr.BadRequest(c, "invalid_filter", "Coordenada inválida.")
			return
		}
		in.Origin = &models.Coordinate{Lat: lat, Lng: lng}
	}

	httpresp.List(c, h.directory.Filter(in))
}

func (h *ProviderHandler) Get(c *gin.Context) {
	p, err := h.directory.Get(c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, p)
}

// ======================================================
// REVIEWS
// ======================================================

type AddReviewRequest struct {
	Author  string `json:"author" binding:"required"`
	Stars   int    `json:"stars" binding:"required"`
	Comment string `json:"comment"`
}

func (h *ProviderHandler) AddReview(c *gin.Context) {
	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.directory.AddReview(c.Request.Context(), c.Param("id"), models.Review{
		Author:  req.Author,
		Stars:   req.Stars,
		Comment: req.Comment,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, p)
}

// ======================================================
// ADMIN
// ======================================================

type ProviderRequest struct {
	Name      string             `json:"name"`
	Specialty string             `json:"specialty"`
	Level     string             `json:"level"`
	Location  *models.Coordinate `json:"location"`
}

func (h *ProviderHandler) Create(c *gin.Context) {
	var req ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.directory.Add(c.Request.Context(), directory.ProviderInput{
		Name:      req.Name,
		Specialty: req.Specialty,
		Level:     req.Level,
		Location:  req.Location,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, p)
}

func (h *ProviderHandler) Update(c *gin.Context) {
	var req ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.directory.Update(c.Request.Context(), c.Param("id"), directory.ProviderInput{
		Name:      req.Name,
		Specialty: req.Specialty,
		Level:     req.Level,
		Location:  req.Location,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, p)
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

func (h *ProviderHandler) SetAvailability(c *gin.Context) {
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Available == nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.directory.SetAvailability(c.Request.Context(), c.Param("id"), *req.Available)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, p)
}
