package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/httpresp"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/store"
	"github.com/BruksfildServices01/booking-core/internal/validators"
)

type ProfileHandler struct {
	staging store.Store
}

func NewProfileHandler(staging store.Store) *ProfileHandler {
	return &ProfileHandler{staging: staging}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	profile := models.ClientProfile{ID: "local"}
	h.staging.Load(c.Request.Context(), store.KeyProfile, &profile)

	httpresp.OK(c, profile)
}

type ProfileRequest struct {
	Name     string             `json:"name" binding:"required"`
	Phone    string             `json:"phone"`
	Email    string             `json:"email"`
	Location *models.Coordinate `json:"location"`
}

func (h *ProfileHandler) Put(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Email != "" && !validators.IsEmailValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	profile := models.ClientProfile{ID: "local"}
	h.staging.Load(c.Request.Context(), store.KeyProfile, &profile)

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	profile.Name = req.Name
	profile.Phone = req.Phone
	profile.Email = req.Email
	if req.Location != nil {
		profile.Location = req.Location
	}

	h.staging.Save(c.Request.Context(), store.KeyProfile, profile)

	httpresp.OK(c, profile)
}
