package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-core/internal/booking"
	"github.com/BruksfildServices01/booking-core/internal/catalog"
	"github.com/BruksfildServices01/booking-core/internal/directory"
	"github.com/BruksfildServices01/booking-core/internal/dto"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/httpresp"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/scheduling"
	"github.com/BruksfildServices01/booking-core/internal/store"
	"github.com/BruksfildServices01/booking-core/internal/timeutil"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book      *booking.Book
	catalog   *catalog.Catalog
	cart      *catalog.Cart
	directory *directory.Directory
	staging   store.Store
}

func NewAppointmentHandler(
	book *booking.Book,
	cat *catalog.Catalog,
	cart *catalog.Cart,
	dir *directory.Directory,
	staging store.Store,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:      book,
		catalog:   cat,
		cart:      cart,
		directory: dir,
		staging:   staging,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProviderID string   `json:"provider_id" binding:"required"`
	Date       string   `json:"date" binding:"required"`
	Time       string   `json:"time" binding:"required"`
	ServiceIDs []string `json:"service_ids"` // vazio = usa o carrinho
}

type EditAppointmentRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	provider, err := h.directory.Get(req.ProviderID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	if !provider.IsAvailable {
		httperr.BadRequest(c, "provider_unavailable", "Barbeiro indisponível no momento.")
		return
	}

	ids := req.ServiceIDs
	fromCart := false
	if len(ids) == 0 {
		ids = h.cart.IDs()
		fromCart = true
	}

	services, err := h.catalog.ServicesByIDs(ids)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	profile := models.ClientProfile{ID: "local"}
	h.staging.Load(c.Request.Context(), store.KeyProfile, &profile)

	ap, err := h.book.Create(c.Request.Context(), booking.CreateInput{
		ProviderID:   provider.ID,
		ProviderName: provider.Name,
		ClientID:     profile.ID,
		Services:     services,
		Date:         req.Date,
		Time:         req.Time,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	// confirmou → staging zerado
	if fromCart {
		h.cart.Clear(c.Request.Context())
	}

	httpresp.Created(c, ap)
}

// ======================================================
// QUERIES
// ======================================================

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	ref := c.DefaultQuery("from", timezone.Now().Format("2006-01-02"))
	if !timeutil.ValidDate(ref) {
		httperr.BadRequest(c, httperr.CodeInvalidDateOrTime, "Data inválida.")
		return
	}

	httpresp.List(c, dto.FromAppointments(h.book.ListUpcoming(ref)))
}

func (h *AppointmentHandler) History(c *gin.Context) {
	ref := c.DefaultQuery("until", timezone.Now().Format("2006-01-02"))
	if !timeutil.ValidDate(ref) {
		httperr.BadRequest(c, httperr.CodeInvalidDateOrTime, "Data inválida.")
		return
	}

	days := h.book.ListHistory(ref)

	out := make([]dto.HistoryDayDTO, 0, len(days))
	for _, day := range days {
		out = append(out, dto.HistoryDayDTO{
			Date:         day.Date,
			Total:        day.Total,
			Appointments: dto.FromAppointments(day.Appointments),
		})
	}

	httpresp.List(c, out)
}

// Agenda devolve a agenda completa de um dia (inclui cancelados),
// para o painel administrativo.
func (h *AppointmentHandler) Agenda(c *gin.Context) {
	date := c.DefaultQuery("date", timezone.Now().Format("2006-01-02"))
	if !timeutil.ValidDate(date) {
		httperr.BadRequest(c, httperr.CodeInvalidDateOrTime, "Data inválida.")
		return
	}

	httpresp.List(c, dto.FromAppointments(h.book.ListByDate(date)))
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	providerID := c.Param("id")
	if _, err := h.directory.Get(providerID); err != nil {
		writeBusinessError(c, err)
		return
	}

	date := c.Query("date")
	if !timeutil.ValidDate(date) {
		httperr.BadRequest(c, httperr.CodeInvalidDateOrTime, "Data inválida.")
		return
	}

	duration, err := strconv.Atoi(c.DefaultQuery("duration", "30"))
	if err != nil || duration <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
		return
	}

	slots := scheduling.FreeSlots(
		providerID,
		date,
		duration,
		h.book.Snapshot(),
		timezone.Now(),
	)

	httpresp.List(c, slots)
}

// ======================================================
// CANCEL / EDIT
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.book.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Edit(c *gin.Context) {
	var req EditAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.book.Edit(c.Request.Context(), c.Param("id"), req.Date, req.Time)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
