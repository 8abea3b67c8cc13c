package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/booking-core/internal/config"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/httpresp"
	"github.com/BruksfildServices01/booking-core/internal/middleware"
	"github.com/BruksfildServices01/booking-core/internal/store"
)

type AuthHandler struct {
	cfg     *config.Config
	staging store.Store
}

func NewAuthHandler(cfg *config.Config, staging store.Store) *AuthHandler {
	return &AuthHandler{
		cfg:     cfg,
		staging: staging,
	}
}

type AdminLoginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

// AdminSession é o registro de staging lido pelo endpoint de status.
type AdminSession struct {
	LastLoginAt time.Time `json:"last_login_at"`
}

// AdminLogin valida o PIN contra o hash bcrypt configurado e emite a
// sessão admin (JWT curto).
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if h.cfg.AdminPINHash == "" {
		httperr.Unauthorized(c, "admin_disabled", "Área administrativa desabilitada.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPINHash), []byte(req.PIN)); err != nil {
		httperr.Unauthorized(c, "invalid_pin", "PIN incorreto.")
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": middleware.RoleAdmin,
		"iat":  now.Unix(),
		"exp":  now.Add(12 * time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		httperr.Internal(c, "token_error", "Erro ao emitir sessão.")
		return
	}

	h.staging.Save(c.Request.Context(), store.KeyAdminFlag, AdminSession{LastLoginAt: now})

	httpresp.OK(c, AdminLoginResponse{Token: signed})
}

// Session devolve o registro do último login admin. Rota protegida, então
// chegar aqui já prova que o token é válido.
func (h *AuthHandler) Session(c *gin.Context) {
	session := AdminSession{}
	h.staging.Load(c.Request.Context(), store.KeyAdminFlag, &session)

	httpresp.OK(c, session)
}
