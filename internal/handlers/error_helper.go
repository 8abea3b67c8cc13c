package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-core/internal/httperr"
)

// writeBusinessError traduz códigos de negócio para HTTP. Nenhum deles é
// fatal: o pior caso é o usuário corrigir e tentar de novo.
func writeBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, "internal_error", "Erro inesperado.")
		return
	}

	switch {
	case code == httperr.CodeTimeConflict:
		httperr.Conflict(c, code, "Horário já ocupado para esse barbeiro.")
	case strings.HasSuffix(code, "_not_found"):
		httperr.NotFound(c, code, "Registro não encontrado.")
	default:
		httperr.BadRequest(c, code, "Dados inválidos para essa operação.")
	}
}
