package store

import "context"

// Chaves lógicas das coleções persistidas.
const (
	KeyAppointments = "appointments"
	KeyServices     = "services"
	KeyProviders    = "providers"
	KeyProducts     = "products"
	KeyCart         = "cart"
	KeyProfile      = "profile"
	KeyAdminFlag    = "admin-flag"
)

// Store é o colaborador de persistência do core.
//
// Load nunca propaga falha: em qualquer erro de leitura ou decode o dest
// mantém o default que o chamador preencheu antes. Save é best-effort;
// falhas são logadas, nunca derrubam a sessão.
type Store interface {
	Load(ctx context.Context, key string, dest any)
	Save(ctx context.Context, key string, value any)
}
