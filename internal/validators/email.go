package validators

import "strings"

// IsEmailValid faz a checagem estrutural mínima usada no perfil local.
// Sem lookup de DNS: o perfil nunca sai da máquina.
func IsEmailValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}

	return !strings.ContainsAny(email, " \t")
}
