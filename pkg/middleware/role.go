package middleware

import (
	"net/http"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-navigator/pkg/apiErrors"
)

const (
	RoleAdmin  = "admin"
	RoleReader = "reader"
)

// RoleMiddleware restringe a rota aos papéis informados
func RoleMiddleware(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeyClaims).(*Claims)
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, claims.Role) {
				logrus.WithFields(logrus.Fields{
					"subject": claims.Subject,
					"role":    claims.Role,
					"path":    r.URL.Path,
				}).Warn("Acesso negado por papel insuficiente")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Acesso não autorizado para este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly é usado nas rotas que disparam jobs
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin)
}

// AllRoles libera leitura para qualquer token válido
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin, RoleReader)
}
