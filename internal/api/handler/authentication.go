package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/auth"
	"github.com/vfg2006/linkedin-ads-center/pkg/apiErrors"
)

// AuthService é o recorte do auth.Manager usado pelos handlers de
// autenticação, extraído para facilitar os testes.
type AuthService interface {
	AuthorizationURL() string
	ValidState(state string) bool
	ExchangeCode(ctx context.Context, code string) error
	Status() auth.TokenStatus
}

// Login redireciona o navegador para a página de autorização do LinkedIn
func Login(service AuthService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, service.AuthorizationURL(), http.StatusFound)
	})
}

// AuthCallback recebe o retorno do fluxo OAuth e troca o código por tokens
func AuthCallback(service AuthService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		if errParam := query.Get("error"); errParam != "" {
			logrus.WithField("oauth_error", errParam).Warn("Autorização negada pelo LinkedIn")
			apiErrors.WriteError(w, apiErrors.ErrTokenExchange, "Autorização negada: "+errParam, nil)
			return
		}

		if !service.ValidState(query.Get("state")) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidState, "Parâmetro state inválido", nil)
			return
		}

		code := query.Get("code")
		if code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código de autorização ausente", nil)
			return
		}

		if err := service.ExchangeCode(r.Context(), code); err != nil {
			logrus.WithError(err).Error("Erro ao trocar o código de autorização")
			apiErrors.WriteError(w, apiErrors.ErrTokenExchange, "Erro ao trocar o código de autorização", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"message": "Autenticado com sucesso"}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// AuthStatus retorna a saúde do token atual
func AuthStatus(service AuthService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.Status()); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
