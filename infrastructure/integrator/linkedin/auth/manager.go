package auth

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/vfg2006/linkedin-ads-center/internal/config"
	"github.com/vfg2006/linkedin-ads-center/internal/domain"
	"github.com/vfg2006/linkedin-ads-center/pkg/log"
	"github.com/vfg2006/linkedin-ads-center/pkg/utils"
)

// Scopes exigidos pela API de marketing
var Scopes = []string{"r_ads", "r_ads_reporting", "r_basicprofile"}

// expiryBuffer antecipa a renovação para não usar um token prestes a
// expirar no meio de uma sincronização longa.
const expiryBuffer = 5 * time.Minute

// TokenStatus é o resumo de saúde do token exposto em /v1/auth/status
type TokenStatus struct {
	Authenticated        bool       `json:"authenticated"`
	AccessTokenExpiresAt *time.Time `json:"access_token_expires_at,omitempty"`
	DaysRemaining        int        `json:"access_token_days_remaining"`
	HasRefreshToken      bool       `json:"has_refresh_token"`
	Reason               string     `json:"reason,omitempty"`
}

// Manager gerencia o token OAuth do LinkedIn: troca de código,
// persistência em arquivo e renovação automática com antecedência.
type Manager struct {
	cfg        *config.Config
	oauth      *oauth2.Config
	tokensFile string

	mu          sync.Mutex
	token       *oauth2.Token
	stopRefresh chan struct{}
}

func NewManager(cfg *config.Config) *Manager {
	m := &Manager{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.LinkedIn.ClientID,
			ClientSecret: cfg.LinkedIn.ClientSecret,
			RedirectURL:  cfg.LinkedIn.RedirectURI,
			Scopes:       Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.LinkedIn.OAuthBaseURL + "/authorization",
				TokenURL:  cfg.LinkedIn.OAuthBaseURL + "/accessToken",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		tokensFile:  cfg.LinkedIn.TokensFile,
		stopRefresh: make(chan struct{}),
	}

	m.token = m.loadToken()
	return m
}

// AuthorizationURL monta a URL de autorização do fluxo de três pernas
func (m *Manager) AuthorizationURL() string {
	return m.oauth.AuthCodeURL(m.cfg.LinkedIn.OAuthState)
}

// ValidState verifica o parâmetro state devolvido no callback
func (m *Manager) ValidState(state string) bool {
	return state == m.cfg.LinkedIn.OAuthState
}

// ExchangeCode troca o código de autorização por um token e o persiste
func (m *Manager) ExchangeCode(ctx context.Context, code string) error {
	token, err := m.oauth.Exchange(ctx, code)
	if err != nil {
		return &domain.AuthenticationError{Message: "falha ao trocar código de autorização", Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.saveToken()

	log.L.Info("Autenticação concluída; token persistido")
	return nil
}

// GetAccessToken retorna um bearer token válido, renovando se
// necessário. Pode bloquear durante a renovação.
func (m *Manager) GetAccessToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token == nil {
		return "", &domain.AuthenticationError{Message: "nenhum token salvo; execute o fluxo de autenticação"}
	}

	if m.fresh(m.token) {
		return m.token.AccessToken, nil
	}

	if m.token.RefreshToken == "" {
		return "", &domain.AuthenticationError{Message: "token expirado e sem refresh token; reautorize o aplicativo"}
	}

	refreshed, err := m.oauth.TokenSource(ctx, m.token).Token()
	if err != nil {
		return "", &domain.AuthenticationError{Message: "falha ao renovar token", Err: err}
	}

	m.token = refreshed
	m.saveToken()
	log.L.Info("Token renovado com sucesso")

	return m.token.AccessToken, nil
}

// Authenticated informa se existe um token utilizável
func (m *Manager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token != nil && (m.fresh(m.token) || m.token.RefreshToken != "")
}

// Status resume a saúde do token para a CLI e o endpoint de status
func (m *Manager) Status() TokenStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token == nil {
		return TokenStatus{Reason: "nenhum token salvo"}
	}

	status := TokenStatus{
		Authenticated:   m.fresh(m.token) || m.token.RefreshToken != "",
		HasRefreshToken: m.token.RefreshToken != "",
	}

	if !m.token.Expiry.IsZero() {
		expiry := m.token.Expiry
		status.AccessTokenExpiresAt = &expiry
		status.DaysRemaining = int(time.Until(expiry).Hours() / 24)
	}

	if !status.Authenticated {
		status.Reason = "token expirado ou ausente"
	}

	return status
}

// StartAutoRefresh renova o token periodicamente em background
func (m *Manager) StartAutoRefresh() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			needsRefresh := m.token != nil && !m.fresh(m.token) && m.token.RefreshToken != ""
			m.mu.Unlock()

			if !needsRefresh {
				continue
			}

			if _, err := m.GetAccessToken(context.Background()); err != nil {
				log.L.WithError(err).Error("Erro na renovação periódica do token")
			}
		case <-m.stopRefresh:
			log.L.Info("Encerrando renovação periódica do token")
			return
		}
	}
}

// StopAutoRefresh para a goroutine de renovação automática
func (m *Manager) StopAutoRefresh() {
	close(m.stopRefresh)
}

func (m *Manager) fresh(token *oauth2.Token) bool {
	if token.AccessToken == "" {
		return false
	}
	if token.Expiry.IsZero() {
		return true
	}
	return time.Until(token.Expiry) > expiryBuffer
}

func (m *Manager) loadToken() *oauth2.Token {
	data, err := os.ReadFile(m.tokensFile)
	if err != nil {
		return nil
	}

	token := &oauth2.Token{}
	if err := utils.Json.Unmarshal(data, token); err != nil {
		log.L.WithError(err).Warn("Arquivo de tokens ilegível; ignorando")
		return nil
	}

	return token
}

func (m *Manager) saveToken() {
	data, err := utils.Json.MarshalIndent(m.token, "", "  ")
	if err != nil {
		log.L.WithError(err).Error("Erro ao serializar token")
		return
	}

	if err := os.MkdirAll(filepath.Dir(m.tokensFile), 0o755); err != nil {
		log.L.WithError(err).Error("Erro ao criar diretório de tokens")
		return
	}

	if err := os.WriteFile(m.tokensFile, data, 0o600); err != nil {
		log.L.WithError(err).Error("Erro ao persistir token")
	}
}
