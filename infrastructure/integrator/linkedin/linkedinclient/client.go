package linkedinclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-center/internal/config"
	"github.com/vfg2006/linkedin-ads-center/internal/domain"
	"github.com/vfg2006/linkedin-ads-center/pkg/log"
	"github.com/vfg2006/linkedin-ads-center/pkg/utils"
)

const pageSize = 100

// TokenSource fornece um bearer token válido sob demanda. Pode
// bloquear durante a renovação.
type TokenSource interface {
	GetAccessToken(ctx context.Context) (string, error)
}

// Client é o cliente HTTP da API de marketing. A política de retry
// pertence a quem chama; aqui só traduzimos respostas em erros tipados.
type Client interface {
	Get(ctx context.Context, path string, rawQuery string) (*linkedindomain.Page, error)
	GetAllPages(ctx context.Context, path string, rawQuery string) ([]json.RawMessage, error)
	CallCount() int
}

type LinkedInClient struct {
	cfg    *config.Config
	tokens TokenSource
	http   *http.Client
	calls  atomic.Int64
}

func NewClient(cfg *config.Config, tokens TokenSource) *LinkedInClient {
	return &LinkedInClient{
		cfg:    cfg,
		tokens: tokens,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Get executa uma requisição e decodifica o envelope de coleção.
// A query chega pré-montada porque a sintaxe Rest.li do LinkedIn não
// sobrevive ao encoding de url.Values.
func (c *LinkedInClient) Get(ctx context.Context, path string, rawQuery string) (*linkedindomain.Page, error) {
	url := c.cfg.LinkedIn.APIBaseURL + path
	if rawQuery != "" {
		url = url + "?" + rawQuery
	}

	token, err := c.tokens.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("LinkedIn-Version", c.cfg.LinkedIn.APIVersion)
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")

	start := time.Now()
	resp, err := c.http.Do(req)
	c.calls.Add(1)
	if err != nil {
		return nil, &domain.UpstreamAPIError{StatusCode: 0, Endpoint: path, Body: err.Error()}
	}
	defer resp.Body.Close()

	log.ForContext(ctx).WithFields(log.Fields{
		"path":        path,
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Chamada à API do LinkedIn")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamAPIError{StatusCode: resp.StatusCode, Endpoint: path, Body: err.Error()}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return nil, &domain.RateLimitError{Endpoint: path, RetryAfter: retryAfter}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.UpstreamAPIError{
			StatusCode: resp.StatusCode,
			Endpoint:   path,
			Body:       truncate(string(body), 500),
		}
	}

	page := &linkedindomain.Page{}
	if err := utils.Json.Unmarshal(body, page); err != nil {
		return nil, &domain.UpstreamAPIError{
			StatusCode: resp.StatusCode,
			Endpoint:   path,
			Body:       fmt.Sprintf("resposta não decodificável: %v", err),
		}
	}

	return page, nil
}

// GetAllPages acumula elements de todas as páginas. A paginação é
// sequencial por contrato: o cursor de cada página vem da anterior.
func (c *LinkedInClient) GetAllPages(ctx context.Context, path string, rawQuery string) ([]json.RawMessage, error) {
	var all []json.RawMessage
	pageToken := ""
	start := 0

	for {
		sep := ""
		if rawQuery != "" {
			sep = "&"
		}

		var paged string
		if pageToken != "" {
			paged = fmt.Sprintf("%s%spageToken=%s&count=%d", rawQuery, sep, pageToken, pageSize)
		} else {
			paged = fmt.Sprintf("%s%sstart=%d&count=%d", rawQuery, sep, start, pageSize)
		}

		page, err := c.Get(ctx, path, paged)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Elements...)

		switch {
		case page.Metadata.NextPageToken != "":
			pageToken = page.Metadata.NextPageToken
		case len(page.Elements) == pageSize:
			start += pageSize
		default:
			return all, nil
		}
	}
}

// CallCount retorna o total de chamadas feitas por este cliente,
// reportado nas estatísticas do sync_log.
func (c *LinkedInClient) CallCount() int {
	return int(c.calls.Load())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
