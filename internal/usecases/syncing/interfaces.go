package syncing

import (
	"context"
	"encoding/json"
	"time"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-center/internal/domain"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/assembling"
)

// GlobalScope é o escopo do sync_log quando a sincronização cobre
// todas as contas do token de uma vez.
const GlobalScope = "all"

// Gateway é a superfície da API de marketing consumida pela
// sincronização.
type Gateway interface {
	FetchAdAccounts(ctx context.Context) ([]json.RawMessage, error)
	FetchCampaigns(ctx context.Context, accountID int64, statuses []string) ([]json.RawMessage, error)
	FetchCreatives(ctx context.Context, accountID int64, campaignIDs []int64) ([]json.RawMessage, error)
	FetchCampaignMetrics(ctx context.Context, campaignIDs []string, start, end time.Time) ([]json.RawMessage, error)
	FetchCreativeMetrics(ctx context.Context, creativeIDs []string, start, end time.Time) ([]json.RawMessage, error)
	FetchDemographics(ctx context.Context, accountID int64, start, end time.Time) map[string]linkedindomain.PivotResult
	CallCount() int
}

// Authenticator responde se existe um token utilizável agora.
type Authenticator interface {
	Authenticated() bool
}

// Assembler monta o snapshot a partir dos payloads crus.
type Assembler interface {
	Assemble(ctx context.Context, in assembling.Input) (*domain.Snapshot, error)
}

// Persister grava o snapshot montado no banco.
type Persister interface {
	Persist(ctx context.Context, snapshot *domain.Snapshot) error
}

// SyncLogger é o portão de frescor e o bracketing do sync_log.
type SyncLogger interface {
	ShouldSync(ctx context.Context, accountID string, force bool) (bool, string, error)
	StartSync(ctx context.Context, accountID, trigger string) (int64, error)
	FinishSync(ctx context.Context, runID int64, status domain.SyncStatus, stats domain.SyncStats) error
}
