package reporting

import (
	"context"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/auth"
	"github.com/vfg2006/linkedin-ads-center/infrastructure/repository"
	"github.com/vfg2006/linkedin-ads-center/internal/domain"
)

// recentSyncLimit limita a lista de tentativas no status.
const recentSyncLimit = 10

// TokenStatusProvider expõe a saúde do token para o relatório de
// status sem acoplar ao Manager concreto.
type TokenStatusProvider interface {
	Status() auth.TokenStatus
}

// StatusReport é a resposta de GET /v1/status: saúde do token, contagem
// das tabelas e as últimas tentativas de sincronização.
type StatusReport struct {
	Token       auth.TokenStatus       `json:"token"`
	TableCounts map[string]int         `json:"table_counts"`
	LastSync    *domain.SyncLogEntry   `json:"last_sync,omitempty"`
	RecentSyncs []*domain.SyncLogEntry `json:"recent_syncs"`
}

// Service responde as consultas de leitura da aplicação: status
// operacional, auditoria e relatórios sobre o que está persistido.
type Service interface {
	Status(ctx context.Context) (*StatusReport, error)
	CampaignAudit(ctx context.Context) ([]*domain.CampaignAuditEntry, error)
	CampaignPerformance(ctx context.Context, limit uint64) ([]*domain.CampaignPerformanceRow, error)
	CreativePerformance(ctx context.Context, limit uint64) ([]*domain.CreativePerformanceRow, error)
	Visual(ctx context.Context) (*domain.VisualReport, error)
	Demographics(ctx context.Context, accountID int64, pivotType string) ([]*domain.DemographicSegment, error)
}

type service struct {
	tokens  TokenStatusProvider
	reports repository.ReportRepository
	syncLog repository.SyncLogRepository
}

func NewService(tokens TokenStatusProvider, reports repository.ReportRepository, syncLog repository.SyncLogRepository) Service {
	return &service{tokens: tokens, reports: reports, syncLog: syncLog}
}

func (s *service) Status(ctx context.Context) (*StatusReport, error) {
	counts, err := s.reports.TableCounts(ctx)
	if err != nil {
		return nil, err
	}

	lastSync, err := s.syncLog.LastSuccessful(ctx, "all")
	if err != nil {
		return nil, err
	}

	recent, err := s.syncLog.ListRecent(ctx, recentSyncLimit)
	if err != nil {
		return nil, err
	}

	return &StatusReport{
		Token:       s.tokens.Status(),
		TableCounts: counts,
		LastSync:    lastSync,
		RecentSyncs: recent,
	}, nil
}

func (s *service) CampaignAudit(ctx context.Context) ([]*domain.CampaignAuditEntry, error) {
	return s.reports.ActiveCampaignAudit(ctx)
}

func (s *service) CampaignPerformance(ctx context.Context, limit uint64) ([]*domain.CampaignPerformanceRow, error) {
	if limit == 0 || limit > 100 {
		limit = 20
	}

	return s.reports.CampaignPerformance(ctx, limit)
}

func (s *service) CreativePerformance(ctx context.Context, limit uint64) ([]*domain.CreativePerformanceRow, error) {
	if limit == 0 || limit > 100 {
		limit = 20
	}

	return s.reports.CreativePerformance(ctx, limit)
}

func (s *service) Visual(ctx context.Context) (*domain.VisualReport, error) {
	return s.reports.VisualReport(ctx)
}

func (s *service) Demographics(ctx context.Context, accountID int64, pivotType string) ([]*domain.DemographicSegment, error) {
	return s.reports.DemographicsByAccount(ctx, accountID, pivotType)
}
