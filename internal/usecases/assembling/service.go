package assembling

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/urn"
	"github.com/vfg2006/linkedin-ads-center/internal/domain"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/validating"
	"github.com/vfg2006/linkedin-ads-center/pkg/log"
	"github.com/vfg2006/linkedin-ads-center/pkg/utils"
)

// Input carrega tudo que uma passada de montagem consome: os payloads
// crus por entidade, a demografia por conta e o período coberto.
type Input struct {
	Accounts        []json.RawMessage
	Campaigns       []json.RawMessage
	Creatives       []json.RawMessage
	CampaignMetrics []json.RawMessage
	CreativeMetrics []json.RawMessage
	Demographics    map[int64]linkedindomain.AccountDemographics
	Start           time.Time
	End             time.Time
}

// Service monta o snapshot hierárquico a partir dos dados crus da API.
type Service struct {
	validator *validating.Validator
}

func NewService(validator *validating.Validator) *Service {
	return &Service{validator: validator}
}

// Assemble valida os lotes, indexa métricas e criativos por dono e
// produz o snapshot conta -> campanha -> criativo. Registro inválido
// sai do snapshot, nunca o derruba.
func (s *Service) Assemble(ctx context.Context, in Input) (*domain.Snapshot, error) {
	accounts, _ := s.validator.Accounts(ctx, in.Accounts)
	campaigns, _ := s.validator.Campaigns(ctx, in.Campaigns)
	creatives, _ := s.validator.Creatives(ctx, in.Creatives)
	campaignRows, _ := s.validator.AnalyticsRows(ctx, "campaign_metrics", in.CampaignMetrics)
	creativeRows, _ := s.validator.AnalyticsRows(ctx, "creative_metrics", in.CreativeMetrics)

	// Métricas de campanha indexadas pelo ID final do URN do pivô.
	campaignMetricIndex := make(map[string][]linkedindomain.AnalyticsRow)
	for _, row := range campaignRows {
		for _, pv := range row.PivotValues {
			id := urn.TrailingID(pv)
			campaignMetricIndex[id] = append(campaignMetricIndex[id], row)
		}
	}

	// Métricas de criativo indexadas pelo URN completo, que é também o
	// ID do criativo na API atual.
	creativeMetricIndex := make(map[string][]linkedindomain.AnalyticsRow)
	for _, row := range creativeRows {
		for _, pv := range row.PivotValues {
			if strings.Contains(pv, "sponsoredCreative") {
				creativeMetricIndex[pv] = append(creativeMetricIndex[pv], row)
			}
		}
	}

	creativesByCampaign := make(map[string][]linkedindomain.Creative)
	for _, creative := range creatives {
		creativesByCampaign[creative.Campaign] = append(creativesByCampaign[creative.Campaign], creative)
	}

	campaignsByAccount := make(map[int64][]linkedindomain.Campaign)
	tagged := 0
	for _, campaign := range campaigns {
		if campaign.AccountID == 0 {
			continue
		}
		tagged++
		campaignsByAccount[campaign.AccountID] = append(campaignsByAccount[campaign.AccountID], campaign)
	}

	// Lote inteiro sem marcação de conta é o formato legado: toda conta
	// enxerga todas as campanhas. Lote parcialmente marcado descarta as
	// órfãs com warning em vez de duplicá-las em toda conta.
	legacyUntagged := tagged == 0 && len(campaigns) > 0
	if !legacyUntagged && tagged < len(campaigns) {
		log.ForContext(ctx).WithFields(log.Fields{
			"total":    len(campaigns),
			"orphaned": len(campaigns) - tagged,
		}).Warn("Campanhas sem conta de origem descartadas da montagem")
	}

	snapshot := &domain.Snapshot{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		DateRange: domain.DateRange{
			Start: in.Start.Format(time.DateOnly),
			End:   in.End.Format(time.DateOnly),
			Days:  int(in.End.Sub(in.Start).Hours() / 24),
		},
		Accounts: make([]*domain.Account, 0, len(accounts)),
	}

	for _, account := range accounts {
		accountCampaigns := campaignsByAccount[account.ID]
		if legacyUntagged {
			accountCampaigns = campaigns
		}

		accountSnapshot := &domain.Account{
			ID:                   account.ID,
			Name:                 account.Name,
			Status:               account.Status,
			Currency:             account.Currency,
			Type:                 account.Type,
			IsTest:               account.Test,
			CreatedAt:            account.CreatedAt,
			Campaigns:            make([]*domain.Campaign, 0, len(accountCampaigns)),
			AudienceDemographics: make(map[string][]*domain.DemographicSegment),
		}

		for _, campaign := range accountCampaigns {
			accountSnapshot.Campaigns = append(
				accountSnapshot.Campaigns,
				s.assembleCampaign(account.ID, campaign, campaignMetricIndex, creativesByCampaign, creativeMetricIndex),
			)
		}

		s.assembleDemographics(ctx, accountSnapshot, in.Demographics[account.ID])

		snapshot.Accounts = append(snapshot.Accounts, accountSnapshot)
	}

	return snapshot, nil
}

func (s *Service) assembleCampaign(
	accountID int64,
	campaign linkedindomain.Campaign,
	campaignMetricIndex map[string][]linkedindomain.AnalyticsRow,
	creativesByCampaign map[string][]linkedindomain.Creative,
	creativeMetricIndex map[string][]linkedindomain.AnalyticsRow,
) *domain.Campaign {
	campaignID := fmt.Sprint(campaign.ID)
	campaignURN := "urn:li:sponsoredCampaign:" + campaignID

	out := &domain.Campaign{
		ID:        campaign.ID,
		AccountID: accountID,
		Name:      campaign.Name,
		Status:    campaign.Status,
		Type:      campaign.Type,
		CreatedAt: campaign.CreatedAt,
		Settings: domain.CampaignSettings{
			CostType:                 campaign.CostType,
			BidStrategy:              campaign.OptimizationTargetType,
			CreativeSelection:        campaign.CreativeSelection,
			OffsiteDeliveryEnabled:   campaign.OffsiteDeliveryEnabled,
			AudienceExpansionEnabled: campaign.AudienceExpansionEnabled,
			CampaignGroup:            campaign.CampaignGroup,
			RunSchedule:              string(campaign.RunSchedule),
		},
		MetricsSummary: &domain.MetricsSummary{},
		DailyMetrics:   []*domain.DailyMetric{},
		Creatives:      []*domain.Creative{},
	}

	if campaign.DailyBudget != nil {
		out.Settings.DailyBudget = float64(campaign.DailyBudget.Amount)
		out.Settings.DailyBudgetCurrency = campaign.DailyBudget.CurrencyCode
	}
	if campaign.TotalBudget != nil {
		out.Settings.TotalBudget = float64(campaign.TotalBudget.Amount)
	}
	if campaign.UnitCost != nil {
		out.Settings.UnitCost = float64(campaign.UnitCost.Amount)
	}

	if rows := campaignMetricIndex[campaignID]; len(rows) > 0 {
		out.MetricsSummary = Aggregate(rows)
		out.DailyMetrics = DailySeries(rows)
	}

	for _, creative := range creativesByCampaign[campaignURN] {
		creativeSnapshot := &domain.Creative{
			ID:                 creative.ID,
			CampaignID:         campaign.ID,
			AccountID:          accountID,
			IntendedStatus:     creative.IntendedStatus,
			IsServing:          creative.IsServing,
			ServingHoldReasons: creative.ServingHoldReasons,
			CreatedAt:          creative.CreatedAt,
			LastModifiedAt:     creative.LastModifiedAt,
			MetricsSummary:     &domain.MetricsSummary{},
			DailyMetrics:       []*domain.DailyMetric{},
		}
		if creative.Content != nil {
			creativeSnapshot.ContentReference = creative.Content.Reference
		}
		if rows := creativeMetricIndex[creative.ID]; len(rows) > 0 {
			creativeSnapshot.MetricsSummary = Aggregate(rows)
			creativeSnapshot.DailyMetrics = DailySeries(rows)
		}

		out.Creatives = append(out.Creatives, creativeSnapshot)
	}

	return out
}

// assembleDemographics preenche os pivôs de audiência de uma conta.
// Pivô com erro vira lista vazia com warning: um recorte indisponível
// não invalida o snapshot.
func (s *Service) assembleDemographics(ctx context.Context, account *domain.Account, demographics linkedindomain.AccountDemographics) {
	resolver := urn.NewResolver()
	resolver.SetNames(demographics.URNNames)

	for pivot, result := range demographics.Pivots {
		key := strings.TrimPrefix(strings.ToLower(pivot), "member_")

		if result.Err != nil {
			log.ForContext(ctx).WithError(result.Err).WithFields(log.Fields{
				"account_id": account.ID,
				"pivot":      pivot,
			}).Warn("Pivô demográfico indisponível")
			account.AudienceDemographics[key] = []*domain.DemographicSegment{}
			continue
		}

		account.AudienceDemographics[key] = topDemographics(result.Rows, resolver)
	}
}

// SaveSnapshotFile serializa o snapshot com indentação e grava em
// disco com nome timestampado. Devolve o caminho gravado.
func SaveSnapshotFile(snapshot *domain.Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "falha ao criar o diretório de snapshots")
	}

	name := fmt.Sprintf("snapshot_%s.json", time.Now().UTC().Format("20060102T150405Z"))
	path := filepath.Join(dir, name)

	data, err := utils.Json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "falha ao serializar o snapshot")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(err, "falha ao gravar o arquivo de snapshot")
	}

	return path, nil
}
