package repository

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/database/postgres"
	"github.com/vfg2006/linkedin-ads-center/internal/domain"
	"github.com/vfg2006/linkedin-ads-center/pkg/utils"
)

// reportTables são as tabelas contadas pelo relatório de status.
var reportTables = []string{
	"ad_accounts",
	"campaigns",
	"creatives",
	"campaign_daily_metrics",
	"creative_daily_metrics",
	"audience_demographics",
}

// ReportRepository responde as consultas de leitura da camada de
// relatórios, sempre sobre o que já foi persistido.
type ReportRepository interface {
	TableCounts(ctx context.Context) (map[string]int, error)
	ActiveCampaignAudit(ctx context.Context) ([]*domain.CampaignAuditEntry, error)
	CampaignPerformance(ctx context.Context, limit uint64) ([]*domain.CampaignPerformanceRow, error)
	CreativePerformance(ctx context.Context, limit uint64) ([]*domain.CreativePerformanceRow, error)
	VisualReport(ctx context.Context) (*domain.VisualReport, error)
	DemographicsByAccount(ctx context.Context, accountID int64, pivotType string) ([]*domain.DemographicSegment, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{conn: conn}
}

func (r *reportRepository) TableCounts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(reportTables))

	for _, table := range reportTables {
		query, _, err := squirrel.Select("COUNT(*)").From(table).ToSql()
		if err != nil {
			return nil, err
		}

		var count int
		if err := r.conn.QueryRowContext(ctx, query).Scan(&count); err != nil {
			return nil, &domain.StorageError{Op: "count", Table: table, Err: err}
		}

		counts[table] = count
	}

	return counts, nil
}

// ActiveCampaignAudit lista campanhas ativas com configurações que
// costumam inflar custo sem retorno.
func (r *reportRepository) ActiveCampaignAudit(ctx context.Context) ([]*domain.CampaignAuditEntry, error) {
	query, args, err := squirrel.
		Select("id", "name", "status", "offsite_delivery_enabled", "audience_expansion_enabled", "cost_type").
		From("campaigns").
		Where(squirrel.Eq{"status": "ACTIVE"}).
		OrderBy("name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &domain.StorageError{Op: "select", Table: "campaigns", Err: err}
	}
	defer rows.Close()

	entries := make([]*domain.CampaignAuditEntry, 0)
	for rows.Next() {
		var (
			entry             domain.CampaignAuditEntry
			offsiteDelivery   bool
			audienceExpansion bool
			costType          string
		)

		if err := rows.Scan(&entry.CampaignID, &entry.Name, &entry.Status, &offsiteDelivery, &audienceExpansion, &costType); err != nil {
			return nil, &domain.StorageError{Op: "scan", Table: "campaigns", Err: err}
		}

		entry.Issues = []string{}
		if offsiteDelivery {
			entry.Issues = append(entry.Issues, "LAN enabled")
		}
		if audienceExpansion {
			entry.Issues = append(entry.Issues, "Audience Expansion ON")
		}
		if costType == "CPM" {
			entry.Issues = append(entry.Issues, "Maximum Delivery (CPM)")
		}

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "select", Table: "campaigns", Err: err}
	}

	return entries, nil
}

// CampaignPerformance soma a série diária por campanha e ordena por
// gasto descendente. As razões são derivadas das somas, não somadas.
func (r *reportRepository) CampaignPerformance(ctx context.Context, limit uint64) ([]*domain.CampaignPerformanceRow, error) {
	query, args, err := squirrel.
		Select(
			"c.id", "c.name", "c.status",
			"COALESCE(SUM(m.impressions), 0)",
			"COALESCE(SUM(m.clicks), 0)",
			"COALESCE(SUM(m.spend), 0)",
			"COALESCE(SUM(m.leads), 0)",
		).
		From("campaigns c").
		LeftJoin("campaign_daily_metrics m ON m.campaign_id = c.id").
		GroupBy("c.id", "c.name", "c.status").
		OrderBy("SUM(m.spend) DESC NULLS LAST").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &domain.StorageError{Op: "select", Table: "campaign_daily_metrics", Err: err}
	}
	defer rows.Close()

	report := make([]*domain.CampaignPerformanceRow, 0)
	for rows.Next() {
		row := &domain.CampaignPerformanceRow{}
		if err := rows.Scan(&row.CampaignID, &row.Name, &row.Status, &row.Impressions, &row.Clicks, &row.Spend, &row.Leads); err != nil {
			return nil, &domain.StorageError{Op: "scan", Table: "campaign_daily_metrics", Err: err}
		}

		if row.Impressions > 0 {
			row.CTR = utils.Round(float64(row.Clicks)/float64(row.Impressions)*100, 4)
		}
		if row.Clicks > 0 {
			row.CPC = utils.RoundWithTwoDecimalPlace(row.Spend / float64(row.Clicks))
		}
		row.Spend = utils.RoundWithTwoDecimalPlace(row.Spend)

		report = append(report, row)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "select", Table: "campaign_daily_metrics", Err: err}
	}

	return report, nil
}

// CreativePerformance soma a série diária por criativo, com o nome da
// campanha dona via JOIN, ordenada por gasto descendente.
func (r *reportRepository) CreativePerformance(ctx context.Context, limit uint64) ([]*domain.CreativePerformanceRow, error) {
	query, args, err := squirrel.
		Select(
			"cr.id",
			"COALESCE(c.name, '')",
			"COALESCE(cr.intended_status, '')",
			"COALESCE(cr.content_reference, '')",
			"COALESCE(SUM(m.impressions), 0)",
			"COALESCE(SUM(m.clicks), 0)",
			"COALESCE(SUM(m.spend), 0)",
			"COALESCE(SUM(m.leads), 0)",
		).
		From("creatives cr").
		LeftJoin("campaigns c ON c.id = cr.campaign_id").
		LeftJoin("creative_daily_metrics m ON m.creative_id = cr.id").
		GroupBy("cr.id", "c.name", "cr.intended_status", "cr.content_reference").
		OrderBy("SUM(m.spend) DESC NULLS LAST").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &domain.StorageError{Op: "select", Table: "creative_daily_metrics", Err: err}
	}
	defer rows.Close()

	report := make([]*domain.CreativePerformanceRow, 0)
	for rows.Next() {
		row := &domain.CreativePerformanceRow{}
		if err := rows.Scan(
			&row.CreativeID, &row.CampaignName, &row.IntendedStatus, &row.ContentReference,
			&row.Impressions, &row.Clicks, &row.Spend, &row.Leads,
		); err != nil {
			return nil, &domain.StorageError{Op: "scan", Table: "creative_daily_metrics", Err: err}
		}

		if row.Impressions > 0 {
			row.CTR = utils.Round(float64(row.Clicks)/float64(row.Impressions)*100, 4)
		}
		if row.Clicks > 0 {
			row.CPC = utils.RoundWithTwoDecimalPlace(row.Spend / float64(row.Clicks))
		}
		row.Spend = utils.RoundWithTwoDecimalPlace(row.Spend)

		report = append(report, row)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "select", Table: "creative_daily_metrics", Err: err}
	}

	return report, nil
}

// VisualReport monta os três blocos do dashboard sobre a série diária
// de campanhas: série temporal, comparação e KPIs globais.
func (r *reportRepository) VisualReport(ctx context.Context) (*domain.VisualReport, error) {
	report := &domain.VisualReport{
		TimeSeries:         make([]*domain.VisualPoint, 0),
		CampaignComparison: make([]*domain.VisualComparisonRow, 0),
	}

	query, _, err := squirrel.
		Select("date", "SUM(impressions)", "SUM(clicks)", "SUM(spend)", "SUM(conversions)").
		From("campaign_daily_metrics").
		GroupBy("date").
		OrderBy("date").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, &domain.StorageError{Op: "select", Table: "campaign_daily_metrics", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		point := &domain.VisualPoint{}
		if err := rows.Scan(&point.Date, &point.Impressions, &point.Clicks, &point.Spend, &point.Conversions); err != nil {
			return nil, &domain.StorageError{Op: "scan", Table: "campaign_daily_metrics", Err: err}
		}
		point.Spend = utils.RoundWithTwoDecimalPlace(point.Spend)
		report.TimeSeries = append(report.TimeSeries, point)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "select", Table: "campaign_daily_metrics", Err: err}
	}

	query, _, err = squirrel.
		Select("c.name", "SUM(m.impressions)", "SUM(m.clicks)", "SUM(m.spend)", "SUM(m.conversions)").
		From("campaign_daily_metrics m").
		Join("campaigns c ON c.id = m.campaign_id").
		GroupBy("m.campaign_id", "c.name").
		OrderBy("SUM(m.spend) DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	comparisonRows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, &domain.StorageError{Op: "select", Table: "campaign_daily_metrics", Err: err}
	}
	defer comparisonRows.Close()

	for comparisonRows.Next() {
		row := &domain.VisualComparisonRow{}
		if err := comparisonRows.Scan(&row.Name, &row.Impressions, &row.Clicks, &row.Spend, &row.Conversions); err != nil {
			return nil, &domain.StorageError{Op: "scan", Table: "campaign_daily_metrics", Err: err}
		}
		row.Spend = utils.RoundWithTwoDecimalPlace(row.Spend)
		report.CampaignComparison = append(report.CampaignComparison, row)
	}
	if err := comparisonRows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "select", Table: "campaign_daily_metrics", Err: err}
	}

	query, _, err = squirrel.
		Select(
			"COALESCE(SUM(impressions), 0)",
			"COALESCE(SUM(clicks), 0)",
			"COALESCE(SUM(spend), 0)",
			"COALESCE(SUM(conversions), 0)",
		).
		From("campaign_daily_metrics").
		ToSql()
	if err != nil {
		return nil, err
	}

	kpis := &report.KPIs
	if err := r.conn.QueryRowContext(ctx, query).Scan(&kpis.Impressions, &kpis.Clicks, &kpis.Spend, &kpis.Conversions); err != nil {
		return nil, &domain.StorageError{Op: "scan", Table: "campaign_daily_metrics", Err: err}
	}

	if kpis.Impressions > 0 {
		kpis.CTR = utils.Round(float64(kpis.Clicks)/float64(kpis.Impressions)*100, 4)
		kpis.CPM = utils.RoundWithTwoDecimalPlace(kpis.Spend / float64(kpis.Impressions) * 1000)
	}
	if kpis.Clicks > 0 {
		kpis.CPC = utils.RoundWithTwoDecimalPlace(kpis.Spend / float64(kpis.Clicks))
	}
	kpis.Spend = utils.RoundWithTwoDecimalPlace(kpis.Spend)

	return report, nil
}

// DemographicsByAccount devolve os segmentos persistidos de um pivô de
// uma conta, maiores impressões primeiro.
func (r *reportRepository) DemographicsByAccount(ctx context.Context, accountID int64, pivotType string) ([]*domain.DemographicSegment, error) {
	query, args, err := squirrel.
		Select("segment", "impressions", "clicks", "ctr", "share_pct").
		From("audience_demographics").
		Where(squirrel.Eq{"account_id": accountID, "pivot_type": pivotType}).
		OrderBy("impressions DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &domain.StorageError{Op: "select", Table: "audience_demographics", Err: err}
	}
	defer rows.Close()

	segments := make([]*domain.DemographicSegment, 0)
	for rows.Next() {
		segment := &domain.DemographicSegment{}
		if err := rows.Scan(&segment.Segment, &segment.Impressions, &segment.Clicks, &segment.CTR, &segment.ShareOfImpressions); err != nil {
			return nil, &domain.StorageError{Op: "scan", Table: "audience_demographics", Err: err}
		}
		segments = append(segments, segment)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "select", Table: "audience_demographics", Err: err}
	}

	return segments, nil
}
