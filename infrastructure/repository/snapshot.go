package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/database/postgres"
	"github.com/vfg2006/linkedin-ads-center/internal/domain"
	"github.com/vfg2006/linkedin-ads-center/pkg/log"
)

// SnapshotRepository grava um snapshot inteiro no banco com upserts
// por chave natural. A escrita é transacional: um snapshot parcial
// nunca fica visível.
type SnapshotRepository interface {
	Persist(ctx context.Context, snapshot *domain.Snapshot) error
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{conn: conn}
}

func (r *snapshotRepository) Persist(ctx context.Context, snapshot *domain.Snapshot) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, account := range snapshot.Accounts {
			if err := r.upsertAccount(ctx, tx, account); err != nil {
				return err
			}

			for _, campaign := range account.Campaigns {
				if err := r.upsertCampaign(ctx, tx, campaign); err != nil {
					return err
				}
				if err := r.upsertCampaignDailyMetrics(ctx, tx, campaign); err != nil {
					return err
				}

				for _, creative := range campaign.Creatives {
					if err := r.upsertCreative(ctx, tx, creative); err != nil {
						return err
					}
					if err := r.upsertCreativeDailyMetrics(ctx, tx, creative); err != nil {
						return err
					}
				}
			}

			if err := r.upsertDemographics(ctx, tx, account, snapshot.DateRange); err != nil {
				return err
			}
		}

		log.ForContext(ctx).WithField("accounts", len(snapshot.Accounts)).
			Info("Snapshot persistido no banco")

		return nil
	})
}

func (r *snapshotRepository) upsertAccount(ctx context.Context, tx *sql.Tx, account *domain.Account) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("ad_accounts").
		Columns("id", "name", "status", "currency", "type", "is_test", "created_at", "fetched_at").
		Values(account.ID, account.Name, account.Status, account.Currency, account.Type, account.IsTest, account.CreatedAt, squirrel.Expr("NOW()")).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				currency = EXCLUDED.currency,
				type = EXCLUDED.type,
				is_test = EXCLUDED.is_test,
				created_at = EXCLUDED.created_at,
				fetched_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return &domain.StorageError{Op: "upsert", Table: "ad_accounts", Err: err}
	}

	return nil
}

func (r *snapshotRepository) upsertCampaign(ctx context.Context, tx *sql.Tx, campaign *domain.Campaign) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns(
			"id", "account_id", "name", "status", "type",
			"daily_budget", "daily_budget_currency", "total_budget",
			"cost_type", "unit_cost", "bid_strategy", "creative_selection",
			"offsite_delivery_enabled", "audience_expansion_enabled",
			"campaign_group", "run_schedule", "created_at", "fetched_at",
		).
		Values(
			campaign.ID, campaign.AccountID, campaign.Name, campaign.Status, campaign.Type,
			campaign.Settings.DailyBudget, campaign.Settings.DailyBudgetCurrency, campaign.Settings.TotalBudget,
			campaign.Settings.CostType, campaign.Settings.UnitCost, campaign.Settings.BidStrategy, campaign.Settings.CreativeSelection,
			campaign.Settings.OffsiteDeliveryEnabled, campaign.Settings.AudienceExpansionEnabled,
			campaign.Settings.CampaignGroup, campaign.Settings.RunSchedule, campaign.CreatedAt, squirrel.Expr("NOW()"),
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				type = EXCLUDED.type,
				daily_budget = EXCLUDED.daily_budget,
				daily_budget_currency = EXCLUDED.daily_budget_currency,
				total_budget = EXCLUDED.total_budget,
				cost_type = EXCLUDED.cost_type,
				unit_cost = EXCLUDED.unit_cost,
				bid_strategy = EXCLUDED.bid_strategy,
				creative_selection = EXCLUDED.creative_selection,
				offsite_delivery_enabled = EXCLUDED.offsite_delivery_enabled,
				audience_expansion_enabled = EXCLUDED.audience_expansion_enabled,
				campaign_group = EXCLUDED.campaign_group,
				run_schedule = EXCLUDED.run_schedule,
				created_at = EXCLUDED.created_at,
				fetched_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return &domain.StorageError{Op: "upsert", Table: "campaigns", Err: err}
	}

	return nil
}

func (r *snapshotRepository) upsertCampaignDailyMetrics(ctx context.Context, tx *sql.Tx, campaign *domain.Campaign) error {
	for _, metric := range campaign.DailyMetrics {
		query, args, err := squirrel.StatementBuilder.
			Insert("campaign_daily_metrics").
			Columns(
				"campaign_id", "date", "impressions", "clicks", "spend",
				"landing_page_clicks", "conversions", "likes", "comments",
				"shares", "follows", "leads", "opens", "sends", "ctr", "cpc", "fetched_at",
			).
			Values(
				campaign.ID, metric.Date, metric.Impressions, metric.Clicks, metric.Spend,
				metric.LandingPageClicks, metric.Conversions, metric.Likes, metric.Comments,
				metric.Shares, metric.Follows, metric.Leads, metric.Opens, metric.Sends,
				metric.CTR, metric.CPC, squirrel.Expr("NOW()"),
			).
			Suffix(dailyMetricsConflict("campaign_id")).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return &domain.StorageError{Op: "upsert", Table: "campaign_daily_metrics", Err: err}
		}
	}

	return nil
}

func (r *snapshotRepository) upsertCreative(ctx context.Context, tx *sql.Tx, creative *domain.Creative) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("creatives").
		Columns(
			"id", "campaign_id", "account_id", "intended_status", "is_serving",
			"content_reference", "serving_hold_reasons", "created_at", "last_modified_at", "fetched_at",
		).
		Values(
			creative.ID, creative.CampaignID, creative.AccountID, creative.IntendedStatus, creative.IsServing,
			creative.ContentReference, strings.Join(creative.ServingHoldReasons, ","),
			creative.CreatedAt, creative.LastModifiedAt, squirrel.Expr("NOW()"),
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				campaign_id = EXCLUDED.campaign_id,
				account_id = EXCLUDED.account_id,
				intended_status = EXCLUDED.intended_status,
				is_serving = EXCLUDED.is_serving,
				content_reference = EXCLUDED.content_reference,
				serving_hold_reasons = EXCLUDED.serving_hold_reasons,
				created_at = EXCLUDED.created_at,
				last_modified_at = EXCLUDED.last_modified_at,
				fetched_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return &domain.StorageError{Op: "upsert", Table: "creatives", Err: err}
	}

	return nil
}

func (r *snapshotRepository) upsertCreativeDailyMetrics(ctx context.Context, tx *sql.Tx, creative *domain.Creative) error {
	for _, metric := range creative.DailyMetrics {
		query, args, err := squirrel.StatementBuilder.
			Insert("creative_daily_metrics").
			Columns(
				"creative_id", "date", "impressions", "clicks", "spend",
				"landing_page_clicks", "conversions", "likes", "comments",
				"shares", "follows", "leads", "opens", "sends", "ctr", "cpc", "fetched_at",
			).
			Values(
				creative.ID, metric.Date, metric.Impressions, metric.Clicks, metric.Spend,
				metric.LandingPageClicks, metric.Conversions, metric.Likes, metric.Comments,
				metric.Shares, metric.Follows, metric.Leads, metric.Opens, metric.Sends,
				metric.CTR, metric.CPC, squirrel.Expr("NOW()"),
			).
			Suffix(dailyMetricsConflict("creative_id")).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return &domain.StorageError{Op: "upsert", Table: "creative_daily_metrics", Err: err}
		}
	}

	return nil
}

func (r *snapshotRepository) upsertDemographics(ctx context.Context, tx *sql.Tx, account *domain.Account, dateRange domain.DateRange) error {
	for pivotType, segments := range account.AudienceDemographics {
		for _, segment := range segments {
			query, args, err := squirrel.StatementBuilder.
				Insert("audience_demographics").
				Columns(
					"account_id", "pivot_type", "segment", "date_start", "date_end",
					"impressions", "clicks", "ctr", "share_pct", "fetched_at",
				).
				Values(
					account.ID, pivotType, segment.Segment, dateRange.Start, dateRange.End,
					segment.Impressions, segment.Clicks, segment.CTR, segment.ShareOfImpressions,
					squirrel.Expr("NOW()"),
				).
				Suffix(`
					ON CONFLICT (account_id, pivot_type, segment, date_start) DO UPDATE SET
						date_end = EXCLUDED.date_end,
						impressions = EXCLUDED.impressions,
						clicks = EXCLUDED.clicks,
						ctr = EXCLUDED.ctr,
						share_pct = EXCLUDED.share_pct,
						fetched_at = NOW()
				`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return &domain.StorageError{Op: "upsert", Table: "audience_demographics", Err: err}
			}
		}
	}

	return nil
}

// dailyMetricsConflict monta a cláusula de upsert compartilhada pelas
// duas tabelas de métricas diárias, que têm as mesmas colunas fora a
// chave.
func dailyMetricsConflict(owner string) string {
	return `
		ON CONFLICT (` + owner + `, date) DO UPDATE SET
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			spend = EXCLUDED.spend,
			landing_page_clicks = EXCLUDED.landing_page_clicks,
			conversions = EXCLUDED.conversions,
			likes = EXCLUDED.likes,
			comments = EXCLUDED.comments,
			shares = EXCLUDED.shares,
			follows = EXCLUDED.follows,
			leads = EXCLUDED.leads,
			opens = EXCLUDED.opens,
			sends = EXCLUDED.sends,
			ctr = EXCLUDED.ctr,
			cpc = EXCLUDED.cpc,
			fetched_at = NOW()
	`
}
