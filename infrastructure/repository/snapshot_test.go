package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/database/postgres"
	"github.com/vfg2006/linkedin-ads-center/internal/domain"
)

func newSnapshotRepository(t *testing.T) (SnapshotRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSnapshotRepository(postgres.NewConnectionFromDB(db)), mock
}

func sampleSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		GeneratedAt: "2026-08-28T12:00:00Z",
		DateRange:   domain.DateRange{Start: "2026-05-30", End: "2026-08-28", Days: 90},
		Accounts: []*domain.Account{
			{
				ID:       101,
				Name:     "Conta A",
				Status:   "ACTIVE",
				Currency: "BRL",
				Campaigns: []*domain.Campaign{
					{
						ID:             555,
						AccountID:      101,
						Name:           "Prospecção Q3",
						Status:         "ACTIVE",
						MetricsSummary: &domain.MetricsSummary{},
						DailyMetrics: []*domain.DailyMetric{
							{Date: "2026-08-20", Impressions: 1000, Clicks: 50, Spend: 10},
						},
						Creatives: []*domain.Creative{
							{
								ID:             "urn:li:sponsoredCreative:901",
								CampaignID:     555,
								AccountID:      101,
								MetricsSummary: &domain.MetricsSummary{},
								DailyMetrics: []*domain.DailyMetric{
									{Date: "2026-08-20", Impressions: 400, Clicks: 8, Spend: 4},
								},
							},
						},
					},
				},
				AudienceDemographics: map[string][]*domain.DemographicSegment{
					"seniority": {
						{Segment: "Director", SegmentURN: "urn:li:seniority:6", Impressions: 900, Clicks: 18, CTR: 2, ShareOfImpressions: 90},
					},
				},
			},
		},
	}
}

func TestPersist(t *testing.T) {
	t.Run("Deve gravar a hierarquia inteira em uma transação", func(t *testing.T) {
		repo, mock := newSnapshotRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec("(?s)INSERT INTO ad_accounts (.+)ON CONFLICT \\(id\\) DO UPDATE").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("(?s)INSERT INTO campaigns (.+)ON CONFLICT \\(id\\) DO UPDATE").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("(?s)INSERT INTO campaign_daily_metrics (.+)ON CONFLICT \\(campaign_id, date\\) DO UPDATE").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("(?s)INSERT INTO creatives (.+)ON CONFLICT \\(id\\) DO UPDATE").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("(?s)INSERT INTO creative_daily_metrics (.+)ON CONFLICT \\(creative_id, date\\) DO UPDATE").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("(?s)INSERT INTO audience_demographics (.+)ON CONFLICT \\(account_id, pivot_type, segment, date_start\\) DO UPDATE").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Persist(context.Background(), sampleSnapshot())

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Deve desfazer a transação quando um upsert falha", func(t *testing.T) {
		repo, mock := newSnapshotRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO ad_accounts").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO campaigns").
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.Persist(context.Background(), sampleSnapshot())

		require.Error(t, err)

		storageErr := &domain.StorageError{}
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "campaigns", storageErr.Table)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
