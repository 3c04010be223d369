package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/database/postgres"
)

func newReportRepository(t *testing.T) (ReportRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewReportRepository(postgres.NewConnectionFromDB(db)), mock
}

func TestTableCounts(t *testing.T) {
	repo, mock := newReportRepository(t)

	for i, table := range reportTables {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM " + table).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(i + 1))
	}

	counts, err := repo.TableCounts(context.Background())

	require.NoError(t, err)
	assert.Len(t, counts, len(reportTables))
	assert.Equal(t, 1, counts["ad_accounts"])
	assert.Equal(t, 6, counts["audience_demographics"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveCampaignAudit(t *testing.T) {
	repo, mock := newReportRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM campaigns").
		WithArgs("ACTIVE").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "status", "offsite_delivery_enabled", "audience_expansion_enabled", "cost_type",
		}).
			AddRow(int64(555), "Prospecção Q3", "ACTIVE", true, true, "CPM").
			AddRow(int64(777), "Branding", "ACTIVE", false, false, "CPC"))

	entries, err := repo.ActiveCampaignAudit(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, []string{"LAN enabled", "Audience Expansion ON", "Maximum Delivery (CPM)"}, entries[0].Issues)
	assert.Empty(t, entries[1].Issues)
}

func TestCampaignPerformance(t *testing.T) {
	repo, mock := newReportRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM campaigns c LEFT JOIN campaign_daily_metrics").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "status", "impressions", "clicks", "spend", "leads",
		}).AddRow(int64(555), "Prospecção Q3", "ACTIVE", int64(3000), int64(150), 30.0, int64(6)))

	report, err := repo.CampaignPerformance(context.Background(), 20)

	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, 5.0, report[0].CTR)
	assert.Equal(t, 0.2, report[0].CPC)
}

func TestCreativePerformance(t *testing.T) {
	repo, mock := newReportRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM creatives cr LEFT JOIN campaigns c (.+) LEFT JOIN creative_daily_metrics").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "campaign_name", "intended_status", "content_reference", "impressions", "clicks", "spend", "leads",
		}).AddRow(
			"urn:li:sponsoredCreative:901", "Prospecção Q3", "ACTIVE",
			"urn:li:share:6800", int64(2000), int64(100), 20.0, int64(2),
		))

	report, err := repo.CreativePerformance(context.Background(), 20)

	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, "urn:li:sponsoredCreative:901", report[0].CreativeID)
	assert.Equal(t, "Prospecção Q3", report[0].CampaignName)
	assert.Equal(t, 5.0, report[0].CTR)
	assert.Equal(t, 0.2, report[0].CPC)
}

func TestVisualReport(t *testing.T) {
	repo, mock := newReportRepository(t)

	mock.ExpectQuery("SELECT date, SUM\\(impressions\\)(.+) FROM campaign_daily_metrics GROUP BY date ORDER BY date").
		WillReturnRows(sqlmock.NewRows([]string{"date", "impressions", "clicks", "spend", "conversions"}).
			AddRow("2026-08-01", int64(1000), int64(50), 10.0, int64(2)).
			AddRow("2026-08-02", int64(2000), int64(100), 20.0, int64(1)))

	mock.ExpectQuery("SELECT c.name, (.+) FROM campaign_daily_metrics m JOIN campaigns c").
		WillReturnRows(sqlmock.NewRows([]string{"name", "impressions", "clicks", "spend", "conversions"}).
			AddRow("Prospecção Q3", int64(3000), int64(150), 30.0, int64(3)))

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(impressions\\), 0\\)(.+) FROM campaign_daily_metrics").
		WillReturnRows(sqlmock.NewRows([]string{"impressions", "clicks", "spend", "conversions"}).
			AddRow(int64(3000), int64(150), 30.0, int64(3)))

	report, err := repo.VisualReport(context.Background())

	require.NoError(t, err)
	require.Len(t, report.TimeSeries, 2)
	assert.Equal(t, "2026-08-01", report.TimeSeries[0].Date)
	require.Len(t, report.CampaignComparison, 1)
	assert.Equal(t, "Prospecção Q3", report.CampaignComparison[0].Name)

	assert.Equal(t, int64(3000), report.KPIs.Impressions)
	assert.Equal(t, 5.0, report.KPIs.CTR)
	assert.Equal(t, 0.2, report.KPIs.CPC)
	assert.Equal(t, 10.0, report.KPIs.CPM)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDemographicsByAccount(t *testing.T) {
	repo, mock := newReportRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM audience_demographics").
		WithArgs(int64(101), "seniority").
		WillReturnRows(sqlmock.NewRows([]string{"segment", "impressions", "clicks", "ctr", "share_pct"}).
			AddRow("Director", int64(900), int64(18), 2.0, 90.0))

	segments, err := repo.DemographicsByAccount(context.Background(), 101, "seniority")

	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "Director", segments[0].Segment)
	assert.Equal(t, 90.0, segments[0].ShareOfImpressions)
}
