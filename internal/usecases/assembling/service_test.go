package assembling

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-center/internal/domain"
	"github.com/vfg2006/linkedin-ads-center/internal/usecases/validating"
	"github.com/vfg2006/linkedin-ads-center/pkg/log"
	"github.com/vfg2006/linkedin-ads-center/pkg/utils"
)

func init() {
	log.SetupTestLogger()
}

func testInput() Input {
	start, _ := time.Parse(time.DateOnly, "2026-05-30")
	end, _ := time.Parse(time.DateOnly, "2026-08-28")

	return Input{
		Accounts: []json.RawMessage{
			json.RawMessage(`{"id":101,"name":"Conta A","status":"ACTIVE","currency":"BRL","type":"BUSINESS"}`),
			json.RawMessage(`{"id":202,"name":"Conta B","status":"ACTIVE","currency":"USD","type":"BUSINESS"}`),
		},
		Campaigns: []json.RawMessage{
			json.RawMessage(`{"id":555,"name":"Prospecção Q3","status":"ACTIVE","type":"SPONSORED_UPDATES",
				"dailyBudget":{"amount":"150.00","currencyCode":"BRL"},
				"costType":"CPM","optimizationTargetType":"MAX_DELIVERY",
				"audienceExpansionEnabled":true,"offsiteDeliveryEnabled":true,
				"_account_id":101}`),
			json.RawMessage(`{"id":777,"name":"Branding","status":"PAUSED","_account_id":202}`),
		},
		Creatives: []json.RawMessage{
			json.RawMessage(`{"id":"urn:li:sponsoredCreative:901","campaign":"urn:li:sponsoredCampaign:555",
				"intendedStatus":"ACTIVE","isServing":true,"content":{"reference":"urn:li:share:6001"}}`),
		},
		CampaignMetrics: []json.RawMessage{
			json.RawMessage(`{"pivotValues":["urn:li:sponsoredCampaign:555"],
				"dateRange":{"start":{"year":2026,"month":8,"day":20}},
				"impressions":1000,"clicks":50,"costInLocalCurrency":"10.00"}`),
			json.RawMessage(`{"pivotValues":["urn:li:sponsoredCampaign:555"],
				"dateRange":{"start":{"year":2026,"month":8,"day":21}},
				"impressions":2000,"clicks":100,"costInLocalCurrency":"20.00"}`),
		},
		CreativeMetrics: []json.RawMessage{
			json.RawMessage(`{"pivotValues":["urn:li:sponsoredCreative:901"],
				"dateRange":{"start":{"year":2026,"month":8,"day":20}},
				"impressions":400,"clicks":8,"costInLocalCurrency":"4.00"}`),
		},
		Demographics: map[int64]linkedindomain.AccountDemographics{
			101: {
				Pivots: map[string]linkedindomain.PivotResult{
					"MEMBER_SENIORITY": {Rows: []linkedindomain.AnalyticsRow{
						{PivotValues: []string{"urn:li:seniority:6"}, Impressions: 900, Clicks: 18},
						{PivotValues: []string{"urn:li:seniority:4"}, Impressions: 100, Clicks: 2},
					}},
				},
			},
		},
		Start: start,
		End:   end,
	}
}

func TestAssemble(t *testing.T) {
	service := NewService(validating.New(false))

	t.Run("Deve montar a hierarquia conta, campanha e criativo", func(t *testing.T) {
		snapshot, err := service.Assemble(context.Background(), testInput())

		require.NoError(t, err)
		require.Len(t, snapshot.Accounts, 2)

		assert.Equal(t, "2026-05-30", snapshot.DateRange.Start)
		assert.Equal(t, "2026-08-28", snapshot.DateRange.End)
		assert.Equal(t, 90, snapshot.DateRange.Days)

		contaA := snapshot.Accounts[0]
		require.Len(t, contaA.Campaigns, 1)

		campaign := contaA.Campaigns[0]
		assert.Equal(t, int64(555), campaign.ID)
		assert.Equal(t, int64(101), campaign.AccountID)
		assert.Equal(t, 150.0, campaign.Settings.DailyBudget)
		assert.Equal(t, "BRL", campaign.Settings.DailyBudgetCurrency)
		assert.Equal(t, "MAX_DELIVERY", campaign.Settings.BidStrategy)
		assert.True(t, campaign.Settings.AudienceExpansionEnabled)

		assert.Equal(t, int64(3000), campaign.MetricsSummary.Impressions)
		assert.Equal(t, 30.0, campaign.MetricsSummary.Spend)
		assert.Equal(t, 5.0, campaign.MetricsSummary.CTR)
		assert.Len(t, campaign.DailyMetrics, 2)

		require.Len(t, campaign.Creatives, 1)
		creative := campaign.Creatives[0]
		assert.Equal(t, "urn:li:sponsoredCreative:901", creative.ID)
		assert.Equal(t, "urn:li:share:6001", creative.ContentReference)
		assert.Equal(t, int64(400), creative.MetricsSummary.Impressions)

		contaB := snapshot.Accounts[1]
		require.Len(t, contaB.Campaigns, 1)
		assert.Equal(t, int64(777), contaB.Campaigns[0].ID)
	})

	t.Run("Deve resolver e ranquear a demografia da conta", func(t *testing.T) {
		snapshot, err := service.Assemble(context.Background(), testInput())

		require.NoError(t, err)

		demographics := snapshot.Accounts[0].AudienceDemographics
		require.Contains(t, demographics, "seniority")
		require.Len(t, demographics["seniority"], 2)

		assert.Equal(t, "Director", demographics["seniority"][0].Segment)
		assert.Equal(t, 90.0, demographics["seniority"][0].ShareOfImpressions)
	})

	t.Run("Deve usar todas as campanhas em toda conta quando o lote inteiro vem sem marcação", func(t *testing.T) {
		in := testInput()
		in.Campaigns = []json.RawMessage{
			json.RawMessage(`{"id":555,"name":"Prospecção Q3","status":"ACTIVE"}`),
			json.RawMessage(`{"id":777,"name":"Branding","status":"PAUSED"}`),
		}

		snapshot, err := service.Assemble(context.Background(), in)

		require.NoError(t, err)
		assert.Len(t, snapshot.Accounts[0].Campaigns, 2)
		assert.Len(t, snapshot.Accounts[1].Campaigns, 2)
	})

	t.Run("Deve descartar campanhas órfãs quando o lote é parcialmente marcado", func(t *testing.T) {
		in := testInput()
		in.Campaigns = []json.RawMessage{
			json.RawMessage(`{"id":555,"name":"Prospecção Q3","status":"ACTIVE","_account_id":101}`),
			json.RawMessage(`{"id":777,"name":"Branding","status":"PAUSED"}`),
		}

		snapshot, err := service.Assemble(context.Background(), in)

		require.NoError(t, err)
		assert.Len(t, snapshot.Accounts[0].Campaigns, 1)
		assert.Empty(t, snapshot.Accounts[1].Campaigns)
	})

	t.Run("Deve emitir pivô com erro como lista vazia", func(t *testing.T) {
		in := testInput()
		in.Demographics = map[int64]linkedindomain.AccountDemographics{
			101: {
				Pivots: map[string]linkedindomain.PivotResult{
					"MEMBER_COUNTRY_V2": {Err: assert.AnError},
				},
			},
		}

		snapshot, err := service.Assemble(context.Background(), in)

		require.NoError(t, err)
		assert.Empty(t, snapshot.Accounts[0].AudienceDemographics["country_v2"])
		assert.Contains(t, snapshot.Accounts[0].AudienceDemographics, "country_v2")
	})
}

func TestSaveSnapshotFile(t *testing.T) {
	service := NewService(validating.New(false))

	snapshot, err := service.Assemble(context.Background(), testInput())
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := SaveSnapshotFile(snapshot, dir)

	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	restored := &domain.Snapshot{}
	require.NoError(t, utils.Json.Unmarshal(data, restored))

	assert.Equal(t, snapshot.DateRange, restored.DateRange)
	require.Len(t, restored.Accounts, 2)
	assert.Equal(t, int64(3000), restored.Accounts[0].Campaigns[0].MetricsSummary.Impressions)
}
