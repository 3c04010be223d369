package assembling

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/urn"
)

func TestAggregate(t *testing.T) {
	t.Run("Deve somar contadores e derivar razões sobre as somas", func(t *testing.T) {
		rows := []linkedindomain.AnalyticsRow{
			{Impressions: 1000, Clicks: 50, Cost: 10.00, Conversions: 2, Leads: 4},
			{Impressions: 2000, Clicks: 100, Cost: 20.00, Conversions: 1, Leads: 2},
		}

		summary := Aggregate(rows)

		assert.Equal(t, int64(3000), summary.Impressions)
		assert.Equal(t, int64(150), summary.Clicks)
		assert.Equal(t, 30.00, summary.Spend)
		assert.Equal(t, 5.0, summary.CTR)
		assert.Equal(t, 0.2, summary.CPC)
		assert.Equal(t, 10.0, summary.CPM)
		assert.Equal(t, 10.0, summary.CostPerConversion)
		assert.Equal(t, 5.0, summary.CostPerLead)
	})

	t.Run("Deve zerar razões quando os denominadores são zero", func(t *testing.T) {
		summary := Aggregate([]linkedindomain.AnalyticsRow{{Cost: 12.34}})

		assert.Zero(t, summary.CTR)
		assert.Zero(t, summary.CPC)
		assert.Zero(t, summary.CPM)
		assert.Zero(t, summary.CostPerConversion)
		assert.Zero(t, summary.CostPerLead)
		assert.Equal(t, 12.34, summary.Spend)
	})

	t.Run("Deve arredondar o CTR com quatro casas", func(t *testing.T) {
		summary := Aggregate([]linkedindomain.AnalyticsRow{{Impressions: 3000, Clicks: 1}})

		assert.Equal(t, 0.0333, summary.CTR)
	})
}

func TestDailySeries(t *testing.T) {
	day := func(y, m, d int) *linkedindomain.DateRange {
		return &linkedindomain.DateRange{Start: linkedindomain.DateBound{Year: y, Month: m, Day: d}}
	}

	t.Run("Deve agrupar por dia e ordenar ascendente", func(t *testing.T) {
		rows := []linkedindomain.AnalyticsRow{
			{DateRange: day(2026, 8, 20), Impressions: 500, Clicks: 10, Cost: 5},
			{DateRange: day(2026, 8, 18), Impressions: 300, Clicks: 6, Cost: 3},
			{DateRange: day(2026, 8, 20), Impressions: 500, Clicks: 10, Cost: 5},
		}

		series := DailySeries(rows)

		assert.Len(t, series, 2)
		assert.Equal(t, "2026-08-18", series[0].Date)
		assert.Equal(t, "2026-08-20", series[1].Date)
		assert.Equal(t, int64(1000), series[1].Impressions)
		assert.Equal(t, 10.0, series[1].Spend)
		assert.Equal(t, 2.0, series[1].CTR)
		assert.Equal(t, 0.5, series[1].CPC)
	})

	t.Run("Deve ignorar linhas sem dateRange", func(t *testing.T) {
		series := DailySeries([]linkedindomain.AnalyticsRow{{Impressions: 100}})

		assert.Empty(t, series)
	})
}

func TestTopDemographics(t *testing.T) {
	t.Run("Deve manter os dez maiores segmentos por impressões", func(t *testing.T) {
		rows := make([]linkedindomain.AnalyticsRow, 0, 15)
		for i := 1; i <= 15; i++ {
			rows = append(rows, linkedindomain.AnalyticsRow{
				PivotValues: []string{fmt.Sprintf("urn:li:title:%d00000", i)},
				Impressions: int64(i * 100),
				Clicks:      int64(i),
			})
		}

		segments := topDemographics(rows, urn.NewResolver())

		assert.Len(t, segments, 10)
		assert.Equal(t, int64(1500), segments[0].Impressions)
		assert.Equal(t, int64(600), segments[9].Impressions)
	})

	t.Run("Deve calcular a fatia sobre o pivô inteiro, não só o corte", func(t *testing.T) {
		rows := []linkedindomain.AnalyticsRow{
			{PivotValues: []string{"urn:li:seniority:6"}, Impressions: 750, Clicks: 15},
			{PivotValues: []string{"urn:li:seniority:4"}, Impressions: 250, Clicks: 5},
		}

		segments := topDemographics(rows, urn.NewResolver())

		assert.Equal(t, "Director", segments[0].Segment)
		assert.Equal(t, "urn:li:seniority:6", segments[0].SegmentURN)
		assert.Equal(t, 75.0, segments[0].ShareOfImpressions)
		assert.Equal(t, 2.0, segments[0].CTR)
		assert.Equal(t, 25.0, segments[1].ShareOfImpressions)
	})
}
