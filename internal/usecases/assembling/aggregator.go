package assembling

import (
	"sort"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/urn"
	"github.com/vfg2006/linkedin-ads-center/internal/domain"
	"github.com/vfg2006/linkedin-ads-center/pkg/utils"
)

// topSegments é o corte de segmentos demográficos mantidos por pivô.
const topSegments = 10

// Aggregate soma os contadores de todas as linhas e deriva as razões
// por cima das somas. Derivar por linha e somar daria outro número.
func Aggregate(rows []linkedindomain.AnalyticsRow) *domain.MetricsSummary {
	summary := &domain.MetricsSummary{}

	for _, row := range rows {
		summary.Impressions += row.Impressions
		summary.Clicks += row.Clicks
		summary.Spend += float64(row.Cost)
		summary.LandingPageClicks += row.LandingPageClicks
		summary.Conversions += row.Conversions
		summary.Likes += row.Likes
		summary.Comments += row.Comments
		summary.Shares += row.Shares
		summary.Follows += row.Follows
		summary.Leads += row.Leads
		summary.Opens += row.Opens
		summary.Sends += row.Sends
	}

	if summary.Impressions > 0 {
		summary.CTR = utils.Round(float64(summary.Clicks)/float64(summary.Impressions)*100, 4)
		summary.CPM = utils.RoundWithTwoDecimalPlace(summary.Spend / float64(summary.Impressions) * 1000)
	}
	if summary.Clicks > 0 {
		summary.CPC = utils.RoundWithTwoDecimalPlace(summary.Spend / float64(summary.Clicks))
	}
	if summary.Conversions > 0 {
		summary.CostPerConversion = utils.RoundWithTwoDecimalPlace(summary.Spend / float64(summary.Conversions))
	}
	if summary.Leads > 0 {
		summary.CostPerLead = utils.RoundWithTwoDecimalPlace(summary.Spend / float64(summary.Leads))
	}

	summary.Spend = utils.RoundWithTwoDecimalPlace(summary.Spend)

	return summary
}

// DailySeries colapsa as linhas em uma série diária ordenada por data
// ascendente. Linhas sem dateRange não têm bucket e são ignoradas.
func DailySeries(rows []linkedindomain.AnalyticsRow) []*domain.DailyMetric {
	daily := make(map[string]*domain.DailyMetric)

	for _, row := range rows {
		if row.DateRange == nil || row.DateRange.Start.IsZero() {
			continue
		}

		key := row.DateRange.Start.Key()

		d, ok := daily[key]
		if !ok {
			d = &domain.DailyMetric{Date: key}
			daily[key] = d
		}

		d.Impressions += row.Impressions
		d.Clicks += row.Clicks
		d.Spend += float64(row.Cost)
		d.LandingPageClicks += row.LandingPageClicks
		d.Conversions += row.Conversions
		d.Likes += row.Likes
		d.Comments += row.Comments
		d.Shares += row.Shares
		d.Follows += row.Follows
		d.Leads += row.Leads
		d.Opens += row.Opens
		d.Sends += row.Sends
	}

	series := make([]*domain.DailyMetric, 0, len(daily))
	for _, d := range daily {
		d.Spend = utils.RoundWithTwoDecimalPlace(d.Spend)
		if d.Impressions > 0 {
			d.CTR = utils.Round(float64(d.Clicks)/float64(d.Impressions)*100, 4)
		}
		if d.Clicks > 0 {
			d.CPC = utils.RoundWithTwoDecimalPlace(d.Spend / float64(d.Clicks))
		}
		series = append(series, d)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	return series
}

// topDemographics ranqueia os segmentos de um pivô por impressões e
// mantém os dez primeiros. A fatia de impressões é calculada sobre o
// total do pivô inteiro, não só do corte.
func topDemographics(rows []linkedindomain.AnalyticsRow, resolver *urn.Resolver) []*domain.DemographicSegment {
	sorted := make([]linkedindomain.AnalyticsRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Impressions > sorted[j].Impressions
	})

	var totalImpressions int64
	for _, row := range sorted {
		totalImpressions += row.Impressions
	}

	top := sorted
	if len(top) > topSegments {
		top = top[:topSegments]
	}

	segments := make([]*domain.DemographicSegment, 0, len(top))
	for _, row := range top {
		rawSegment := "?"
		if len(row.PivotValues) > 0 {
			rawSegment = row.PivotValues[0]
		}

		segment := &domain.DemographicSegment{
			Segment:     resolver.Resolve(rawSegment),
			SegmentURN:  rawSegment,
			Impressions: row.Impressions,
			Clicks:      row.Clicks,
		}
		if row.Impressions > 0 {
			segment.CTR = utils.RoundWithTwoDecimalPlace(float64(row.Clicks) / float64(row.Impressions) * 100)
		}
		if totalImpressions > 0 {
			segment.ShareOfImpressions = utils.Round(float64(row.Impressions)/float64(totalImpressions)*100, 1)
		}

		segments = append(segments, segment)
	}

	return segments
}
