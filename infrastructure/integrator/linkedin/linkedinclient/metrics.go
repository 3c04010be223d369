package linkedinclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-center/pkg/utils"
)

// metricsBatchSize é o limite de URNs por chamada ao endpoint de
// analytics imposto pelo LinkedIn.
const metricsBatchSize = 20

// analyticsFields são os contadores solicitados em toda consulta de
// métricas. Mudar esta lista muda o shape persistido.
const analyticsFields = "impressions,clicks,costInLocalCurrency,landingPageClicks," +
	"externalWebsiteConversions,likes,comments,shares,follows,oneClickLeads," +
	"opens,sends,dateRange,pivotValues"

// DemographicPivots são os recortes de audiência coletados por conta.
var DemographicPivots = []string{
	"MEMBER_JOB_TITLE",
	"MEMBER_JOB_FUNCTION",
	"MEMBER_INDUSTRY",
	"MEMBER_SENIORITY",
	"MEMBER_COMPANY_SIZE",
	"MEMBER_COUNTRY_V2",
}

func formatDateRange(start, end time.Time) string {
	return fmt.Sprintf(
		"dateRange=(start:(year:%d,month:%d,day:%d),end:(year:%d,month:%d,day:%d))",
		start.Year(), int(start.Month()), start.Day(),
		end.Year(), int(end.Month()), end.Day(),
	)
}

func urnList(prefix string, ids []string) string {
	urns := make([]string, 0, len(ids))
	for _, id := range ids {
		urns = append(urns, fmt.Sprintf("urn%%3Ali%%3A%s%%3A%s", prefix, id))
	}

	return "List(" + strings.Join(urns, ",") + ")"
}

// fetchAnalyticsBatched consulta o endpoint de analytics em lotes de
// até 20 URNs, com os lotes em paralelo. Um lote com erro derruba a
// consulta inteira: métricas parciais de uma entidade corrompem o
// agregado. A decodificação fica a cargo do validador.
func (c *LinkedInClient) fetchAnalyticsBatched(
	ctx context.Context,
	pivot string,
	urnParam string,
	urnPrefix string,
	ids []string,
	start, end time.Time,
) ([]json.RawMessage, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var batches [][]string
	for i := 0; i < len(ids); i += metricsBatchSize {
		top := i + metricsBatchSize
		if top > len(ids) {
			top = len(ids)
		}
		batches = append(batches, ids[i:top])
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		rows     []json.RawMessage
		firstErr error
	)

	for _, batch := range batches {
		wg.Add(1)

		go func(batch []string) {
			defer wg.Done()

			query := fmt.Sprintf(
				"q=analytics&pivot=%s&timeGranularity=DAILY&%s&%s=%s&fields=%s",
				pivot,
				formatDateRange(start, end),
				urnParam,
				urnList(urnPrefix, batch),
				analyticsFields,
			)

			elements, err := c.GetAllPages(ctx, "/adAnalytics", query)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}

			rows = append(rows, elements...)
		}(batch)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return rows, nil
}

// FetchCampaignMetrics busca a série diária de métricas das campanhas
// informadas dentro do período.
func (c *LinkedInClient) FetchCampaignMetrics(ctx context.Context, campaignIDs []string, start, end time.Time) ([]json.RawMessage, error) {
	return c.fetchAnalyticsBatched(ctx, "CAMPAIGN", "campaigns", "sponsoredCampaign", campaignIDs, start, end)
}

// FetchCreativeMetrics busca a série diária de métricas dos criativos
// informados dentro do período.
func (c *LinkedInClient) FetchCreativeMetrics(ctx context.Context, creativeIDs []string, start, end time.Time) ([]json.RawMessage, error) {
	return c.fetchAnalyticsBatched(ctx, "CREATIVE", "creatives", "sponsoredCreative", creativeIDs, start, end)
}

// FetchDemographics consulta os seis recortes demográficos de uma
// conta, agregados no período inteiro (granularidade ALL). Cada pivot
// falha de forma independente: um recorte indisponível não invalida
// os demais.
func (c *LinkedInClient) FetchDemographics(ctx context.Context, accountID int64, start, end time.Time) map[string]linkedindomain.PivotResult {
	results := make(map[string]linkedindomain.PivotResult, len(DemographicPivots))

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, pivot := range DemographicPivots {
		wg.Add(1)

		go func(pivot string) {
			defer wg.Done()

			query := fmt.Sprintf(
				"q=analytics&pivot=%s&timeGranularity=ALL&%s&accounts=List(urn%%3Ali%%3AsponsoredAccount%%3A%d)&fields=%s",
				pivot,
				formatDateRange(start, end),
				accountID,
				analyticsFields,
			)

			elements, err := c.GetAllPages(ctx, "/adAnalytics", query)

			result := linkedindomain.PivotResult{}
			if err != nil {
				result.Err = err
			} else {
				for _, raw := range elements {
					row := linkedindomain.AnalyticsRow{}
					if err := utils.Json.Unmarshal(raw, &row); err != nil {
						continue
					}
					result.Rows = append(result.Rows, row)
				}
			}

			mu.Lock()
			results[pivot] = result
			mu.Unlock()
		}(pivot)
	}

	wg.Wait()

	return results
}
