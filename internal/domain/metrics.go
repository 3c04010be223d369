package domain

// MetricsSummary é o agregado recalculado a cada montagem sobre todas as
// linhas diárias de um dono (campanha ou criativo) dentro do período.
//
// CostPerConversion mantém a chave JSON legada "cpl" por compatibilidade
// com consumidores do arquivo de snapshot; CostPerLead é a métrica
// distinta calculada sobre o contador de leads.
type MetricsSummary struct {
	Impressions       int64   `json:"impressions"`
	Clicks            int64   `json:"clicks"`
	Spend             float64 `json:"spend"`
	LandingPageClicks int64   `json:"landing_page_clicks"`
	Conversions       int64   `json:"conversions"`
	Likes             int64   `json:"likes"`
	Comments          int64   `json:"comments"`
	Shares            int64   `json:"shares"`
	Follows           int64   `json:"follows"`
	Leads             int64   `json:"leads"`
	Opens             int64   `json:"opens"`
	Sends             int64   `json:"sends"`
	CTR               float64 `json:"ctr"`
	CPC               float64 `json:"cpc"`
	CPM               float64 `json:"cpm"`
	CostPerConversion float64 `json:"cpl"`
	CostPerLead       float64 `json:"cost_per_lead"`
}

// DailyMetric é uma linha diária de métricas de um dono, chaveada por
// (dono, data). Um novo upsert para a mesma data substitui os valores.
type DailyMetric struct {
	Date              string  `json:"date"`
	Impressions       int64   `json:"impressions"`
	Clicks            int64   `json:"clicks"`
	Spend             float64 `json:"spend"`
	LandingPageClicks int64   `json:"landing_page_clicks"`
	Conversions       int64   `json:"conversions"`
	Likes             int64   `json:"likes"`
	Comments          int64   `json:"comments"`
	Shares            int64   `json:"shares"`
	Follows           int64   `json:"follows"`
	Leads             int64   `json:"leads"`
	Opens             int64   `json:"opens"`
	Sends             int64   `json:"sends"`
	CTR               float64 `json:"ctr"`
	CPC               float64 `json:"cpc"`
}

// DemographicSegment é um segmento demográfico agregado por pivô,
// chaveado por (conta, pivô, segmento, data inicial)
type DemographicSegment struct {
	Segment            string  `json:"segment"`
	SegmentURN         string  `json:"segment_urn"`
	Impressions        int64   `json:"impressions"`
	Clicks             int64   `json:"clicks"`
	CTR                float64 `json:"ctr"`
	ShareOfImpressions float64 `json:"share_of_impressions"`
}
