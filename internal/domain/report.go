package domain

// CampaignAuditEntry aponta configurações de risco em uma campanha
// ativa: LAN ligado, expansão de audiência ligada ou lance em entrega
// máxima por CPM.
type CampaignAuditEntry struct {
	CampaignID int64    `json:"campaign_id"`
	Name       string   `json:"name"`
	Status     string   `json:"status"`
	Issues     []string `json:"issues"`
}

// CampaignPerformanceRow é uma linha do relatório de desempenho por
// campanha, somada sobre a série diária persistida.
type CampaignPerformanceRow struct {
	CampaignID  int64   `json:"campaign_id"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Spend       float64 `json:"spend"`
	Leads       int64   `json:"leads"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
}

// CreativePerformanceRow é uma linha do relatório de desempenho por
// criativo, somada sobre a série diária persistida.
type CreativePerformanceRow struct {
	CreativeID       string  `json:"creative_id"`
	CampaignName     string  `json:"campaign_name"`
	IntendedStatus   string  `json:"intended_status"`
	ContentReference string  `json:"content_reference"`
	Impressions      int64   `json:"impressions"`
	Clicks           int64   `json:"clicks"`
	Spend            float64 `json:"spend"`
	Leads            int64   `json:"leads"`
	CTR              float64 `json:"ctr"`
	CPC              float64 `json:"cpc"`
}

// VisualPoint é um ponto da série temporal agregada sobre todas as
// campanhas persistidas.
type VisualPoint struct {
	Date        string  `json:"date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Spend       float64 `json:"spend"`
	Conversions int64   `json:"conversions"`
}

// VisualComparisonRow compara campanhas pelo total investido.
type VisualComparisonRow struct {
	Name        string  `json:"name"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Spend       float64 `json:"spend"`
	Conversions int64   `json:"conversions"`
}

// VisualKPIs é o bloco de indicadores globais do dashboard.
type VisualKPIs struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Spend       float64 `json:"spend"`
	Conversions int64   `json:"conversions"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
}

// VisualReport alimenta gráficos: série temporal, comparação entre
// campanhas e KPIs globais.
type VisualReport struct {
	TimeSeries         []*VisualPoint         `json:"time_series"`
	CampaignComparison []*VisualComparisonRow `json:"campaign_comparison"`
	KPIs               VisualKPIs             `json:"kpis"`
}
