package domain

// Snapshot é a estrutura única produzida por uma passada de montagem.
// O formato JSON deste documento é contrato com consumidores externos:
// renomear campos aqui é uma quebra de compatibilidade.
type Snapshot struct {
	GeneratedAt string     `json:"generated_at"`
	DateRange   DateRange  `json:"date_range"`
	Accounts    []*Account `json:"accounts"`
}

// DateRange descreve o período coberto pelo snapshot
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// Account é a raiz da hierarquia: uma conta de anúncios com suas campanhas
type Account struct {
	ID                   int64                            `json:"id"`
	Name                 string                           `json:"name"`
	Status               string                           `json:"status"`
	Currency             string                           `json:"currency"`
	Type                 string                           `json:"type"`
	IsTest               bool                             `json:"test"`
	CreatedAt            int64                            `json:"created_at"`
	Campaigns            []*Campaign                      `json:"campaigns"`
	AudienceDemographics map[string][]*DemographicSegment `json:"audience_demographics"`
}

// Campaign é uma campanha com configurações, métricas agregadas e criativos
type Campaign struct {
	ID             int64            `json:"id"`
	AccountID      int64            `json:"account_id"`
	Name           string           `json:"name"`
	Status         string           `json:"status"`
	Type           string           `json:"type"`
	CreatedAt      int64            `json:"created_at"`
	Settings       CampaignSettings `json:"settings"`
	MetricsSummary *MetricsSummary  `json:"metrics_summary"`
	DailyMetrics   []*DailyMetric   `json:"daily_metrics"`
	Creatives      []*Creative      `json:"creatives"`
}

// CampaignSettings agrupa os campos de orçamento e entrega da campanha.
// Valores monetários ausentes na origem viram 0, nunca nulo.
type CampaignSettings struct {
	DailyBudget              float64 `json:"daily_budget"`
	DailyBudgetCurrency      string  `json:"daily_budget_currency"`
	TotalBudget              float64 `json:"total_budget"`
	CostType                 string  `json:"cost_type"`
	UnitCost                 float64 `json:"unit_cost"`
	BidStrategy              string  `json:"bid_strategy"`
	CreativeSelection        string  `json:"creative_selection"`
	OffsiteDeliveryEnabled   bool    `json:"offsite_delivery_enabled"`
	AudienceExpansionEnabled bool    `json:"audience_expansion_enabled"`
	CampaignGroup            string  `json:"campaign_group"`
	RunSchedule              string  `json:"run_schedule"`
}

// Creative é um criativo vinculado a uma campanha. O ID é uma referência
// opaca (URN), não numérica.
type Creative struct {
	ID                 string          `json:"id"`
	CampaignID         int64           `json:"campaign_id"`
	AccountID          int64           `json:"account_id"`
	IntendedStatus     string          `json:"intended_status"`
	IsServing          bool            `json:"is_serving"`
	ContentReference   string          `json:"content_reference"`
	ServingHoldReasons []string        `json:"serving_hold_reasons"`
	CreatedAt          int64           `json:"created_at"`
	LastModifiedAt     int64           `json:"last_modified_at"`
	MetricsSummary     *MetricsSummary `json:"metrics_summary"`
	DailyMetrics       []*DailyMetric  `json:"daily_metrics"`
}
