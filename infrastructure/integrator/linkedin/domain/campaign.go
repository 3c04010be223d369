package linkedindomain

import "encoding/json"

// Money é o objeto aninhado {amount, currencyCode} dos campos de
// orçamento. O amount chega como string na API.
type Money struct {
	Amount       FlexFloat `json:"amount"`
	CurrencyCode string    `json:"currencyCode"`
}

// Campaign representa uma campanha em GET /adAccounts/{id}/adCampaigns.
// AccountID é uma marcação interna adicionada pelo orquestrador de
// sincronização ("_account_id"), não vem da API.
type Campaign struct {
	ID                       int64           `json:"id"`
	Name                     string          `json:"name"`
	Status                   string          `json:"status"`
	Type                     string          `json:"type"`
	DailyBudget              *Money          `json:"dailyBudget"`
	TotalBudget              *Money          `json:"totalBudget"`
	CostType                 string          `json:"costType"`
	UnitCost                 *Money          `json:"unitCost"`
	OptimizationTargetType   string          `json:"optimizationTargetType"`
	CreativeSelection        string          `json:"creativeSelection"`
	OffsiteDeliveryEnabled   bool            `json:"offsiteDeliveryEnabled"`
	AudienceExpansionEnabled bool            `json:"audienceExpansionEnabled"`
	CampaignGroup            string          `json:"campaignGroup"`
	RunSchedule              json.RawMessage `json:"runSchedule"`
	CreatedAt                int64           `json:"createdAt"`

	AccountID int64 `json:"_account_id"`
}

// Content é o bloco aninhado "content" de um criativo
type Content struct {
	Reference string `json:"reference"`
}

// Creative representa um criativo em GET /adAccounts/{id}/creatives.
// O campo Campaign é a URN da campanha dona.
type Creative struct {
	ID                 string   `json:"id"`
	Campaign           string   `json:"campaign"`
	IntendedStatus     string   `json:"intendedStatus"`
	IsServing          bool     `json:"isServing"`
	Content            *Content `json:"content"`
	ServingHoldReasons []string `json:"servingHoldReasons"`
	CreatedAt          int64    `json:"createdAt"`
	LastModifiedAt     int64    `json:"lastModifiedAt"`

	AccountID int64 `json:"_account_id"`
}
