package domain

import "time"

// SyncStatus representa o estado de uma tentativa de sincronização
type SyncStatus string

const (
	SyncStatusRunning SyncStatus = "running"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusFailed  SyncStatus = "failed"
)

// SyncLogEntry é uma linha da tabela sync_log: uma tentativa de
// sincronização. Criada com status running e finalizada exatamente uma
// vez por FinishSync.
type SyncLogEntry struct {
	ID               int64      `json:"id"`
	AccountID        string     `json:"account_id"`
	StartedAt        time.Time  `json:"started_at"`
	FinishedAt       *time.Time `json:"finished_at"`
	Status           SyncStatus `json:"status"`
	Trigger          string     `json:"trigger"`
	CampaignsFetched int        `json:"campaigns_fetched"`
	CreativesFetched int        `json:"creatives_fetched"`
	APICallsMade     int        `json:"api_calls_made"`
	Errors           string     `json:"errors"`
}

// SyncStats são os números reportados ao finalizar uma sincronização
type SyncStats struct {
	CampaignsFetched int    `json:"campaigns_fetched"`
	CreativesFetched int    `json:"creatives_fetched"`
	APICallsMade     int    `json:"api_calls_made"`
	Errors           string `json:"errors,omitempty"`
}
