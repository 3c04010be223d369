package validating

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/linkedin-ads-center/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func rawBatch(payloads ...string) []json.RawMessage {
	batch := make([]json.RawMessage, 0, len(payloads))
	for _, p := range payloads {
		batch = append(batch, json.RawMessage(p))
	}
	return batch
}

func TestAccounts(t *testing.T) {
	v := New(false)

	t.Run("Deve manter contas válidas e descartar as sem nome", func(t *testing.T) {
		raw := rawBatch(
			`{"id":101,"name":"Conta A","status":"ACTIVE","currency":"BRL"}`,
			`{"id":102,"status":"ACTIVE"}`,
			`{"id":103,"name":"Conta C","status":"DRAFT"}`,
		)

		accounts, dropped := v.Accounts(context.Background(), raw)

		assert.Len(t, accounts, 2)
		assert.Equal(t, 1, dropped)
		assert.Equal(t, int64(101), accounts[0].ID)
		assert.Equal(t, int64(103), accounts[1].ID)
	})

	t.Run("Deve descartar payload que não decodifica", func(t *testing.T) {
		accounts, dropped := v.Accounts(context.Background(), rawBatch(`{"id":"not-a-number"}`))

		assert.Empty(t, accounts)
		assert.Equal(t, 1, dropped)
	})
}

func TestCampaigns(t *testing.T) {
	v := New(false)

	campaigns, dropped := v.Campaigns(context.Background(), rawBatch(
		`{"id":555,"name":"Prospecção Q3","status":"ACTIVE","account":"urn:li:sponsoredAccount:101"}`,
		`{"id":556,"name":"Sem status"}`,
	))

	assert.Len(t, campaigns, 1)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, int64(555), campaigns[0].ID)
}

func TestCreatives(t *testing.T) {
	v := New(false)

	creatives, dropped := v.Creatives(context.Background(), rawBatch(
		`{"id":"urn:li:sponsoredCreative:901","campaign":"urn:li:sponsoredCampaign:555"}`,
		`{"campaign":"urn:li:sponsoredCampaign:555"}`,
	))

	assert.Len(t, creatives, 1)
	assert.Equal(t, 1, dropped)
}

func TestAnalyticsRows(t *testing.T) {
	t.Run("Deve descartar linha sem pivotValues", func(t *testing.T) {
		v := New(false)

		rows, dropped := v.AnalyticsRows(context.Background(), "campaign_metrics", rawBatch(
			`{"pivotValues":["urn:li:sponsoredCampaign:555"],"impressions":100,"clicks":5}`,
			`{"impressions":50,"clicks":1}`,
		))

		assert.Len(t, rows, 1)
		assert.Equal(t, 1, dropped)
		assert.Equal(t, int64(100), rows[0].Impressions)
	})

	t.Run("Deve tolerar custo não numérico no modo leniente", func(t *testing.T) {
		v := New(false)

		rows, dropped := v.AnalyticsRows(context.Background(), "campaign_metrics", rawBatch(
			`{"pivotValues":["urn:li:sponsoredCampaign:555"],"costInLocalCurrency":"garbage"}`,
		))

		assert.Len(t, rows, 1)
		assert.Zero(t, dropped)
		assert.Zero(t, float64(rows[0].Cost))
	})

	t.Run("Deve rejeitar custo não numérico no modo estrito", func(t *testing.T) {
		v := New(true)

		rows, dropped := v.AnalyticsRows(context.Background(), "campaign_metrics", rawBatch(
			`{"pivotValues":["urn:li:sponsoredCampaign:555"],"costInLocalCurrency":"garbage"}`,
			`{"pivotValues":["urn:li:sponsoredCampaign:556"],"costInLocalCurrency":"10.50"}`,
		))

		assert.Len(t, rows, 1)
		assert.Equal(t, 1, dropped)
		assert.InDelta(t, 10.50, float64(rows[0].Cost), 0.0001)
	})
}
