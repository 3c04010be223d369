package validating

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/integrator/linkedin/domain"
	"github.com/vfg2006/linkedin-ads-center/internal/domain"
	"github.com/vfg2006/linkedin-ads-center/pkg/log"
	"github.com/vfg2006/linkedin-ads-center/pkg/utils"
)

// Validator converte payloads crus da API em registros tipados.
// Registro inválido é descartado com warning, nunca derruba o lote:
// o sync segue com o que sobrou.
type Validator struct {
	// strict rejeita custos não numéricos em vez de tratá-los como zero.
	strict bool
}

func New(strict bool) *Validator {
	return &Validator{strict: strict}
}

func (v *Validator) warn(ctx context.Context, err *domain.ValidationError) {
	log.ForContext(ctx).WithFields(log.Fields{
		"entity": err.Entity,
		"id":     err.ID,
	}).Warnf("Registro em quarentena: %s", err.Reason)
}

// Accounts valida contas cruas. Exige id, name e status.
func (v *Validator) Accounts(ctx context.Context, raw []json.RawMessage) ([]linkedindomain.Account, int) {
	accounts := make([]linkedindomain.Account, 0, len(raw))
	dropped := 0

	for _, r := range raw {
		account := linkedindomain.Account{}
		if err := utils.Json.Unmarshal(r, &account); err != nil {
			v.warn(ctx, &domain.ValidationError{Entity: "account", Reason: err.Error()})
			dropped++
			continue
		}

		switch {
		case account.ID == 0:
			v.warn(ctx, &domain.ValidationError{Entity: "account", Reason: "sem id"})
		case account.Name == "":
			v.warn(ctx, &domain.ValidationError{Entity: "account", ID: fmt.Sprint(account.ID), Reason: "sem name"})
		case account.Status == "":
			v.warn(ctx, &domain.ValidationError{Entity: "account", ID: fmt.Sprint(account.ID), Reason: "sem status"})
		default:
			accounts = append(accounts, account)
			continue
		}

		dropped++
	}

	return accounts, dropped
}

// Campaigns valida campanhas cruas. Exige id, name e status.
func (v *Validator) Campaigns(ctx context.Context, raw []json.RawMessage) ([]linkedindomain.Campaign, int) {
	campaigns := make([]linkedindomain.Campaign, 0, len(raw))
	dropped := 0

	for _, r := range raw {
		campaign := linkedindomain.Campaign{}
		if err := utils.Json.Unmarshal(r, &campaign); err != nil {
			v.warn(ctx, &domain.ValidationError{Entity: "campaign", Reason: err.Error()})
			dropped++
			continue
		}

		switch {
		case campaign.ID == 0:
			v.warn(ctx, &domain.ValidationError{Entity: "campaign", Reason: "sem id"})
		case campaign.Name == "":
			v.warn(ctx, &domain.ValidationError{Entity: "campaign", ID: fmt.Sprint(campaign.ID), Reason: "sem name"})
		case campaign.Status == "":
			v.warn(ctx, &domain.ValidationError{Entity: "campaign", ID: fmt.Sprint(campaign.ID), Reason: "sem status"})
		default:
			campaigns = append(campaigns, campaign)
			continue
		}

		dropped++
	}

	return campaigns, dropped
}

// Creatives valida criativos crus. Exige apenas id, que na API atual
// já vem como URN completo.
func (v *Validator) Creatives(ctx context.Context, raw []json.RawMessage) ([]linkedindomain.Creative, int) {
	creatives := make([]linkedindomain.Creative, 0, len(raw))
	dropped := 0

	for _, r := range raw {
		creative := linkedindomain.Creative{}
		if err := utils.Json.Unmarshal(r, &creative); err != nil {
			v.warn(ctx, &domain.ValidationError{Entity: "creative", Reason: err.Error()})
			dropped++
			continue
		}

		if creative.ID == "" {
			v.warn(ctx, &domain.ValidationError{Entity: "creative", Reason: "sem id"})
			dropped++
			continue
		}

		creatives = append(creatives, creative)
	}

	return creatives, dropped
}

// costProbe captura os bytes crus do custo para o modo estrito.
type costProbe struct {
	Cost json.RawMessage `json:"costInLocalCurrency"`
}

// AnalyticsRows decodifica e valida linhas de métricas. Exige ao menos
// um pivotValue; no modo estrito, o custo precisa ser numérico.
func (v *Validator) AnalyticsRows(ctx context.Context, entity string, raw []json.RawMessage) ([]linkedindomain.AnalyticsRow, int) {
	rows := make([]linkedindomain.AnalyticsRow, 0, len(raw))
	dropped := 0

	for _, r := range raw {
		row := linkedindomain.AnalyticsRow{}
		if err := utils.Json.Unmarshal(r, &row); err != nil {
			v.warn(ctx, &domain.ValidationError{Entity: entity, Reason: err.Error()})
			dropped++
			continue
		}

		if len(row.PivotValues) == 0 {
			v.warn(ctx, &domain.ValidationError{Entity: entity, Reason: "linha de métricas sem pivotValues"})
			dropped++
			continue
		}

		if v.strict {
			probe := costProbe{}
			if err := utils.Json.Unmarshal(r, &probe); err == nil && probe.Cost != nil {
				if err := linkedindomain.StrictCost(probe.Cost); err != nil {
					v.warn(ctx, &domain.ValidationError{
						Entity: entity,
						ID:     row.PivotValues[0],
						Reason: err.Error(),
					})
					dropped++
					continue
				}
			}
		}

		rows = append(rows, row)
	}

	return rows, dropped
}
