package linkedinclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// FetchAdAccounts busca todas as contas de anúncio acessíveis pelo
// token atual.
func (c *LinkedInClient) FetchAdAccounts(ctx context.Context) ([]json.RawMessage, error) {
	return c.GetAllPages(ctx, "/adAccounts", "q=search")
}

// FetchCampaigns busca as campanhas de uma conta, opcionalmente
// restritas por status (ex.: ACTIVE, PAUSED). A lista vazia traz tudo.
func (c *LinkedInClient) FetchCampaigns(ctx context.Context, accountID int64, statuses []string) ([]json.RawMessage, error) {
	query := "q=search"
	if len(statuses) > 0 {
		query = fmt.Sprintf("q=search&search=(status:(values:List(%s)))", strings.Join(statuses, ","))
	}

	path := fmt.Sprintf("/adAccounts/%d/adCampaigns", accountID)

	return c.GetAllPages(ctx, path, query)
}

// FetchCreatives busca os criativos de um conjunto de campanhas de uma
// conta. O filtro usa o URN completo de cada campanha.
func (c *LinkedInClient) FetchCreatives(ctx context.Context, accountID int64, campaignIDs []int64) ([]json.RawMessage, error) {
	if len(campaignIDs) == 0 {
		return nil, nil
	}

	urns := make([]string, 0, len(campaignIDs))
	for _, id := range campaignIDs {
		urns = append(urns, fmt.Sprintf("urn%%3Ali%%3AsponsoredCampaign%%3A%d", id))
	}

	query := fmt.Sprintf("q=criteria&campaigns=List(%s)", strings.Join(urns, ","))
	path := fmt.Sprintf("/adAccounts/%d/creatives", accountID)

	return c.GetAllPages(ctx, path, query)
}
