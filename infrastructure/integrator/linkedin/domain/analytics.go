package linkedindomain

import "fmt"

// DateBound é o componente {year, month, day} de um dateRange
type DateBound struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Key formata o bound como YYYY-MM-DD, a chave de bucket diário
func (b DateBound) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", b.Year, b.Month, b.Day)
}

func (b DateBound) IsZero() bool {
	return b.Year == 0 && b.Month == 0 && b.Day == 0
}

// DateRange é o objeto {start, end} de uma linha de analytics
type DateRange struct {
	Start DateBound  `json:"start"`
	End   *DateBound `json:"end"`
}

// AnalyticsRow é uma linha de GET /adAnalytics (pivô CAMPAIGN ou
// CREATIVE). Os 12 contadores brutos somados pelo agregador vivem aqui;
// o custo chega como string e é coagido por FlexFloat.
type AnalyticsRow struct {
	PivotValues []string   `json:"pivotValues"`
	DateRange   *DateRange `json:"dateRange"`

	Impressions       int64     `json:"impressions"`
	Clicks            int64     `json:"clicks"`
	Cost              FlexFloat `json:"costInLocalCurrency"`
	LandingPageClicks int64     `json:"landingPageClicks"`
	Conversions       int64     `json:"externalWebsiteConversions"`
	Likes             int64     `json:"likes"`
	Comments          int64     `json:"comments"`
	Shares            int64     `json:"shares"`
	Follows           int64     `json:"follows"`
	Leads             int64     `json:"oneClickLeads"`
	Opens             int64     `json:"opens"`
	Sends             int64     `json:"sends"`
}

// PivotResult é o resultado da busca de demografia para um pivô.
// A falha por pivô é explícita no tipo, não uma exceção engolida:
// quem consome decide tratar um pivô com erro como lista vazia.
type PivotResult struct {
	Rows []AnalyticsRow
	Err  error
}

// AccountDemographics agrupa os pivôs de uma conta com um cache de
// nomes de URN pré-resolvidos (formato rico legado {pivots, urn_names}).
type AccountDemographics struct {
	Pivots   map[string]PivotResult
	URNNames map[string]string
}

// FlatDemographics constrói o formato rico a partir do formato legado
// plano pivô → linhas, sem cache de nomes.
func FlatDemographics(pivots map[string][]AnalyticsRow) AccountDemographics {
	out := AccountDemographics{Pivots: make(map[string]PivotResult, len(pivots))}
	for pivot, rows := range pivots {
		out.Pivots[pivot] = PivotResult{Rows: rows}
	}
	return out
}
