package linkedindomain

// Account representa uma conta de anúncios em GET /adAccounts
type Account struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Currency  string `json:"currency"`
	Type      string `json:"type"`
	Test      bool   `json:"test"`
	CreatedAt int64  `json:"createdAt"`
}
