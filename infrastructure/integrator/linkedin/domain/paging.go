package linkedindomain

import "encoding/json"

// Page é o envelope padrão de coleção da API REST: elements mais o
// token da próxima página em metadata.
type Page struct {
	Elements []json.RawMessage `json:"elements"`
	Metadata PageMetadata      `json:"metadata"`
}

type PageMetadata struct {
	NextPageToken string `json:"nextPageToken"`
}
