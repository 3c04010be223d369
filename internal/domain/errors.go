package domain

import "fmt"

// AuthenticationError indica credencial ausente, inválida ou refresh com falha
type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("autenticação: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("autenticação: %s", e.Message)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// RateLimitError indica throttling da API, com dica opcional de retry
type RateLimitError struct {
	Endpoint   string
	RetryAfter int // segundos; 0 quando a API não informa
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("limite de requisições excedido em %s (retry em %ds)", e.Endpoint, e.RetryAfter)
	}
	return fmt.Sprintf("limite de requisições excedido em %s", e.Endpoint)
}

// UpstreamAPIError indica resposta não-2xx da API de marketing
type UpstreamAPIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *UpstreamAPIError) Error() string {
	return fmt.Sprintf("API retornou HTTP %d em %s", e.StatusCode, e.Endpoint)
}

// ValidationError indica um registro que falhou na validação de schema.
// Nunca propaga além do validador: é sempre convertido em descarte.
type ValidationError struct {
	Entity string
	ID     string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validação de %s %s falhou: %s", e.Entity, e.ID, e.Reason)
}

// StorageError indica falha de persistência, com operação e tabela
type StorageError struct {
	Op    string
	Table string
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s em %s: %v", e.Op, e.Table, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ConfigurationError indica configuração obrigatória ausente
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuração obrigatória ausente: %s", e.Key)
}
