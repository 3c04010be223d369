package urn

import (
	"strings"
	"sync"
)

// Resolver traduz URNs do LinkedIn para nomes legíveis. A ordem de
// resolução é: cache de nomes vindo da própria API, tabelas estáticas
// e, por último, o URN cru.
type Resolver struct {
	mu    sync.RWMutex
	names map[string]string
}

func NewResolver() *Resolver {
	return &Resolver{names: make(map[string]string)}
}

// SetNames mescla um cache de nomes devolvido pela API (urn -> nome).
// Nomes da API têm prioridade sobre as tabelas estáticas.
func (r *Resolver) SetNames(names map[string]string) {
	if len(names) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for urn, name := range names {
		if name != "" {
			r.names[urn] = name
		}
	}
}

// Resolve devolve o nome legível de um URN, ou o próprio URN quando
// nenhuma fonte o conhece.
func (r *Resolver) Resolve(urn string) string {
	r.mu.RLock()
	name, ok := r.names[urn]
	r.mu.RUnlock()

	if ok && name != "" {
		return name
	}

	if name := ResolveStatic(urn); name != "" {
		return name
	}

	return urn
}

// ResolveStatic procura um URN apenas nas tabelas estáticas.
// Devolve string vazia quando desconhecido.
func ResolveStatic(urn string) string {
	parts := strings.Split(urn, ":")
	if len(parts) < 4 {
		return ""
	}

	table, ok := tablesByEntity[parts[2]]
	if !ok {
		return ""
	}

	return table[parts[3]]
}

// TrailingID extrai o identificador final de um URN
// ("urn:li:sponsoredCampaign:123" -> "123"). Strings sem ":" voltam
// inalteradas.
func TrailingID(urn string) string {
	if idx := strings.LastIndex(urn, ":"); idx >= 0 {
		return urn[idx+1:]
	}

	return urn
}
