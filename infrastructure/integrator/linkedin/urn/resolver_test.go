package urn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStatic(t *testing.T) {
	testCases := []struct {
		name     string
		urn      string
		expected string
	}{
		{
			name:     "Deve resolver senioridade pela tabela estática",
			urn:      "urn:li:seniority:6",
			expected: "Director",
		},
		{
			name:     "Deve resolver faixa de tamanho de empresa",
			urn:      "urn:li:companySizeRange:I",
			expected: "10,001+ employees",
		},
		{
			name:     "Deve resolver geografia",
			urn:      "urn:li:geo:106057199",
			expected: "Brazil",
		},
		{
			name:     "Deve resolver função",
			urn:      "urn:li:function:15",
			expected: "Marketing",
		},
		{
			name:     "Deve devolver vazio para tipo desconhecido",
			urn:      "urn:li:organization:12345",
			expected: "",
		},
		{
			name:     "Deve devolver vazio para URN malformado",
			urn:      "urn:li",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveStatic(tc.urn))
		})
	}
}

func TestResolver(t *testing.T) {
	t.Run("Deve priorizar o cache de nomes da API sobre a tabela estática", func(t *testing.T) {
		r := NewResolver()
		r.SetNames(map[string]string{"urn:li:seniority:6": "Diretoria"})

		assert.Equal(t, "Diretoria", r.Resolve("urn:li:seniority:6"))
	})

	t.Run("Deve cair na tabela estática quando o cache não conhece o URN", func(t *testing.T) {
		r := NewResolver()
		r.SetNames(map[string]string{"urn:li:title:39": "CEO"})

		assert.Equal(t, "Director", r.Resolve("urn:li:seniority:6"))
	})

	t.Run("Deve devolver o próprio URN quando nenhuma fonte resolve", func(t *testing.T) {
		r := NewResolver()

		assert.Equal(t, "urn:li:title:999999", r.Resolve("urn:li:title:999999"))
	})

	t.Run("Deve ignorar nomes vazios ao mesclar o cache", func(t *testing.T) {
		r := NewResolver()
		r.SetNames(map[string]string{"urn:li:seniority:6": ""})

		assert.Equal(t, "Director", r.Resolve("urn:li:seniority:6"))
	})
}

func TestTrailingID(t *testing.T) {
	assert.Equal(t, "123", TrailingID("urn:li:sponsoredCampaign:123"))
	assert.Equal(t, "123", TrailingID("123"))
}
