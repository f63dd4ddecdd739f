package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wosadvpro-arch/finance-buddy/internal/core"
)

func TestMessageHeuristics(t *testing.T) {
	cases := []struct {
		text     string
		typ      string
		category string
		value    string
		desc     string
	}{
		{"recebi 500 de freelance", "receita", "Outros", "500", "recebi"},
		{"ganhei 1200,50 hoje", "receita", "Outros", "1200,50", "ganhei"},
		{"gastei 45 no ifood", "despesa", "Alimentação", "45", "gastei"},
		{"uber pro trabalho 23.90", "despesa", "Transporte", "23.90", "uber pro trabalho"},
		// Type depends only on the income keywords, not on the category.
		{"recebi o salario 5200", "receita", "Renda", "5200", "recebi o salario"},
		{"salario 5200", "despesa", "Renda", "5200", "salario"},
		{"99 na farmácia", "despesa", "Outros", "99", "WhatsApp Transaction"},
	}
	for _, tc := range cases {
		d := Message(tc.text)
		assert.Equal(t, tc.typ, d.Type, tc.text)
		assert.Equal(t, tc.category, d.Category, tc.text)
		assert.Equal(t, tc.value, string(d.Value), tc.text)
		assert.Equal(t, tc.desc, d.Desc, tc.text)
		assert.NotEmpty(t, d.Date)
	}
}

func TestMessageWithoutAmountFailsValidation(t *testing.T) {
	d := Message("comprei umas coisas")
	_, err := core.ParseDraft(d)
	assert.Error(t, err)
}
