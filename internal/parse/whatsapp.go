// Package parse turns WhatsApp-style free text into a transaction draft by
// keyword heuristics. It only produces a Draft; acceptance is decided by the
// ledger's normal validation.
package parse

import (
	"regexp"
	"strings"

	"github.com/wosadvpro-arch/finance-buddy/internal/core"
)

var amountRe = regexp.MustCompile(`\d+([.,]\d+)?`)

// incomeWords mark a message as income; everything else is an expense.
var incomeWords = []string{"recebi", "ganhei"}

var categoryWords = []struct {
	words    []string
	category string
}{
	{[]string{"comida", "restaurante", "ifood"}, "Alimentação"},
	{[]string{"uber", "gasolina"}, "Transporte"},
	{[]string{"salário", "salario"}, "Renda"},
}

// Message parses free text like "gastei 45 no ifood" into a Draft dated
// today. The first number found is the value; the text before the first
// digit becomes the description.
func Message(text string) core.Draft {
	lower := strings.ToLower(text)

	typ := string(core.Expense)
	for _, w := range incomeWords {
		if strings.Contains(lower, w) {
			typ = string(core.Income)
			break
		}
	}

	category := "Outros"
	for _, group := range categoryWords {
		for _, w := range group.words {
			if strings.Contains(lower, w) {
				category = group.category
				break
			}
		}
		if category != "Outros" {
			break
		}
	}

	value := amountRe.FindString(text)

	desc := text
	if i := strings.IndexAny(text, "0123456789"); i >= 0 {
		desc = text[:i]
	}
	desc = strings.TrimSpace(desc)
	if desc == "" {
		desc = "WhatsApp Transaction"
	}

	return core.Draft{
		Desc:     desc,
		Type:     typ,
		Category: category,
		Value:    core.DraftValue(value),
		Date:     core.Today().String(),
	}
}
