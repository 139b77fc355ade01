package precificacao

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatarValorBR formata um valor em 2 casas decimais com vírgula como
// separador decimal e ponto como separador de milhar ("3.952,80"). É essa
// string, e não o número, que o contrato persiste como valor mensal.
func FormatarValorBR(v decimal.Decimal) string {
	s := v.Round(2).StringFixed(2)

	negativo := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	partes := strings.SplitN(s, ".", 2)
	inteiro, fracao := partes[0], partes[1]

	var b strings.Builder
	if negativo {
		b.WriteByte('-')
	}
	for i, d := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteByte(',')
	b.WriteString(fracao)
	return b.String()
}

// ParseValorBR converte a string de exibição de volta para decimal.
// Aceita tanto "3.952,80" quanto "3952.80".
func ParseValorBR(s string) (decimal.Decimal, error) {
	limpo := strings.TrimSpace(s)
	limpo = strings.TrimPrefix(limpo, "R$")
	limpo = strings.TrimSpace(limpo)
	if limpo == "" {
		return decimal.Zero, errors.New("valor vazio")
	}
	if strings.Contains(limpo, ",") {
		limpo = strings.ReplaceAll(limpo, ".", "")
		limpo = strings.ReplaceAll(limpo, ",", ".")
	}
	v, err := decimal.NewFromString(limpo)
	if err != nil {
		return decimal.Zero, errors.New("valor monetário inválido")
	}
	return v, nil
}
