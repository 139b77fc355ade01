package validacao

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// ValidarData aceita somente datas no formato YYYY-MM-DD que existam no calendário.
func ValidarData(s string) bool {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return false
	}
	return t.Format("2006-01-02") == s
}

// ParseValorMonetario extrai um valor positivo de um campo monetário livre.
// Remove tudo que não for dígito ou ponto decimal antes do parse; vírgula
// decimal brasileira é convertida para ponto.
func ParseValorMonetario(s string) (decimal.Decimal, error) {
	limpo := strings.ReplaceAll(s, ",", ".")
	var b strings.Builder
	for _, r := range limpo {
		if unicode.IsDigit(r) || r == '.' {
			b.WriteRune(r)
		}
	}
	// descarta separadores de milhar: mantém só o último ponto
	partes := strings.Split(b.String(), ".")
	num := b.String()
	if len(partes) > 2 {
		num = strings.Join(partes[:len(partes)-1], "") + "." + partes[len(partes)-1]
	}
	if num == "" || num == "." {
		return decimal.Zero, errors.New("valor monetário vazio")
	}
	v, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, errors.New("valor monetário inválido")
	}
	if !v.IsPositive() {
		return decimal.Zero, errors.New("valor monetário deve ser positivo")
	}
	return v, nil
}
