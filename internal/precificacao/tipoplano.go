package precificacao

import "strings"

// TipoPlano é o período de cobrança do contrato.
type TipoPlano string

const (
	PlanoMensal    TipoPlano = "mensal"
	PlanoSemestral TipoPlano = "semestral"
	PlanoAnual     TipoPlano = "anual"
)

// NormalizarTipoPlano reduz um campo livre ("Anual ", "SEMESTRAL!") ao
// enum canônico. Retorna false quando o texto não corresponde a nenhum
// período conhecido.
func NormalizarTipoPlano(s string) (TipoPlano, bool) {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	switch b.String() {
	case "mensal":
		return PlanoMensal, true
	case "semestral":
		return PlanoSemestral, true
	case "anual":
		return PlanoAnual, true
	}
	return "", false
}

// FatorPeriodo retorna o multiplicador de meses do período de cobrança.
func (t TipoPlano) FatorPeriodo() int64 {
	switch t {
	case PlanoSemestral:
		return 6
	case PlanoAnual:
		return 12
	default:
		return 1
	}
}
