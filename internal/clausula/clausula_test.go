package clausula

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contrato"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestTextoClausulaValor(t *testing.T) {
	c := contrato.Contrato{ValorMensal: "3.952,80", TipoPlano: "anual", DiaPagamento: 10}
	texto := TextoClausulaValor(c)
	for _, trecho := range []string{"R$ 3.952,80", "anualmente", "plano anual", "dia 10"} {
		if !strings.Contains(texto, trecho) {
			t.Errorf("cláusula de valor sem %q: %s", trecho, texto)
		}
	}

	vazio := TextoClausulaValor(contrato.Contrato{})
	if !strings.Contains(vazio, "R$ 0,00") || !strings.Contains(vazio, "mensalmente") {
		t.Errorf("contrato vazio deveria cair em 0,00 mensal: %s", vazio)
	}
}

func TestTextoClausulaVigencia(t *testing.T) {
	inicio := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	renovacao := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	c := contrato.Contrato{TipoPlano: "anual", DataInicio: &inicio, DataRenovacao: &renovacao}
	texto := TextoClausulaVigencia(c)
	if !strings.Contains(texto, "01/03/2025") || !strings.Contains(texto, "01/03/2026") {
		t.Errorf("datas ausentes: %s", texto)
	}

	semData := TextoClausulaVigencia(contrato.Contrato{TipoPlano: "mensal"})
	if !strings.Contains(semData, "Data não informada") {
		t.Errorf("data ausente deveria virar texto padrão: %s", semData)
	}
	if strings.Contains(semData, "renovação está prevista") {
		t.Errorf("sem data de renovação não há frase de renovação: %s", semData)
	}
}

func TestTextoClausulaTeste(t *testing.T) {
	if got := TextoClausulaTeste(contrato.Contrato{DiasTeste: 0}); got != "" {
		t.Errorf("sem dias de teste a cláusula deveria ser vazia: %q", got)
	}
	texto := TextoClausulaTeste(contrato.Contrato{DiasTeste: 15, TipoPlano: "semestral"})
	if !strings.Contains(texto, "15 dias") || !strings.Contains(texto, "semestralmente") {
		t.Errorf("cláusula de teste inesperada: %s", texto)
	}
}

func TestTextoClausulaDesconto(t *testing.T) {
	casos := []struct {
		nome   string
		c      contrato.Contrato
		vazia  bool
		contem string
	}{
		{"mensal nunca tem desconto", contrato.Contrato{TipoPlano: "mensal", DescontoSemestral: dec("10")}, true, ""},
		{"semestral com desconto zero", contrato.Contrato{TipoPlano: "semestral"}, true, ""},
		{"semestral com desconto", contrato.Contrato{TipoPlano: "semestral", DescontoSemestral: dec("5")}, false, "5.00%"},
		{"anual usa o desconto anual", contrato.Contrato{TipoPlano: "anual", DescontoSemestral: dec("5"), DescontoAnual: dec("10")}, false, "10.00%"},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			texto := TextoClausulaDesconto(c.c)
			if c.vazia {
				if texto != "" {
					t.Errorf("esperada cláusula vazia, obtida %q", texto)
				}
				return
			}
			if !strings.Contains(texto, c.contem) {
				t.Errorf("esperado %q em %q", c.contem, texto)
			}
		})
	}
}

func TestTodasOmiteVazias(t *testing.T) {
	// mensal sem teste: nem desconto nem teste aparecem
	c := contrato.Contrato{TipoPlano: "mensal", ValorMensal: "150,00", QtdFuncionarios: 30, QtdCnpjs: 1}
	clausulas := Todas(c)
	if len(clausulas) != 3 {
		t.Fatalf("esperadas 3 cláusulas, obtidas %d", len(clausulas))
	}

	c.DiasTeste = 7
	if got := len(Todas(c)); got != 4 {
		t.Errorf("com período de teste esperadas 4 cláusulas, obtidas %d", got)
	}
}
