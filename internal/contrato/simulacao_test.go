package contrato

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/plano"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/precificacao"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func planosTeste() []plano.PlanoPreco {
	return []plano.PlanoPreco{
		{ID: 1, Nome: "1-100", FuncionariosMin: 1, FuncionariosMax: 100, CnpjsInclusos: 2, PrecoMensal: dec("300.00")},
		{ID: 2, Nome: "101-300", FuncionariosMin: 101, FuncionariosMax: 300, CnpjsInclusos: 3, PrecoMensal: dec("500.00")},
	}
}

func TestSimularPipelineCompleto(t *testing.T) {
	// 150 funcionários no plano 1-100: 1 grupo extra (25) e 2 CNPJs
	// extras sobre os 2 inclusos seriam zero aqui (usa o plano 101-300).
	sim, err := Simular(planosTeste(), dec("25.00"), dec("33.00"),
		150, 5, precificacao.PlanoAnual, dec("0"), dec("10"))
	if err != nil {
		t.Fatal(err)
	}

	if sim.Adicionais.PlanoBase.ID != 2 {
		t.Errorf("plano base = %d, esperado 2", sim.Adicionais.PlanoBase.ID)
	}
	// 5 CNPJs - 3 inclusos = 2 extras a 33,00
	if sim.Adicionais.UnidadesCnpjsExtra != 2 {
		t.Errorf("cnpjs extras = %d, esperado 2", sim.Adicionais.UnidadesCnpjsExtra)
	}
	if sim.SubtotalMensal.StringFixed(2) != "566.00" {
		t.Errorf("subtotal mensal = %s, esperado 566.00", sim.SubtotalMensal.StringFixed(2))
	}
	// (500 + 66) * 12 * 0,9 = 6112,80
	if sim.TotalPeriodo.StringFixed(2) != "6112.80" {
		t.Errorf("total do período = %s, esperado 6112.80", sim.TotalPeriodo.StringFixed(2))
	}
	if sim.ValorFormatado != "6.112,80" {
		t.Errorf("valor formatado = %q", sim.ValorFormatado)
	}
}

func TestSimularDescontoPorPeriodo(t *testing.T) {
	// o desconto semestral não se aplica ao plano anual e vice-versa
	sim, err := Simular(planosTeste(), dec("25.00"), dec("33.00"),
		50, 1, precificacao.PlanoSemestral, dec("5"), dec("10"))
	if err != nil {
		t.Fatal(err)
	}
	if sim.DescontoPct.StringFixed(0) != "5" {
		t.Errorf("desconto aplicado = %s, esperado 5", sim.DescontoPct)
	}
	// 300 * 6 * 0,95 = 1710,00
	if sim.TotalPeriodo.StringFixed(2) != "1710.00" {
		t.Errorf("total semestral = %s", sim.TotalPeriodo.StringFixed(2))
	}

	sim, err = Simular(planosTeste(), dec("25.00"), dec("33.00"),
		50, 1, precificacao.PlanoMensal, dec("5"), dec("10"))
	if err != nil {
		t.Fatal(err)
	}
	if !sim.DescontoPct.IsZero() {
		t.Errorf("plano mensal não tem desconto, obtido %s", sim.DescontoPct)
	}
	if sim.TotalPeriodo.StringFixed(2) != "300.00" {
		t.Errorf("total mensal = %s", sim.TotalPeriodo.StringFixed(2))
	}
}

func TestSimularContratoAnualComCnpjsExtras(t *testing.T) {
	// 220 funcionários na faixa 101-300 (R$ 300,00, 3 CNPJs inclusos),
	// 5 CNPJs e plano anual com 10%: (300 + 2*33) * 12 * 0,9 = 3952,80
	catalogo := []plano.PlanoPreco{
		{ID: 1, Nome: "101-300", FuncionariosMin: 101, FuncionariosMax: 300, CnpjsInclusos: 3, PrecoMensal: dec("300.00")},
	}
	sim, err := Simular(catalogo, dec("25.00"), dec("33.00"),
		220, 5, precificacao.PlanoAnual, dec("0"), dec("10"))
	if err != nil {
		t.Fatal(err)
	}
	if sim.Adicionais.UnidadesFuncionariosExtra != 0 || sim.Adicionais.UnidadesCnpjsExtra != 2 {
		t.Errorf("adicionais = %d grupos, %d cnpjs; esperados 0 e 2",
			sim.Adicionais.UnidadesFuncionariosExtra, sim.Adicionais.UnidadesCnpjsExtra)
	}
	if sim.TotalPeriodo.StringFixed(2) != "3952.80" {
		t.Errorf("total do período = %s, esperado 3952.80", sim.TotalPeriodo.StringFixed(2))
	}
	if sim.ValorFormatado != "3.952,80" {
		t.Errorf("valor formatado = %q, esperado 3.952,80", sim.ValorFormatado)
	}
}

func TestSimularCatalogoVazio(t *testing.T) {
	_, err := Simular(nil, dec("25.00"), dec("33.00"), 10, 1, precificacao.PlanoMensal, dec("0"), dec("0"))
	if !errors.Is(err, ErrCatalogoVazio) {
		t.Errorf("esperado ErrCatalogoVazio, obtido %v", err)
	}
}

func TestValidarSalvarDTO(t *testing.T) {
	valido := SalvarContratoDTO{
		Numero:          "042",
		QtdFuncionarios: 120,
		QtdCnpjs:        2,
		TipoPlano:       "anual",
		DataInicio:      "2025-03-01",
		Contratantes: []ContratanteDTO{
			{Nome: "Empresa Alfa", CNPJ: "11.222.333/0001-81", CPF: "529.982.247-25"},
		},
	}
	if erros := ValidarSalvarDTO(valido); len(erros) != 0 {
		t.Fatalf("payload válido não deveria ter erros: %v", erros)
	}

	casos := []struct {
		nome   string
		mutar  func(*SalvarContratoDTO)
		contem string
	}{
		{"sem numero", func(d *SalvarContratoDTO) { d.Numero = "" }, "número do contrato"},
		{"cnpjs abaixo de 1", func(d *SalvarContratoDTO) { d.QtdCnpjs = 0 }, "ao menos 1 CNPJ"},
		{"tipo de plano invalido", func(d *SalvarContratoDTO) { d.TipoPlano = "bimestral" }, "tipo de plano"},
		{"data invalida", func(d *SalvarContratoDTO) { d.DataInicio = "2025-02-30" }, "data de início"},
		{"sem contratantes", func(d *SalvarContratoDTO) { d.Contratantes = nil }, "ao menos um contratante"},
		{"cnpj do contratante invalido", func(d *SalvarContratoDTO) {
			d.Contratantes[0].CNPJ = "11.222.333/0001-99"
		}, "contratante 1: CNPJ inválido"},
		{"cpf do contratante invalido", func(d *SalvarContratoDTO) {
			d.Contratantes[0].CPF = "111.111.111-11"
		}, "contratante 1: CPF inválido"},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			dto := valido
			dto.Contratantes = []ContratanteDTO{valido.Contratantes[0]}
			c.mutar(&dto)
			erros := ValidarSalvarDTO(dto)
			achou := false
			for _, e := range erros {
				if strings.Contains(e, c.contem) {
					achou = true
				}
			}
			if !achou {
				t.Errorf("esperado erro contendo %q, obtidos %v", c.contem, erros)
			}
		})
	}
}
