package precificacao

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/plano"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func catalogoTeste() []plano.PlanoPreco {
	return []plano.PlanoPreco{
		{ID: 1, Nome: "1-50", FuncionariosMin: 1, FuncionariosMax: 50, CnpjsInclusos: 1, PrecoMensal: dec("150.00")},
		{ID: 2, Nome: "51-100", FuncionariosMin: 51, FuncionariosMax: 100, CnpjsInclusos: 2, PrecoMensal: dec("250.00")},
		{ID: 3, Nome: "101-300", FuncionariosMin: 101, FuncionariosMax: 300, CnpjsInclusos: 3, PrecoMensal: dec("400.00")},
	}
}

func TestResolverPlanoBase(t *testing.T) {
	planos := catalogoTeste()

	casos := []struct {
		nome   string
		qtd    int
		wantID uint
	}{
		{"dentro da primeira faixa", 30, 1},
		{"limite inferior", 1, 1},
		{"limite superior da faixa", 50, 1},
		{"inicio da segunda faixa", 51, 2},
		{"acima de todos os tetos", 500, 3},
		{"abaixo de toda faixa", 0, 1}, // cai no mais barato
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			p, ok := ResolverPlanoBase(planos, c.qtd)
			if !ok {
				t.Fatalf("ResolverPlanoBase(%d): esperado ok", c.qtd)
			}
			if p.ID != c.wantID {
				t.Errorf("ResolverPlanoBase(%d) = plano %d, esperado %d", c.qtd, p.ID, c.wantID)
			}
		})
	}
}

func TestResolverPlanoBaseEmpate(t *testing.T) {
	// duas faixas contêm 40 funcionários: vence a de menor preço mensal
	planos := []plano.PlanoPreco{
		{ID: 1, FuncionariosMin: 1, FuncionariosMax: 60, PrecoMensal: dec("200.00")},
		{ID: 2, FuncionariosMin: 20, FuncionariosMax: 80, PrecoMensal: dec("180.00")},
	}
	p, ok := ResolverPlanoBase(planos, 40)
	if !ok || p.ID != 2 {
		t.Errorf("esperado plano 2 (mais barato), obtido %d (ok=%v)", p.ID, ok)
	}
}

func TestResolverPlanoBaseCatalogoVazio(t *testing.T) {
	if _, ok := ResolverPlanoBase(nil, 10); ok {
		t.Error("catálogo vazio deveria retornar false")
	}
}

func TestCalcularAdicionais(t *testing.T) {
	p := plano.PlanoPreco{FuncionariosMax: 100, CnpjsInclusos: 2}
	precoGrupo := dec("25.00")
	precoCnpj := dec("33.00")

	casos := []struct {
		nome           string
		funcionarios   int
		cnpjs          int
		gruposEsperado int
		cnpjsEsperado  int
		totalEsperado  string
	}{
		{"sem excedente", 80, 2, 0, 0, "0"},
		{"um funcionario acima conta um grupo", 101, 2, 1, 0, "25"},
		{"excedente exato de um grupo", 200, 2, 1, 0, "25"},
		{"fracao arredonda para cima", 201, 2, 2, 0, "50"},
		{"cnpjs acima do incluso", 100, 5, 0, 3, "99"},
		{"ambos excedentes", 250, 4, 2, 2, "116"},
		{"abaixo do plano nunca negativa", 10, 1, 0, 0, "0"},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			d := CalcularAdicionais(p, c.funcionarios, c.cnpjs, precoGrupo, precoCnpj)
			if d.UnidadesFuncionariosExtra != c.gruposEsperado {
				t.Errorf("grupos = %d, esperado %d", d.UnidadesFuncionariosExtra, c.gruposEsperado)
			}
			if d.UnidadesCnpjsExtra != c.cnpjsEsperado {
				t.Errorf("cnpjs extras = %d, esperado %d", d.UnidadesCnpjsExtra, c.cnpjsEsperado)
			}
			if d.Total().String() != c.totalEsperado {
				t.Errorf("total = %s, esperado %s", d.Total(), c.totalEsperado)
			}
		})
	}
}

func TestAplicarPeriodoEDesconto(t *testing.T) {
	casos := []struct {
		nome     string
		base     string
		extras   string
		tipo     TipoPlano
		desconto string
		esperado string
	}{
		{"mensal sem desconto", "100.00", "0", PlanoMensal, "0", "100.00"},
		{"mensal ignora desconto", "100.00", "0", PlanoMensal, "10", "100.00"},
		{"anual sem desconto", "100.00", "0", PlanoAnual, "0", "1200.00"},
		{"semestral com 10 por cento", "100.00", "0", PlanoSemestral, "10", "540.00"},
		{"anual com extras e desconto", "300.00", "66.00", PlanoAnual, "10", "3952.80"},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			got := AplicarPeriodoEDesconto(dec(c.base), dec(c.extras), c.tipo, dec(c.desconto))
			if got.StringFixed(2) != c.esperado {
				t.Errorf("AplicarPeriodoEDesconto = %s, esperado %s", got.StringFixed(2), c.esperado)
			}
		})
	}
}

func TestNormalizarTipoPlano(t *testing.T) {
	casos := []struct {
		entrada string
		tipo    TipoPlano
		ok      bool
	}{
		{"mensal", PlanoMensal, true},
		{"Anual ", PlanoAnual, true},
		{"SEMESTRAL!", PlanoSemestral, true},
		{"Semes-tral", PlanoSemestral, true},
		{"trimestral", "", false},
		{"", "", false},
	}
	for _, c := range casos {
		tipo, ok := NormalizarTipoPlano(c.entrada)
		if ok != c.ok || tipo != c.tipo {
			t.Errorf("NormalizarTipoPlano(%q) = (%q, %v), esperado (%q, %v)", c.entrada, tipo, ok, c.tipo, c.ok)
		}
	}
}
