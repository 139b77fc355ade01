package precificacao

import (
	"github.com/shopspring/decimal"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/plano"
)

// TamanhoGrupoFuncionarios é a granularidade de cobrança de funcionários
// excedentes: cada grupo (ou fração) de 100 além do teto do plano conta
// como uma unidade.
const TamanhoGrupoFuncionarios = 100

// DetalheAdicionais é o detalhamento dos excedentes sobre o plano base.
// Recalculado a cada alteração de entrada, nunca persistido.
type DetalheAdicionais struct {
	PlanoBase                 plano.PlanoPreco `json:"planoBase"`
	UnidadesFuncionariosExtra int              `json:"unidadesFuncionariosExtra"`
	UnidadesCnpjsExtra        int              `json:"unidadesCnpjsExtra"`
	CustoFuncionariosExtra    decimal.Decimal  `json:"custoFuncionariosExtra"`
	CustoCnpjsExtra           decimal.Decimal  `json:"custoCnpjsExtra"`
}

// Total retorna a soma mensal dos adicionais.
func (d DetalheAdicionais) Total() decimal.Decimal {
	return d.CustoFuncionariosExtra.Add(d.CustoCnpjsExtra)
}

// ResolverPlanoBase escolhe o plano aplicável para a quantidade de
// funcionários informada. A comparação é sempre pelo preço mensal, para
// que a escolha do plano não dependa do período de cobrança.
//
// Regra primária: entre os planos cuja faixa contém a quantidade, vence o
// de menor preço mensal. Se nenhum contém (quantidade acima de todos os
// tetos), vence o mais barato entre os planos que compartilham o maior
// teto. Se ainda assim nada qualifica (quantidade abaixo de toda faixa),
// cai no plano mais barato do catálogo.
//
// Retorna false somente com catálogo vazio.
func ResolverPlanoBase(planos []plano.PlanoPreco, qtdFuncionarios int) (plano.PlanoPreco, bool) {
	if len(planos) == 0 {
		return plano.PlanoPreco{}, false
	}

	var contem []plano.PlanoPreco
	for _, p := range planos {
		if p.FuncionariosMin <= qtdFuncionarios && qtdFuncionarios <= p.FuncionariosMax {
			contem = append(contem, p)
		}
	}
	if len(contem) > 0 {
		return maisBarato(contem), true
	}

	// fallback: planos abaixo da quantidade, restritos ao maior teto
	maiorTeto := -1
	for _, p := range planos {
		if p.FuncionariosMax < qtdFuncionarios && p.FuncionariosMax > maiorTeto {
			maiorTeto = p.FuncionariosMax
		}
	}
	if maiorTeto >= 0 {
		var abaixo []plano.PlanoPreco
		for _, p := range planos {
			if p.FuncionariosMax == maiorTeto {
				abaixo = append(abaixo, p)
			}
		}
		return maisBarato(abaixo), true
	}

	return maisBarato(planos), true
}

func maisBarato(planos []plano.PlanoPreco) plano.PlanoPreco {
	melhor := planos[0]
	for _, p := range planos[1:] {
		if p.PrecoMensal.LessThan(melhor.PrecoMensal) {
			melhor = p
		}
	}
	return melhor
}

// CalcularAdicionais computa os excedentes de funcionários e CNPJs sobre
// a capacidade inclusa no plano. Unidades nunca são negativas.
func CalcularAdicionais(p plano.PlanoPreco, qtdFuncionarios, qtdCnpjs int, precoGrupoFuncionarios, precoCnpj decimal.Decimal) DetalheAdicionais {
	d := DetalheAdicionais{
		PlanoBase:              p,
		CustoFuncionariosExtra: decimal.Zero,
		CustoCnpjsExtra:        decimal.Zero,
	}

	if excedente := qtdFuncionarios - p.FuncionariosMax; excedente > 0 {
		d.UnidadesFuncionariosExtra = (excedente + TamanhoGrupoFuncionarios - 1) / TamanhoGrupoFuncionarios
		d.CustoFuncionariosExtra = precoGrupoFuncionarios.Mul(decimal.NewFromInt(int64(d.UnidadesFuncionariosExtra)))
	}

	if excedente := qtdCnpjs - p.CnpjsInclusos; excedente > 0 {
		d.UnidadesCnpjsExtra = excedente
		d.CustoCnpjsExtra = precoCnpj.Mul(decimal.NewFromInt(int64(excedente)))
	}

	return d
}

// AplicarPeriodoEDesconto multiplica o custo mensal combinado pelo fator
// do período e aplica o desconto percentual para planos semestrais e
// anuais. O resultado sai arredondado em 2 casas.
func AplicarPeriodoEDesconto(baseMensal, adicionaisMensal decimal.Decimal, tipo TipoPlano, descontoPct decimal.Decimal) decimal.Decimal {
	total := baseMensal.Add(adicionaisMensal).Mul(decimal.NewFromInt(tipo.FatorPeriodo()))
	if tipo != PlanoMensal && descontoPct.IsPositive() {
		fator := decimal.NewFromInt(1).Sub(descontoPct.Div(decimal.NewFromInt(100)))
		total = total.Mul(fator)
	}
	return total.Round(2)
}
