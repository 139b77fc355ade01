// Package clausula gera os textos das cláusulas contratuais a partir do
// estado do contrato. É camada de apresentação: nenhuma validação
// acontece aqui e campo ausente nunca derruba a geração: datas vazias
// viram o texto literal "Data não informada".
package clausula

import (
	"fmt"
	"time"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contrato"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/precificacao"
)

const dataNaoInformada = "Data não informada"

func formatarData(t *time.Time) string {
	if t == nil {
		return dataNaoInformada
	}
	return t.Format("02/01/2006")
}

// advérbio de periodicidade conforme o tipo de plano
func periodicidade(tipoPlano string) string {
	switch precificacao.TipoPlano(tipoPlano) {
	case precificacao.PlanoSemestral:
		return "semestralmente"
	case precificacao.PlanoAnual:
		return "anualmente"
	default:
		return "mensalmente"
	}
}

func nomePeriodo(tipoPlano string) string {
	switch precificacao.TipoPlano(tipoPlano) {
	case precificacao.PlanoSemestral:
		return "semestral"
	case precificacao.PlanoAnual:
		return "anual"
	default:
		return "mensal"
	}
}

// TextoClausulaValor é a cláusula de preço e forma de pagamento.
func TextoClausulaValor(c contrato.Contrato) string {
	valor := c.ValorMensal
	if valor == "" {
		valor = "0,00"
	}
	return fmt.Sprintf(
		"Pela prestação dos serviços ora contratados, a CONTRATANTE pagará à CONTRATADA o valor de <strong>R$ %s</strong>, "+
			"cobrado <strong>%s</strong> no plano %s, com vencimento no dia %d de cada período de cobrança.",
		valor, periodicidade(c.TipoPlano), nomePeriodo(c.TipoPlano), c.DiaPagamento)
}

// TextoClausulaVigencia é a cláusula de início e renovação da vigência.
func TextoClausulaVigencia(c contrato.Contrato) string {
	texto := fmt.Sprintf(
		"O presente contrato entra em vigor em <strong>%s</strong> e vigorará por prazo indeterminado, "+
			"renovando-se automaticamente a cada período %s.",
		formatarData(c.DataInicio), nomePeriodo(c.TipoPlano))
	if c.DataRenovacao != nil {
		texto += fmt.Sprintf(" A próxima renovação está prevista para <strong>%s</strong>.", formatarData(c.DataRenovacao))
	}
	return texto
}

// TextoClausulaTeste é a cláusula do período de avaliação gratuita;
// retorna vazio quando o contrato não prevê teste.
func TextoClausulaTeste(c contrato.Contrato) string {
	if c.DiasTeste <= 0 {
		return ""
	}
	return fmt.Sprintf(
		"A CONTRATANTE terá direito a um período de avaliação gratuita de <strong>%d dias</strong> contados da "+
			"data de início da vigência, ao fim do qual a cobrança passa a correr %s.",
		c.DiasTeste, periodicidade(c.TipoPlano))
}

// TextoClausulaDesconto descreve o desconto aplicado em planos
// semestrais e anuais; vazio para plano mensal ou desconto zero.
func TextoClausulaDesconto(c contrato.Contrato) string {
	tipo := precificacao.TipoPlano(c.TipoPlano)
	var pct string
	switch tipo {
	case precificacao.PlanoSemestral:
		if !c.DescontoSemestral.IsPositive() {
			return ""
		}
		pct = c.DescontoSemestral.StringFixed(2)
	case precificacao.PlanoAnual:
		if !c.DescontoAnual.IsPositive() {
			return ""
		}
		pct = c.DescontoAnual.StringFixed(2)
	default:
		return ""
	}
	return fmt.Sprintf(
		"Sobre o valor do plano %s incide desconto de <strong>%s%%</strong>, já refletido no valor contratado.",
		nomePeriodo(c.TipoPlano), pct)
}

// TextoClausulaAbrangencia descreve a capacidade contratada.
func TextoClausulaAbrangencia(c contrato.Contrato) string {
	return fmt.Sprintf(
		"Os serviços abrangem até <strong>%d funcionários</strong> e <strong>%d CNPJ(s)</strong> cadastrados; "+
			"excedentes serão cobrados como adicionais conforme tabela vigente.",
		c.QtdFuncionarios, c.QtdCnpjs)
}

// Todas devolve as cláusulas na ordem do documento, omitindo as vazias.
func Todas(c contrato.Contrato) []string {
	candidatas := []string{
		TextoClausulaValor(c),
		TextoClausulaDesconto(c),
		TextoClausulaAbrangencia(c),
		TextoClausulaVigencia(c),
		TextoClausulaTeste(c),
	}
	clausulas := make([]string, 0, len(candidatas))
	for _, t := range candidatas {
		if t != "" {
			clausulas = append(clausulas, t)
		}
	}
	return clausulas
}
