package contrato

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/adicional"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/plano"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/precificacao"
)

// ErrCatalogoVazio indica que não há plano cadastrado para precificar.
var ErrCatalogoVazio = errors.New("nenhum plano de preço disponível")

// Precificador liga o pipeline puro de cálculo aos catálogos
// persistidos de planos e adicionais.
type Precificador struct {
	Planos     *plano.Repository
	Adicionais *adicional.Repository
}

// Simular roda o pipeline com o catálogo atual.
func (p *Precificador) Simular(qtdFuncionarios, qtdCnpjs int, tipo precificacao.TipoPlano, descontoSemestral, descontoAnual decimal.Decimal) (SimulacaoDTO, error) {
	planos, err := p.Planos.ListarAtivos()
	if err != nil {
		return SimulacaoDTO{}, err
	}
	return Simular(planos,
		p.Adicionais.PrecoUnitario(adicional.ChaveFuncionariosExtras),
		p.Adicionais.PrecoUnitario(adicional.ChaveCnpjsExtras),
		qtdFuncionarios, qtdCnpjs, tipo, descontoSemestral, descontoAnual)
}

// ValorFormatado calcula a string de valor que o contrato persiste para
// o payload informado.
func (p *Precificador) ValorFormatado(dto SalvarContratoDTO) (string, error) {
	tipo, _ := precificacao.NormalizarTipoPlano(dto.TipoPlano)
	sim, err := p.Simular(dto.QtdFuncionarios, dto.QtdCnpjs, tipo, dto.DescontoSemestral, dto.DescontoAnual)
	if err != nil {
		return "", err
	}
	return sim.ValorFormatado, nil
}

// Simular roda o pipeline completo de precificação (resolução do plano
// base, adicionais e ajuste de período/desconto) sem tocar no banco.
func Simular(planos []plano.PlanoPreco, precoGrupoFuncionarios, precoCnpj decimal.Decimal,
	qtdFuncionarios, qtdCnpjs int, tipo precificacao.TipoPlano,
	descontoSemestral, descontoAnual decimal.Decimal) (SimulacaoDTO, error) {

	base, ok := precificacao.ResolverPlanoBase(planos, qtdFuncionarios)
	if !ok {
		return SimulacaoDTO{}, ErrCatalogoVazio
	}

	adicionais := precificacao.CalcularAdicionais(base, qtdFuncionarios, qtdCnpjs, precoGrupoFuncionarios, precoCnpj)

	desconto := decimal.Zero
	switch tipo {
	case precificacao.PlanoSemestral:
		desconto = descontoSemestral
	case precificacao.PlanoAnual:
		desconto = descontoAnual
	}

	total := precificacao.AplicarPeriodoEDesconto(base.PrecoMensal, adicionais.Total(), tipo, desconto)

	return SimulacaoDTO{
		Adicionais:      adicionais,
		SubtotalMensal:  base.PrecoMensal.Add(adicionais.Total()).Round(2),
		TotalPeriodo:    total,
		ValorFormatado:  precificacao.FormatarValorBR(total),
		TipoPlano:       tipo,
		DescontoPct:     desconto,
		QtdFuncionarios: qtdFuncionarios,
		QtdCnpjs:        qtdCnpjs,
	}, nil
}
