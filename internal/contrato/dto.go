package contrato

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contratante"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/precificacao"
)

// ContratanteDTO é o payload de um contratante dentro das requisições de
// contrato.
type ContratanteDTO struct {
	Nome            string `json:"nome"`
	CPF             string `json:"cpf"`
	CNPJ            string `json:"cnpj"`
	Email           string `json:"email"`
	Endereco        string `json:"endereco"`
	Cidade          string `json:"cidade"`
	Estado          string `json:"estado"`
	ResponsavelNome string `json:"responsavelNome"`
	ResponsavelCPF  string `json:"responsavelCpf"`
	ResponsavelRG   string `json:"responsavelRg"`
}

// ToModel converte o DTO para o modelo persistido.
func (d ContratanteDTO) ToModel() contratante.Contratante {
	return contratante.Contratante{
		Nome:            d.Nome,
		CPF:             d.CPF,
		CNPJ:            d.CNPJ,
		Email:           d.Email,
		Endereco:        d.Endereco,
		Cidade:          d.Cidade,
		Estado:          d.Estado,
		ResponsavelNome: d.ResponsavelNome,
		ResponsavelCPF:  d.ResponsavelCPF,
		ResponsavelRG:   d.ResponsavelRG,
	}
}

// SalvarContratoDTO é o payload de criação/edição de contrato. Datas no
// formato YYYY-MM-DD. ValorMensal preenchido indica sobrescrita manual do
// valor calculado.
type SalvarContratoDTO struct {
	Numero          string `json:"numero"`
	QtdFuncionarios int    `json:"qtdFuncionarios"`
	QtdCnpjs        int    `json:"qtdCnpjs"`
	TipoPlano       string `json:"tipoPlano"`

	ValorMensal string `json:"valorMensal"`

	DescontoSemestral decimal.Decimal `json:"descontoSemestral"`
	DescontoAnual     decimal.Decimal `json:"descontoAnual"`

	DiasTeste     int    `json:"diasTeste"`
	DiaPagamento  int    `json:"diaPagamento"`
	DataInicio    string `json:"dataInicio"`
	DataRenovacao string `json:"dataRenovacao"`

	Contratantes []ContratanteDTO `json:"contratantes"`
}

// SimulacaoDTO é a resposta do endpoint de simulação de preço: o
// detalhamento completo do cálculo sem persistir nada.
type SimulacaoDTO struct {
	Adicionais      precificacao.DetalheAdicionais `json:"adicionais"`
	SubtotalMensal  decimal.Decimal                `json:"subtotalMensal"`
	TotalPeriodo    decimal.Decimal                `json:"totalPeriodo"`
	ValorFormatado  string                         `json:"valorFormatado"`
	TipoPlano       precificacao.TipoPlano         `json:"tipoPlano"`
	DescontoPct     decimal.Decimal                `json:"descontoPct"`
	QtdFuncionarios int                            `json:"qtdFuncionarios"`
	QtdCnpjs        int                            `json:"qtdCnpjs"`
}

func parseData(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
