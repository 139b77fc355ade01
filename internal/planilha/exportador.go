package planilha

import (
	"strconv"
	"strings"
	"time"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contrato"
)

// CabecalhoExportacao é o layout fixo de 16 colunas do arquivo exportado.
// Contratos com vários contratantes repetem os campos do contrato em cada
// linha.
var CabecalhoExportacao = []string{
	"Número do Contrato",
	"Nome do Contratante",
	"CPF do Contratante",
	"CNPJ",
	"Funcionários",
	"CNPJs",
	"Responsável",
	"CPF do Responsável",
	"Data de Início",
	"Cidade",
	"Estado",
	"Valor Mensal",
	"Tipo de Plano",
	"Dias de Teste",
	"Data de Renovação",
	"Status",
}

// NomeArquivoExportacao gera o nome padrão contratos_<data ISO>.csv.
func NomeArquivoExportacao(agora time.Time) string {
	return "contratos_" + agora.Format("2006-01-02") + ".csv"
}

// Exportar serializa os contratos no layout de 16 colunas, uma linha por
// contratante, com aspas no estilo RFC 4180 e UTF-8.
func Exportar(contratos []contrato.Contrato) string {
	var b strings.Builder
	escreverLinha(&b, CabecalhoExportacao)

	for _, c := range contratos {
		inicio := formatarData(c.DataInicio)
		renovacao := formatarData(c.DataRenovacao)
		for _, ct := range c.Contratantes {
			escreverLinha(&b, []string{
				c.Numero,
				ct.Nome,
				ct.CPF,
				ct.CNPJ,
				strconv.Itoa(c.QtdFuncionarios),
				strconv.Itoa(c.QtdCnpjs),
				ct.ResponsavelNome,
				ct.ResponsavelCPF,
				inicio,
				ct.Cidade,
				ct.Estado,
				c.ValorMensal,
				c.TipoPlano,
				strconv.Itoa(c.DiasTeste),
				renovacao,
				c.Status,
			})
		}
	}
	return b.String()
}

func escreverLinha(b *strings.Builder, campos []string) {
	for i, campo := range campos {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapar(campo))
	}
	b.WriteByte('\n')
}

// escapar envolve em aspas campos com vírgula ou aspas, dobrando as
// aspas internas.
func escapar(campo string) string {
	if !strings.ContainsAny(campo, ",\"") {
		return campo
	}
	return `"` + strings.ReplaceAll(campo, `"`, `""`) + `"`
}

func formatarData(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

