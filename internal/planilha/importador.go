package planilha

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contratante"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contrato"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/precificacao"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/validacao"
)

// Posições das colunas do arquivo de importação. O layout é posicional:
// a ordem das colunas é contrato firme com quem gera o arquivo.
const (
	colNumero = iota
	colNomeContratante
	colCPFContratante
	colCNPJ
	colQtdFuncionarios
	colQtdCnpjs
	colResponsavelNome
	colResponsavelCPF
	colDiaPagamento
	colDataInicio
	colCidade
	colEstado
	colEmail
	colEndereco
	colValorMensal
	colTipoPlano
	colResponsavelRG
	colDescontoSemestral
	colDescontoAnual
	colDiasTeste
	colDataRenovacao

	totalColunas
)

// pausaEntreGrupos espaça as gravações sequenciais para não afogar o
// banco em lotes grandes.
var pausaEntreGrupos = 100 * time.Millisecond

// GrupoContrato é o resultado do agrupamento: várias linhas com o mesmo
// número viram um contrato com um contratante por linha. As linhas de
// origem ficam guardadas para o relatório de erros.
type GrupoContrato struct {
	Numero       string
	Campos       []string
	Contratantes []contratante.Contratante
	Linhas       []int
}

// ResultadoGrupo registra o desfecho da gravação de um grupo.
type ResultadoGrupo struct {
	Numero     string `json:"numero"`
	Linhas     []int  `json:"linhas"`
	ContratoID uint   `json:"contratoId,omitempty"`
	Erro       string `json:"erro,omitempty"`
}

// ResultadoImportacao é o relatório final do lote.
type ResultadoImportacao struct {
	Sucessos    int              `json:"sucessos"`
	Falhas      int              `json:"falhas"`
	ErrosLinha  []string         `json:"errosLinha,omitempty"`
	Grupos      []ResultadoGrupo `json:"grupos,omitempty"`
	NadaGravado bool             `json:"nadaGravado"`
	TotalLinhas int              `json:"totalLinhas"`
	TotalGrupos int              `json:"totalGrupos"`
}

// ValidarLinha checa uma linha de dados do arquivo. Retorna a lista de
// problemas encontrados; vazia significa linha válida.
func ValidarLinha(campos []string) []string {
	var erros []string

	if len(campos) < totalColunas {
		return []string{fmt.Sprintf("esperadas %d colunas, encontradas %d", totalColunas, len(campos))}
	}

	obrigatorios := []struct {
		col  int
		nome string
	}{
		{colNumero, "número do contrato"},
		{colNomeContratante, "nome do contratante"},
		{colCNPJ, "CNPJ"},
		{colResponsavelNome, "nome do responsável"},
		{colResponsavelCPF, "CPF do responsável"},
		{colDataInicio, "data de início"},
		{colCidade, "cidade"},
		{colEstado, "estado"},
		{colValorMensal, "valor mensal"},
		{colTipoPlano, "tipo de plano"},
	}
	for _, o := range obrigatorios {
		if campos[o.col] == "" {
			erros = append(erros, "campo obrigatório ausente: "+o.nome)
		}
	}

	if campos[colCNPJ] != "" && !validacao.ValidarCNPJ(campos[colCNPJ]) {
		erros = append(erros, "CNPJ inválido: "+campos[colCNPJ])
	}
	if campos[colCPFContratante] != "" && !validacao.ValidarCPF(campos[colCPFContratante]) {
		erros = append(erros, "CPF do contratante inválido: "+campos[colCPFContratante])
	}
	if campos[colResponsavelCPF] != "" && !validacao.ValidarCPF(campos[colResponsavelCPF]) {
		erros = append(erros, "CPF do responsável inválido: "+campos[colResponsavelCPF])
	}
	if campos[colDataInicio] != "" && !validacao.ValidarData(campos[colDataInicio]) {
		erros = append(erros, "data de início inválida (use YYYY-MM-DD): "+campos[colDataInicio])
	}
	if campos[colDataRenovacao] != "" && !validacao.ValidarData(campos[colDataRenovacao]) {
		erros = append(erros, "data de renovação inválida (use YYYY-MM-DD): "+campos[colDataRenovacao])
	}
	if campos[colValorMensal] != "" {
		if _, err := validacao.ParseValorMonetario(campos[colValorMensal]); err != nil {
			erros = append(erros, "valor mensal inválido: "+campos[colValorMensal])
		}
	}
	if campos[colTipoPlano] != "" {
		if _, ok := precificacao.NormalizarTipoPlano(campos[colTipoPlano]); !ok {
			erros = append(erros, "tipo de plano inválido (mensal, semestral ou anual): "+campos[colTipoPlano])
		}
	}

	return erros
}

// AgruparPorContrato junta as linhas de dados pelo número do contrato,
// na ordem em que aparecem. numeroLinha é 1-based contando o cabeçalho,
// então a primeira linha de dados é a 2.
func AgruparPorContrato(linhas [][]string) []GrupoContrato {
	indice := map[string]int{}
	var grupos []GrupoContrato

	for i, campos := range linhas {
		numeroLinha := i + 2
		numero := campos[colNumero]

		pos, existe := indice[numero]
		if !existe {
			pos = len(grupos)
			indice[numero] = pos
			grupos = append(grupos, GrupoContrato{Numero: numero, Campos: campos})
		}

		grupos[pos].Contratantes = append(grupos[pos].Contratantes, contratante.Contratante{
			Nome:            campos[colNomeContratante],
			CPF:             campos[colCPFContratante],
			CNPJ:            campos[colCNPJ],
			Email:           campos[colEmail],
			Endereco:        campos[colEndereco],
			Cidade:          campos[colCidade],
			Estado:          campos[colEstado],
			ResponsavelNome: campos[colResponsavelNome],
			ResponsavelCPF:  campos[colResponsavelCPF],
			ResponsavelRG:   campos[colResponsavelRG],
		})
		grupos[pos].Linhas = append(grupos[pos].Linhas, numeroLinha)
	}

	return grupos
}

// Importador replica pela planilha o mesmo caminho de persistência do
// cadastro manual de contratos.
type Importador struct {
	Contratos *contrato.Repository
}

// NewImportador cria um novo Importador
func NewImportador(contratos *contrato.Repository) *Importador {
	return &Importador{Contratos: contratos}
}

// Importar processa o texto CSV completo. Primeiro valida todas as
// linhas: qualquer erro aborta o lote inteiro sem gravar nada. Com tudo
// válido, grava os grupos um a um, sequencialmente; a falha de um grupo
// não desfaz os já gravados (melhor esforço, relatado por grupo).
func (imp *Importador) Importar(texto string) ResultadoImportacao {
	linhas := ParsearCSV(texto)
	if len(linhas) < 2 {
		return ResultadoImportacao{
			NadaGravado: true,
			ErrosLinha:  []string{"arquivo vazio ou sem linhas de dados"},
		}
	}

	dados := linhas[1:] // descarta o cabeçalho
	resultado := ResultadoImportacao{TotalLinhas: len(dados)}

	for i, campos := range dados {
		for _, e := range ValidarLinha(campos) {
			resultado.ErrosLinha = append(resultado.ErrosLinha, fmt.Sprintf("linha %d: %s", i+2, e))
		}
	}
	if len(resultado.ErrosLinha) > 0 {
		resultado.NadaGravado = true
		return resultado
	}

	grupos := AgruparPorContrato(dados)
	resultado.TotalGrupos = len(grupos)

	for i, g := range grupos {
		if i > 0 {
			time.Sleep(pausaEntreGrupos)
		}

		rg := ResultadoGrupo{Numero: g.Numero, Linhas: g.Linhas}
		c, err := montarContrato(g)
		if err == nil {
			err = imp.Contratos.CriarComContratantes(c, g.Contratantes)
		}
		if err != nil {
			rg.Erro = err.Error()
			resultado.Falhas++
		} else {
			rg.ContratoID = c.ID
			resultado.Sucessos++
		}
		resultado.Grupos = append(resultado.Grupos, rg)
	}

	return resultado
}

// montarContrato constrói o Contrato a partir dos campos da primeira
// linha do grupo. As linhas já passaram pela validação.
func montarContrato(g GrupoContrato) (*contrato.Contrato, error) {
	campos := g.Campos

	tipo, _ := precificacao.NormalizarTipoPlano(campos[colTipoPlano])
	valor, err := validacao.ParseValorMonetario(campos[colValorMensal])
	if err != nil {
		return nil, err
	}

	qtdFuncionarios, _ := strconv.Atoi(campos[colQtdFuncionarios])
	qtdCnpjs, _ := strconv.Atoi(campos[colQtdCnpjs])
	if qtdCnpjs < 1 {
		qtdCnpjs = len(g.Contratantes)
	}
	diaPagamento, _ := strconv.Atoi(campos[colDiaPagamento])
	if diaPagamento < 1 || diaPagamento > 31 {
		diaPagamento = 5
	}
	diasTeste, _ := strconv.Atoi(campos[colDiasTeste])
	descSem := parseDecimalOuZero(campos[colDescontoSemestral])
	descAnual := parseDecimalOuZero(campos[colDescontoAnual])

	c := &contrato.Contrato{
		Numero:            g.Numero,
		QtdFuncionarios:   qtdFuncionarios,
		QtdCnpjs:          qtdCnpjs,
		TipoPlano:         string(tipo),
		ValorMensal:       precificacao.FormatarValorBR(valor),
		DescontoSemestral: descSem,
		DescontoAnual:     descAnual,
		DiasTeste:         diasTeste,
		DiaPagamento:      diaPagamento,
		Status:            contrato.StatusAguardandoAssinatura,
	}
	if t, err := time.Parse("2006-01-02", campos[colDataInicio]); err == nil {
		c.DataInicio = &t
	}
	if campos[colDataRenovacao] != "" {
		if t, err := time.Parse("2006-01-02", campos[colDataRenovacao]); err == nil {
			c.DataRenovacao = &t
		}
	}
	return c, nil
}

func parseDecimalOuZero(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}
