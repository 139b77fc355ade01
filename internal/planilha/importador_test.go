package planilha

import (
	"strings"
	"testing"
)

// linhaValida monta uma linha de dados completa, permitindo sobrescrever
// colunas específicas.
func linhaValida(overrides map[int]string) []string {
	campos := make([]string, totalColunas)
	campos[colNumero] = "042"
	campos[colNomeContratante] = "Empresa Alfa Ltda"
	campos[colCPFContratante] = "529.982.247-25"
	campos[colCNPJ] = "11.222.333/0001-81"
	campos[colQtdFuncionarios] = "120"
	campos[colQtdCnpjs] = "2"
	campos[colResponsavelNome] = "Maria Souza"
	campos[colResponsavelCPF] = "529.982.247-25"
	campos[colDiaPagamento] = "10"
	campos[colDataInicio] = "2025-03-01"
	campos[colCidade] = "Campinas"
	campos[colEstado] = "SP"
	campos[colEmail] = "contato@alfa.com.br"
	campos[colEndereco] = "Rua das Flores 100"
	campos[colValorMensal] = "1500.00"
	campos[colTipoPlano] = "mensal"
	campos[colResponsavelRG] = "12.345.678-9"
	campos[colDescontoSemestral] = "5"
	campos[colDescontoAnual] = "10"
	campos[colDiasTeste] = "15"
	campos[colDataRenovacao] = "2026-03-01"
	for col, v := range overrides {
		campos[col] = v
	}
	return campos
}

func TestValidarLinha(t *testing.T) {
	if erros := ValidarLinha(linhaValida(nil)); len(erros) != 0 {
		t.Fatalf("linha válida não deveria ter erros: %v", erros)
	}

	casos := []struct {
		nome      string
		overrides map[int]string
		contem    string
	}{
		{"CNPJ invalido", map[int]string{colCNPJ: "11.222.333/0001-82"}, "CNPJ inválido"},
		{"CPF do responsavel invalido", map[int]string{colResponsavelCPF: "111.111.111-11"}, "CPF do responsável inválido"},
		{"data de inicio invalida", map[int]string{colDataInicio: "01/03/2025"}, "data de início inválida"},
		{"valor mensal invalido", map[int]string{colValorMensal: "abc"}, "valor mensal inválido"},
		{"tipo de plano desconhecido", map[int]string{colTipoPlano: "trimestral"}, "tipo de plano inválido"},
		{"nome ausente", map[int]string{colNomeContratante: ""}, "campo obrigatório ausente: nome do contratante"},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			erros := ValidarLinha(linhaValida(c.overrides))
			if len(erros) == 0 {
				t.Fatal("esperado ao menos um erro")
			}
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

func TestValidarLinhaColunasInsuficientes(t *testing.T) {
	erros := ValidarLinha([]string{"042", "Empresa"})
	if len(erros) != 1 || !strings.Contains(erros[0], "colunas") {
		t.Errorf("esperado erro único de contagem de colunas, obtidos %v", erros)
	}
}

func TestAgruparPorContrato(t *testing.T) {
	linhas := [][]string{
		linhaValida(nil),
		linhaValida(map[int]string{colNomeContratante: "Filial Beta"}),
		linhaValida(map[int]string{colNumero: "043", colNomeContratante: "Empresa Gama"}),
	}

	grupos := AgruparPorContrato(linhas)
	if len(grupos) != 2 {
		t.Fatalf("esperados 2 grupos, obtidos %d", len(grupos))
	}

	g := grupos[0]
	if g.Numero != "042" || len(g.Contratantes) != 2 {
		t.Errorf("grupo 042: %d contratantes", len(g.Contratantes))
	}
	// numeração 1-based contando o cabeçalho: dados começam na linha 2
	if len(g.Linhas) != 2 || g.Linhas[0] != 2 || g.Linhas[1] != 3 {
		t.Errorf("linhas do grupo 042 = %v, esperado [2 3]", g.Linhas)
	}
	if g.Contratantes[1].Nome != "Filial Beta" {
		t.Errorf("segundo contratante = %q", g.Contratantes[1].Nome)
	}

	g = grupos[1]
	if g.Numero != "043" || len(g.Contratantes) != 1 || g.Linhas[0] != 4 {
		t.Errorf("grupo 043 inesperado: %+v", g)
	}
}

func TestImportarAbortaLoteComLinhaInvalida(t *testing.T) {
	header := strings.Repeat("col,", totalColunas-1) + "col"
	boa := strings.Join(linhaValida(nil), ",")
	ruim := strings.Join(linhaValida(map[int]string{colCNPJ: "00.000.000/0000-00"}), ",")

	imp := NewImportador(nil) // nada deve ser gravado
	res := imp.Importar(header + "\n" + boa + "\n" + ruim + "\n")

	if !res.NadaGravado {
		t.Error("lote com linha inválida deveria abortar sem gravar")
	}
	if res.Sucessos != 0 || res.Falhas != 0 {
		t.Errorf("nenhum grupo deveria ter sido processado: %+v", res)
	}
	if len(res.ErrosLinha) == 0 || !strings.Contains(res.ErrosLinha[0], "linha 3") {
		t.Errorf("erro deveria apontar a linha 3: %v", res.ErrosLinha)
	}
}

func TestImportarArquivoVazio(t *testing.T) {
	imp := NewImportador(nil)
	res := imp.Importar("")
	if !res.NadaGravado || len(res.ErrosLinha) == 0 {
		t.Errorf("arquivo vazio deveria abortar: %+v", res)
	}
}
