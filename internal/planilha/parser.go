package planilha

import "strings"

// ParsearCSV quebra o texto em linhas e campos, respeitando aspas em
// campos que contêm vírgula e aspas duplicadas ("") como escape. O
// parser varre caractere a caractere; quebra de linha dentro de campo
// entre aspas não é suportada, igual ao formato que o exportador gera.
func ParsearCSV(texto string) [][]string {
	texto = strings.TrimPrefix(texto, "\uFEFF")
	var linhas [][]string
	for _, linha := range strings.Split(texto, "\n") {
		linha = strings.TrimSuffix(linha, "\r")
		if strings.TrimSpace(linha) == "" {
			continue
		}
		linhas = append(linhas, parsearLinha(linha))
	}
	return linhas
}

func parsearLinha(linha string) []string {
	var campos []string
	var atual strings.Builder
	dentroAspas := false

	for i := 0; i < len(linha); i++ {
		ch := linha[i]
		switch {
		case ch == '"':
			if dentroAspas && i+1 < len(linha) && linha[i+1] == '"' {
				atual.WriteByte('"')
				i++
			} else {
				dentroAspas = !dentroAspas
			}
		case ch == ',' && !dentroAspas:
			campos = append(campos, strings.TrimSpace(atual.String()))
			atual.Reset()
		default:
			atual.WriteByte(ch)
		}
	}
	campos = append(campos, strings.TrimSpace(atual.String()))
	return campos
}
