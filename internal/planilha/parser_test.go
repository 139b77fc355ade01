package planilha

import (
	"reflect"
	"testing"
)

func TestParsearCSV(t *testing.T) {
	casos := []struct {
		nome     string
		entrada  string
		esperado [][]string
	}{
		{
			"linha simples",
			"a,b,c\n1,2,3\n",
			[][]string{{"a", "b", "c"}, {"1", "2", "3"}},
		},
		{
			"campo com virgula entre aspas",
			`042,"Empresa Alfa, Ltda",SP`,
			[][]string{{"042", "Empresa Alfa, Ltda", "SP"}},
		},
		{
			"aspas duplicadas como escape",
			`001,"Diz ""oi""",X`,
			[][]string{{"001", `Diz "oi"`, "X"}},
		},
		{
			"ignora linhas vazias e CRLF",
			"a,b\r\n\r\n1,2\r\n",
			[][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			"remove BOM",
			"\uFEFFa,b\n",
			[][]string{{"a", "b"}},
		},
		{
			"espacos nas bordas sao aparados",
			" a , b ",
			[][]string{{"a", "b"}},
		},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			got := ParsearCSV(c.entrada)
			if !reflect.DeepEqual(got, c.esperado) {
				t.Errorf("ParsearCSV(%q) = %v, esperado %v", c.entrada, got, c.esperado)
			}
		})
	}
}
