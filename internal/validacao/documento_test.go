package validacao

import "testing"

func TestValidarCPF(t *testing.T) {
	casos := []struct {
		nome string
		cpf  string
		ok   bool
	}{
		{"valido com mascara", "529.982.247-25", true},
		{"valido sem mascara", "52998224725", true},
		{"digito verificador errado", "529.982.247-24", false},
		{"todos iguais", "111.111.111-11", false},
		{"todos zeros", "000.000.000-00", false},
		{"curto demais", "5299822472", false},
		{"longo demais", "529982247255", false},
		{"vazio", "", false},
		{"letras", "abc.def.ghi-jk", false},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			if got := ValidarCPF(c.cpf); got != c.ok {
				t.Errorf("ValidarCPF(%q) = %v, esperado %v", c.cpf, got, c.ok)
			}
		})
	}
}

func TestValidarCNPJ(t *testing.T) {
	casos := []struct {
		nome string
		cnpj string
		ok   bool
	}{
		{"valido com mascara", "11.222.333/0001-81", true},
		{"valido sem mascara", "11222333000181", true},
		{"digito verificador errado", "11.222.333/0001-82", false},
		{"todos iguais", "11.111.111/1111-11", false},
		{"todos zeros", "00.000.000/0000-00", false},
		{"curto demais", "1122233300018", false},
		{"vazio", "", false},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			if got := ValidarCNPJ(c.cnpj); got != c.ok {
				t.Errorf("ValidarCNPJ(%q) = %v, esperado %v", c.cnpj, got, c.ok)
			}
		})
	}
}

func TestSanitizarDocumento(t *testing.T) {
	if got := SanitizarDocumento("529.982.247-25"); got != "52998224725" {
		t.Errorf("SanitizarDocumento = %q", got)
	}
	if got := SanitizarDocumento("abc"); got != "" {
		t.Errorf("SanitizarDocumento de letras = %q, esperado vazio", got)
	}
}
