package validacao

import "unicode"

// SanitizarDocumento remove qualquer coisa que não seja dígito.
func SanitizarDocumento(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

func todosIguais(doc string) bool {
	for i := 1; i < len(doc); i++ {
		if doc[i] != doc[0] {
			return false
		}
	}
	return true
}

// ValidarCPF valida um CPF (11 dígitos) pelos dois dígitos verificadores.
// Aceita o documento com ou sem máscara.
func ValidarCPF(cpf string) bool {
	doc := SanitizarDocumento(cpf)
	if len(doc) != 11 {
		return false
	}
	if todosIguais(doc) {
		return false
	}

	// primeiro dígito: pesos 10..2 sobre os 9 primeiros
	soma := 0
	for i := 0; i < 9; i++ {
		soma += int(doc[i]-'0') * (10 - i)
	}
	dv1 := 11 - soma%11
	if dv1 >= 10 {
		dv1 = 0
	}
	if dv1 != int(doc[9]-'0') {
		return false
	}

	// segundo dígito: pesos 11..2 sobre os 10 primeiros
	soma = 0
	for i := 0; i < 10; i++ {
		soma += int(doc[i]-'0') * (11 - i)
	}
	dv2 := 11 - soma%11
	if dv2 >= 10 {
		dv2 = 0
	}
	return dv2 == int(doc[10]-'0')
}

var (
	pesosCNPJ1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	pesosCNPJ2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidarCNPJ valida um CNPJ (14 dígitos) pelos dois dígitos verificadores.
// Aceita o documento com ou sem máscara.
func ValidarCNPJ(cnpj string) bool {
	doc := SanitizarDocumento(cnpj)
	if len(doc) != 14 {
		return false
	}
	if todosIguais(doc) {
		return false
	}

	soma := 0
	for i, p := range pesosCNPJ1 {
		soma += int(doc[i]-'0') * p
	}
	dv1 := 11 - soma%11
	if dv1 >= 10 {
		dv1 = 0
	}
	if dv1 != int(doc[12]-'0') {
		return false
	}

	soma = 0
	for i, p := range pesosCNPJ2 {
		soma += int(doc[i]-'0') * p
	}
	dv2 := 11 - soma%11
	if dv2 >= 10 {
		dv2 = 0
	}
	return dv2 == int(doc[13]-'0')
}
