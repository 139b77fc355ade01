package precificacao

import "testing"

func TestFormatarValorBR(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"3952.80", "3.952,80"},
		{"1500", "1.500,00"},
		{"150", "150,00"},
		{"0", "0,00"},
		{"1234567.89", "1.234.567,89"},
		{"-250.5", "-250,50"},
		{"99.999", "100,00"}, // arredonda em 2 casas
	}
	for _, c := range casos {
		if got := FormatarValorBR(dec(c.entrada)); got != c.esperado {
			t.Errorf("FormatarValorBR(%s) = %q, esperado %q", c.entrada, got, c.esperado)
		}
	}
}

func TestParseValorBR(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
		erro     bool
	}{
		{"3.952,80", "3952.8", false},
		{"3952.80", "3952.8", false},
		{"R$ 1.500,00", "1500", false},
		{"150,00", "150", false},
		{"", "", true},
		{"abc", "", true},
	}
	for _, c := range casos {
		v, err := ParseValorBR(c.entrada)
		if c.erro {
			if err == nil {
				t.Errorf("ParseValorBR(%q): esperado erro", c.entrada)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseValorBR(%q): erro inesperado %v", c.entrada, err)
			continue
		}
		if v.String() != c.esperado {
			t.Errorf("ParseValorBR(%q) = %s, esperado %s", c.entrada, v, c.esperado)
		}
	}
}

func TestFormatarEReler(t *testing.T) {
	original := dec("98765.43")
	relido, err := ParseValorBR(FormatarValorBR(original))
	if err != nil {
		t.Fatal(err)
	}
	if !relido.Equal(original) {
		t.Errorf("ida e volta alterou o valor: %s -> %s", original, relido)
	}
}
