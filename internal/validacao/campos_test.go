package validacao

import "testing"

func TestValidarData(t *testing.T) {
	casos := []struct {
		data string
		ok   bool
	}{
		{"2025-01-31", true},
		{"2024-02-29", true},  // bissexto
		{"2025-02-29", false}, // nao bissexto
		{"2025-13-01", false},
		{"2025-00-10", false},
		{"31/01/2025", false},
		{"2025-1-31", false}, // exige zero à esquerda
		{"", false},
	}
	for _, c := range casos {
		if got := ValidarData(c.data); got != c.ok {
			t.Errorf("ValidarData(%q) = %v, esperado %v", c.data, got, c.ok)
		}
	}
}

func TestParseValorMonetario(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
		erro     bool
	}{
		{"1500.00", "1500", false},
		{"1.500,00", "1500", false},
		{"R$ 3.952,80", "3952.8", false},
		{"1500", "1500", false},
		{"0", "", true},
		{"0,00", "", true},
		{"abc", "", true},
		{"", "", true},
	}
	for _, c := range casos {
		v, err := ParseValorMonetario(c.entrada)
		if c.erro {
			if err == nil {
				t.Errorf("ParseValorMonetario(%q): esperado erro, obtido %s", c.entrada, v)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseValorMonetario(%q): erro inesperado %v", c.entrada, err)
			continue
		}
		if v.String() != c.esperado {
			t.Errorf("ParseValorMonetario(%q) = %s, esperado %s", c.entrada, v, c.esperado)
		}
	}
}
