package utils

import (
	"strings"
	"testing"
)

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := HashSenha("segredo123")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "segredo123" {
		t.Error("hash não pode ser a senha em texto puro")
	}
	if !VerificarSenha(hash, "segredo123") {
		t.Error("senha correta deveria verificar")
	}
	if VerificarSenha(hash, "errada") {
		t.Error("senha errada não deveria verificar")
	}
}

func TestGerarTokenAcesso(t *testing.T) {
	a, err := GerarTokenAcesso()
	if err != nil {
		t.Fatal(err)
	}
	b, err := GerarTokenAcesso()
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 48 || len(b) != 48 {
		t.Errorf("tokens deveriam ter 48 caracteres: %d e %d", len(a), len(b))
	}
	if a == b {
		t.Error("dois tokens consecutivos não deveriam coincidir")
	}
	for _, r := range a {
		if !strings.ContainsRune(charsAleatorios, r) {
			t.Errorf("caractere fora do alfabeto: %q", r)
		}
	}
}

func TestGerarSenhaTemporaria(t *testing.T) {
	s, err := GerarSenhaTemporaria()
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 12 {
		t.Errorf("senha temporária com %d caracteres, esperados 12", len(s))
	}
}
