package rejeicao

import (
	"testing"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contratante"
)

func TestContratantePertence(t *testing.T) {
	vinculados := []contratante.Contratante{
		{ID: 7, Nome: "Empresa Alfa"},
		{ID: 9, Nome: "Filial Beta"},
	}

	if !contratantePertence(vinculados, 9) {
		t.Error("contratante 9 está vinculado e deveria pertencer")
	}
	if contratantePertence(vinculados, 3) {
		t.Error("contratante 3 não está vinculado")
	}
	if contratantePertence(nil, 7) {
		t.Error("sem contratantes vinculados nada pertence")
	}
	if contratantePertence(vinculados, 0) {
		t.Error("ID zero nunca pertence")
	}
}
