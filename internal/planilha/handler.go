package planilha

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contrato"
)

// Handler gerencia importação e exportação de contratos via CSV
type Handler struct {
	Contratos  *contrato.Repository
	Importador *Importador
}

// NewHandler cria um novo Handler
func NewHandler(contratos *contrato.Repository) *Handler {
	return &Handler{Contratos: contratos, Importador: NewImportador(contratos)}
}

// Importar trata POST /contratos/importar com o CSV no corpo da
// requisição (text/csv).
func (h *Handler) Importar(w http.ResponseWriter, r *http.Request) {
	corpo, err := io.ReadAll(io.LimitReader(r.Body, 10<<20))
	if err != nil {
		http.Error(w, "erro ao ler arquivo", http.StatusBadRequest)
		return
	}
	if len(corpo) == 0 {
		http.Error(w, "arquivo vazio", http.StatusBadRequest)
		return
	}

	resultado := h.Importador.Importar(string(corpo))

	w.Header().Set("Content-Type", "application/json")
	if resultado.NadaGravado && len(resultado.ErrosLinha) > 0 {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	json.NewEncoder(w).Encode(resultado)
}

// Exportar trata GET /contratos/exportar e devolve o CSV como download.
func (h *Handler) Exportar(w http.ResponseWriter, r *http.Request) {
	contratos, err := h.Contratos.ListarTodos()
	if err != nil {
		http.Error(w, "erro ao listar contratos", http.StatusInternalServerError)
		return
	}

	csv := Exportar(contratos)
	nome := NomeArquivoExportacao(time.Now())

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+nome+`"`)
	_, _ = w.Write([]byte(csv))
}
