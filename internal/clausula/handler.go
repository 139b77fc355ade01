package clausula

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contrato"
)

// Handler gerencia a rota de geração de cláusulas
type Handler struct {
	Contratos *contrato.Repository
}

// NewHandler cria um novo Handler
func NewHandler(contratos *contrato.Repository) *Handler {
	return &Handler{Contratos: contratos}
}

// Gerar trata GET /contratos/{id}/clausulas
func (h *Handler) Gerar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Contratos.FindByID(uint(id))
	if err != nil {
		http.Error(w, "contrato não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"contratoId": c.ID,
		"numero":     c.Numero,
		"clausulas":  Todas(*c),
	})
}
