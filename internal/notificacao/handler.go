package notificacao

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/auth"
)

// Handler gerencia rotas de notificações
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Listar trata GET /notificacoes; ?naoLidas=true filtra as pendentes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := r.Context().Value(auth.CtxUsuarioID).(uint)
	somenteNaoLidas := r.URL.Query().Get("naoLidas") == "true"

	list, err := h.Repo.ListarPorUsuario(usuarioID, somenteNaoLidas)
	if err != nil {
		http.Error(w, "erro ao listar notificações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// MarcarLida trata POST /notificacoes/{id}/lida
func (h *Handler) MarcarLida(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.MarcarLida(uint(id)); err != nil {
		http.Error(w, "erro ao marcar notificação", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
