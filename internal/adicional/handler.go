package adicional

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler gerencia rotas do catálogo de adicionais
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Criar trata POST /adicionais
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var a Adicional
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if a.Chave == "" || a.Nome == "" {
		http.Error(w, "chave e nome são obrigatórios", http.StatusBadRequest)
		return
	}
	if !a.PrecoUnitario.IsPositive() {
		http.Error(w, "preço unitário deve ser positivo", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Create(&a); err != nil {
		http.Error(w, "erro ao criar adicional", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// Listar trata GET /adicionais
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "erro ao listar adicionais", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Atualizar trata PUT /adicionais/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var a Adicional
	if err := h.Repo.DB.First(&a, id).Error; err != nil {
		http.Error(w, "adicional não encontrado", http.StatusNotFound)
		return
	}
	var payload Adicional
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	a.Nome = payload.Nome
	a.PrecoUnitario = payload.PrecoUnitario
	a.Ativo = payload.Ativo
	if err := h.Repo.Update(&a); err != nil {
		http.Error(w, "erro ao atualizar adicional", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}
