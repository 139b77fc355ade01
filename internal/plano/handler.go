package plano

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler gerencia rotas do catálogo de planos
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Criar trata POST /planos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var p PlanoPreco
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if p.FuncionariosMin < 0 || p.FuncionariosMax < p.FuncionariosMin {
		http.Error(w, "faixa de funcionários inválida", http.StatusBadRequest)
		return
	}
	if p.CnpjsInclusos < 1 {
		http.Error(w, "plano deve incluir ao menos 1 CNPJ", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Create(&p); err != nil {
		http.Error(w, "erro ao criar plano", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// Listar trata GET /planos; ?todos=true inclui os desativados
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		list []PlanoPreco
		err  error
	)
	if r.URL.Query().Get("todos") == "true" {
		list, err = h.Repo.ListarTodos()
	} else {
		list, err = h.Repo.ListarAtivos()
	}
	if err != nil {
		http.Error(w, "erro ao listar planos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /planos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "plano não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// Atualizar trata PUT /planos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "plano não encontrado", http.StatusNotFound)
		return
	}
	var payload PlanoPreco
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	p.Nome = payload.Nome
	p.FuncionariosMin = payload.FuncionariosMin
	p.FuncionariosMax = payload.FuncionariosMax
	p.CnpjsInclusos = payload.CnpjsInclusos
	p.PrecoMensal = payload.PrecoMensal
	p.PrecoSemestral = payload.PrecoSemestral
	p.PrecoAnual = payload.PrecoAnual
	p.Ativo = payload.Ativo
	if err := h.Repo.Update(p); err != nil {
		http.Error(w, "erro ao atualizar plano", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// Deletar trata DELETE /planos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "plano não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(p); err != nil {
		http.Error(w, "erro ao excluir plano", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
