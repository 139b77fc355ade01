package custos

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// Handler gerencia rotas de custos da empresa
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Criar trata POST /custos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var c CustoEmpresa
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if c.Nome == "" || c.Categoria == "" {
		http.Error(w, "nome e categoria são obrigatórios", http.StatusBadRequest)
		return
	}
	if !c.ValorMensal.IsPositive() {
		http.Error(w, "valor mensal deve ser positivo", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Create(&c); err != nil {
		http.Error(w, "erro ao criar custo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// Listar trata GET /custos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarAtivos()
	if err != nil {
		http.Error(w, "erro ao listar custos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Atualizar trata PUT /custos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var c CustoEmpresa
	if err := h.Repo.DB.First(&c, id).Error; err != nil {
		http.Error(w, "custo não encontrado", http.StatusNotFound)
		return
	}
	var payload CustoEmpresa
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	c.Nome = payload.Nome
	c.Categoria = payload.Categoria
	c.ValorMensal = payload.ValorMensal
	c.Ativo = payload.Ativo
	if err := h.Repo.Update(&c); err != nil {
		http.Error(w, "erro ao atualizar custo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// Deletar trata DELETE /custos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var c CustoEmpresa
	if err := h.Repo.DB.First(&c, id).Error; err != nil {
		http.Error(w, "custo não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(&c); err != nil {
		http.Error(w, "erro ao excluir custo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Projecao trata GET /custos/projecao?meses=12: soma dos custos ativos
// projetada mês a mês a partir do mês corrente.
func (h *Handler) Projecao(w http.ResponseWriter, r *http.Request) {
	meses, err := strconv.Atoi(r.URL.Query().Get("meses"))
	if err != nil || meses < 1 || meses > 60 {
		meses = 12
	}

	list, err := h.Repo.ListarAtivos()
	if err != nil {
		http.Error(w, "erro ao listar custos", http.StatusInternalServerError)
		return
	}

	totalMensal := decimal.Zero
	for _, c := range list {
		totalMensal = totalMensal.Add(c.ValorMensal)
	}

	inicio := time.Now()
	projecao := make([]ProjecaoMes, 0, meses)
	for i := 0; i < meses; i++ {
		mes := inicio.AddDate(0, i, 0)
		projecao = append(projecao, ProjecaoMes{
			Mes:   mes.Format("2006-01"),
			Total: totalMensal,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(projecao)
}
