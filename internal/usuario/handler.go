package usuario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/auth"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/utils"
)

// Handler gerencia rotas de usuários
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type loginDTO struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginRespostaDTO struct {
	Token   string   `json:"token"`
	Usuario *Usuario `json:"usuario"`
}

// Login trata POST /login: valida credenciais e emite o JWT.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto loginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	u, err := h.Repo.BuscarPorEmail(dto.Email)
	if err != nil || !utils.VerificarSenha(u.Senha, dto.Senha) {
		// resposta única para e-mail inexistente e senha errada
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}
	token, err := auth.GerarToken(u.ID, u.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(loginRespostaDTO{Token: token, Usuario: u})
}

type criarUsuarioDTO struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Email     string `json:"email"`
	Senha     string `json:"senha"`
	IsAdmin   bool   `json:"isAdmin"`
}

// Criar trata POST /usuarios (somente admin).
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto criarUsuarioDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Nome == "" || dto.Email == "" {
		http.Error(w, "nome e e-mail são obrigatórios", http.StatusBadRequest)
		return
	}
	senha := dto.Senha
	if senha == "" {
		var err error
		senha, err = utils.GerarSenhaTemporaria()
		if err != nil {
			http.Error(w, "erro ao gerar senha temporária", http.StatusInternalServerError)
			return
		}
	}
	hash, err := utils.HashSenha(senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}
	u := Usuario{
		Nome:      dto.Nome,
		Sobrenome: dto.Sobrenome,
		Email:     dto.Email,
		Senha:     hash,
		IsAdmin:   dto.IsAdmin,
	}
	if err := h.Repo.Create(&u); err != nil {
		http.Error(w, "erro ao criar usuário (e-mail já cadastrado?)", http.StatusConflict)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(u)
}

// Listar trata GET /usuarios (somente admin).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "erro ao listar usuários", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /usuarios/{id}: o próprio usuário ou um admin.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	solicitante, _ := r.Context().Value(auth.CtxUsuarioID).(uint)
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)
	if !isAdmin && solicitante != uint(id) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}
	u, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

type alterarSenhaDTO struct {
	SenhaAtual string `json:"senhaAtual"`
	SenhaNova  string `json:"senhaNova"`
}

// AlterarSenha trata PUT /usuarios/{id}/senha: só o próprio usuário.
func (h *Handler) AlterarSenha(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	solicitante, _ := r.Context().Value(auth.CtxUsuarioID).(uint)
	if solicitante != uint(id) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}
	var dto alterarSenhaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if len(dto.SenhaNova) < 8 {
		http.Error(w, "a nova senha deve ter pelo menos 8 caracteres", http.StatusBadRequest)
		return
	}
	u, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	if !utils.VerificarSenha(u.Senha, dto.SenhaAtual) {
		http.Error(w, "senha atual incorreta", http.StatusUnauthorized)
		return
	}
	hash, err := utils.HashSenha(dto.SenhaNova)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}
	u.Senha = hash
	if err := h.Repo.Update(u); err != nil {
		http.Error(w, "erro ao atualizar usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
