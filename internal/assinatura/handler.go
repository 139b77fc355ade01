package assinatura

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/clausula"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contrato"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/eventos"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/utils"
)

// Handler gerencia o fluxo de assinatura digital
type Handler struct {
	Repo      *Repository
	Contratos *contrato.Repository
	Eventos   *eventos.Publisher
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository, contratos *contrato.Repository, ev *eventos.Publisher) *Handler {
	return &Handler{Repo: repo, Contratos: contratos, Eventos: ev}
}

// GerarToken trata POST /contratos/{id}/token-assinatura: emite um link
// público de acesso ao contrato para o contratante assinar.
func (h *Handler) GerarToken(w http.ResponseWriter, r *http.Request) {
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

	token, err := utils.GerarTokenAcesso()
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}
	t := TokenAcessoContrato{
		ContratoID: c.ID,
		Token:      token,
		ExpiraEm:   time.Now().Add(ValidadeToken),
	}
	if err := h.Repo.CriarToken(&t); err != nil {
		http.Error(w, "erro ao salvar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(t)
}

// StatusPorContrato trata GET /contratos/{id}/assinatura: devolve o
// registro de assinatura mais recente do contrato.
func (h *Handler) StatusPorContrato(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	ca, err := h.Repo.BuscarPorContrato(uint(id))
	if err != nil {
		http.Error(w, "contrato sem registro de assinatura", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ca)
}

// AcessarPorToken trata GET /assinatura/{token} (rota pública): devolve
// o contrato e as cláusulas geradas para a página de assinatura.
func (h *Handler) AcessarPorToken(w http.ResponseWriter, r *http.Request) {
	t, err := h.Repo.BuscarTokenValido(mux.Vars(r)["token"])
	if err != nil {
		http.Error(w, "token de acesso inválido ou expirado", http.StatusNotFound)
		return
	}
	c, err := h.Contratos.FindByID(t.ContratoID)
	if err != nil {
		http.Error(w, "contrato não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"contrato":  c,
		"clausulas": clausula.Todas(*c),
	})
}

// callbackDTO é o payload que o provedor de assinatura envia ao concluir
// (ou cancelar) um documento.
type callbackDTO struct {
	Token       string `json:"token"`
	Provedor    string `json:"provedor"`
	DocumentoID string `json:"documentoId"`
	Assinado    bool   `json:"assinado"`
}

// Callback trata POST /assinatura/callback, o retorno do provedor.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	var dto callbackDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	t, err := h.Repo.BuscarTokenValido(dto.Token)
	if err != nil {
		http.Error(w, "token de acesso inválido ou expirado", http.StatusNotFound)
		return
	}
	if !dto.Assinado {
		// cancelamento: token continua válido para nova tentativa
		w.WriteHeader(http.StatusNoContent)
		return
	}

	ca := ContratoAssinado{
		ContratoID:  t.ContratoID,
		Provedor:    dto.Provedor,
		DocumentoID: dto.DocumentoID,
		Status:      StatusPendente,
	}
	if err := h.Repo.RegistrarEnvio(&ca); err != nil {
		http.Error(w, "erro ao registrar assinatura", http.StatusInternalServerError)
		return
	}
	if err := h.Repo.MarcarAssinado(ca.ID, dto.DocumentoID); err != nil {
		http.Error(w, "erro ao concluir assinatura", http.StatusInternalServerError)
		return
	}
	if err := h.Repo.MarcarTokenUsado(t.ID); err != nil {
		http.Error(w, "erro ao consumir token", http.StatusInternalServerError)
		return
	}

	// status do contrato muda direto no banco: o guard de bloqueio vale
	// para edições de negócio, não para a conclusão da assinatura
	err = h.Repo.DB.Model(&contrato.Contrato{}).Where("id = ?", t.ContratoID).
		Update("status", contrato.StatusAssinado).Error
	if err != nil {
		http.Error(w, "erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}

	h.Eventos.Publicar(r.Context(), eventos.ContratoAssinado, map[string]interface{}{
		"contratoId": t.ContratoID, "provedor": dto.Provedor, "documentoId": dto.DocumentoID,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ca)
}
