package rejeicao

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/assinatura"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contratante"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contrato"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/eventos"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/notificacao"
)

// Handler gerencia o fluxo de rejeição e revisão de contratos
type Handler struct {
	Repo         *Repository
	Contratos    *contrato.Repository
	Contratantes *contratante.Repository
	Assinaturas  *assinatura.Repository
	Prec         *contrato.Precificador
	Notificacoes *notificacao.Repository
	Eventos      *eventos.Publisher
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository, contratos *contrato.Repository, contratantes *contratante.Repository,
	assinaturas *assinatura.Repository, prec *contrato.Precificador,
	notificacoes *notificacao.Repository, ev *eventos.Publisher) *Handler {
	return &Handler{
		Repo:         repo,
		Contratos:    contratos,
		Contratantes: contratantes,
		Assinaturas:  assinaturas,
		Prec:         prec,
		Notificacoes: notificacoes,
		Eventos:      ev,
	}
}

// Registrar trata POST /contratos/{id}/rejeicoes: o contratante formaliza
// a objeção ao contrato oferecido.
func (h *Handler) Registrar(w http.ResponseWriter, r *http.Request) {
	contratoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Contratos.FindByID(uint(contratoID))
	if err != nil {
		http.Error(w, "contrato não encontrado", http.StatusNotFound)
		return
	}

	var dto struct {
		ContratanteID uint   `json:"contratanteId"`
		Motivo        string `json:"motivo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Motivo == "" {
		http.Error(w, "motivo da rejeição é obrigatório", http.StatusBadRequest)
		return
	}

	vinculados, err := h.Contratantes.ListarPorContrato(c.ID)
	if err != nil {
		http.Error(w, "erro ao consultar contratantes", http.StatusInternalServerError)
		return
	}
	if !contratantePertence(vinculados, dto.ContratanteID) {
		http.Error(w, "contratante não pertence a este contrato", http.StatusUnprocessableEntity)
		return
	}

	rej := RejeicaoContratante{
		ContratoID:    c.ID,
		ContratanteID: dto.ContratanteID,
		Motivo:        dto.Motivo,
		Status:        StatusPendente,
	}
	if err := h.Repo.Create(&rej); err != nil {
		http.Error(w, "erro ao registrar rejeição", http.StatusInternalServerError)
		return
	}

	// enquanto a rejeição aguarda análise o contrato fica em revisão,
	// travado contra edições de negócio
	if err := h.Contratos.Bloquear(c.ID); err != nil {
		http.Error(w, "erro ao bloquear contrato", http.StatusInternalServerError)
		return
	}

	_ = h.Notificacoes.Create(&notificacao.Notificacao{
		Titulo:   "Contrato " + c.Numero + " rejeitado",
		Mensagem: dto.Motivo,
	})
	go notificacao.EnviarWebhookAlerta("Contratante rejeitou o contrato", c.Numero)
	h.Eventos.Publicar(r.Context(), eventos.RejeicaoRegistrada, map[string]interface{}{
		"contratoId": c.ID, "numero": c.Numero, "rejeicaoId": rej.ID,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rej)
}

// Listar trata GET /rejeicoes. Aceita um query param opcional `status`.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	var (
		list []RejeicaoContratante
		err  error
	)
	if status != "" {
		list, err = h.Repo.ListarPorStatus(status)
	} else {
		list, err = h.Repo.ListarPorStatus(StatusPendente)
	}
	if err != nil {
		http.Error(w, "erro ao listar rejeições", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// ListarPorContrato trata GET /contratos/{id}/rejeicoes
func (h *Handler) ListarPorContrato(w http.ResponseWriter, r *http.Request) {
	contratoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListarPorContrato(uint(contratoID))
	if err != nil {
		http.Error(w, "erro ao listar rejeições", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// analisarDTO é o payload da análise administrativa de uma rejeição.
type analisarDTO struct {
	Decisao string                      `json:"decisao"` // "aprovada" ou "recusada"
	Parecer string                      `json:"parecer"`
	Revisao *contrato.SalvarContratoDTO `json:"revisao"`
}

// Analisar trata POST /rejeicoes/{id}/analisar. Aprovar exige o payload
// de revisão: a edição é aplicada ao contrato numa única transação
// (campos + substituição dos contratantes + descarte dos artefatos de
// assinatura), o contrato volta para aguardando_assinatura e fica
// bloqueado contra edições fora do fluxo de revisão.
func (h *Handler) Analisar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	rej, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "rejeição não encontrada", http.StatusNotFound)
		return
	}
	if rej.Status != StatusPendente {
		http.Error(w, "rejeição já analisada", http.StatusConflict)
		return
	}

	var dto analisarDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	switch dto.Decisao {
	case StatusRecusada:
		rej.Status = StatusRecusada
		rej.Parecer = dto.Parecer
		if err := h.Repo.Update(rej); err != nil {
			http.Error(w, "erro ao salvar análise", http.StatusInternalServerError)
			return
		}
		// rejeição recusada: o contrato volta liberado para assinatura
		if err := h.Contratos.Desbloquear(rej.ContratoID); err != nil {
			http.Error(w, "erro ao desbloquear contrato", http.StatusInternalServerError)
			return
		}

	case StatusAprovada:
		if dto.Revisao == nil {
			http.Error(w, "aprovação exige o payload de revisão", http.StatusBadRequest)
			return
		}
		if erros := contrato.ValidarSalvarDTO(*dto.Revisao); len(erros) > 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string][]string{"erros": erros})
			return
		}
		if err := h.aplicarRevisao(rej, dto); err != nil {
			http.Error(w, "erro ao aplicar revisão", http.StatusInternalServerError)
			return
		}
		h.Eventos.Publicar(r.Context(), eventos.ContratoRevisado, map[string]interface{}{
			"contratoId": rej.ContratoID, "rejeicaoId": rej.ID,
		})

	default:
		http.Error(w, "decisão deve ser 'aprovada' ou 'recusada'", http.StatusBadRequest)
		return
	}

	rej, err = h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "rejeição não encontrada após análise", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rej)
}

// contratantePertence verifica se o contratante informado está entre os
// vinculados ao contrato.
func contratantePertence(contratantes []contratante.Contratante, id uint) bool {
	for _, ct := range contratantes {
		if ct.ID == id {
			return true
		}
	}
	return false
}

// aplicarRevisao executa a edição administrativa dentro de uma transação.
// É o único caminho autorizado a mexer num contrato bloqueado, por isso
// escreve direto na transação em vez de passar pelo guard do repositório.
func (h *Handler) aplicarRevisao(rej *RejeicaoContratante, dto analisarDTO) error {
	rev := dto.Revisao

	valor := rev.ValorMensal
	if valor == "" {
		v, err := h.Prec.ValorFormatado(*rev)
		if err != nil {
			return err
		}
		valor = v
	}

	return h.Repo.DB.Transaction(func(tx *gorm.DB) error {
		atualizacoes := map[string]interface{}{
			"numero":             rev.Numero,
			"qtd_funcionarios":   rev.QtdFuncionarios,
			"qtd_cnpjs":          rev.QtdCnpjs,
			"tipo_plano":         rev.TipoPlano,
			"valor_mensal":       valor,
			"desconto_semestral": rev.DescontoSemestral,
			"desconto_anual":     rev.DescontoAnual,
			"dias_teste":         rev.DiasTeste,
			"dia_pagamento":      rev.DiaPagamento,
			"status":             contrato.StatusAguardandoAssinatura,
			"em_revisao":         false,
			"bloqueado":          true,
		}
		if rev.DataInicio != "" {
			if t, err := time.Parse("2006-01-02", rev.DataInicio); err == nil {
				atualizacoes["data_inicio"] = t
			}
		}
		if rev.DataRenovacao != "" {
			if t, err := time.Parse("2006-01-02", rev.DataRenovacao); err == nil {
				atualizacoes["data_renovacao"] = t
			}
		}
		if err := tx.Model(&contrato.Contrato{}).Where("id = ?", rej.ContratoID).
			Updates(atualizacoes).Error; err != nil {
			return err
		}

		novos := make([]contratante.Contratante, 0, len(rev.Contratantes))
		for _, ct := range rev.Contratantes {
			novos = append(novos, ct.ToModel())
		}
		if err := h.Contratantes.SubstituirDoContrato(tx, rej.ContratoID, novos); err != nil {
			return err
		}

		// a revisão reabre o fluxo de assinatura do zero
		if err := h.Assinaturas.LimparDoContrato(tx, rej.ContratoID); err != nil {
			return err
		}

		revisao := RevisaoContrato{
			RejeicaoID: rej.ID,
			ContratoID: rej.ContratoID,
			Dados:      *rev,
			AplicadaEm: time.Now(),
		}
		if err := tx.Create(&revisao).Error; err != nil {
			return err
		}

		rej.Status = StatusAprovada
		rej.Parecer = dto.Parecer
		return tx.Save(rej).Error
	})
}
