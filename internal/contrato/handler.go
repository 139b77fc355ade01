package contrato

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/adicional"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contratante"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/eventos"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/notificacao"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/plano"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/precificacao"
	"github.com/TharksPhill/contractpro-optimized-sub002/internal/validacao"
)

// Handler gerencia rotas de contratos
type Handler struct {
	Repo    *Repository
	Prec    *Precificador
	Eventos *eventos.Publisher
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository, planos *plano.Repository, adicionais *adicional.Repository, ev *eventos.Publisher) *Handler {
	return &Handler{
		Repo:    repo,
		Prec:    &Precificador{Planos: planos, Adicionais: adicionais},
		Eventos: ev,
	}
}

// ValidarSalvarDTO aplica no cadastro manual as mesmas regras de
// documento do import de planilha. A versão anterior só validava
// checksum no import, uma assimetria que deixava CPF/CNPJ inválido
// entrar pela tela.
func ValidarSalvarDTO(dto SalvarContratoDTO) []string {
	var erros []string
	if dto.Numero == "" {
		erros = append(erros, "número do contrato é obrigatório")
	}
	if dto.QtdFuncionarios < 0 {
		erros = append(erros, "quantidade de funcionários não pode ser negativa")
	}
	if dto.QtdCnpjs < 1 {
		erros = append(erros, "contrato deve cobrir ao menos 1 CNPJ")
	}
	if _, ok := precificacao.NormalizarTipoPlano(dto.TipoPlano); !ok {
		erros = append(erros, "tipo de plano deve ser mensal, semestral ou anual")
	}
	if dto.DataInicio != "" && !validacao.ValidarData(dto.DataInicio) {
		erros = append(erros, "data de início inválida (use YYYY-MM-DD)")
	}
	if len(dto.Contratantes) == 0 {
		erros = append(erros, "contrato precisa de ao menos um contratante")
	}
	for i, ct := range dto.Contratantes {
		pos := strconv.Itoa(i + 1)
		if ct.Nome == "" {
			erros = append(erros, "contratante "+pos+": nome é obrigatório")
		}
		if !validacao.ValidarCNPJ(ct.CNPJ) {
			erros = append(erros, "contratante "+pos+": CNPJ inválido")
		}
		if ct.CPF != "" && !validacao.ValidarCPF(ct.CPF) {
			erros = append(erros, "contratante "+pos+": CPF inválido")
		}
		if ct.ResponsavelCPF != "" && !validacao.ValidarCPF(ct.ResponsavelCPF) {
			erros = append(erros, "contratante "+pos+": CPF do responsável inválido")
		}
	}
	return erros
}

func responderErros(w http.ResponseWriter, erros []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string][]string{"erros": erros})
}

func (h *Handler) aplicarDTO(c *Contrato, dto SalvarContratoDTO) {
	tipo, _ := precificacao.NormalizarTipoPlano(dto.TipoPlano)
	c.Numero = dto.Numero
	c.QtdFuncionarios = dto.QtdFuncionarios
	c.QtdCnpjs = dto.QtdCnpjs
	c.TipoPlano = string(tipo)
	c.DescontoSemestral = dto.DescontoSemestral
	c.DescontoAnual = dto.DescontoAnual
	c.DiasTeste = dto.DiasTeste
	c.DiaPagamento = dto.DiaPagamento
	c.DataInicio = parseData(dto.DataInicio)
	c.DataRenovacao = parseData(dto.DataRenovacao)
}

// Criar trata POST /contratos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto SalvarContratoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if erros := ValidarSalvarDTO(dto); len(erros) > 0 {
		responderErros(w, erros)
		return
	}
	if _, err := h.Repo.FindByNumero(dto.Numero); err == nil {
		http.Error(w, "número de contrato já cadastrado", http.StatusConflict)
		return
	}

	// CNPJ repetido não impede o cadastro, mas dispara o alerta
	for _, ct := range dto.Contratantes {
		if existe, err := h.Repo.CNPJJaCadastrado(ct.CNPJ); err == nil && existe {
			go notificacao.EnviarWebhookAlerta("CNPJ já cadastrado em outro contrato: "+ct.CNPJ, dto.Numero)
		}
	}

	var c Contrato
	h.aplicarDTO(&c, dto)
	c.Status = StatusAguardandoAssinatura

	if dto.ValorMensal != "" {
		// sobrescrita manual: aceita o valor informado e congela o recálculo
		if _, err := precificacao.ParseValorBR(dto.ValorMensal); err != nil {
			http.Error(w, "valor mensal inválido", http.StatusBadRequest)
			return
		}
		c.ValorMensal = dto.ValorMensal
		c.ValorEditadoManualmente = true
	} else {
		valor, err := h.Prec.ValorFormatado(dto)
		if err != nil {
			if errors.Is(err, ErrCatalogoVazio) {
				http.Error(w, "nenhum plano de preço cadastrado", http.StatusUnprocessableEntity)
				return
			}
			http.Error(w, "erro ao calcular valor do contrato", http.StatusInternalServerError)
			return
		}
		c.ValorMensal = valor
	}

	contratantes := make([]contratante.Contratante, 0, len(dto.Contratantes))
	for _, ct := range dto.Contratantes {
		contratantes = append(contratantes, ct.ToModel())
	}

	if err := h.Repo.CriarComContratantes(&c, contratantes); err != nil {
		http.Error(w, "erro ao salvar contrato", http.StatusInternalServerError)
		return
	}

	h.Eventos.Publicar(r.Context(), eventos.ContratoCriado, map[string]interface{}{
		"contratoId": c.ID, "numero": c.Numero, "valor": c.ValorMensal,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// Listar trata GET /contratos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "contrato não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// Atualizar trata PUT /contratos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "contrato não encontrado", http.StatusNotFound)
		return
	}
	if c.Bloqueado {
		http.Error(w, "contrato bloqueado para edição", http.StatusConflict)
		return
	}

	var dto SalvarContratoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if erros := ValidarSalvarDTO(dto); len(erros) > 0 {
		responderErros(w, erros)
		return
	}

	h.aplicarDTO(c, dto)

	switch {
	case dto.ValorMensal != "" && dto.ValorMensal != c.ValorMensal:
		// usuário sobrescreveu o valor na mão
		if _, err := precificacao.ParseValorBR(dto.ValorMensal); err != nil {
			http.Error(w, "valor mensal inválido", http.StatusBadRequest)
			return
		}
		c.ValorMensal = dto.ValorMensal
		c.ValorEditadoManualmente = true
	case c.ValorEditadoManualmente:
		// valor congelado: só o recálculo explícito volta a mexer nele
	default:
		valor, err := h.Prec.ValorFormatado(dto)
		if err != nil {
			http.Error(w, "erro ao calcular valor do contrato", http.StatusInternalServerError)
			return
		}
		c.ValorMensal = valor
	}

	if err := h.Repo.Update(c); err != nil {
		if errors.Is(err, ErrContratoBloqueado) {
			http.Error(w, "contrato bloqueado para edição", http.StatusConflict)
			return
		}
		http.Error(w, "erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// Recalcular trata POST /contratos/{id}/recalcular: descarta a
// sobrescrita manual e recalcula o valor com o catálogo atual.
func (h *Handler) Recalcular(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "contrato não encontrado", http.StatusNotFound)
		return
	}

	valor, err := h.Prec.ValorFormatado(SalvarContratoDTO{
		QtdFuncionarios:   c.QtdFuncionarios,
		QtdCnpjs:          c.QtdCnpjs,
		TipoPlano:         c.TipoPlano,
		DescontoSemestral: c.DescontoSemestral,
		DescontoAnual:     c.DescontoAnual,
	})
	if err != nil {
		http.Error(w, "erro ao recalcular valor", http.StatusInternalServerError)
		return
	}

	c.ValorMensal = valor
	c.ValorEditadoManualmente = false
	if err := h.Repo.Update(c); err != nil {
		if errors.Is(err, ErrContratoBloqueado) {
			http.Error(w, "contrato bloqueado para edição", http.StatusConflict)
			return
		}
		http.Error(w, "erro ao salvar contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// Deletar trata DELETE /contratos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "contrato não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(c); err != nil {
		if errors.Is(err, ErrContratoBloqueado) {
			http.Error(w, "contrato bloqueado para edição", http.StatusConflict)
			return
		}
		http.Error(w, "erro ao excluir contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Simulacao trata GET /contratos/simulacao. Parâmetros: funcionarios,
// cnpjs, tipoPlano, descontoSemestral, descontoAnual.
func (h *Handler) Simulacao(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	funcionarios, _ := strconv.Atoi(q.Get("funcionarios"))
	cnpjs, err := strconv.Atoi(q.Get("cnpjs"))
	if err != nil || cnpjs < 1 {
		cnpjs = 1
	}
	tipo, ok := precificacao.NormalizarTipoPlano(q.Get("tipoPlano"))
	if !ok {
		tipo = precificacao.PlanoMensal
	}
	descSem, _ := decimal.NewFromString(q.Get("descontoSemestral"))
	descAnual, _ := decimal.NewFromString(q.Get("descontoAnual"))

	sim, err := h.Prec.Simular(funcionarios, cnpjs, tipo, descSem, descAnual)
	if err != nil {
		if errors.Is(err, ErrCatalogoVazio) {
			http.Error(w, "nenhum plano de preço cadastrado", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "erro ao simular preço", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sim)
}

// ResumoPorUF trata GET /contratos/resumo-uf: contagem e receita por
// estado do primeiro contratante de cada contrato.
func (h *Handler) ResumoPorUF(w http.ResponseWriter, r *http.Request) {
	contratos, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "erro ao listar contratos", http.StatusInternalServerError)
		return
	}

	type acumulado struct {
		qtd     int64
		receita decimal.Decimal
	}
	porUF := map[string]*acumulado{}
	for _, c := range contratos {
		uf := "ND"
		if len(c.Contratantes) > 0 && c.Contratantes[0].Estado != "" {
			uf = c.Contratantes[0].Estado
		}
		ac, ok := porUF[uf]
		if !ok {
			ac = &acumulado{receita: decimal.Zero}
			porUF[uf] = ac
		}
		ac.qtd++
		if v, err := precificacao.ParseValorBR(c.ValorMensal); err == nil {
			ac.receita = ac.receita.Add(v)
		}
	}

	resumo := make([]ResumoUF, 0, len(porUF))
	for uf, ac := range porUF {
		resumo = append(resumo, ResumoUF{
			Estado:        uf,
			QtdContratos:  ac.qtd,
			ReceitaMensal: precificacao.FormatarValorBR(ac.receita),
		})
	}
	sort.Slice(resumo, func(i, j int) bool { return resumo[i].Estado < resumo[j].Estado })

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumo)
}
