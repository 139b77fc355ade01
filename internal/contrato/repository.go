package contrato

import (
	"errors"

	"gorm.io/gorm"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contratante"
)

// ErrContratoBloqueado é devolvido por qualquer escrita sobre um contrato
// bloqueado. O bloqueio é garantido aqui, na borda de persistência; a
// checagem na interface é só um atalho.
var ErrContratoBloqueado = errors.New("contrato bloqueado para edição")

// Repository encapsula operações de banco para Contrato
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CriarComContratantes persiste o contrato e seus contratantes numa única
// transação.
func (r *Repository) CriarComContratantes(c *Contrato, contratantes []contratante.Contratante) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		for i := range contratantes {
			contratantes[i].ContratoID = c.ID
		}
		if len(contratantes) > 0 {
			if err := tx.Create(&contratantes).Error; err != nil {
				return err
			}
		}
		c.Contratantes = contratantes
		return nil
	})
}

// ListarTodos retorna todos os contratos com seus contratantes
func (r *Repository) ListarTodos() ([]Contrato, error) {
	var list []Contrato
	err := r.DB.Preload("Contratantes").Order("numero ASC").Find(&list).Error
	return list, err
}

// FindByID retorna um contrato pelo ID, com contratantes
func (r *Repository) FindByID(id uint) (*Contrato, error) {
	var c Contrato
	if err := r.DB.Preload("Contratantes").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByNumero retorna um contrato pelo número
func (r *Repository) FindByNumero(numero string) (*Contrato, error) {
	var c Contrato
	if err := r.DB.Preload("Contratantes").Where("numero = ?", numero).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// CNPJJaCadastrado informa se algum contratante já usa o CNPJ em outro
// contrato. Alimenta o alerta de CNPJ duplicado no cadastro; duplicidade
// não bloqueia a criação (matriz e filial podem repetir raiz de CNPJ).
func (r *Repository) CNPJJaCadastrado(cnpj string) (bool, error) {
	var total int64
	err := r.DB.Model(&contratante.Contratante{}).Where("cnpj = ?", cnpj).Count(&total).Error
	return total > 0, err
}

// Update salva alterações em um contrato existente. Rejeita a escrita se
// o registro no banco estiver bloqueado.
func (r *Repository) Update(c *Contrato) error {
	var atual Contrato
	if err := r.DB.Select("bloqueado").First(&atual, c.ID).Error; err != nil {
		return err
	}
	if atual.Bloqueado {
		return ErrContratoBloqueado
	}
	return r.DB.Omit("Contratantes").Save(c).Error
}

// Bloquear trava o contrato e o marca em revisão enquanto a rejeição
// aguarda análise; edições de negócio ficam rejeitadas nesse meio tempo.
func (r *Repository) Bloquear(id uint) error {
	return r.DB.Model(&Contrato{}).Where("id = ?", id).
		Updates(map[string]interface{}{"bloqueado": true, "em_revisao": true, "status": StatusEmRevisao}).Error
}

// Desbloquear devolve o contrato ao fluxo de assinatura liberando as
// edições (rejeição recusada pela análise).
func (r *Repository) Desbloquear(id uint) error {
	return r.DB.Model(&Contrato{}).Where("id = ?", id).
		Updates(map[string]interface{}{"bloqueado": false, "em_revisao": false, "status": StatusAguardandoAssinatura}).Error
}

// Delete remove um contrato (soft delete). Contratos bloqueados não podem
// ser removidos.
func (r *Repository) Delete(c *Contrato) error {
	if c.Bloqueado {
		return ErrContratoBloqueado
	}
	return r.DB.Delete(c).Error
}

// ResumoUF agrega contagem e receita mensal por estado do contratante.
type ResumoUF struct {
	Estado        string `json:"estado"`
	QtdContratos  int64  `json:"qtdContratos"`
	ReceitaMensal string `json:"receitaMensal"`
}
