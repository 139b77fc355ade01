package rejeicao

import "gorm.io/gorm"

// Repository encapsula operações de banco para rejeições e revisões
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere uma nova rejeição
func (r *Repository) Create(rej *RejeicaoContratante) error {
	return r.DB.Create(rej).Error
}

// FindByID retorna uma rejeição pelo ID, com a revisão se existir
func (r *Repository) FindByID(id uint) (*RejeicaoContratante, error) {
	var rej RejeicaoContratante
	if err := r.DB.Preload("Revisao").First(&rej, id).Error; err != nil {
		return nil, err
	}
	return &rej, nil
}

// ListarPorContrato retorna as rejeições de um contrato
func (r *Repository) ListarPorContrato(contratoID uint) ([]RejeicaoContratante, error) {
	var list []RejeicaoContratante
	err := r.DB.Preload("Revisao").Where("contrato_id = ?", contratoID).
		Order("created_at DESC").Find(&list).Error
	return list, err
}

// ListarPorStatus retorna as rejeições num determinado status
func (r *Repository) ListarPorStatus(status string) ([]RejeicaoContratante, error) {
	var list []RejeicaoContratante
	err := r.DB.Preload("Revisao").Where("status = ?", status).
		Order("created_at ASC").Find(&list).Error
	return list, err
}

// Update salva alterações em uma rejeição
func (r *Repository) Update(rej *RejeicaoContratante) error {
	return r.DB.Save(rej).Error
}
