package plano

import "gorm.io/gorm"

// Repository encapsula operações de banco para PlanoPreco
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo plano no catálogo
func (r *Repository) Create(p *PlanoPreco) error {
	return r.DB.Create(p).Error
}

// ListarAtivos retorna os planos ativos ordenados pela faixa mínima de
// funcionários, a ordem que a calculadora de preços espera.
func (r *Repository) ListarAtivos() ([]PlanoPreco, error) {
	var list []PlanoPreco
	err := r.DB.Where("ativo = ?", true).Order("funcionarios_min ASC").Find(&list).Error
	return list, err
}

// ListarTodos retorna o catálogo completo, inclusive planos desativados.
func (r *Repository) ListarTodos() ([]PlanoPreco, error) {
	var list []PlanoPreco
	err := r.DB.Order("funcionarios_min ASC").Find(&list).Error
	return list, err
}

// FindByID retorna um plano pelo ID
func (r *Repository) FindByID(id uint) (*PlanoPreco, error) {
	var p PlanoPreco
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Update salva alterações em um plano existente
func (r *Repository) Update(p *PlanoPreco) error {
	return r.DB.Save(p).Error
}

// Delete remove um plano do catálogo (soft delete)
func (r *Repository) Delete(p *PlanoPreco) error {
	return r.DB.Delete(p).Error
}
