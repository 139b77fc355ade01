package custos

import "gorm.io/gorm"

// Repository encapsula operações de banco para CustoEmpresa
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo custo
func (r *Repository) Create(c *CustoEmpresa) error {
	return r.DB.Create(c).Error
}

// ListarAtivos retorna os custos ativos
func (r *Repository) ListarAtivos() ([]CustoEmpresa, error) {
	var list []CustoEmpresa
	err := r.DB.Where("ativo = ?", true).Order("categoria ASC, nome ASC").Find(&list).Error
	return list, err
}

// Update salva alterações em um custo existente
func (r *Repository) Update(c *CustoEmpresa) error {
	return r.DB.Save(c).Error
}

// Delete remove um custo (soft delete)
func (r *Repository) Delete(c *CustoEmpresa) error {
	return r.DB.Delete(c).Error
}
