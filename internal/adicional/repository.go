package adicional

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Preços padrão usados quando a chave não existe no catálogo.
var precosPadrao = map[string]decimal.Decimal{
	ChaveFuncionariosExtras:   decimal.NewFromInt(25),
	ChaveCnpjsExtras:          decimal.NewFromInt(33),
	ChaveReconhecimentoFacial: decimal.NewFromInt(49),
}

// Repository encapsula operações de banco para Adicional
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo adicional
func (r *Repository) Create(a *Adicional) error {
	return r.DB.Create(a).Error
}

// ListarTodos retorna o catálogo de adicionais
func (r *Repository) ListarTodos() ([]Adicional, error) {
	var list []Adicional
	err := r.DB.Order("chave ASC").Find(&list).Error
	return list, err
}

// BuscarPorChave retorna um adicional ativo pela chave estável
func (r *Repository) BuscarPorChave(chave string) (*Adicional, error) {
	var a Adicional
	if err := r.DB.Where("chave = ? AND ativo = ?", chave, true).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// PrecoUnitario retorna o preço de um adicional pela chave, caindo no
// preço padrão quando o catálogo não tem a entrada.
func (r *Repository) PrecoUnitario(chave string) decimal.Decimal {
	a, err := r.BuscarPorChave(chave)
	if err != nil {
		return precosPadrao[chave]
	}
	return a.PrecoUnitario
}

// Update salva alterações em um adicional existente
func (r *Repository) Update(a *Adicional) error {
	return r.DB.Save(a).Error
}

// Delete remove um adicional do catálogo
func (r *Repository) Delete(a *Adicional) error {
	return r.DB.Delete(a).Error
}
