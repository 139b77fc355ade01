package contratante

import "gorm.io/gorm"

// Repository encapsula operações de banco para Contratante
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ListarPorContrato retorna os contratantes de um contrato
func (r *Repository) ListarPorContrato(contratoID uint) ([]Contratante, error) {
	var list []Contratante
	err := r.DB.Where("contrato_id = ?", contratoID).Order("id ASC").Find(&list).Error
	return list, err
}

// SubstituirDoContrato troca todos os contratantes de um contrato pelos
// informados (apaga e reinsere), o padrão usado pelo fluxo de revisão.
// Deve rodar dentro da transação recebida em tx.
func (r *Repository) SubstituirDoContrato(tx *gorm.DB, contratoID uint, novos []Contratante) error {
	if err := tx.Where("contrato_id = ?", contratoID).Delete(&Contratante{}).Error; err != nil {
		return err
	}
	for i := range novos {
		novos[i].ID = 0
		novos[i].ContratoID = contratoID
	}
	if len(novos) == 0 {
		return nil
	}
	return tx.Create(&novos).Error
}
