package contratante

import (
	"time"

	"gorm.io/gorm"
)

// Contratante é a empresa que assina um contrato. Um contrato pode ter
// vários contratantes (matriz e filiais, por exemplo).
type Contratante struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ContratoID uint   `gorm:"not null;index" json:"contratoId"`
	Nome       string `gorm:"size:255;not null" json:"nome"`
	CPF        string `gorm:"size:14" json:"cpf"`
	CNPJ       string `gorm:"size:20;not null" json:"cnpj"`
	Email      string `gorm:"size:255" json:"email"`
	Endereco   string `gorm:"size:255" json:"endereco"`
	Cidade     string `gorm:"size:100" json:"cidade"`
	Estado     string `gorm:"size:2" json:"estado"`

	// identidade do responsável legal
	ResponsavelNome string `gorm:"size:255" json:"responsavelNome"`
	ResponsavelCPF  string `gorm:"size:14" json:"responsavelCpf"`
	ResponsavelRG   string `gorm:"size:20" json:"responsavelRg"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contratante{})
}
