package plano

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlanoPreco representa uma faixa de preço do catálogo, definida por um
// intervalo de funcionários, quantidade de CNPJs inclusos e o preço por
// período de cobrança. O catálogo é mantido ordenado por funcionarios_min.
type PlanoPreco struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Nome            string          `gorm:"size:100;not null" json:"nome"`
	FuncionariosMin int             `gorm:"not null" json:"funcionariosMin"`
	FuncionariosMax int             `gorm:"not null" json:"funcionariosMax"`
	CnpjsInclusos   int             `gorm:"not null;default:1" json:"cnpjsInclusos"`
	PrecoMensal     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"precoMensal"`
	PrecoSemestral  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"precoSemestral"`
	PrecoAnual      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"precoAnual"`
	Ativo           bool            `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PlanoPreco{})
}
