package custos

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CustoEmpresa é um custo operacional recorrente da empresa, usado nos
// painéis financeiros para confrontar receita de contratos com despesa.
type CustoEmpresa struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Nome        string          `gorm:"size:255;not null" json:"nome"`
	Categoria   string          `gorm:"size:100;not null;index" json:"categoria"`
	ValorMensal decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"valorMensal"`
	Ativo       bool            `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// ProjecaoMes é um ponto da projeção de custos.
type ProjecaoMes struct {
	Mes   string          `json:"mes"` // YYYY-MM
	Total decimal.Decimal `json:"total"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CustoEmpresa{})
}
