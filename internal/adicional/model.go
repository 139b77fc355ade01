package adicional

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Chaves estáveis do catálogo de adicionais. A versão anterior do sistema
// localizava o adicional por substring do nome digitado ("funcionários
// extras"), um contrato implícito e frágil; aqui a busca é por chave.
const (
	ChaveFuncionariosExtras   = "funcionarios-extras"
	ChaveCnpjsExtras          = "cnpjs-extras"
	ChaveReconhecimentoFacial = "reconhecimento-facial"
)

// Adicional representa um item avulso cobrado além do plano base,
// precificado por unidade (grupo de 100 funcionários, CNPJ extra, etc).
type Adicional struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Chave         string          `gorm:"size:50;uniqueIndex;not null" json:"chave"`
	Nome          string          `gorm:"size:100;not null" json:"nome"`
	PrecoUnitario decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"precoUnitario"`
	Ativo         bool            `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Adicional{})
}
