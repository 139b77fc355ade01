package assinatura

import (
	"time"

	"gorm.io/gorm"
)

// Status de um documento no provedor de assinatura digital.
const (
	StatusPendente  = "pendente"
	StatusAssinado  = "assinado"
	StatusCancelado = "cancelado"
)

// ContratoAssinado registra o documento enviado ao provedor de
// assinatura digital e seu desfecho.
type ContratoAssinado struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ContratoID  uint       `gorm:"not null;index" json:"contratoId"`
	Provedor    string     `gorm:"size:50;not null" json:"provedor"`
	DocumentoID string     `gorm:"size:255" json:"documentoId"`
	Status      string     `gorm:"size:30;not null;default:'pendente'" json:"status"`
	AssinadoEm  *time.Time `json:"assinadoEm"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TokenAcessoContrato dá acesso público de leitura ao contrato na página
// de assinatura, sem login. Expira e só pode ser usado uma vez.
type TokenAcessoContrato struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ContratoID uint       `gorm:"not null;index" json:"contratoId"`
	Token      string     `gorm:"size:64;uniqueIndex;not null" json:"token"`
	ExpiraEm   time.Time  `gorm:"not null" json:"expiraEm"`
	UsadoEm    *time.Time `json:"usadoEm"`

	CreatedAt time.Time `json:"createdAt"`
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ContratoAssinado{}, &TokenAcessoContrato{})
}
