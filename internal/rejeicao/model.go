package rejeicao

import (
	"time"

	"gorm.io/gorm"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contrato"
)

// Ciclo de vida de uma rejeição: nasce pendente e a análise do
// administrador a aprova (gerando uma revisão do contrato) ou recusa.
const (
	StatusPendente = "pendente"
	StatusAprovada = "aprovada"
	StatusRecusada = "recusada"
)

// RejeicaoContratante é a objeção formal de um contratante a um contrato
// que lhe foi oferecido para assinatura.
type RejeicaoContratante struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ContratoID    uint   `gorm:"not null;index" json:"contratoId"`
	ContratanteID uint   `gorm:"not null;index" json:"contratanteId"`
	Motivo        string `gorm:"not null" json:"motivo"`
	Status        string `gorm:"size:20;not null;default:'pendente';index" json:"status"`
	Parecer       string `json:"parecer"` // justificativa da análise

	Revisao *RevisaoContrato `gorm:"foreignKey:RejeicaoID" json:"revisao,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RevisaoContrato guarda a edição administrativa aplicada ao contrato em
// resposta a uma rejeição aprovada. Dados é o payload completo aplicado,
// preservado para auditoria.
type RevisaoContrato struct {
	ID         uint                       `gorm:"primaryKey" json:"id"`
	RejeicaoID uint                       `gorm:"not null;index" json:"rejeicaoId"`
	ContratoID uint                       `gorm:"not null;index" json:"contratoId"`
	Dados      contrato.SalvarContratoDTO `gorm:"type:jsonb;serializer:json" json:"dados"`
	AplicadaEm time.Time                  `json:"aplicadaEm"`

	CreatedAt time.Time `json:"createdAt"`
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&RejeicaoContratante{}, &RevisaoContrato{})
}
