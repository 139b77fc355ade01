package contrato

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/TharksPhill/contractpro-optimized-sub002/internal/contratante"
)

// Status possíveis de um contrato ao longo do ciclo de vida.
const (
	StatusRascunho             = "rascunho"
	StatusAguardandoAssinatura = "aguardando_assinatura"
	StatusAssinado             = "assinado"
	StatusEmRevisao            = "em_revisao"
)

// Contrato é o registro persistido de um contrato de serviço.
//
// ValorMensal guarda a string formatada em padrão brasileiro ("3.952,80"),
// não um número: é a forma exata exibida e assinada que precisa ser
// preservada. A aritmética acontece em decimal e a formatação fica na
// borda (internal/precificacao).
type Contrato struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Numero string `gorm:"size:50;uniqueIndex;not null" json:"numero"`

	QtdFuncionarios int `gorm:"not null;default:0" json:"qtdFuncionarios"`
	QtdCnpjs        int `gorm:"not null;default:1" json:"qtdCnpjs"`

	TipoPlano   string `gorm:"size:20;not null;default:'mensal'" json:"tipoPlano"`
	ValorMensal string `gorm:"size:30;not null" json:"valorMensal"`

	// enquanto true, alterações de entrada não recalculam o valor
	ValorEditadoManualmente bool `gorm:"not null;default:false" json:"valorEditadoManualmente"`

	DescontoSemestral decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0" json:"descontoSemestral"`
	DescontoAnual     decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0" json:"descontoAnual"`

	DiasTeste     int        `gorm:"not null;default:0" json:"diasTeste"`
	DiaPagamento  int        `gorm:"not null;default:5" json:"diaPagamento"`
	DataInicio    *time.Time `json:"dataInicio"`
	DataRenovacao *time.Time `json:"dataRenovacao"`

	Status    string `gorm:"size:30;not null;default:'rascunho';index" json:"status"`
	Bloqueado bool   `gorm:"not null;default:false" json:"bloqueado"`
	EmRevisao bool   `gorm:"not null;default:false" json:"emRevisao"`

	Contratantes []contratante.Contratante `gorm:"foreignKey:ContratoID;constraint:OnDelete:CASCADE" json:"contratantes"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados e aplica relacionamentos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contrato{})
}
