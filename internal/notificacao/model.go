package notificacao

import (
	"time"

	"gorm.io/gorm"
)

// Notificacao é um aviso persistido para o painel do usuário.
type Notificacao struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UsuarioID uint   `gorm:"index" json:"usuarioId"` // 0 = broadcast para administradores
	Titulo    string `gorm:"size:255;not null" json:"titulo"`
	Mensagem  string `gorm:"not null" json:"mensagem"`
	Lida      bool   `gorm:"not null;default:false;index" json:"lida"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Notificacao{})
}
