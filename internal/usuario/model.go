package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario é uma conta interna do sistema (operação e administração).
type Usuario struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nome      string `gorm:"size:100;not null" json:"nome"`
	Sobrenome string `gorm:"size:100" json:"sobrenome"`
	Email     string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Senha     string `gorm:"size:255;not null" json:"-"` // hash bcrypt, nunca exposto
	IsAdmin   bool   `gorm:"not null;default:false" json:"isAdmin"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
