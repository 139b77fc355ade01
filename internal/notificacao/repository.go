package notificacao

import "gorm.io/gorm"

// Repository encapsula operações de banco para Notificacao
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere uma nova notificação
func (r *Repository) Create(n *Notificacao) error {
	return r.DB.Create(n).Error
}

// ListarPorUsuario retorna as notificações do usuário (e os broadcasts),
// mais recentes primeiro.
func (r *Repository) ListarPorUsuario(usuarioID uint, somenteNaoLidas bool) ([]Notificacao, error) {
	q := r.DB.Where("usuario_id = ? OR usuario_id = 0", usuarioID)
	if somenteNaoLidas {
		q = q.Where("lida = ?", false)
	}
	var list []Notificacao
	err := q.Order("created_at DESC").Find(&list).Error
	return list, err
}

// MarcarLida marca uma notificação como lida
func (r *Repository) MarcarLida(id uint) error {
	return r.DB.Model(&Notificacao{}).Where("id = ?", id).Update("lida", true).Error
}
