package usuario

import "gorm.io/gorm"

// Repository encapsula operações de banco para Usuario
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo usuário
func (r *Repository) Create(u *Usuario) error {
	return r.DB.Create(u).Error
}

// BuscarPorEmail retorna um usuário pelo e-mail
func (r *Repository) BuscarPorEmail(email string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// BuscarPorID retorna um usuário pelo ID
func (r *Repository) BuscarPorID(id uint) (*Usuario, error) {
	var u Usuario
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListarTodos retorna todos os usuários
func (r *Repository) ListarTodos() ([]Usuario, error) {
	var list []Usuario
	err := r.DB.Order("nome ASC").Find(&list).Error
	return list, err
}

// Update salva alterações em um usuário
func (r *Repository) Update(u *Usuario) error {
	return r.DB.Save(u).Error
}
