package assinatura

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrTokenInvalido cobre token desconhecido, expirado ou já usado.
var ErrTokenInvalido = errors.New("token de acesso inválido ou expirado")

// ValidadeToken é o prazo de vida de um token de acesso.
const ValidadeToken = 7 * 24 * time.Hour

// Repository encapsula operações de banco para assinatura
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CriarToken persiste um novo token de acesso para o contrato
func (r *Repository) CriarToken(t *TokenAcessoContrato) error {
	return r.DB.Create(t).Error
}

// BuscarTokenValido retorna o token se ele existir, não estiver expirado
// nem usado.
func (r *Repository) BuscarTokenValido(token string) (*TokenAcessoContrato, error) {
	var t TokenAcessoContrato
	err := r.DB.Where("token = ? AND expira_em > ? AND usado_em IS NULL", token, time.Now()).First(&t).Error
	if err != nil {
		return nil, ErrTokenInvalido
	}
	return &t, nil
}

// MarcarTokenUsado consome o token.
func (r *Repository) MarcarTokenUsado(id uint) error {
	agora := time.Now()
	return r.DB.Model(&TokenAcessoContrato{}).Where("id = ?", id).Update("usado_em", &agora).Error
}

// RegistrarEnvio cria o registro do documento enviado ao provedor
func (r *Repository) RegistrarEnvio(ca *ContratoAssinado) error {
	return r.DB.Create(ca).Error
}

// BuscarPorContrato retorna o registro de assinatura mais recente do contrato
func (r *Repository) BuscarPorContrato(contratoID uint) (*ContratoAssinado, error) {
	var ca ContratoAssinado
	err := r.DB.Where("contrato_id = ?", contratoID).Order("id DESC").First(&ca).Error
	if err != nil {
		return nil, err
	}
	return &ca, nil
}

// MarcarAssinado conclui o fluxo de assinatura do documento.
func (r *Repository) MarcarAssinado(id uint, documentoID string) error {
	agora := time.Now()
	return r.DB.Model(&ContratoAssinado{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       StatusAssinado,
		"documento_id": documentoID,
		"assinado_em":  &agora,
	}).Error
}

// LimparDoContrato descarta tokens e registros de assinatura de um
// contrato quando uma revisão reabre o fluxo de assinatura.
// Deve rodar dentro da transação recebida em tx.
func (r *Repository) LimparDoContrato(tx *gorm.DB, contratoID uint) error {
	if err := tx.Where("contrato_id = ?", contratoID).Delete(&TokenAcessoContrato{}).Error; err != nil {
		return err
	}
	return tx.Where("contrato_id = ?", contratoID).Delete(&ContratoAssinado{}).Error
}
