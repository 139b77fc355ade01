package db

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Conectar abre a conexão Postgres a partir das variáveis de ambiente
// (DB_HOST, DB_PORT, DB_NAME, DB_SSL_MODE_DISABLE). As credenciais vêm
// do ambiente ou do Secrets Manager (DB_SECRET_ID).
func Conectar() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	nome := os.Getenv("DB_NAME")

	porta, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		porta = 5432
	}

	usuario, senha, err := obterCredenciais(os.Getenv("DB_SECRET_ID"))
	if err != nil {
		return nil, fmt.Errorf("credenciais do banco: %w", err)
	}

	var sslMode string
	if os.Getenv("DB_SSL_MODE_DISABLE") == "true" {
		sslMode = " sslmode=disable"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		host, usuario, senha, nome, porta, sslMode)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}
