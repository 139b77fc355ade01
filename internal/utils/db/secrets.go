package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type credenciais struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// obterCredenciais usa DB_USERNAME/DB_PASSWORD quando presentes
// (desenvolvimento local) e cai para o Secrets Manager em produção.
func obterCredenciais(secretID string) (string, string, error) {
	usuario := os.Getenv("DB_USERNAME")
	senha := os.Getenv("DB_PASSWORD")
	if usuario != "" && senha != "" {
		return usuario, senha, nil
	}
	if secretID == "" {
		return "", "", errors.New("defina DB_USERNAME/DB_PASSWORD ou DB_SECRET_ID")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return "", "", fmt.Errorf("config AWS: %w", err)
	}
	cliente := secretsmanager.NewFromConfig(cfg)

	saida, err := cliente.GetSecretValue(context.TODO(), &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return "", "", fmt.Errorf("secrets manager: %w", err)
	}

	var c credenciais
	if err := json.Unmarshal([]byte(aws.ToString(saida.SecretString)), &c); err != nil {
		return "", "", fmt.Errorf("segredo mal formado: %w", err)
	}
	return c.Username, c.Password, nil
}
