package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// HashSenha gera um hash bcrypt para a senha informada.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarSenha compara hash bcrypt com a senha em texto puro.
func VerificarSenha(hash, senha string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
	return err == nil
}

const charsAleatorios = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// gerarAleatorio monta uma string aleatória segura do tamanho pedido.
func gerarAleatorio(tamanho int) (string, error) {
	result := make([]byte, tamanho)
	for i := 0; i < tamanho; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charsAleatorios))))
		if err != nil {
			return "", err
		}
		result[i] = charsAleatorios[num.Int64()]
	}
	return string(result), nil
}

// GerarSenhaTemporaria gera uma senha aleatória segura de 12 caracteres.
func GerarSenhaTemporaria() (string, error) {
	return gerarAleatorio(12)
}

// GerarTokenAcesso gera o token de 48 caracteres usado nos links
// públicos de assinatura.
func GerarTokenAcesso() (string, error) {
	return gerarAleatorio(48)
}
