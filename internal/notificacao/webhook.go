package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// EnviarWebhookAlerta dispara um aviso para o webhook configurado em
// WEBHOOK_ALERTA_URL (fire-and-forget; falha só é registrada no log).
func EnviarWebhookAlerta(mensagem, numeroContrato string) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}
	payload := map[string]string{
		"mensagem": mensagem,
		"contrato": numeroContrato,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
