package notificacao

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEnviarWebhookAlerta(t *testing.T) {
	recebido := make(chan map[string]string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p map[string]string
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("payload inválido: %v", err)
		}
		recebido <- p
	}))
	defer srv.Close()
	t.Setenv("WEBHOOK_ALERTA_URL", srv.URL)

	EnviarWebhookAlerta("CNPJ já cadastrado em outro contrato: 11.222.333/0001-81", "042")

	select {
	case p := <-recebido:
		if p["mensagem"] != "CNPJ já cadastrado em outro contrato: 11.222.333/0001-81" {
			t.Errorf("mensagem = %q", p["mensagem"])
		}
		if p["contrato"] != "042" {
			t.Errorf("contrato = %q", p["contrato"])
		}
	default:
		t.Fatal("webhook não foi chamado")
	}
}

func TestEnviarWebhookAlertaSemURL(t *testing.T) {
	t.Setenv("WEBHOOK_ALERTA_URL", "")
	// sem URL configurada o envio é um no-op silencioso
	EnviarWebhookAlerta("mensagem qualquer", "001")
}
