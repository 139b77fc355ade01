package eventos

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Tipos de evento publicados no ciclo de vida do contrato. O consumidor
// (a função serverless de e-mail) decide o que fazer com cada um.
const (
	ContratoCriado     = "contrato.criado"
	ContratoAssinado   = "contrato.assinado"
	ContratoRevisado   = "contrato.revisado"
	RejeicaoRegistrada = "rejeicao.registrada"
)

// Publisher publica eventos de contrato numa fila durável do RabbitMQ.
// Um Publisher nil é um no-op: o serviço funciona sem broker configurado.
type Publisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

// NewPublisher conecta no broker e garante que a fila exista (durável).
func NewPublisher(uri, queue string) (*Publisher, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, ch: ch, queue: queue}, nil
}

// Publicar serializa o corpo em JSON e publica com o tipo do evento no
// header. Falha de publicação é registrada e engolida: o evento é
// best-effort, nunca derruba a operação de negócio.
func (p *Publisher) Publicar(ctx context.Context, tipo string, corpo interface{}) {
	if p == nil {
		return
	}
	body, err := json.Marshal(corpo)
	if err != nil {
		log.Printf("eventos: erro ao serializar %s: %v", tipo, err)
		return
	}
	if ctx == nil {
		c, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		ctx = c
	}
	err = p.ch.PublishWithContext(
		ctx,
		"",      // default exchange
		p.queue, // routing key = nome da fila
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
			Headers:      amqp.Table{"tipo": tipo},
		},
	)
	if err != nil {
		log.Printf("eventos: erro ao publicar %s: %v", tipo, err)
	}
}

// Close encerra canal e conexão.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	var errCh, errConn error
	if p.ch != nil {
		errCh = p.ch.Close()
	}
	if p.conn != nil {
		errConn = p.conn.Close()
	}
	return errors.Join(errCh, errConn)
}
