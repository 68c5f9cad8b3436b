// publisher.go
package rabbit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

// Exchanges fanout que anuncian eventos de este servicio
var exchanges = []string{"order_placed", "payment_recorded"}

// Envelope con el mismo formato que consumen los otros micros
type Envelope struct {
	CorrelationID string `json:"correlation_id"`
	Exchange      string `json:"exchange"`
	RoutingKey    string `json:"routing_key"`
	Message       any    `json:"message"`
}

type Publisher struct {
	ch *amqp091.Channel
}

func NewPublisher(ch *amqp091.Channel) *Publisher {
	for _, ex := range exchanges {
		err := ch.ExchangeDeclare(
			ex,
			"fanout",
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			log.Println("❌ Error declarando exchange:", ex, err)
		}
	}
	log.Println("🐰 Publisher listo para exchanges:", exchanges)
	return &Publisher{ch: ch}
}

// Publish es fire-and-forget: un broker caído no puede frenar un pago.
func (p *Publisher) Publish(exchange string, message any) {
	env := Envelope{
		CorrelationID: uuid.NewString(),
		Exchange:      exchange,
		RoutingKey:    "",
		Message:       message,
	}

	body, err := json.Marshal(env)
	if err != nil {
		log.Println("❌ Error serializando evento:", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.ch.PublishWithContext(ctx,
		exchange,
		"", // fanout ignora routing key
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		log.Println("❌ Error publicando evento:", exchange, err)
		return
	}

	log.Println("✔ Evento publicado:", exchange)
}
