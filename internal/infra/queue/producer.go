package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// SubmissionPayload is everything the worker needs to push a paid
// registration through the proposal pipeline.
type SubmissionPayload struct {
	RegistrationID string `json:"registration_id"`
	SPAJNumber     string `json:"spaj_number"`
	Slug           string `json:"slug"`
	ProductCode    string `json:"product_code"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Origin         string `json:"origin"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishSubmission(ctx context.Context, payload SubmissionPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal submission payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish submission: %w", err)
	}
	return nil
}
