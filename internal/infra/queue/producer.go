package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ScanPayload is one rate-sheet scan job. Exactly one of ImagePath (upload
// saved by the API) or ImageURL (remote sheet) is set.
type ScanPayload struct {
	LeadID        string `json:"lead_id"`
	LeadName      string `json:"lead_name"`
	OfficerEmail  string `json:"officer_email,omitempty"`
	ImagePath     string `json:"image_path,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	RateSheetDate string `json:"rate_sheet_date"` // YYYY-MM-DD
}

type ScanProducerInterface interface {
	PublishScan(ctx context.Context, payload ScanPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishScan(ctx context.Context, payload ScanPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal scan payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // survive broker restarts
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish scan job: %w", err)
	}

	return nil
}
