package messaging

import (
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ProofSealedEvent announces that a shipment was sealed with its proof video.
type ProofSealedEvent struct {
	ShipmentID     string    `json:"shipment_id"`
	AWB            string    `json:"awb"`
	OrganizationID string    `json:"organization_id"`
	ProofVideoID   string    `json:"proof_video_id"`
	VideoURL       string    `json:"video_url"`
	SealedAt       time.Time `json:"sealed_at"`
}

type Publisher interface {
	PublishProofSealed(event ProofSealedEvent) error
	Close() error
}

// AmqpPublisher publishes seal events to a durable RabbitMQ queue.
type AmqpPublisher struct {
	conn      *amqp.Connection
	queueName string
	logger    *zap.Logger
}

func NewAmqpPublisher(url, queueName string, logger *zap.Logger) (*AmqpPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return &AmqpPublisher{conn: conn, queueName: queueName, logger: logger}, nil
}

func (p *AmqpPublisher) PublishProofSealed(event ProofSealedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		p.queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	err = ch.Publish(
		"",
		q.Name,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
	if err != nil {
		return err
	}

	p.logger.Info("Published proof sealed event",
		zap.String("shipment_id", event.ShipmentID),
		zap.String("awb", event.AWB),
	)
	return nil
}

func (p *AmqpPublisher) Close() error {
	return p.conn.Close()
}

// NoopPublisher stands in when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishProofSealed(ProofSealedEvent) error { return nil }
func (NoopPublisher) Close() error                              { return nil }
