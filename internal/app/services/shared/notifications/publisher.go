package notifications

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher pushes booking notifications onto a durable queue consumed by the
// mailer worker. Publishing is best effort from the booking flow's point of
// view; the booking itself has already succeeded on the calendar.
type Publisher struct {
	ch        *amqp.Channel
	queueName string
	log       *zap.Logger
}

func NewPublisher(conn *amqp.Connection, queueName string, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	return &Publisher{ch: ch, queueName: queueName, log: log}, nil
}

func (p *Publisher) PublishBookingNotification(ctx context.Context, notification contracts.BookingNotification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	err = p.ch.PublishWithContext(ctx, "", p.queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.log.Debug("published booking notification",
		zap.String("kind", notification.Kind),
		zap.String("event_id", notification.EventID),
	)
	return nil
}
