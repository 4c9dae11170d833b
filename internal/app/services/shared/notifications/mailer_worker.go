package notifications

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/drivers/mailer"
	"booking-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"net/smtp"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// MailerWorker consumes booking notifications and sends confirmation emails.
// Messages without an email address are acked and dropped; the client simply
// chose not to leave one.
type MailerWorker struct {
	conn      *amqp.Connection
	smtp      *mailer.SMTPClient
	queueName string
	log       *zap.Logger
	stop      chan struct{}
}

func NewMailerWorker(conn *amqp.Connection, smtpClient *mailer.SMTPClient, queueName string, log *zap.Logger) *MailerWorker {
	return &MailerWorker{
		conn:      conn,
		smtp:      smtpClient,
		queueName: queueName,
		log:       log,
		stop:      make(chan struct{}),
	}
}

// Start begins consuming. It returns a stop function to halt execution.
func (w *MailerWorker) Start(ctx context.Context) (stop func(), err error) {
	ch, err := w.conn.Channel()
	if err != nil {
		return nil, err
	}

	deliveries, err := ch.Consume(w.queueName, "", false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handleDelivery(delivery)
			}
		}
	}()

	return func() {
		close(w.stop)
		ch.Close()
	}, nil
}

func (w *MailerWorker) handleDelivery(delivery amqp.Delivery) {
	var notification contracts.BookingNotification
	if err := json.Unmarshal(delivery.Body, &notification); err != nil {
		w.log.Error("failed to decode booking notification", zap.Error(err))
		delivery.Nack(false, false)
		return
	}

	if notification.Email == "" {
		delivery.Ack(false)
		return
	}

	if err := w.sendMail(notification); err != nil {
		w.log.Error("failed to send confirmation email",
			zap.Error(err),
			zap.String("event_id", notification.EventID),
		)
		// Requeue once through the broker; a poisoned message ends up
		// redelivered and dropped on the second failure.
		delivery.Nack(false, !delivery.Redelivered)
		return
	}

	delivery.Ack(false)
}

func (w *MailerWorker) sendMail(notification contracts.BookingNotification) error {
	subject := subjectFor(notification.Kind)
	body := fmt.Sprintf(
		"Hello %s,\r\n\r\nYour booking for %s (%s - %s) has been %s.\r\n",
		notification.FirstName,
		notification.ProcedureName,
		notification.StartISO,
		notification.EndISO,
		notification.Kind,
	)
	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		w.smtp.Sender, notification.Email, subject, body)

	addr := fmt.Sprintf("%s:%d", w.smtp.Host, w.smtp.Port)
	if err := smtp.SendMail(addr, w.smtp.Auth, w.smtp.Sender, []string{notification.Email}, []byte(message)); err != nil {
		return exceptions.ErrSMTPSendEmail(err, w.smtp.Host)
	}
	return nil
}

func subjectFor(kind string) string {
	switch kind {
	case contracts.NotificationBookingCreated:
		return "Your booking is confirmed"
	case contracts.NotificationBookingUpdated:
		return "Your booking has been updated"
	case contracts.NotificationBookingCancelled:
		return "Your booking has been cancelled"
	default:
		return "Your booking"
	}
}
