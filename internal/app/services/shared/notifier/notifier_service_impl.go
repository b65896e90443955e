package notifier

import (
	"context"
	"cosmek-web/internal/app/contracts"
	"cosmek-web/internal/app/models"
	"cosmek-web/internal/pkg/constvars"
	"cosmek-web/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AMQPChannel is the part of *amqp.Channel the publisher needs.
type AMQPChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type amqpPublisher struct {
	ch    AMQPChannel
	queue string
	log   *zap.Logger
	mu    sync.Mutex
}

// NewAMQPPublisher declares queue as durable and publishes booking events to it.
func NewAMQPPublisher(ch AMQPChannel, queue string, log *zap.Logger) (contracts.BookingEventPublisher, error) {
	_, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublishMessage(err, queue)
	}
	return &amqpPublisher{ch: ch, queue: queue, log: log}, nil
}

func (p *amqpPublisher) Publish(ctx context.Context, event *models.BookingEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Info("Notifier.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.Int(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Type:         event.Type,
		MessageId:    requestID,
	}
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
	}
	return nil
}

type noopPublisher struct {
	log *zap.Logger
}

// NewNoopPublisher is used when notifications are disabled.
func NewNoopPublisher(log *zap.Logger) contracts.BookingEventPublisher {
	return &noopPublisher{log: log}
}

func (p *noopPublisher) Publish(ctx context.Context, event *models.BookingEvent) error {
	p.log.Debug("Notifier.Publish skipped", zap.String(constvars.LoggingEventTypeKey, event.Type))
	return nil
}
