package notifier

import (
	"context"
	"cosmek-web/internal/app/models"
	"cosmek-web/internal/pkg/constvars"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	called := m.Called(name, durable)
	return amqp.Queue{Name: name}, called.Error(0)
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	called := m.Called(key, msg)
	return called.Error(0)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

func TestAMQPPublisher_Publish(t *testing.T) {
	ch := new(MockChannel)
	ch.On("QueueDeclare", "booking_events", true).Return(nil)
	ch.On("PublishWithContext", "booking_events", mock.MatchedBy(func(msg amqp.Publishing) bool {
		var event models.BookingEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			return false
		}
		return msg.ContentType == constvars.MIMEApplicationJSON &&
			msg.Type == constvars.BookingEventBooked &&
			event.AppointmentID == 12
	})).Return(nil)

	publisher, err := NewAMQPPublisher(ch, "booking_events", zap.NewNop())
	require.NoError(t, err)

	err = publisher.Publish(context.Background(), &models.BookingEvent{Type: constvars.BookingEventBooked, AppointmentID: 12})

	assert.NoError(t, err)
	ch.AssertExpectations(t)
}

func TestAMQPPublisher_PublishFailure(t *testing.T) {
	ch := new(MockChannel)
	ch.On("QueueDeclare", "booking_events", true).Return(nil)
	ch.On("PublishWithContext", "booking_events", mock.Anything).Return(errors.New("channel closed"))

	publisher, err := NewAMQPPublisher(ch, "booking_events", zap.NewNop())
	require.NoError(t, err)

	err = publisher.Publish(context.Background(), &models.BookingEvent{Type: constvars.BookingEventCancelled})

	assert.Error(t, err)
}

func TestNewAMQPPublisher_DeclareFailure(t *testing.T) {
	ch := new(MockChannel)
	ch.On("QueueDeclare", "booking_events", true).Return(errors.New("access refused"))

	publisher, err := NewAMQPPublisher(ch, "booking_events", zap.NewNop())

	assert.Nil(t, publisher)
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(zap.NewNop())
	assert.NoError(t, publisher.Publish(context.Background(), &models.BookingEvent{Type: constvars.BookingEventRescheduled}))
}
