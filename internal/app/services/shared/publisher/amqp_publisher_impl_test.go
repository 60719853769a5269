package publisher

import (
	"context"
	"errors"
	"testing"

	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, msg)
	return args.Error(0)
}

func TestAMQPPublisher_PublishJSON(t *testing.T) {
	t.Run("publishes persistent json on the exchange", func(t *testing.T) {
		channel := new(MockChannel)
		channel.On("PublishWithContext", mock.Anything, "padel.events", constvars.EventBookingCreated,
			mock.MatchedBy(func(msg amqp091.Publishing) bool {
				return msg.DeliveryMode == amqp091.Persistent &&
					msg.ContentType == constvars.MIMEApplicationJSON &&
					string(msg.Body) == `{"id":"b1"}`
			})).Return(nil)

		pub := NewEventPublisherWithChannel(channel, "padel.events", zap.NewNop())
		err := pub.PublishJSON(context.Background(), constvars.EventBookingCreated, map[string]string{"id": "b1"})
		require.NoError(t, err)
		channel.AssertExpectations(t)
	})

	t.Run("broker failure is wrapped", func(t *testing.T) {
		channel := new(MockChannel)
		channel.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("closed"))

		pub := NewEventPublisherWithChannel(channel, "padel.events", zap.NewNop())
		err := pub.PublishJSON(context.Background(), constvars.EventBookingCreated, map[string]string{})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})
}
