package notifier

import (
	"context"
	"testing"

	"padel-service/internal/pkg/dto/events"

	"github.com/goccy/go-json"
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
	args := m.Called(exchange, key, msg)
	return args.Error(0)
}

func TestOTPNotifier_SendOTP(t *testing.T) {
	channel := new(MockChannel)
	var published amqp091.Publishing
	channel.On("PublishWithContext", "", "padel.otp.sms", mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(2).(amqp091.Publishing) }).
		Return(nil)

	n := NewOTPNotifierWithChannel(channel, "padel.otp.sms", zap.NewNop())
	require.NoError(t, n.SendOTP(context.Background(), "+966500000001", "123456", "Sara"))

	var msg events.OTPMessage
	require.NoError(t, json.Unmarshal(published.Body, &msg))
	assert.Equal(t, "+966500000001", msg.Phone)
	assert.Equal(t, "123456", msg.OTP)
	assert.Contains(t, msg.Message, "123456")
	assert.Equal(t, "DROP", published.Headers["requeue_strategy"])
	channel.AssertExpectations(t)
}
