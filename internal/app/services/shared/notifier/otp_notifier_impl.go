package notifier

import (
	"context"
	"fmt"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/services/shared/publisher"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/dto/events"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const otpMessageTemplate = "Your padel booking verification code is %s"

// otpNotifier queues OTP messages for the SMS gateway consumer.
type otpNotifier struct {
	Channel publisher.Channel
	Queue   string
	Log     *zap.Logger
}

func NewOTPNotifier(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.OTPNotifier, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	return NewOTPNotifierWithChannel(channel, queue, logger), nil
}

func NewOTPNotifierWithChannel(channel publisher.Channel, queue string, logger *zap.Logger) contracts.OTPNotifier {
	return &otpNotifier{Channel: channel, Queue: queue, Log: logger}
}

func (s *otpNotifier) SendOTP(ctx context.Context, phone, otp, bookingName string) error {
	requestID := utils.GetRequestID(ctx)

	s.Log.Info("otpNotifier.SendOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := json.Marshal(events.OTPMessage{
		Phone:       phone,
		OTP:         otp,
		BookingName: bookingName,
		Message:     fmt.Sprintf(otpMessageTemplate, otp),
		RequestedAt: time.Now().UTC(),
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	if err := s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message); err != nil {
		s.Log.Error("otpNotifier.SendOTP error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("otpNotifier.SendOTP succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)
	return nil
}
