package publisher

import (
	"context"
	"padel-service/internal/app/contracts"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Channel is the subset of *amqp091.Channel used for publishing.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type amqpPublisher struct {
	Channel  Channel
	Exchange string
	Log      *zap.Logger
}

func NewEventPublisher(rabbitMQConnection *amqp091.Connection, exchange string, logger *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	return NewEventPublisherWithChannel(channel, exchange, logger), nil
}

func NewEventPublisherWithChannel(channel Channel, exchange string, logger *zap.Logger) contracts.EventPublisher {
	return &amqpPublisher{Channel: channel, Exchange: exchange, Log: logger}
}

func (p *amqpPublisher) PublishJSON(ctx context.Context, routingKey string, payload any) error {
	requestID := utils.GetRequestID(ctx)

	body, err := json.Marshal(payload)
	if err != nil {
		p.Log.Error("amqpPublisher.PublishJSON error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp091.Persistent,
		Timestamp:     time.Now().UTC(),
		CorrelationId: requestID,
		Type:          routingKey,
	}

	if err := p.Channel.PublishWithContext(ctx, p.Exchange, routingKey, false, false, message); err != nil {
		p.Log.Error("amqpPublisher.PublishJSON error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingExchangeKey, p.Exchange),
			zap.String(constvars.LoggingRoutingKey, routingKey),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Exchange)
	}

	p.Log.Debug("amqpPublisher.PublishJSON succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoutingKey, routingKey),
	)
	return nil
}
