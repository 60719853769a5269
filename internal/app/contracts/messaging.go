package contracts

import "context"

// EventPublisher emits domain events on the message broker.
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, payload any) error
}

// OTPNotifier hands a one time password to the delivery pipeline.
type OTPNotifier interface {
	SendOTP(ctx context.Context, phone, otp, bookingName string) error
}
