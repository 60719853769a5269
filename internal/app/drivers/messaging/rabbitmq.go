package messaging

import (
	"fmt"
	"log"
	"padel-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}

// DeclareTopology creates the events exchange and the OTP delivery queue.
func DeclareTopology(conn *amqp091.Connection, internalConfig *config.InternalConfig) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(internalConfig.RabbitMQ.EventsExchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}
	_, err = ch.QueueDeclare(internalConfig.RabbitMQ.OTPQueue, true, false, false, false, nil)
	return err
}
