package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/palseverance/pkg/cleanup"
	"github.com/streadway/amqp"
)

type AMQPPublisher struct {
	ch    *amqp.Channel
	queue string
}

// NewAMQPPublisher dials RabbitMQ and declares a durable queue for social
// events. The connection is registered for shutdown.
func NewAMQPPublisher(url, queueName string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.New("connecting to rabbitmq error: " + err.Error())
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.New("opening rabbitmq channel error: " + err.Error())
	}
	_, err = ch.QueueDeclare(
		queueName,
		true,  // Durable
		false, // Delete when unused
		false, // Exclusive
		false, // No-wait
		nil,   // Arguments
	)
	if err != nil {
		return nil, errors.New("declaring queue error: " + err.Error())
	}

	notifyClose := make(chan *amqp.Error)
	conn.NotifyClose(notifyClose)
	go func() {
		err := <-notifyClose
		if err != nil {
			slog.Error("rabbitmq connection closed", slog.String("error", err.Error()))
		}
	}()

	cleanup.Register(&cleanup.Job{
		Name: "closing rabbitmq connection",
		F:    conn.Close,
	})
	return &AMQPPublisher{
		ch:    ch,
		queue: queueName,
	}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event Event) error {
	if event.At.IsZero() {
		event.At = time.Now()
	}
	body, err := sonic.Marshal(event)
	if err != nil {
		return errors.New("marshalling event error: " + err.Error())
	}
	err = p.ch.Publish(
		"",      // Default exchange
		p.queue, // Routing key
		false,   // Mandatory
		false,   // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.At,
			Body:         body,
		},
	)
	if err != nil {
		return errors.New("publishing event error: " + err.Error())
	}
	return nil
}
