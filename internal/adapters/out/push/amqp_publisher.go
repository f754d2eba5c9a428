package push

import (
	"context"
	"errors"
	"fmt"

	"laundry/internal/notifier"
	"laundry/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultExchange = "laundry.notifications"

// AMQPChannel is the part of *amqp.Channel the publisher uses.
type AMQPChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes batches to a fanout exchange as persistent JSON messages routed
// by "<role>.<stage>".
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       AMQPChannel
	exchange string
}

// DialAMQP connects to url and declares exchange as a durable fanout exchange.
func DialAMQP(url, exchange string) (*AMQPPublisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.NewTransportError("amqp dial", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.NewTransportError("amqp channel", err)
	}
	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.NewTransportError("amqp exchange declare", err)
	}

	p := NewAMQPPublisher(ch, exchange)
	p.conn = conn
	return p, nil
}

// NewAMQPPublisher publishes on an already opened channel.
func NewAMQPPublisher(ch AMQPChannel, exchange string) *AMQPPublisher {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &AMQPPublisher{ch: ch, exchange: exchange}
}

func (p *AMQPPublisher) Notify(ctx context.Context, batch notifier.Batch) error {
	body, err := encode(batch)
	if err != nil {
		return err
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey(batch.Key), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    batch.At,
		Body:         body,
	})
	if err != nil {
		return errs.NewTransportError(fmt.Sprintf("amqp publish to %s", p.exchange), err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
