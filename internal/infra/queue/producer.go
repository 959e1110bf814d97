package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xavierca1/crm-records/internal/usecase"
)

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
	Log  *zap.SugaredLogger
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel, log *zap.SugaredLogger) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
		Log:  log,
	}
}

func (p *RabbitMQProducer) PublishRecordEvent(ctx context.Context, event usecase.RecordEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling record event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		if p.Log != nil {
			p.Log.Warnw("publish record event", "object", event.Object, "op", event.Op, "err", err)
		}
		return usecase.NewTechnicalError("BROKER_PUBLISH", "publishing record event", err)
	}

	return nil
}
