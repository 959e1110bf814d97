package queue

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xavierca1/crm-records/internal/usecase"
)

// Notifier gets told about record mutations the worker considers
// interesting. Implemented by mail.EmailSender.
type Notifier interface {
	SendRecordDigest(object, op string, count int) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier Notifier
	Log      *zap.SugaredLogger
}

func NewWorker(ch *amqp.Channel, notifier Notifier, log *zap.SugaredLogger) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
		Log:      log,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		w.Log.Fatalw("register consumer", "queue", queueName, "err", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var event usecase.RecordEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				w.Log.Warnw("record event with invalid JSON", "err", err)
				// Malformed message. Reject without requeue so it lands on
				// the DLQ instead of clogging the main queue.
				d.Nack(false, false)
				continue
			}

			if err := w.ProcessEvent(context.Background(), event); err != nil {
				w.Log.Warnw("process record event", "object", event.Object, "op", event.Op, "err", err)
				// A backing service failing (SMTP down) gets one redelivery;
				// anything else, or a second failure, goes to the DLQ.
				retry := usecase.IsTechnicalError(err) && !d.Redelivered
				d.Nack(false, retry)
			} else {
				d.Ack(false)
			}
		}
	}()

	w.Log.Infow("worker waiting for record events", "queue", queueName)
	<-forever
}

// ProcessEvent routes one record event. Only lead inserts notify; every
// other event is acked and dropped.
func (w *Worker) ProcessEvent(ctx context.Context, event usecase.RecordEvent) error {
	if event.Object != "Lead" || event.Op != usecase.OpInsert {
		return nil
	}

	if w.Notifier == nil {
		return nil
	}

	return w.Notifier.SendRecordDigest(event.Object, event.Op, len(event.RecordIDs))
}
