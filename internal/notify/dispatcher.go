package notify

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

func marshalMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

// Dispatcher pushes live notifications off the request path. The
// durable notification row is already committed by the time a message
// reaches the queue, so a dropped or failed push loses nothing the
// receiver cannot re-fetch.
type Dispatcher struct {
	publisher Publisher
	logger    *zap.Logger
	queue     chan Message
}

func NewDispatcher(publisher Publisher, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		publisher: publisher,
		logger:    logger,
		queue:     make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.publisher.Publish(ctx, msg); err != nil {
			d.logger.Warn("live notification push failed",
				zap.Uint("notification_id", msg.ID),
				zap.Uint("receiver_id", msg.ReceiverID),
				zap.Error(err),
			)
		}
		cancel()
	}
}

// Dispatch never blocks the API path: a full queue drops the push.
func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		d.logger.Warn("notification queue full, dropping push",
			zap.Uint("notification_id", msg.ID),
		)
	}
}
