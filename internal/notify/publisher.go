package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Message is the payload pushed to the receiver's live channel.
type Message struct {
	ID         uint      `json:"id"`
	ReceiverID uint      `json:"receiver_id"`
	Message    string    `json:"message"`
	SenderID   uint      `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// Publisher delivers one message to the receiver's private channel,
// at-most-once. Missed pushes self-heal on the receiver's next fetch.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, msg Message) error {
	payload, err := marshalMessage(msg)
	if err != nil {
		return err
	}
	channel := fmt.Sprintf("notifications:%d", msg.ReceiverID)
	return p.client.Publish(ctx, channel, payload).Err()
}
