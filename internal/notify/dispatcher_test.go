package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturePublisher struct {
	mu       sync.Mutex
	err      error
	messages []Message
}

func (p *capturePublisher) Publish(_ context.Context, msg Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, msg)
	return nil
}

func (p *capturePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.messages)
}

func (p *capturePublisher) first() Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.messages[0]
}

func TestDispatcherDeliversToPublisher(t *testing.T) {
	pub := &capturePublisher{}
	d := NewDispatcher(pub, zap.NewNop())

	sent := Message{
		ID:         12,
		ReceiverID: 7,
		Message:    "Your appointment request has been approved",
		SenderID:   3,
		SenderName: "Tom Morris",
		CreatedAt:  time.Now(),
	}
	d.Dispatch(sent)

	require.Eventually(t, func() bool {
		return pub.count() == 1
	}, time.Second, 10*time.Millisecond)

	got := pub.first()
	assert.Equal(t, sent.ID, got.ID)
	assert.Equal(t, sent.ReceiverID, got.ReceiverID)
	assert.Equal(t, sent.Message, got.Message)
	assert.Equal(t, sent.SenderName, got.SenderName)
}

func TestDispatcherSurvivesPublishFailure(t *testing.T) {
	pub := &capturePublisher{}
	d := NewDispatcher(publisherFunc(func(ctx context.Context, msg Message) error {
		// Failed pushes are logged and dropped; later messages still flow.
		if msg.ID == 1 {
			return errors.New("redis: connection refused")
		}
		return pub.Publish(ctx, msg)
	}), zap.NewNop())

	d.Dispatch(Message{ID: 1, ReceiverID: 7, Message: "lost"})
	d.Dispatch(Message{ID: 2, ReceiverID: 7, Message: "delivered"})

	require.Eventually(t, func() bool {
		return pub.count() == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, uint(2), pub.first().ID)
}

func TestDispatchNeverBlocks(t *testing.T) {
	// A publisher that never returns keeps the worker pinned on the
	// first message while the queue fills.
	blocked := make(chan struct{})
	d := NewDispatcher(publisherFunc(func(ctx context.Context, _ Message) error {
		<-blocked
		return nil
	}), zap.NewNop())
	defer close(blocked)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 500; i++ {
			d.Dispatch(Message{ID: uint(i), ReceiverID: 7})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
}

type publisherFunc func(ctx context.Context, msg Message) error

func (f publisherFunc) Publish(ctx context.Context, msg Message) error { return f(ctx, msg) }
