package appointment

import (
	"context"

	notifDomain "github.com/campusconnect/campus-scheduler/internal/domain/notification"
	"github.com/campusconnect/campus-scheduler/internal/models"
	"github.com/campusconnect/campus-scheduler/internal/notify"
)

// notifier couples the durable notification write with the detached
// live push. The write participates in the operation's failure domain;
// the push does not.
type notifier struct {
	repo       notifDomain.Repository
	dispatcher *notify.Dispatcher
}

func (n *notifier) send(
	ctx context.Context,
	eventID *uint,
	senderID uint,
	senderName string,
	receiverID uint,
	message string,
) error {

	record := &models.Notification{
		EventID:    eventID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    message,
		IsRead:     false,
	}

	if err := n.repo.Create(ctx, record); err != nil {
		return err
	}

	n.dispatcher.Dispatch(notify.Message{
		ID:         record.ID,
		ReceiverID: receiverID,
		Message:    message,
		SenderID:   senderID,
		SenderName: senderName,
		CreatedAt:  record.CreatedAt,
	})

	return nil
}
