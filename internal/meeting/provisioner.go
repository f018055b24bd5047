package meeting

import "context"

// Meeting is the provisioned video meeting the student and teacher join.
type Meeting struct {
	ID      string
	JoinURL string
}

// Provisioner creates a meeting for a topic and start time. Booking
// treats provisioning as best-effort: a failure leaves the appointment
// without a link, it never blocks the booking itself.
type Provisioner interface {
	CreateMeeting(ctx context.Context, topic string, startTime string) (*Meeting, error)
}
