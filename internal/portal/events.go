package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/gstportal/internal/pubsub"
)

// Topics published by the host application.
const (
	TopicAuthSucceeded = "portal.auth.succeeded"
	TopicAuthFailed    = "portal.auth.failed"
	TopicLogout        = "portal.session.logout"
)

// AuditTopics lists every topic the audit subscriber listens on.
var AuditTopics = []string{TopicAuthSucceeded, TopicAuthFailed, TopicLogout}

// Event is the payload published for a session transition.
type Event struct {
	Topic     string    `json:"-"`
	SessionID string    `json:"session_id"`
	Email     string    `json:"email,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	At        time.Time `json:"at"`
}

// Notifier receives session transition events from an App.
type Notifier interface {
	Notify(ctx context.Context, evt Event)
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Event) {}

// PublisherNotifier publishes events as JSON on a pubsub.Publisher.
type PublisherNotifier struct {
	pub    pubsub.Publisher
	logger *slog.Logger
}

// NewPublisherNotifier creates a Notifier backed by pub.
func NewPublisherNotifier(pub pubsub.Publisher, logger *slog.Logger) *PublisherNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &PublisherNotifier{pub: pub, logger: logger}
}

// Notify publishes evt. Publishing failures are logged, never returned: the
// session transition has already happened.
func (n *PublisherNotifier) Notify(ctx context.Context, evt Event) {
	payload, err := json.Marshal(evt)
	if err != nil {
		n.logger.Error("Failed to encode portal event", "topic", evt.Topic, "error", err)
		return
	}
	msg := pubsub.Message{
		Topic:     evt.Topic,
		SessionID: evt.SessionID,
		Payload:   payload,
	}
	if err := n.pub.Publish(ctx, msg); err != nil {
		n.logger.Error("Failed to publish portal event", "topic", evt.Topic, "error", err)
	}
}

// SubscribeAudit logs every portal event received on sub until ctx ends.
func SubscribeAudit(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	for _, topic := range AuditTopics {
		err := sub.Subscribe(ctx, topic, func(_ context.Context, msg pubsub.Message) error {
			var evt Event
			if err := json.Unmarshal(msg.Payload, &evt); err != nil {
				return fmt.Errorf("decode %s event: %w", msg.Topic, err)
			}
			logger.Info("Portal event",
				"topic", msg.Topic,
				"session_id", evt.SessionID,
				"reason", evt.Reason,
				"at", evt.At,
			)
			return nil
		})
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
	}
	return nil
}
