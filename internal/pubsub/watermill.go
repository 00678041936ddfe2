package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// WatermillBridge implements Publisher and Subscriber on an in-process
// watermill GoChannel.
type WatermillBridge struct {
	channel *gochannel.GoChannel
	logger  *slog.Logger
}

// Metadata keys carrying the Message envelope through watermill.
const (
	metaKeySessionID = "session_id"
	metaKeyTopic     = "topic"
)

// subscriberBuffer is the per-subscriber queue length. Publish only blocks
// once an audit handler falls this far behind.
const subscriberBuffer = 64

// NewWatermillBridge creates the in-memory bus. A nil logger uses slog.Default.
func NewWatermillBridge(logger *slog.Logger) *WatermillBridge {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "pubsub")
	return &WatermillBridge{
		channel: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: subscriberBuffer},
			newSlogAdapter(logger),
		),
		logger: logger,
	}
}

func toWatermill(msg Message) *message.Message {
	wm := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		wm.Metadata.Set(k, v)
	}
	wm.Metadata.Set(metaKeySessionID, msg.SessionID)
	wm.Metadata.Set(metaKeyTopic, msg.Topic)
	return wm
}

func fromWatermill(wm *message.Message) Message {
	msg := Message{
		Topic:     wm.Metadata.Get(metaKeyTopic),
		SessionID: wm.Metadata.Get(metaKeySessionID),
		Payload:   wm.Payload,
	}
	for k, v := range wm.Metadata {
		if k == metaKeySessionID || k == metaKeyTopic {
			continue
		}
		if msg.Metadata == nil {
			msg.Metadata = make(map[string]string)
		}
		msg.Metadata[k] = v
	}
	return msg
}

// Publish implements Publisher.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	wm := toWatermill(msg)
	wm.SetContext(ctx)
	return wb.channel.Publish(msg.Topic, wm)
}

// Subscribe implements Subscriber. Handler errors are logged and the message
// is acked anyway, since GoChannel would otherwise redeliver it forever.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.channel.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wm := range messages {
			if err := handler(ctx, fromWatermill(wm)); err != nil {
				wb.logger.Error("Failed to handle message", "topic", topic, "msg_id", wm.UUID, "error", err)
			}
			wm.Ack()
		}
		wb.logger.Debug("Subscription ended", "topic", topic)
	}()
	return nil
}

// Close implements Publisher and Subscriber.
func (wb *WatermillBridge) Close() error {
	return wb.channel.Close()
}

// Shutdown lets the dependency container close the bridge.
func (wb *WatermillBridge) Shutdown() error {
	return wb.Close()
}
