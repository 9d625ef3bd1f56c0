package workers

import (
	"context"
	"log/slog"

	"mealbridge/realtime"
)

// EventConsumer is the piece of the chat store the pump feeds.
type EventConsumer interface {
	HandleInbound(evt realtime.Inbound)
}

// ChatPump drains the realtime channel into the chat store. It is the
// only goroutine that calls HandleInbound, so inbound merges are
// serialized in arrival order without extra coordination.
type ChatPump struct {
	log     *slog.Logger
	channel realtime.Channel
	store   EventConsumer
}

func NewChatPump(channel realtime.Channel, store EventConsumer, log *slog.Logger) *ChatPump {
	return &ChatPump{log: log, channel: channel, store: store}
}

func (p *ChatPump) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			p.log.Debug("Context done, stopping chat pump")
			return nil
		case evt := <-p.channel.Events():
			p.store.HandleInbound(evt)
		}
	}
}
