package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"

	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/constants"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	return &Consumer{conn: conn, channel: ch}, nil
}

// Run drains the engagement queue until ctx is cancelled. The only consumer
// side effect today is dropping stale counter-cache entries; notification
// fan-out hangs off the same loop when it lands.
func (c *Consumer) Run(ctx context.Context) error {
	deliveries, err := c.channel.Consume(
		EngagementQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			if err := c.handle(ctx, d.Body); err != nil {
				hlog.CtxErrorf(ctx, "handle engagement event failed: %v", err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, body []byte) error {
	var event EngagementEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("malformed event: %w", err)
	}

	switch event.Kind {
	case EventLikeToggled:
		cache.InvalidateLikeCount(ctx, event.TargetKind, event.TargetId)
	case EventSubscriptionToggled:
		cache.InvalidateSubscriberCount(ctx, event.TargetId)
	case EventVideoViewed:
		cache.InvalidateLikeCount(ctx, constants.LikeTargetVideo, event.TargetId)
	case EventCommentAdded:
		// nothing cached per-comment yet
	default:
		hlog.CtxWarnf(ctx, "unknown engagement event kind: %s", event.Kind)
	}
	return nil
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
