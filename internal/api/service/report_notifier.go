package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ReportEvent is the payload pushed to administrators when a post is
// reported.
type ReportEvent struct {
	BlogID   string `json:"blogId"`
	Category string `json:"category"`
	Reason   string `json:"reason"`
	Status   string `json:"status"`
}

// ReportNotifier relays report events to whoever moderates the platform.
// The relay owns no state in this system.
type ReportNotifier interface {
	PublishReport(ctx context.Context, event ReportEvent) error
}

// redisReportNotifier publishes events as JSON on a pub/sub channel that the
// admin dashboard subscribes to.
type redisReportNotifier struct {
	client  *redis.Client
	channel string
}

func NewRedisReportNotifier(client *redis.Client, channel string) ReportNotifier {
	return &redisReportNotifier{client: client, channel: channel}
}

func (n *redisReportNotifier) PublishReport(ctx context.Context, event ReportEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode report event: %w", err)
	}
	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish report event: %w", err)
	}
	return nil
}

// NoopReportNotifier backs tests and deployments without a relay.
type NoopReportNotifier struct{}

func (NoopReportNotifier) PublishReport(ctx context.Context, event ReportEvent) error {
	return nil
}
