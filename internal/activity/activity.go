// Package activity publishes per-request events to a capped Redis stream.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Event describes one served HTTP request.
type Event struct {
	Time      time.Time
	RequestID string
	Method    string
	Path      string
	Status    int
	Duration  time.Duration
	Remote    string
}

// Values flattens the event into Redis stream fields.
func (e Event) Values() map[string]interface{} {
	return map[string]interface{}{
		"timestamp":   e.Time.Format(time.RFC3339),
		"request_id":  e.RequestID,
		"method":      e.Method,
		"path":        e.Path,
		"status":      e.Status,
		"duration_ms": e.Duration.Milliseconds(),
		"remote":      e.Remote,
	}
}

// Recorder persists request events.
type Recorder interface {
	Record(ctx context.Context, e Event) error
	Close() error
}

// StreamRecorder appends events to a Redis stream trimmed to roughly
// maxLen entries, so the stream never grows without bound.
type StreamRecorder struct {
	client *redis.Client
	stream string
	maxLen int64
}

// NewStreamRecorder wraps an existing Redis client.
func NewStreamRecorder(client *redis.Client, stream string, maxLen int64) *StreamRecorder {
	return &StreamRecorder{
		client: client,
		stream: stream,
		maxLen: maxLen,
	}
}

// Dial connects to Redis at addr and verifies the connection before
// returning a recorder. The caller owns the recorder and must Close it.
func Dial(ctx context.Context, addr, stream string, maxLen int64) (*StreamRecorder, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return NewStreamRecorder(client, stream, maxLen), nil
}

// Record appends the event to the stream.
func (r *StreamRecorder) Record(ctx context.Context, e Event) error {
	err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		MaxLen: r.maxLen,
		Approx: true,
		Values: e.Values(),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to append activity event: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (r *StreamRecorder) Close() error {
	return r.client.Close()
}
