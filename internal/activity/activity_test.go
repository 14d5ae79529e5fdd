package activity

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
)

func testEvent() Event {
	return Event{
		Time:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		RequestID: "req-123",
		Method:    "GET",
		Path:      "/todo",
		Status:    200,
		Duration:  15 * time.Millisecond,
		Remote:    "127.0.0.1",
	}
}

func TestEventValues(t *testing.T) {
	vals := testEvent().Values()

	expected := map[string]interface{}{
		"timestamp":   "2024-05-01T12:00:00Z",
		"request_id":  "req-123",
		"method":      "GET",
		"path":        "/todo",
		"status":      200,
		"duration_ms": int64(15),
		"remote":      "127.0.0.1",
	}

	for key, want := range expected {
		got, ok := vals[key]
		if !ok {
			t.Errorf("expected field %q in stream values", key)
			continue
		}
		if got != want {
			t.Errorf("field %q: expected %v (%T), got %v (%T)", key, want, want, got, got)
		}
	}

	if len(vals) != len(expected) {
		t.Errorf("expected %d fields, got %d", len(expected), len(vals))
	}
}

func TestStreamRecorderRecord(t *testing.T) {
	client, mock := redismock.NewClientMock()
	rec := NewStreamRecorder(client, "rocketd:activity", 1000)

	ev := testEvent()
	mock.ExpectXAdd(&redis.XAddArgs{
		Stream: "rocketd:activity",
		MaxLen: 1000,
		Approx: true,
		Values: ev.Values(),
	}).SetVal("1714564800000-0")

	if err := rec.Record(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestStreamRecorderRecordError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	rec := NewStreamRecorder(client, "rocketd:activity", 1000)

	ev := testEvent()
	mock.ExpectXAdd(&redis.XAddArgs{
		Stream: "rocketd:activity",
		MaxLen: 1000,
		Approx: true,
		Values: ev.Values(),
	}).SetErr(errors.New("connection refused"))

	err := rec.Record(context.Background(), ev)
	if err == nil {
		t.Fatal("expected error when redis append fails")
	}
	if !strings.Contains(err.Error(), "failed to append activity event") {
		t.Errorf("expected wrapped append error, got: %v", err)
	}
}

func TestDialUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	// Reserved TEST-NET-1 address, nothing listens there
	_, err := Dial(ctx, "192.0.2.1:6379", "rocketd:activity", 1000)
	if err == nil {
		t.Fatal("expected error when redis is unreachable")
	}
	if !strings.Contains(err.Error(), "failed to connect to redis") {
		t.Errorf("expected connect error, got: %v", err)
	}
}
