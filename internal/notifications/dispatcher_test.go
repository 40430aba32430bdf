package notifications

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcherExecutesInOrder(t *testing.T) {
	d := NewDispatcher(testLogger(), 8)

	var mu sync.Mutex
	var got []string
	for _, ref := range []string{"a", "b", "c"} {
		ref := ref
		ok := d.Enqueue("test", ref, "", func(ctx context.Context) (string, error) {
			mu.Lock()
			got = append(got, ref)
			mu.Unlock()
			return "msg", nil
		})
		if !ok {
			t.Fatalf("enqueue rejected for %s", ref)
		}
	}
	d.Close()

	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected execution order: %v", got)
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	d := NewDispatcher(testLogger(), 1)
	defer d.Close()

	block := make(chan struct{})
	started := make(chan struct{})
	d.Enqueue("test", "running", "", func(ctx context.Context) (string, error) {
		close(started)
		<-block
		return "msg", nil
	})
	<-started

	// The worker is busy, so one job fits in the queue and the next is dropped.
	if !d.Enqueue("test", "queued", "", func(ctx context.Context) (string, error) { return "msg", nil }) {
		t.Fatalf("expected second enqueue to be accepted")
	}
	if d.Enqueue("test", "dropped", "", func(ctx context.Context) (string, error) { return "msg", nil }) {
		t.Fatalf("expected third enqueue to be dropped")
	}
	close(block)
}

func TestDispatcherFailureDoesNotStopWorker(t *testing.T) {
	d := NewDispatcher(testLogger(), 8)

	var mu sync.Mutex
	delivered := false
	d.Enqueue("test", "bad", "", func(ctx context.Context) (string, error) {
		return "", errors.New("smtp down")
	})
	d.Enqueue("test", "good", "", func(ctx context.Context) (string, error) {
		mu.Lock()
		delivered = true
		mu.Unlock()
		return "msg", nil
	})
	d.Close()

	if !delivered {
		t.Fatalf("worker stopped after a failed send")
	}
}

func TestDispatcherRejectsAfterClose(t *testing.T) {
	d := NewDispatcher(testLogger(), 8)
	d.Close()

	if d.Enqueue("test", "late", "", func(ctx context.Context) (string, error) { return "msg", nil }) {
		t.Fatalf("expected enqueue after close to be rejected")
	}
}

func TestDispatcherRejectsNilSend(t *testing.T) {
	d := NewDispatcher(testLogger(), 8)
	defer d.Close()

	if d.Enqueue("test", "nil", "", nil) {
		t.Fatalf("expected nil send to be rejected")
	}
}
