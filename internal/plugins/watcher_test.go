package plugins

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"

	"reqsmith/internal/registry"
)

func TestWatcherReload(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	r := registry.New()

	w, err := NewWatcher(dir, r)
	if err != nil {
		t.Fatal(err)
	}
	w.debounceDur = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	writeManifest(t, dir, "astronomy_handler.yaml", goodManifest)

	deadline := time.Now().Add(5 * time.Second)
	for !r.Has("astronomy") {
		if time.Now().After(deadline) {
			t.Fatalf("handler not reloaded, stats: %+v", w.Stats())
		}
		time.Sleep(20 * time.Millisecond)
	}

	stats := w.Stats()
	if stats.Reloads < 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestWatcherIgnoresInvalidManifest(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	r := registry.New()

	w, err := NewWatcher(dir, r)
	if err != nil {
		t.Fatal(err)
	}
	w.debounceDur = 50 * time.Millisecond

	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	writeManifest(t, dir, "broken_handler.yaml", "keywords: [one]")

	deadline := time.Now().Add(5 * time.Second)
	for w.Stats().Errors == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("invalid manifest never processed, stats: %+v", w.Stats())
		}
		time.Sleep(20 * time.Millisecond)
	}
	if r.Count() != 0 {
		t.Errorf("invalid manifest must not register anything, count = %d", r.Count())
	}
}

func TestWatcherStopIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(t.TempDir(), registry.New())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()
}
