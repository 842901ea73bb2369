package store

import (
	"context"
	"testing"
	"time"
)

func TestDiskvWatchEmitsKeyChanges(t *testing.T) {
	p, err := OpenDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("open diskv: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Another handle on the same directory stands in for a second session.
	other, err := OpenDiskv(p.BasePath())
	if err != nil {
		t.Fatalf("open second handle: %v", err)
	}
	if err := other.Write("groups", []byte(`[]`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				t.Fatal("watch channel closed early")
			}
			if evt.Key == "groups" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}

func TestDiskvKeyForPathSkipsTempFiles(t *testing.T) {
	p, err := OpenDiskv(t.TempDir())
	if err != nil {
		t.Fatalf("open diskv: %v", err)
	}
	base := p.BasePath()
	cases := map[string]string{
		base + "/groups":         "groups",
		base + "/.tmp/123456":    "",
		base + "/.tmp":           "",
		base:                     "",
		"/elsewhere/userProfile": "",
	}
	for path, want := range cases {
		if got := p.keyForPath(path); got != want {
			t.Fatalf("%s: expected %q, got %q", path, want, got)
		}
	}
}
