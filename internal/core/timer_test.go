package core

import (
	"testing"
	"time"
)

func TestFixedStepDue(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	fs.accumulator = 0

	if n := fs.Due(5); n != 0 {
		t.Fatalf("first call Due = %d, want 0", n)
	}
	clock = clock.Add(250 * time.Millisecond)
	if n := fs.Due(5); n != 2 {
		t.Fatalf("after 250ms Due = %d, want 2", n)
	}
	clock = clock.Add(50 * time.Millisecond)
	if n := fs.Due(5); n != 1 {
		t.Fatalf("after remainder Due = %d, want 1", n)
	}
	clock = clock.Add(10 * time.Second)
	if n := fs.Due(3); n != 3 {
		t.Fatalf("stalled frame Due = %d, want capped 3", n)
	}
	if n := fs.Due(3); n != 0 {
		t.Fatalf("backlog should be dropped after cap, got %d", n)
	}
}

func TestFixedStepSetTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 60 {
		t.Fatalf("TPS = %d, want fallback 60", fs.TPS())
	}
	fs.SetTPS(5)
	if fs.TPS() != 5 || fs.step != 200*time.Millisecond {
		t.Fatalf("SetTPS(5) gave tps=%d step=%v", fs.TPS(), fs.step)
	}
}
