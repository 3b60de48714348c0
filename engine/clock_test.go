package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/text-rts/parameter"
)

func TestClockDelta(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	clock := NewClock(mock)

	mock.Advance(16 * time.Millisecond)
	if dt := clock.Delta(); dt != 16*time.Millisecond {
		t.Errorf("Expected 16ms, got %v", dt)
	}

	if dt := clock.Delta(); dt != 0 {
		t.Errorf("Expected 0 without advance, got %v", dt)
	}
}

func TestClockDeltaCapped(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	clock := NewClock(mock)

	mock.Advance(5 * time.Second)
	if dt := clock.Delta(); dt != parameter.MaxDeltaTime {
		t.Errorf("Expected capped delta %v, got %v", parameter.MaxDeltaTime, dt)
	}
}
