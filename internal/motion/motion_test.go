package motion

import (
	"math"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestEase(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"linear", false},
		{"none", false},
		{"", false},
		{"Out-Cubic", false},
		{" in-out-sine ", false},
		{"wobble", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := Ease(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownEase) {
					t.Errorf("Ease(%q) error = %v, want ErrUnknownEase", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Ease(%q) error = %v", tt.name, err)
			}
			if fn == nil {
				t.Errorf("Ease(%q) returned nil", tt.name)
			}
		})
	}
}

func TestEaseNamesSorted(t *testing.T) {
	names := EaseNames()
	if len(names) == 0 {
		t.Fatal("EaseNames() is empty")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("EaseNames() not sorted at %d: %q > %q", i, names[i-1], names[i])
		}
	}
}

func TestMarkerLinear(t *testing.T) {
	m := NewMarker(DefaultDuration, nil)
	m.Jump(10, 20)
	m.MoveTo(30, 40)

	if !m.Animating() {
		t.Fatal("MoveTo() did not start a move")
	}

	if !m.Update(50 * time.Millisecond) {
		t.Fatal("Update() finished early")
	}
	x, y := m.Position()
	if math.Abs(x-20) > 0.01 || math.Abs(y-30) > 0.01 {
		t.Errorf("Position() halfway = (%v, %v), want (20, 30)", x, y)
	}

	if m.Update(60 * time.Millisecond) {
		t.Error("Update() still animating past duration")
	}
	x, y = m.Position()
	if x != 30 || y != 40 {
		t.Errorf("Position() after move = (%v, %v), want (30, 40)", x, y)
	}
	if m.Animating() {
		t.Error("Animating() true after move finished")
	}
}

func TestMarkerRetarget(t *testing.T) {
	m := NewMarker(DefaultDuration, nil)
	m.MoveTo(100, 0)
	m.Update(50 * time.Millisecond)
	m.MoveTo(0, 0)

	x, _ := m.Position()
	if math.Abs(x-50) > 0.01 {
		t.Fatalf("retarget start x = %v, want 50", x)
	}
	m.Update(DefaultDuration)
	if x, _ = m.Position(); x != 0 {
		t.Errorf("x after retarget = %v, want 0", x)
	}
}

func TestMarkerInstant(t *testing.T) {
	m := NewMarker(0, nil)
	m.MoveTo(5, 6)

	if m.Animating() {
		t.Error("zero-duration marker is animating")
	}
	if x, y := m.Position(); x != 5 || y != 6 {
		t.Errorf("Position() = (%v, %v), want (5, 6)", x, y)
	}
	if m.Update(time.Second) {
		t.Error("Update() on idle marker reported animating")
	}
}
