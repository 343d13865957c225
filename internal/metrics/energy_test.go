package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/golfsim/internal/dynamo"
	"github.com/san-kum/golfsim/internal/vec"
)

func snapshot(tick int, v, w, p vec.Vector3, t float64) dynamo.Snapshot {
	return dynamo.Snapshot{
		Tick:     tick,
		State:    dynamo.State{Velocity: v, Spin: w, Position: p, Time: t},
		Distance: p.HorizontalDistance(vec.Zero),
	}
}

func TestEnergy(t *testing.T) {
	m := NewEnergy(2.0, 0.5, 9.8)

	s := snapshot(1, vec.New(3, 4, 0), vec.New(2, 0, 0), vec.New(0, 0, 10), 0.1)
	m.Observe(s)

	expected := 0.5*2.0*25 + 0.5*0.5*4 + 2.0*9.8*10
	if math.Abs(m.Value()-expected) > 1e-9 {
		t.Errorf("expected energy %f, got %f", expected, m.Value())
	}

	m.Observe(snapshot(2, vec.New(3, 4, 0), vec.New(2, 0, 0), vec.New(0, 0, 5), 0.2))
	if change := m.Change(); math.Abs(change-(-2.0*9.8*5)) > 1e-9 {
		t.Errorf("expected energy change %f, got %f", -2.0*9.8*5, change)
	}
}

func TestEnergyReset(t *testing.T) {
	m := NewEnergy(1.0, 1.0, 9.8)

	m.Observe(snapshot(1, vec.New(1, 1, 1), vec.Zero, vec.Zero, 0.1))
	if m.Value() == 0 {
		t.Error("expected non-zero energy")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestFlightMetrics(t *testing.T) {
	heights := []float64{2.5, 4.3, 5.5, 4.1, -0.4}
	apex, carry, hang, speed := NewApex(), NewCarry(), NewHangTime(), NewMaxSpeed()

	for i, z := range heights {
		s := snapshot(i+1, vec.New(0, 50-float64(i)*5, 10-float64(i)*5), vec.Zero, vec.New(0, float64(i+1)*8, z), float64(i+1)*0.1)
		for _, m := range []dynamo.Metric{apex, carry, hang, speed} {
			m.Observe(s)
		}
	}

	if apex.Value() != 5.5 {
		t.Errorf("apex = %v, want 5.5", apex.Value())
	}
	if carry.Value() != 40 {
		t.Errorf("carry = %v, want 40", carry.Value())
	}
	if math.Abs(hang.Value()-0.5) > 1e-12 {
		t.Errorf("hang time = %v, want 0.5", hang.Value())
	}
	if want := math.Hypot(50, 10); math.Abs(speed.Value()-want) > 1e-12 {
		t.Errorf("max speed = %v, want %v", speed.Value(), want)
	}

	apex.Reset()
	if apex.Value() != 0 {
		t.Error("apex not reset")
	}
}

func TestDefault(t *testing.T) {
	names := map[string]bool{}
	for _, m := range Default(0.04593, 8.4e-6, 9.8) {
		names[m.Name()] = true
	}
	for _, want := range []string{"apex", "carry", "hang_time", "max_speed", "energy"} {
		if !names[want] {
			t.Errorf("missing default metric %s", want)
		}
	}
}
