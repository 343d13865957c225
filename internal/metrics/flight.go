package metrics

import (
	"math"

	"github.com/san-kum/golfsim/internal/dynamo"
)

// Apex is the greatest height reached, in meters.
type Apex struct {
	max     float64
	samples int
}

func NewApex() *Apex { return &Apex{} }

func (a *Apex) Name() string { return "apex" }

func (a *Apex) Observe(s dynamo.Snapshot) {
	z := s.State.Position.Z()
	if a.samples == 0 || z > a.max {
		a.max = z
	}
	a.samples++
}

func (a *Apex) Value() float64 { return math.Max(a.max, 0) }

func (a *Apex) Reset() {
	a.max = 0
	a.samples = 0
}

// MaxSpeed is the highest speed seen at the end of a tick, in m/s.
type MaxSpeed struct {
	max float64
}

func NewMaxSpeed() *MaxSpeed { return &MaxSpeed{} }

func (m *MaxSpeed) Name() string { return "max_speed" }

func (m *MaxSpeed) Observe(s dynamo.Snapshot) {
	m.max = math.Max(m.max, s.State.Velocity.Length())
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }

// HangTime is the elapsed time at the last observed tick, in seconds.
type HangTime struct {
	t float64
}

func NewHangTime() *HangTime { return &HangTime{} }

func (h *HangTime) Name() string              { return "hang_time" }
func (h *HangTime) Observe(s dynamo.Snapshot) { h.t = s.State.Time }
func (h *HangTime) Value() float64            { return h.t }
func (h *HangTime) Reset()                    { h.t = 0 }

// Carry is the distance from the launch point at the last observed tick.
type Carry struct {
	d float64
}

func NewCarry() *Carry { return &Carry{} }

func (c *Carry) Name() string              { return "carry" }
func (c *Carry) Observe(s dynamo.Snapshot) { c.d = s.Distance }
func (c *Carry) Value() float64            { return c.d }
func (c *Carry) Reset()                    { c.d = 0 }

// Default returns the metrics recorded for every run.
func Default(mass, inertia, gravity float64) []dynamo.Metric {
	return []dynamo.Metric{
		NewApex(),
		NewCarry(),
		NewHangTime(),
		NewMaxSpeed(),
		NewEnergy(mass, inertia, gravity),
	}
}
