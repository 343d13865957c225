package report

import (
	"fmt"
	"io"

	"github.com/san-kum/golfsim/internal/dynamo"
	"github.com/san-kum/golfsim/internal/vec"
)

const rule = "============================================================"

// spinRatioer is implemented by models whose coefficients depend on the spin ratio.
type spinRatioer interface {
	Ratio(v, w vec.Vector3) (float64, error)
}

// Trace writes a per-tick breakdown of a flight: start state, applied forces,
// rates of change, end state and distance travelled. It is an Observer; call
// Begin with the initial state before the first tick and End after the last.
type Trace struct {
	w     io.Writer
	sys   dynamo.System
	units Units
	dt    float64

	prev dynamo.State
	err  error
}

func NewTrace(w io.Writer, sys dynamo.System, dt float64, units Units) *Trace {
	return &Trace{w: w, sys: sys, dt: dt, units: units}
}

func (t *Trace) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *Trace) vector(tick int, label string, v vec.Vector3) {
	t.printf("%d\t%s:\t%s\n", tick, label, components(v))
}

func (t *Trace) Begin(x0 dynamo.State) {
	t.prev = x0
	t.printf("Initial Data\n")
	t.vector(0, "Velocity", x0.Velocity)
	t.vector(0, "Rotation", x0.Spin)
	t.vector(0, "Position", x0.Position)
}

func (t *Trace) OnTick(s dynamo.Snapshot) {
	start := t.prev
	t.prev = s.State

	t.printf("%s\n", rule)
	t.vector(s.Tick, "Start Velocity", start.Velocity)
	t.vector(s.Tick, "Start Rotation", start.Spin)
	t.vector(s.Tick, "Start Position", start.Position)

	if r, ok := t.sys.(spinRatioer); ok {
		if ratio, err := r.Ratio(start.Velocity, start.Spin); err == nil {
			t.printf("\t\tSpin Ratio: %.4f\n", ratio)
		}
	}

	f := s.Forces
	t.printf("\t\tApply Force: Lift: %s\n", components(f.Lift))
	t.printf("\t\tApply Force: Drag: %s\n", components(f.Drag))
	t.printf("\t\tApply Force: Gravity: %s\n", components(f.Gravity))
	t.printf("\t\tApply Force: Total: %s\n", components(f.Net))

	t.printf("\t\tDelta: %g\n", t.dt)
	if dv, err := f.Net.Div(t.sys.Mass()); err == nil {
		t.printf("\t\tStep: Velocity: %s\n", components(dv))
	}
	if dw, err := f.Torque.Neg().Div(t.sys.MomentOfInertia()); err == nil {
		t.printf("\t\tStep: Rotation: %s\n", components(dw))
	}
	t.printf("\t\tStep: Position: %s\n", components(start.Velocity))

	t.vector(s.Tick, "End Velocity", s.State.Velocity)
	t.vector(s.Tick, "End Rotation", s.State.Spin)
	t.vector(s.Tick, "End Position", s.State.Position)
	t.printf("%d\tDistance Travelled: %.2f\n", s.Tick, t.units.FromMeters(s.Distance))
}

// End writes the closing rule and total simulated time.
func (t *Trace) End(r *dynamo.Result) {
	t.printf("%s\n", rule)
	t.printf("Total Time: %.2fs\n", r.Elapsed)
}

// Err returns the first write error, if any.
func (t *Trace) Err() error { return t.err }

func components(v vec.Vector3) string {
	return fmt.Sprintf("%.2f %.2f %.2f", v.X(), v.Y(), v.Z())
}
