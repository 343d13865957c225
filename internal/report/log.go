package report

import (
	"github.com/rs/zerolog"

	"github.com/san-kum/golfsim/internal/dynamo"
)

// LogObserver emits one debug event per tick.
type LogObserver struct {
	logger zerolog.Logger
}

func NewLogObserver(l zerolog.Logger) *LogObserver {
	return &LogObserver{logger: l}
}

func (o *LogObserver) OnTick(s dynamo.Snapshot) {
	o.logger.Debug().
		Int("tick", s.Tick).
		Float64("time", s.State.Time).
		Stringer("velocity", s.State.Velocity).
		Stringer("spin", s.State.Spin).
		Stringer("position", s.State.Position).
		Stringer("lift", s.Forces.Lift).
		Stringer("drag", s.Forces.Drag).
		Stringer("gravity", s.Forces.Gravity).
		Stringer("net", s.Forces.Net).
		Float64("distance", s.Distance).
		Stringer("status", s.Status).
		Msg("tick")
}
