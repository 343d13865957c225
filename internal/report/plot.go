package report

import (
	"errors"
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/golfsim/internal/dynamo"
)

var ErrNoTrajectory = errors.New("result has no trajectory")

type Series string

const (
	SeriesHeight   Series = "height"
	SeriesDistance Series = "distance"
	SeriesSpeed    Series = "speed"
	SeriesSpin     Series = "spin"
)

func ParseSeries(s string) (Series, error) {
	switch Series(s) {
	case SeriesHeight, SeriesDistance, SeriesSpeed, SeriesSpin:
		return Series(s), nil
	default:
		return "", fmt.Errorf("unknown series: %s", s)
	}
}

// Values extracts one series from the initial state and every recorded tick.
// Lengths are converted to u.
func Values(r *dynamo.Result, series Series, u Units) []float64 {
	pick := func(x dynamo.State, dist float64) float64 {
		switch series {
		case SeriesDistance:
			return u.FromMeters(dist)
		case SeriesSpeed:
			return x.Velocity.Length()
		case SeriesSpin:
			return x.Spin.Length()
		default:
			return u.FromMeters(x.Position.Z())
		}
	}

	data := make([]float64, 0, len(r.Trajectory)+1)
	data = append(data, pick(r.Initial, 0))
	for _, s := range r.Trajectory {
		data = append(data, pick(s.State, s.Distance))
	}
	return data
}

func caption(series Series, u Units) string {
	switch series {
	case SeriesDistance:
		return fmt.Sprintf("distance (%s) per tick", u.Abbrev())
	case SeriesSpeed:
		return "speed (m/s) per tick"
	case SeriesSpin:
		return "spin (rad/s) per tick"
	default:
		return fmt.Sprintf("height (%s) per tick", u.Abbrev())
	}
}

// Plot draws a series of a finished run as an ASCII chart.
func Plot(r *dynamo.Result, series Series, u Units, width, height int) (string, error) {
	if len(r.Trajectory) == 0 {
		return "", ErrNoTrajectory
	}
	return asciigraph.Plot(
		Values(r, series, u),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption(series, u)),
	), nil
}
