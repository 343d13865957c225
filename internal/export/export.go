package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fxamacker/cbor/v2"

	"github.com/san-kum/golfsim/internal/dynamo"
	"github.com/san-kum/golfsim/internal/vec"
)

type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	CBOR Format = "cbor"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case CSV, JSON, CBOR:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format: %s", s)
	}
}

// Meta describes how a run was produced.
type Meta struct {
	Model    string  `json:"model" cbor:"model"`
	Gravity  string  `json:"gravity" cbor:"gravity"`
	Distance string  `json:"distance" cbor:"distance"`
	Dt       float64 `json:"dt" cbor:"dt"`
}

type Sample struct {
	Tick     int        `json:"tick" cbor:"tick"`
	Time     float64    `json:"time" cbor:"time"`
	Position [3]float64 `json:"position" cbor:"position"`
	Velocity [3]float64 `json:"velocity" cbor:"velocity"`
	Spin     [3]float64 `json:"spin" cbor:"spin"`
	Net      [3]float64 `json:"net" cbor:"net"`
	Distance float64    `json:"distance" cbor:"distance"`
}

// Run is the serialisable form of a finished flight. Samples start with the
// initial state at tick 0. Lengths are meters.
type Run struct {
	Meta
	Status  string             `json:"status" cbor:"status"`
	Ticks   int                `json:"ticks" cbor:"ticks"`
	Elapsed float64            `json:"elapsed" cbor:"elapsed"`
	Carry   float64            `json:"carry" cbor:"carry"`
	Metrics map[string]float64 `json:"metrics,omitempty" cbor:"metrics,omitempty"`
	Samples []Sample           `json:"samples" cbor:"samples"`
}

func components(v vec.Vector3) [3]float64 { return [3]float64(v) }

func NewRun(meta Meta, r *dynamo.Result) *Run {
	run := &Run{
		Meta:    meta,
		Status:  r.Status.String(),
		Ticks:   r.Ticks,
		Elapsed: r.Elapsed,
		Carry:   r.Distance,
		Metrics: r.Metrics,
		Samples: make([]Sample, 0, len(r.Trajectory)+1),
	}
	run.Samples = append(run.Samples, Sample{
		Time:     r.Initial.Time,
		Position: components(r.Initial.Position),
		Velocity: components(r.Initial.Velocity),
		Spin:     components(r.Initial.Spin),
	})
	for _, s := range r.Trajectory {
		run.Samples = append(run.Samples, Sample{
			Tick:     s.Tick,
			Time:     s.State.Time,
			Position: components(s.State.Position),
			Velocity: components(s.State.Velocity),
			Spin:     components(s.State.Spin),
			Net:      components(s.Forces.Net),
			Distance: s.Distance,
		})
	}
	return run
}

func Write(w io.Writer, f Format, run *Run) error {
	switch f {
	case CSV:
		return WriteCSV(w, run)
	case JSON:
		return WriteJSON(w, run)
	case CBOR:
		return WriteCBOR(w, run)
	default:
		return fmt.Errorf("unknown export format: %s", f)
	}
}

var csvHeader = []string{
	"tick", "time",
	"x", "y", "z",
	"vx", "vy", "vz",
	"wx", "wy", "wz",
	"fx", "fy", "fz",
	"distance",
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

// WriteCSV writes one row per sample.
func WriteCSV(w io.Writer, run *Run) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range run.Samples {
		row := make([]string, 0, len(csvHeader))
		row = append(row, strconv.Itoa(s.Tick), formatFloat(s.Time))
		for _, v := range [][3]float64{s.Position, s.Velocity, s.Spin, s.Net} {
			for _, c := range v {
				row = append(row, formatFloat(c))
			}
		}
		row = append(row, formatFloat(s.Distance))
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, run *Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

func WriteCBOR(w io.Writer, run *Run) error {
	return cbor.NewEncoder(w).Encode(run)
}

func ReadJSON(r io.Reader) (*Run, error) {
	var run Run
	if err := json.NewDecoder(r).Decode(&run); err != nil {
		return nil, err
	}
	return &run, nil
}

func ReadCBOR(r io.Reader) (*Run, error) {
	var run Run
	if err := cbor.NewDecoder(r).Decode(&run); err != nil {
		return nil, err
	}
	return &run, nil
}
