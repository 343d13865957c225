package export

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"strings"
	"testing"

	"github.com/san-kum/golfsim/internal/dynamo"
	"github.com/san-kum/golfsim/internal/vec"
)

var meta = Meta{Model: "spin_ratio", Gravity: "direction_scaled", Distance: "horizontal", Dt: 0.1}

func testResult() *dynamo.Result {
	return &dynamo.Result{
		Initial: dynamo.State{
			Velocity: vec.New(0, 81.3, 24.9),
			Spin:     vec.New(2094, 0, 0),
		},
		Final: dynamo.State{
			Velocity: vec.New(0, 78.1, 21.0),
			Spin:     vec.New(2097.5, 0, 0),
			Position: vec.New(0, 8.13, 2.49),
			Time:     0.1,
		},
		Status:   dynamo.Running,
		Ticks:    1,
		Elapsed:  0.1,
		Distance: 8.13,
		Trajectory: []dynamo.Snapshot{{
			Tick: 1,
			State: dynamo.State{
				Velocity: vec.New(0, 78.1, 21.0),
				Spin:     vec.New(2097.5, 0, 0),
				Position: vec.New(0, 8.13, 2.49),
				Time:     0.1,
			},
			Forces:   dynamo.Forces{Net: vec.New(0, -1.47, -1.79)},
			Distance: 8.13,
		}},
		Metrics: map[string]float64{"apex": 2.49},
	}
}

func TestNewRun(t *testing.T) {
	run := NewRun(meta, testResult())

	if run.Model != "spin_ratio" || run.Status != "running" || run.Ticks != 1 {
		t.Errorf("unexpected header: %+v", run)
	}
	if len(run.Samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(run.Samples))
	}
	if s := run.Samples[0]; s.Tick != 0 || s.Velocity != [3]float64{0, 81.3, 24.9} || s.Distance != 0 {
		t.Errorf("initial sample = %+v", s)
	}
	if s := run.Samples[1]; s.Tick != 1 || s.Position != [3]float64{0, 8.13, 2.49} || s.Net != [3]float64{0, -1.47, -1.79} {
		t.Errorf("tick sample = %+v", s)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, CSV, NewRun(meta, testResult())); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0], csvHeader) {
		t.Errorf("header = %v", rows[0])
	}
	want := "1,0.100000,0.000000,8.130000,2.490000,0.000000,78.100000,21.000000,2097.500000,0.000000,0.000000,0.000000,-1.470000,-1.790000,8.130000"
	if got := strings.Join(rows[2], ","); got != want {
		t.Errorf("row = %s\nwant  %s", got, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	run := NewRun(meta, testResult())

	var buf bytes.Buffer
	if err := Write(&buf, JSON, run); err != nil {
		t.Fatalf("write json: %v", err)
	}
	if !strings.Contains(buf.String(), `"model": "spin_ratio"`) {
		t.Errorf("meta should be inlined:\n%s", buf.String())
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	if !reflect.DeepEqual(got, run) {
		t.Errorf("json round trip mismatch\ngot  %+v\nwant %+v", got, run)
	}
}

func TestCBORRoundTrip(t *testing.T) {
	run := NewRun(meta, testResult())

	var buf bytes.Buffer
	if err := Write(&buf, CBOR, run); err != nil {
		t.Fatalf("write cbor: %v", err)
	}

	var js bytes.Buffer
	WriteJSON(&js, run)
	if buf.Len() >= js.Len() {
		t.Errorf("cbor (%d bytes) should be smaller than json (%d bytes)", buf.Len(), js.Len())
	}

	got, err := ReadCBOR(&buf)
	if err != nil {
		t.Fatalf("read cbor: %v", err)
	}
	if !reflect.DeepEqual(got, run) {
		t.Errorf("cbor round trip mismatch\ngot  %+v\nwant %+v", got, run)
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"csv", "json", "cbor"} {
		if f, err := ParseFormat(s); err != nil || string(f) != s {
			t.Errorf("ParseFormat(%q) = %v, %v", s, f, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
	if err := Write(&bytes.Buffer{}, Format("xml"), &Run{}); err == nil {
		t.Error("expected error writing unknown format")
	}
}
