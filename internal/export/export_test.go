package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/orbitsim/internal/input"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

func runFor(t *testing.T, ticks int) (*sim.Controller, *sim.Recorder, *sim.Result) {
	t.Helper()
	c := sim.NewController(sim.NewState(), integrators.NewEuler(), sim.Config{BaseDt: physics.BaseTimestep, MaxTicks: ticks})
	rec := sim.NewRecorder(1)
	c.AddObserver(rec)
	res, err := c.Run(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return c, rec, res
}

func TestFrameToSVG(t *testing.T) {
	c, _, _ := runFor(t, 10)

	var buf bytes.Buffer
	if err := FrameToSVG(&buf, c.Frame()); err != nil {
		t.Fatal(err)
	}
	svg := buf.String()

	for _, want := range []string{`width="1000"`, `height="800"`, `fill="#ffff00"`, "<title>Jupiter</title>", "Speed: 1.00x"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if n := strings.Count(svg, "<polyline"); n != 3 {
		t.Errorf("expected 3 trails, got %d", n)
	}
	if n := strings.Count(svg, "<circle"); n != 4 {
		t.Errorf("expected 4 discs, got %d", n)
	}
}

func TestFrameToSVG_TrailsOff(t *testing.T) {
	c, _, _ := runFor(t, 10)
	c.Tick([]input.Command{input.ToggleTrails})

	var buf bytes.Buffer
	if err := FrameToSVG(&buf, c.Frame()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<polyline") {
		t.Error("no trails expected when disabled")
	}
}

func TestWriteTracksCSV_SpeedChange(t *testing.T) {
	c := sim.NewController(sim.NewState(), integrators.NewEuler(), sim.Config{BaseDt: physics.BaseTimestep})
	rec := sim.NewRecorder(1)
	c.AddObserver(rec)
	c.Tick(nil)
	c.Tick([]input.Command{input.SpeedUp})

	var buf bytes.Buffer
	if err := WriteTracksCSV(&buf, rec); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// Earth rows come first: header, sample 0, sample 1.
	if rows[1][4] != "3.0000" || rows[2][4] != "4.5000" {
		t.Errorf("expected dt 3.0000 then 4.5000, got %s and %s", rows[1][4], rows[2][4])
	}
}

func TestWriteJSON(t *testing.T) {
	_, _, res := runFor(t, 5)
	r := NewReport("euler", res)
	r.Periods["Earth"] = 205

	var buf bytes.Buffer
	if err := WriteJSON(&buf, r); err != nil {
		t.Fatal(err)
	}

	var got Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Ticks != 5 || got.Integrator != "euler" || got.Periods["Earth"] != 205 {
		t.Errorf("unexpected report %+v", got)
	}
}

func TestWriteTracksCSV(t *testing.T) {
	_, rec, _ := runFor(t, 4)

	var buf bytes.Buffer
	if err := WriteTracksCSV(&buf, rec); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1+4*3 {
		t.Fatalf("expected 13 rows, got %d", len(rows))
	}
	if rows[1][1] != "Earth" || rows[1][0] != "0" {
		t.Errorf("unexpected first row %v", rows[1])
	}
	if rows[1][3] != "404.2000" {
		t.Errorf("expected earth y 404.2000, got %s", rows[1][3])
	}
	if rows[0][4] != "dt" || rows[1][4] != "3.0000" {
		t.Errorf("expected dt column with 3.0000, got %v / %v", rows[0], rows[1])
	}
}
