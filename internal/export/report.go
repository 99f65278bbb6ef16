package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/orbitsim/internal/sim"
)

// Report summarises a headless run.
type Report struct {
	Integrator string             `json:"integrator"`
	Ticks      int                `json:"ticks"`
	Quit       bool               `json:"quit"`
	Speed      float64            `json:"speed"`
	Script     string             `json:"script,omitempty"`
	Metrics    map[string]float64 `json:"metrics"`
	Periods    map[string]float64 `json:"periods,omitempty"`
}

func NewReport(integrator string, result *sim.Result) *Report {
	return &Report{
		Integrator: integrator,
		Ticks:      result.Ticks,
		Quit:       result.Quit,
		Speed:      result.Speed,
		Metrics:    result.Metrics,
		Periods:    make(map[string]float64),
	}
}

func WriteJSON(w io.Writer, r *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// WriteTracksCSV writes one row per recorded sample and body, with the
// effective timestep of the sampled tick.
func WriteTracksCSV(w io.Writer, rec *sim.Recorder) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"sample", "body", "x", "y", "dt"}); err != nil {
		return err
	}
	dts := rec.Timesteps()
	for _, name := range rec.Names() {
		for i, p := range rec.Track(name) {
			row := []string{
				strconv.Itoa(i),
				name,
				strconv.FormatFloat(p.X, 'f', 4, 64),
				strconv.FormatFloat(p.Y, 'f', 4, 64),
				strconv.FormatFloat(dts[i], 'f', 4, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
