package sim

import "gonum.org/v1/gonum/spatial/r2"

// Recorder is an Observer that keeps every body position and the
// effective timestep of each tick.
type Recorder struct {
	names  []string
	tracks map[string][]r2.Vec
	dts    []float64
	every  int
}

// NewRecorder samples every nth tick. n < 1 samples every tick.
func NewRecorder(every int) *Recorder {
	if every < 1 {
		every = 1
	}
	return &Recorder{tracks: make(map[string][]r2.Vec), every: every}
}

func (r *Recorder) OnTick(f *Frame) {
	if f.Tick%r.every != 0 {
		return
	}
	for _, b := range f.Bodies {
		if _, ok := r.tracks[b.Name]; !ok {
			r.names = append(r.names, b.Name)
		}
		r.tracks[b.Name] = append(r.tracks[b.Name], b.Pos)
	}
	r.dts = append(r.dts, f.Dt)
}

// Names returns the recorded body names in first-seen order.
func (r *Recorder) Names() []string { return r.names }

func (r *Recorder) Track(name string) []r2.Vec { return r.tracks[name] }

// Radii returns the distance from center for every sample of name.
func (r *Recorder) Radii(name string, center r2.Vec) []float64 {
	track := r.tracks[name]
	out := make([]float64, len(track))
	for i, p := range track {
		out[i] = r2.Norm(r2.Sub(p, center))
	}
	return out
}

// Xs returns the x coordinate of every sample of name.
func (r *Recorder) Xs(name string) []float64 {
	track := r.tracks[name]
	out := make([]float64, len(track))
	for i, p := range track {
		out[i] = p.X
	}
	return out
}

func (r *Recorder) Timesteps() []float64 { return r.dts }

func (r *Recorder) Len() int { return len(r.dts) }
