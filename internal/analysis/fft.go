package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrShortSeries = errors.New("analysis: series too short")
	ErrNoPeriod    = errors.New("analysis: no periodic component")
)

// PowerSpectrum returns the magnitude of the first half of the DFT of
// data with its mean removed.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	mean := stat.Mean(data, nil)
	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// EstimatePeriod returns the period, in samples, of the strongest
// frequency in data. The peak bin is refined from its larger neighbour.
func EstimatePeriod(data []float64) (float64, error) {
	if len(data) < 8 {
		return 0, ErrShortSeries
	}

	ps := PowerSpectrum(data)
	peak := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[peak] {
			peak = k
		}
	}
	if ps[peak] < 1e-12 {
		return 0, ErrNoPeriod
	}

	// two-point interpolation, exact for an unwindowed pure tone
	bin := float64(peak)
	b := ps[peak]
	a, c := 0.0, 0.0
	if peak > 1 {
		a = ps[peak-1]
	}
	if peak < len(ps)-1 {
		c = ps[peak+1]
	}
	if a > c {
		bin -= a / (a + b)
	} else if c > 0 {
		bin += c / (b + c)
	}
	return float64(len(data)) / bin, nil
}
