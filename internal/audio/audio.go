// Package audio plays an ambient pad whose pitch follows the speed
// multiplier and a short blip for every applied command.
package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gordonklaus/portaudio"
	"github.com/san-kum/orbitsim/internal/input"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	blipSeconds = 0.08
)

// Player receives command cues from a front end.
type Player interface {
	Cue(cmd input.Command, speed float64)
	Close() error
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Cue(input.Command, float64) {}
func (Nop) Close() error               { return nil }

// Open starts the default output device. When no device is usable it
// logs a warning and returns a silent player, so callers never need to
// treat audio as fatal.
func Open() Player {
	p := NewProcessor()
	if err := p.Start(); err != nil {
		log.Warn("audio disabled", "err", err)
		return Nop{}
	}
	log.Debug("audio started", "rate", SampleRate, "buffer", BufferSize)
	return p
}

type Processor struct {
	stream *portaudio.Stream

	// synthesis state, touched only by the audio callback
	time        float64
	filterState [2]float64
	delayLine   [2][]float64
	delayHead   int
	speedSmooth float64
	blipPhase   float64

	mu        sync.Mutex
	speed     float64
	blipFreq  float64
	blipLeft  int
	blipTotal int

	active bool
}

func NewProcessor() *Processor {
	delayLen := int(float64(SampleRate) * 0.6)

	return &Processor{
		delayLine:   [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
		speed:       1,
		speedSmooth: 1,
	}
}

func (a *Processor) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("portaudio init: %w", err)
	}

	// output only; duplex often fails on Linux when devices differ
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, a.Render)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("start stream: %w", err)
	}

	a.stream = stream
	a.active = true
	return nil
}

func (a *Processor) Close() error {
	if !a.active {
		return nil
	}
	var err error
	if a.stream != nil {
		if e := a.stream.Stop(); e != nil {
			err = e
		}
		a.stream.Close()
	}
	portaudio.Terminate()
	a.active = false
	return err
}

// Cue records the new speed and triggers the blip for cmd.
func (a *Processor) Cue(cmd input.Command, speed float64) {
	freq := blipFrequency(cmd)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.speed = speed
	if freq > 0 {
		a.blipFreq = freq
		a.blipTotal = int(blipSeconds * SampleRate)
		a.blipLeft = a.blipTotal
	}
}

func blipFrequency(cmd input.Command) float64 {
	switch cmd {
	case input.ToggleTrails:
		return 660
	case input.SpeedUp:
		return 880
	case input.SlowDown:
		return 440
	}
	return 0
}

// padRatio maps the speed multiplier onto a pitch ratio, one octave per
// factor of ten.
func padRatio(speed float64) float64 {
	return math.Pow(2, math.Log10(speed))
}

// Triangle Wave: smooth, flute-like, no harsh buzz
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// one-pole low pass
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

// Render fills out with the next block of stereo samples. It is the
// portaudio callback.
func (a *Processor) Render(out [][]float32) {
	// G2, Bb2, D3, F3, A3
	freqs := []float64{98.00, 116.54, 146.83, 174.61, 220.00}

	a.mu.Lock()
	target := a.speed
	blipFreq, blipLeft, blipTotal := a.blipFreq, a.blipLeft, a.blipTotal
	n := len(out[0])
	a.blipLeft = max(0, a.blipLeft-n)
	a.mu.Unlock()

	dt := 1.0 / float64(SampleRate)
	const vol = 0.25

	for i := 0; i < n; i++ {
		// glide rather than jump between speeds
		a.speedSmooth += (target - a.speedSmooth) * 0.0005
		ratio := padRatio(a.speedSmooth)

		sampleL, sampleR := 0.0, 0.0
		for j, f := range freqs {
			g := 1.0 / float64(len(freqs))
			lfo := math.Sin(a.time*0.2 + float64(j))
			sampleL += triangle(a.time*f*ratio*0.999) * g * (0.7 + 0.3*lfo)
			sampleR += triangle(a.time*f*ratio*1.001) * g * (0.7 + 0.3*lfo)
		}

		cutoff := 300.0 + 200.0*math.Log10(a.speedSmooth*10)
		var outL, outR float64
		outL, a.filterState[0] = lpf(sampleL, cutoff, dt, a.filterState[0])
		outR, a.filterState[1] = lpf(sampleR, cutoff, dt, a.filterState[1])

		if left := blipLeft - i; left > 0 && blipTotal > 0 {
			env := float64(left) / float64(blipTotal)
			blip := math.Sin(2*math.Pi*a.blipPhase) * env * 0.5
			a.blipPhase += blipFreq * dt
			outL += blip
			outR += blip
		}

		delayL := a.delayLine[0][a.delayHead]
		delayR := a.delayLine[1][a.delayHead]

		// ping-pong feedback
		mixL := outL + delayL*0.3 + delayR*0.1
		mixR := outR + delayR*0.3 + delayL*0.1

		a.delayLine[0][a.delayHead] = mixL * 0.7
		a.delayLine[1][a.delayHead] = mixR * 0.7
		a.delayHead = (a.delayHead + 1) % len(a.delayLine[0])

		out[0][i] = float32(mixL * vol)
		out[1][i] = float32(mixR * vol)

		a.time += dt
	}
}
