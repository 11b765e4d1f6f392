// Package signal generates deterministic test signals for the denoising
// filters: basic waveforms, synthetic echo returns and impulsive noise.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"
)

// Waveform identifies a basic periodic signal shape.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Triangle
	Sawtooth
)

// Pulse identifies the envelope of a synthetic echo pulse.
type Pulse int

const (
	Rectangular Pulse = iota
	Triangular
	Gaussian
	Exponential
	Chirp
)

// Noise identifies an impulsive noise pattern.
type Noise int

const (
	// Impulse places isolated full-amplitude spikes of random sign.
	Impulse Noise = iota
	// RandomSpikes places isolated spikes with amplitude varied in
	// [0.5, 1.0] of the nominal amplitude.
	RandomSpikes
	// Burst places short runs of Gaussian-amplitude disturbance.
	Burst
	// Periodic places fixed-amplitude spikes at a regular period of
	// 1/density samples.
	Periodic
)

// defaultBurstLength is the run length used by AddNoise for burst noise.
const defaultBurstLength = 5

// Generator creates deterministic signals from a seeded random source.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed. The default seed is 1.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	return g
}

// Basic generates a periodic waveform. The frequency is normalized
// (cycles per sample, useful range 0..0.5) and dutyCycle applies to the
// square waveform only.
func (g *Generator) Basic(w Waveform, length int, amplitude, frequency, phase, dutyCycle float64) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("signal length must be > 0: %d", length)
	}

	out := make([]float64, length)
	for i := range out {
		t := float64(i)
		ph := math.Mod(2*math.Pi*frequency*t+phase, 2*math.Pi)
		if ph < 0 {
			ph += 2 * math.Pi
		}

		switch w {
		case Square:
			if ph < 2*math.Pi*dutyCycle {
				out[i] = amplitude
			} else {
				out[i] = -amplitude
			}
		case Triangle:
			if ph < math.Pi {
				out[i] = amplitude * (2*ph/math.Pi - 1)
			} else {
				out[i] = amplitude * (3 - 2*ph/math.Pi)
			}
		case Sawtooth:
			out[i] = amplitude * (ph/math.Pi - 1)
		default:
			out[i] = amplitude * math.Sin(2*math.Pi*frequency*t+phase)
		}
	}

	return out, nil
}

// Echo generates a synthetic echo return: a pulse of the given envelope
// placed at one twentieth of the signal, an attenuated copy echoDelay
// samples later, and optional Gaussian background noise with variance
// noiseLevel squared. The pulse spans one tenth of the signal length.
func (g *Generator) Echo(p Pulse, length int, amplitude float64, echoDelay int, echoAttenuation, noiseLevel float64) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("signal length must be > 0: %d", length)
	}
	if echoDelay < 0 {
		return nil, fmt.Errorf("echo delay must be >= 0: %d", echoDelay)
	}

	out := make([]float64, length)

	pulseLen := max(1, length/10)
	pulse := g.pulse(p, pulseLen, amplitude)

	mainStart := length / 20
	for i := 0; i < len(pulse) && mainStart+i < length; i++ {
		out[mainStart+i] = pulse[i]
	}

	if echoDelay < length && echoAttenuation > 0 {
		echoStart := mainStart + echoDelay
		if echoStart < length {
			m := min(len(pulse), length-echoStart)
			echo := make([]float64, m)
			vecmath.ScaleBlock(echo, pulse[:m], echoAttenuation)
			vecmath.AddBlockInPlace(out[echoStart:echoStart+m], echo)
		}
	}

	if noiseLevel > 0 {
		noise := g.whiteNoise(length, noiseLevel*noiseLevel)
		vecmath.AddBlockInPlace(out, noise)
	}

	return out, nil
}

// GenerateNoise generates an impulsive noise signal of the given pattern.
// The density is the per-sample spike probability (or the inverse period
// for Periodic noise) and must lie in (0, 1].
func (g *Generator) GenerateNoise(t Noise, length int, density, amplitude float64, burstLength int) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("noise length must be > 0: %d", length)
	}
	if density <= 0 || density > 1 {
		return nil, fmt.Errorf("noise density must be in (0, 1]: %g", density)
	}
	if burstLength <= 0 {
		return nil, fmt.Errorf("burst length must be > 0: %d", burstLength)
	}

	noise := make([]float64, length)

	switch t {
	case Impulse:
		for i := range noise {
			if g.rng.Float64() < density {
				noise[i] = amplitude * randomSign(g.rng)
			}
		}

	case RandomSpikes:
		for i := range noise {
			if g.rng.Float64() < density {
				a := amplitude * (0.5 + 0.5*g.rng.Float64())
				noise[i] = a * randomSign(g.rng)
			}
		}

	case Burst:
		for i := 0; i < length; {
			if g.rng.Float64() < density {
				for j := 0; j < burstLength && i+j < length; j++ {
					noise[i+j] = amplitude * g.rng.NormFloat64()
				}
				i += burstLength
			} else {
				i++
			}
		}

	case Periodic:
		period := int(1 / density)
		if period > 0 {
			for i := 0; i < length; i += period {
				noise[i] = amplitude * randomSign(g.rng)
			}
		}
	}

	return noise, nil
}

// AddNoise returns a copy of input with impulsive noise of the given
// pattern added. The input is not modified.
func (g *Generator) AddNoise(input []float64, t Noise, density, amplitude float64) ([]float64, error) {
	noise, err := g.GenerateNoise(t, len(input), density, amplitude, defaultBurstLength)
	if err != nil {
		return nil, err
	}

	noisy := make([]float64, len(input))
	copy(noisy, input)
	vecmath.AddBlockInPlace(noisy, noise)
	return noisy, nil
}

// WhiteNoise generates Gaussian white noise with the given variance.
func (g *Generator) WhiteNoise(length int, variance float64) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("noise length must be > 0: %d", length)
	}
	if variance < 0 {
		return nil, fmt.Errorf("noise variance must be >= 0: %g", variance)
	}
	return g.whiteNoise(length, variance), nil
}

func (g *Generator) whiteNoise(length int, variance float64) []float64 {
	sigma := math.Sqrt(variance)
	out := make([]float64, length)
	for i := range out {
		out[i] = sigma * g.rng.NormFloat64()
	}
	return out
}

func randomSign(rng *rand.Rand) float64 {
	if rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

func (g *Generator) pulse(p Pulse, length int, amplitude float64) []float64 {
	out := make([]float64, length)

	switch p {
	case Triangular:
		half := length / 2
		for i := 0; i < half; i++ {
			out[i] = amplitude * float64(i) / float64(half)
		}
		for i := half; i < length; i++ {
			out[i] = amplitude * float64(length-1-i) / float64(length-half)
		}

	case Gaussian:
		sigma := float64(length) / 6 // pulse spans three sigma each side
		center := float64(length-1) / 2
		for i := range out {
			x := float64(i) - center
			out[i] = amplitude * math.Exp(-0.5*x*x/(sigma*sigma))
		}

	case Exponential:
		tau := float64(length) / 3
		for i := range out {
			out[i] = amplitude * math.Exp(-float64(i)/tau)
		}

	case Chirp:
		// Linear frequency sweep under a Hann envelope.
		const f0, f1 = 0.1, 0.5
		beta := (f1 - f0) / float64(length)
		for i := range out {
			t := float64(i)
			phase := 2 * math.Pi * (f0*t + 0.5*beta*t*t)
			w := 1.0
			if length > 1 {
				w = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(length-1)))
			}
			out[i] = amplitude * w * math.Sin(phase)
		}

	default: // Rectangular
		for i := range out {
			out[i] = amplitude
		}
	}

	return out
}
