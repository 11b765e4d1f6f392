package signal

import "math"

// Pair couples a clean reference signal with an impulsive-noise copy.
type Pair struct {
	Clean []float64
	Noisy []float64
}

// Dataset generates numSignals (clean, noisy) pairs, alternating between
// basic waveforms and echo returns with parameters varied from the
// generator's seeded source. Each noisy signal carries a different
// impulsive noise pattern.
func (g *Generator) Dataset(signalLength, numSignals int) ([]Pair, error) {
	waveforms := []Waveform{Sine, Square, Triangle, Sawtooth}
	pulses := []Pulse{Rectangular, Triangular, Gaussian, Exponential, Chirp}
	noises := []Noise{Impulse, RandomSpikes, Burst, Periodic}

	pairs := make([]Pair, 0, numSignals)
	for i := 0; i < numSignals; i++ {
		var (
			clean []float64
			err   error
		)
		if i%2 == 0 {
			w := waveforms[(i/2)%len(waveforms)]
			amplitude := 0.5 + 0.5*g.rng.Float64()
			frequency := 0.05 + 0.15*g.rng.Float64()
			phase := 2 * math.Pi * g.rng.Float64()
			duty := 0.3 + 0.4*g.rng.Float64()
			clean, err = g.Basic(w, signalLength, amplitude, frequency, phase, duty)
		} else {
			p := pulses[i%len(pulses)]
			amplitude := 0.5 + 0.5*g.rng.Float64()
			delay := 50 + int(100*g.rng.Float64())
			attenuation := 0.3 + 0.4*g.rng.Float64()
			noiseLevel := 0.01 + 0.04*g.rng.Float64()
			clean, err = g.Echo(p, signalLength, amplitude, delay, attenuation, noiseLevel)
		}
		if err != nil {
			return nil, err
		}

		noiseType := noises[i%len(noises)]
		density := 0.005 + 0.02*g.rng.Float64()
		amplitude := 1 + 2*g.rng.Float64()
		noisy, err := g.AddNoise(clean, noiseType, density, amplitude)
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, Pair{Clean: clean, Noisy: noisy})
	}

	return pairs, nil
}
