package tone

import "math"

const (
	// SampleRate is the rate tones are synthesized and played at.
	SampleRate = 44100

	startGain = 0.2
	endGain   = 0.0001
)

// Synthesize renders p as mono samples in [-1, 1]. Gain ramps exponentially
// from 0.2 toward zero over the decay window and the tone stops at its end.
func Synthesize(p Params, sampleRate int) []float64 {
	if sampleRate <= 0 || p.Decay <= 0 || p.Frequency <= 0 {
		return nil
	}
	n := int(math.Round(p.Decay * float64(sampleRate)))
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		gain := startGain * math.Pow(endGain/startGain, t/p.Decay)
		phase := math.Mod(p.Frequency*t, 1)
		out[i] = gain * oscillate(p.Waveform, phase)
	}
	return out
}

// oscillate returns the waveform value at phase in [0, 1).
func oscillate(w Waveform, phase float64) float64 {
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*phase - 1
	case Triangle:
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// pcm16 converts samples to 16-bit integers.
func pcm16(samples []float64) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		out[i] = int(math.Round(s * math.MaxInt16))
	}
	return out
}
