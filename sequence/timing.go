package sequence

import "fmt"

// WaitCycles converts a physical duration in seconds to hardware wait-loop
// cycles. Wait instructions process 8 samples per cycle, so the sample count
// is divided by 8 before truncation. Callers must budget for the resulting
// discretization error.
func WaitCycles(t, clockRate float64) int64 {
	return int64(t * clockRate / 8)
}

// RawCycles converts a physical duration in seconds to raw sample cycles,
// truncating to an integer. Used for pulse envelope lengths.
func RawCycles(t, clockRate float64) int64 {
	return int64(t * clockRate)
}

// Envelope holds the parameter triple of a Gaussian pulse envelope in sample
// cycles. It is substituted verbatim into every envelope declaration.
type Envelope struct {
	// Length is the total envelope length, always a multiple of 16 samples
	// (waveform memory alignment requirement).
	Length int64
	// Center is the envelope peak position, half the length.
	Center int64
	// Width is the Gaussian width.
	Width int64
}

// GaussEnvelope derives the envelope triple from a pulse width and a
// truncation factor: the envelope spans 2*truncation*width seconds, rounded
// down to the nearest multiple of 16 samples.
func GaussEnvelope(width, truncation, clockRate float64) Envelope {
	length := RawCycles(2*truncation*width, clockRate) / 16 * 16
	return Envelope{
		Length: length,
		Center: length / 2,
		Width:  RawCycles(width, clockRate),
	}
}

// String formats the triple as the argument list of a waveform-generator
// expression.
func (e Envelope) String() string {
	return fmt.Sprintf("%d,%d,%d", e.Length, e.Center, e.Width)
}
