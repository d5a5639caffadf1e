package sequence

import (
	"fmt"
	"strings"

	"github.com/arloliu/go-awg/seqc"
)

// playWaveLatency is the fine playback latency of a playWave instruction.
// The inter-pulse spacing of the Ramsey pair is corrected by it.
const playWaveLatency = 10e-9

// T2Sequence measures dephasing with a Ramsey-style two-pulse sequence: each
// iteration plays the envelope pair twice, separated by the swept delay, with
// each pulse at half the T1 amplitude so the total pulse energy matches a
// single full pulse.
//
// Parameter derivation and validation are identical to T1Sequence; only the
// rendered loop body differs.
type T2Sequence struct {
	T1Sequence
}

// NewT2Sequence creates a T2* recipe with default timing and a single 1 us
// sweep point.
func NewT2Sequence() *T2Sequence {
	s := &T2Sequence{}
	s.PulseAmplitude = 1.0
	s.PulseWidth = 50e-9
	s.PulseTruncation = 3
	s.DelayTimes = []float64{1e-6}
	s.initDefaults()
	return s
}

// Type implements Recipe.
func (s *T2Sequence) Type() Type { return TypeT2Star }

// Get implements Recipe.
func (s *T2Sequence) Get() (string, error) {
	if err := s.update(); err != nil {
		return "", err
	}
	return s.substitute(s.render()), nil
}

func (s *T2Sequence) render() string {
	var b strings.Builder
	b.WriteString(seqc.Header("T2* (Ramsey)"))
	b.WriteString(seqc.GaussPairScaled(0.5*s.PulseAmplitude, seqc.TokenGauss) + "\n\n")
	b.WriteString(seqc.Repeat(seqc.TokenLoop))
	for i, delay := range s.DelayTimes {
		d := WaitCycles(delay-playWaveLatency, s.ClockRate)
		b.WriteString(seqc.WaveformComment(i+1, len(s.DelayTimes)) + "\n")
		b.WriteString(seqc.TokenTrigger1 + "\n")
		b.WriteString(seqc.Wait(fmt.Sprintf("%s - %d", seqc.TokenWait1, d)) + "\n")
		b.WriteString(seqc.TokenTrigger2 + "\n")
		b.WriteString(seqc.PlayWave() + "\n")
		b.WriteString(seqc.Wait(fmt.Sprintf("%d", d)) + "\n")
		b.WriteString(seqc.PlayWave() + "\n")
		b.WriteString(seqc.WaitWave() + "\n")
		b.WriteString(seqc.Wait(seqc.TokenWait2) + "\n")
		b.WriteString("\n")
	}
	b.WriteString(seqc.CloseBracket())
	return b.String()
}
