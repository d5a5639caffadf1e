package sequence

import (
	"fmt"
	"strings"

	"github.com/arloliu/go-awg/internal/util"
	"github.com/arloliu/go-awg/seqc"
)

// T1Sequence measures relaxation: a fixed-amplitude envelope pair is replayed
// once per entry of the delay sweep. Each iteration's wait is split into a
// pre-pulse wait reduced by the iteration's delay and a post-pulse wait
// increased by the same delay, so the period stays constant and only the
// pulse position shifts.
type T1Sequence struct {
	Sequence

	// PulseAmplitude scales the envelope pair.
	PulseAmplitude float64
	// PulseWidth is the Gaussian width in seconds.
	PulseWidth float64
	// PulseTruncation is the factor at which the Gaussian is cut off.
	PulseTruncation float64
	// DelayTimes is the relaxation-delay sweep in seconds. The hardware-loop
	// length is forced to its length on every update.
	DelayTimes []float64

	envelope Envelope
}

// NewT1Sequence creates a T1 recipe with default timing and a single 1 us
// sweep point.
func NewT1Sequence() *T1Sequence {
	s := &T1Sequence{
		PulseAmplitude:  1.0,
		PulseWidth:      50e-9,
		PulseTruncation: 3,
		DelayTimes:      []float64{1e-6},
	}
	s.initDefaults()
	return s
}

// Type implements Recipe.
func (s *T1Sequence) Type() Type { return TypeT1 }

// Set implements Recipe.
func (s *T1Sequence) Set(settings Settings) ([]string, error) {
	ignored, err := applySettings(settings, s.applyField)
	if err != nil {
		return nil, err
	}
	return ignored, s.update()
}

// Get implements Recipe.
func (s *T1Sequence) Get() (string, error) {
	if err := s.update(); err != nil {
		return "", err
	}
	return s.substitute(s.render()), nil
}

// Snapshot implements Recipe.
func (s *T1Sequence) Snapshot() Settings {
	snap := s.sharedSnapshot()
	snap["pulse_amplitude"] = s.PulseAmplitude
	snap["pulse_width"] = s.PulseWidth
	snap["pulse_truncation"] = s.PulseTruncation
	snap["delay_times"] = util.CloneSlice(s.DelayTimes, 0)
	return snap
}

func (s *T1Sequence) applyField(name string, value any) (bool, error) {
	if known, err := s.Sequence.applyField(name, value); known {
		return true, err
	}
	switch name {
	case "pulse_amplitude":
		v, err := floatSetting(name, value)
		if err != nil {
			return true, err
		}
		if err := amplitudeInRange(name, v); err != nil {
			return true, err
		}
		s.PulseAmplitude = v
	case "pulse_width":
		v, err := floatSetting(name, value)
		if err != nil {
			return true, err
		}
		if err := nonNegative(name, v); err != nil {
			return true, err
		}
		s.PulseWidth = v
	case "pulse_truncation":
		v, err := floatSetting(name, value)
		if err != nil {
			return true, err
		}
		if err := nonNegative(name, v); err != nil {
			return true, err
		}
		s.PulseTruncation = v
	case "delay_times":
		v, err := floatsSetting(name, value)
		if err != nil {
			return true, err
		}
		for _, d := range v {
			if err := nonNegative(name, d); err != nil {
				return true, err
			}
		}
		s.DelayTimes = v
	default:
		return false, nil
	}
	return true, nil
}

func (s *T1Sequence) update() error {
	s.deriveTrigger()
	s.HWLoops = len(s.DelayTimes)
	s.envelope = GaussEnvelope(s.PulseWidth, s.PulseTruncation, s.ClockRate)
	s.waitCycles = s.waitBeforePulse()
	if s.TriggerMode != TriggerExternal {
		s.waitCycles -= float64(s.envelope.Length) / 8
	}
	return s.validate()
}

func (s *T1Sequence) validate() error {
	if err := s.checkTiming(); err != nil {
		return err
	}
	if s.Period-s.DeadTime-float64(s.envelope.Length)/s.ClockRate < 0 {
		return fmt.Errorf("%w: envelope of %d samples does not fit into period %v s minus dead time %v s",
			ErrNegativeWaitTime, s.envelope.Length, s.Period, s.DeadTime)
	}
	if s.HWLoops > len(s.DelayTimes) {
		return fmt.Errorf("%w: hardware loop length %d exceeds the %d specified delay times",
			ErrHardwareLoopMismatch, s.HWLoops, len(s.DelayTimes))
	}
	return nil
}

func (s *T1Sequence) render() string {
	var b strings.Builder
	b.WriteString(seqc.Header("T1"))
	b.WriteString(seqc.GaussPairScaled(s.PulseAmplitude, seqc.TokenGauss) + "\n\n")
	b.WriteString(seqc.Repeat(seqc.TokenLoop))
	for i, delay := range s.DelayTimes {
		d := WaitCycles(delay, s.ClockRate)
		b.WriteString(seqc.WaveformComment(i+1, len(s.DelayTimes)) + "\n")
		b.WriteString(seqc.TokenTrigger1 + "\n")
		b.WriteString(seqc.Wait(fmt.Sprintf("%s - %d", seqc.TokenWait1, d)) + "\n")
		b.WriteString(seqc.TokenTrigger2 + "\n")
		b.WriteString(seqc.PlayWave() + "\n")
		b.WriteString(seqc.WaitWave() + "\n")
		b.WriteString(seqc.Wait(fmt.Sprintf("%s + %d", seqc.TokenWait2, d)) + "\n")
		b.WriteString("\n")
	}
	b.WriteString(seqc.CloseBracket())
	return b.String()
}

func (s *T1Sequence) substitute(text string) string {
	text = seqc.Substitute(text, []seqc.Substitution{
		{Token: seqc.TokenGauss, Value: s.envelope.String()},
	})
	return s.Sequence.substitute(text)
}
