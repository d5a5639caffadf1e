package sequence

import (
	"fmt"
	"strings"

	"github.com/arloliu/go-awg/internal/util"
	"github.com/arloliu/go-awg/seqc"
)

// RabiSequence sweeps the amplitude of a fixed Gaussian /
// derivative-of-Gaussian envelope pair. Each hardware-loop iteration plays
// the pair scaled by the next entry of the amplitude sweep, the experiment's
// independent variable.
type RabiSequence struct {
	Sequence

	// PulseAmplitudes is the amplitude sweep. The hardware-loop length is
	// forced to its length on every update.
	PulseAmplitudes []float64
	// PulseWidth is the Gaussian width in seconds.
	PulseWidth float64
	// PulseTruncation is the factor at which the Gaussian is cut off; the
	// envelope spans 2*truncation*width seconds.
	PulseTruncation float64

	envelope Envelope
}

// NewRabiSequence creates a Rabi recipe with default timing and a single
// full-scale sweep point.
func NewRabiSequence() *RabiSequence {
	s := &RabiSequence{
		PulseAmplitudes: []float64{1.0},
		PulseWidth:      50e-9,
		PulseTruncation: 3,
	}
	s.initDefaults()
	return s
}

// Type implements Recipe.
func (s *RabiSequence) Type() Type { return TypeRabi }

// Set implements Recipe.
func (s *RabiSequence) Set(settings Settings) ([]string, error) {
	ignored, err := applySettings(settings, s.applyField)
	if err != nil {
		return nil, err
	}
	return ignored, s.update()
}

// Get implements Recipe.
func (s *RabiSequence) Get() (string, error) {
	if err := s.update(); err != nil {
		return "", err
	}
	return s.substitute(s.render()), nil
}

// Snapshot implements Recipe.
func (s *RabiSequence) Snapshot() Settings {
	snap := s.sharedSnapshot()
	snap["pulse_amplitudes"] = util.CloneSlice(s.PulseAmplitudes, 0)
	snap["pulse_width"] = s.PulseWidth
	snap["pulse_truncation"] = s.PulseTruncation
	return snap
}

func (s *RabiSequence) applyField(name string, value any) (bool, error) {
	if known, err := s.Sequence.applyField(name, value); known {
		return true, err
	}
	switch name {
	case "pulse_amplitudes":
		v, err := floatsSetting(name, value)
		if err != nil {
			return true, err
		}
		if err := amplitudesInRange(name, v); err != nil {
			return true, err
		}
		s.PulseAmplitudes = v
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
	default:
		return false, nil
	}
	return true, nil
}

func (s *RabiSequence) update() error {
	s.deriveTrigger()
	s.HWLoops = len(s.PulseAmplitudes)
	s.envelope = GaussEnvelope(s.PulseWidth, s.PulseTruncation, s.ClockRate)
	s.waitCycles = s.waitBeforePulse()
	if s.TriggerMode != TriggerExternal {
		s.waitCycles -= float64(s.envelope.Length) / 8
	}
	return s.validate()
}

func (s *RabiSequence) validate() error {
	if err := s.checkTiming(); err != nil {
		return err
	}
	if s.Period-s.DeadTime-2*s.PulseWidth*s.PulseTruncation < 0 {
		return fmt.Errorf("%w: pulse duration %v s does not fit into period %v s minus dead time %v s",
			ErrNegativeWaitTime, 2*s.PulseWidth*s.PulseTruncation, s.Period, s.DeadTime)
	}
	if s.HWLoops < len(s.PulseAmplitudes) {
		return fmt.Errorf("%w: hardware loop length %d is shorter than the %d specified amplitudes",
			ErrHardwareLoopMismatch, s.HWLoops, len(s.PulseAmplitudes))
	}
	return nil
}

func (s *RabiSequence) render() string {
	var b strings.Builder
	b.WriteString(seqc.Header("Rabi"))
	b.WriteString(seqc.GaussPair(seqc.TokenGauss) + "\n\n")
	b.WriteString(seqc.Repeat(seqc.TokenLoop))
	for i, amp := range s.PulseAmplitudes {
		b.WriteString(seqc.WaveformComment(i+1, len(s.PulseAmplitudes)) + "\n")
		b.WriteString(seqc.TokenTrigger1 + "\n")
		b.WriteString(seqc.Wait(seqc.TokenWait1) + "\n")
		b.WriteString(seqc.TokenTrigger2 + "\n")
		b.WriteString(seqc.PlayWaveScaled(amp, amp) + "\n")
		b.WriteString(seqc.WaitWave() + "\n")
		b.WriteString(seqc.Wait(seqc.TokenWait2) + "\n")
		b.WriteString("\n")
	}
	b.WriteString(seqc.CloseBracket())
	return b.String()
}

func (s *RabiSequence) substitute(text string) string {
	text = seqc.Substitute(text, []seqc.Substitution{
		{Token: seqc.TokenGauss, Value: s.envelope.String()},
	})
	return s.Sequence.substitute(text)
}
