package sequence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/go-awg/seqc"
)

// SimpleSequence plays independent pairs of random I/Q waveforms, one pair
// per hardware-loop iteration. The random buffers are placeholders: the
// device layer later replaces them with uploaded waveform data of the same
// length.
type SimpleSequence struct {
	Sequence

	// WaveformBuffer is the playback duration of each waveform pair in
	// seconds.
	WaveformBuffer float64

	// bufferSamples is WaveformBuffer in samples, floored to a multiple of 16.
	bufferSamples int64
}

// NewSimpleSequence creates a simple recipe with default timing and a 1 us
// waveform buffer.
func NewSimpleSequence() *SimpleSequence {
	s := &SimpleSequence{WaveformBuffer: 1e-6, bufferSamples: 16}
	s.initDefaults()
	return s
}

// Type implements Recipe.
func (s *SimpleSequence) Type() Type { return TypeSimple }

// Set implements Recipe.
func (s *SimpleSequence) Set(settings Settings) ([]string, error) {
	ignored, err := applySettings(settings, s.applyField)
	if err != nil {
		return nil, err
	}
	return ignored, s.update()
}

// Get implements Recipe.
func (s *SimpleSequence) Get() (string, error) {
	if err := s.update(); err != nil {
		return "", err
	}
	return s.substitute(s.render()), nil
}

// Snapshot implements Recipe.
func (s *SimpleSequence) Snapshot() Settings {
	snap := s.sharedSnapshot()
	snap["waveform_buffer"] = s.WaveformBuffer
	return snap
}

func (s *SimpleSequence) applyField(name string, value any) (bool, error) {
	if known, err := s.Sequence.applyField(name, value); known {
		return true, err
	}
	if name != "waveform_buffer" {
		return false, nil
	}
	v, err := floatSetting(name, value)
	if err != nil {
		return true, err
	}
	if err := nonNegative(name, v); err != nil {
		return true, err
	}
	s.WaveformBuffer = v
	return true, nil
}

func (s *SimpleSequence) update() error {
	s.deriveTrigger()
	if s.TriggerMode == TriggerExternal {
		s.waitCycles = float64(WaitCycles(s.Period-s.DeadTime-s.Latency+s.TriggerDelay, s.ClockRate))
	} else {
		s.waitCycles = float64(WaitCycles(s.Period-s.DeadTime-s.WaveformBuffer, s.ClockRate))
	}
	s.bufferSamples = RawCycles(s.WaveformBuffer, s.ClockRate) / 16 * 16
	return s.validate()
}

func (s *SimpleSequence) validate() error {
	if err := s.checkTiming(); err != nil {
		return err
	}
	if s.Period-s.DeadTime-s.WaveformBuffer < 0 {
		return fmt.Errorf("%w: waveform buffer %v s does not fit into period %v s minus dead time %v s",
			ErrNegativeWaitTime, s.WaveformBuffer, s.Period, s.DeadTime)
	}
	return nil
}

func (s *SimpleSequence) render() string {
	var b strings.Builder
	b.WriteString(seqc.Header("Simple"))
	for i := 1; i <= s.HWLoops; i++ {
		b.WriteString(seqc.RandomBufferPair(i, seqc.TokenBuffer) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(seqc.Repeat(seqc.TokenLoop))
	for i := 1; i <= s.HWLoops; i++ {
		b.WriteString(seqc.WaveformComment(i, s.HWLoops) + "\n")
		b.WriteString(seqc.TokenTrigger1 + "\n")
		b.WriteString(seqc.Wait(seqc.TokenWait1) + "\n")
		b.WriteString(seqc.TokenTrigger2 + "\n")
		b.WriteString(seqc.PlayWaveIndexed(i) + "\n")
		b.WriteString(seqc.WaitWave() + "\n")
		b.WriteString(seqc.Wait(seqc.TokenWait2) + "\n")
		b.WriteString("\n")
	}
	b.WriteString(seqc.CloseBracket())
	return b.String()
}

func (s *SimpleSequence) substitute(text string) string {
	text = seqc.Substitute(text, []seqc.Substitution{
		{Token: seqc.TokenBuffer, Value: strconv.FormatInt(s.bufferSamples, 10)},
	})
	return s.Sequence.substitute(text)
}
