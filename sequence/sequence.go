package sequence

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/arloliu/go-awg/seqc"
)

// Recipe is the interface implemented by every sequence recipe.
//
// Set applies named settings, then re-derives dependent quantities and
// validates the timing invariants; it is cheap and suited to incremental
// edits. Get runs the full production pipeline (derive, validate, render,
// substitute) and returns the finished sequencer program. Snapshot captures
// the declared configuration fields by name, so a front controller can replay
// them onto a different recipe type.
type Recipe interface {
	// Type returns the recipe's sequence type.
	Type() Type
	// Set applies the given settings. Unrecognized names are ignored and
	// returned; recognized names are validated against their domain
	// constraints before any derivation runs.
	Set(settings Settings) (ignored []string, err error)
	// Get derives, validates, renders and substitutes, returning the final
	// sequencer program text.
	Get() (string, error)
	// Snapshot returns the declared configuration fields by name.
	Snapshot() Settings
}

// Default values shared by all recipes.
const (
	// DefaultClockRate is the AWG sample clock in Hz.
	DefaultClockRate = 2.4e9
	// DefaultPeriod is the experiment repetition period in seconds.
	DefaultPeriod = 100e-6
	// DefaultDeadTime is the post-pulse dead time in seconds.
	DefaultDeadTime = 5e-6
	// DefaultLatency is the fixed trigger-to-output hardware latency in
	// seconds.
	DefaultLatency = 160e-9
)

// Sequence is the base recipe. It holds the shared timing and trigger
// configuration, derives trigger commands and dead-time cycles from the
// trigger mode, and renders the bare repetition/wait skeleton.
//
// The specialized recipes embed Sequence and call its helpers explicitly from
// their own pipeline stages.
type Sequence struct {
	// ClockRate is the AWG sample clock in Hz.
	ClockRate float64
	// Period is the experiment repetition period in seconds.
	Period float64
	// TriggerMode selects the trigger synchronization.
	TriggerMode TriggerMode
	// Repetitions is the outer hardware repetition count.
	Repetitions int
	// HWLoops is the hardware-loop length: the number of distinct waveform
	// blocks unrolled per outer repetition.
	HWLoops int
	// DeadTime is the post-pulse dead time in seconds.
	DeadTime float64
	// TriggerDelay is an additive trigger timing correction in seconds. It
	// may be negative.
	TriggerDelay float64
	// Latency is the fixed trigger-to-output hardware latency in seconds.
	Latency float64

	// derived on every update
	triggerArm    string
	triggerDisarm string
	waitCycles    float64
	deadCycles    int64
}

// NewSequence creates a base recipe with default timing.
func NewSequence() *Sequence {
	s := &Sequence{}
	s.initDefaults()
	return s
}

func (s *Sequence) initDefaults() {
	s.ClockRate = DefaultClockRate
	s.Period = DefaultPeriod
	s.TriggerMode = TriggerNone
	s.Repetitions = 1
	s.HWLoops = 1
	s.DeadTime = DefaultDeadTime
	s.TriggerDelay = 0
	s.Latency = DefaultLatency
	s.triggerArm = seqc.Comment()
	s.triggerDisarm = seqc.Comment()
}

// Type implements Recipe.
func (s *Sequence) Type() Type { return TypeNone }

// Set implements Recipe.
func (s *Sequence) Set(settings Settings) ([]string, error) {
	ignored, err := applySettings(settings, s.applyField)
	if err != nil {
		return nil, err
	}
	return ignored, s.update()
}

// Get implements Recipe.
func (s *Sequence) Get() (string, error) {
	if err := s.update(); err != nil {
		return "", err
	}
	return s.substitute(s.render()), nil
}

// Snapshot implements Recipe.
func (s *Sequence) Snapshot() Settings {
	return s.sharedSnapshot()
}

func (s *Sequence) update() error {
	s.deriveTrigger()
	return s.checkTiming()
}

// applySettings routes every setting through the given field matcher and
// collects the names it does not recognize. The ignored list is sorted so
// callers see a deterministic order regardless of map iteration.
func applySettings(settings Settings, applyField func(name string, value any) (bool, error)) ([]string, error) {
	var ignored []string
	for name, value := range settings {
		known, err := applyField(name, value)
		if err != nil {
			return nil, err
		}
		if !known {
			ignored = append(ignored, name)
		}
	}
	sort.Strings(ignored)
	return ignored, nil
}

// applyField assigns a single shared field by name, validating its domain
// constraint at assignment time. It reports whether the name was recognized.
func (s *Sequence) applyField(name string, value any) (bool, error) {
	switch name {
	case "clock_rate":
		v, err := floatSetting(name, value)
		if err != nil {
			return true, err
		}
		if err := nonNegative(name, v); err != nil {
			return true, err
		}
		s.ClockRate = v
	case "period":
		v, err := floatSetting(name, value)
		if err != nil {
			return true, err
		}
		if err := nonNegative(name, v); err != nil {
			return true, err
		}
		s.Period = v
	case "trigger_mode":
		v, err := triggerModeSetting(name, value)
		if err != nil {
			return true, err
		}
		s.TriggerMode = v
	case "repetitions":
		v, err := intSetting(name, value)
		if err != nil {
			return true, err
		}
		if err := nonNegative(name, float64(v)); err != nil {
			return true, err
		}
		s.Repetitions = v
	case "hw_loops":
		v, err := intSetting(name, value)
		if err != nil {
			return true, err
		}
		if err := nonNegative(name, float64(v)); err != nil {
			return true, err
		}
		s.HWLoops = v
	case "dead_time":
		v, err := floatSetting(name, value)
		if err != nil {
			return true, err
		}
		if err := nonNegative(name, v); err != nil {
			return true, err
		}
		s.DeadTime = v
	case "trigger_delay":
		v, err := floatSetting(name, value)
		if err != nil {
			return true, err
		}
		s.TriggerDelay = v
	case "latency":
		v, err := floatSetting(name, value)
		if err != nil {
			return true, err
		}
		if err := nonNegative(name, v); err != nil {
			return true, err
		}
		s.Latency = v
	default:
		return false, nil
	}
	return true, nil
}

// sharedSnapshot captures the shared configuration fields. Derived quantities
// are excluded: they are recomputed from the declared fields on every update.
func (s *Sequence) sharedSnapshot() Settings {
	return Settings{
		"clock_rate":    s.ClockRate,
		"period":        s.Period,
		"trigger_mode":  s.TriggerMode,
		"repetitions":   s.Repetitions,
		"hw_loops":      s.HWLoops,
		"dead_time":     s.DeadTime,
		"trigger_delay": s.TriggerDelay,
		"latency":       s.Latency,
	}
}

// deriveTrigger computes the trigger arm/disarm commands and the dead-time
// cycle count from the trigger mode.
func (s *Sequence) deriveTrigger() {
	switch s.TriggerMode {
	case TriggerInternal:
		s.triggerArm = seqc.SetTrigger(true)
		s.triggerDisarm = seqc.SetTrigger(false)
		s.deadCycles = WaitCycles(s.DeadTime, s.ClockRate)
	case TriggerExternal:
		s.triggerArm = seqc.WaitDigTrigger()
		s.triggerDisarm = seqc.Comment()
		s.deadCycles = 0
	default:
		s.triggerArm = seqc.Comment()
		s.triggerDisarm = seqc.Comment()
		s.deadCycles = 0
	}
}

// checkTiming validates the base timing invariant: the repetition period must
// absorb the dead time and the trigger latency.
func (s *Sequence) checkTiming() error {
	if s.Period-s.DeadTime-s.Latency+s.TriggerDelay < 0 {
		return fmt.Errorf("%w: period %v s minus dead time %v s, latency %v s and trigger delay %v s",
			ErrNegativeWaitTime, s.Period, s.DeadTime, s.Latency, s.TriggerDelay)
	}
	return nil
}

// render produces the bare repetition/wait skeleton with placeholder tokens.
func (s *Sequence) render() string {
	var b strings.Builder
	b.WriteString(seqc.Header("Plain"))
	b.WriteString(seqc.Repeat(seqc.TokenLoop))
	b.WriteString(seqc.TokenTrigger1 + "\n")
	b.WriteString(seqc.Wait(seqc.TokenWait1) + "\n")
	b.WriteString(seqc.TokenTrigger2 + "\n")
	b.WriteString(seqc.Wait(seqc.TokenWait2) + "\n")
	b.WriteString(seqc.CloseBracket())
	return b.String()
}

// substitute resolves the shared placeholder tokens and applies the strip
// rules. Specialized recipes call it after resolving their own tokens.
func (s *Sequence) substitute(text string) string {
	text = seqc.Substitute(text, []seqc.Substitution{
		{Token: seqc.TokenLoop, Value: strconv.Itoa(s.Repetitions)},
		{Token: seqc.TokenWait1, Value: strconv.FormatInt(int64(s.waitCycles), 10)},
		{Token: seqc.TokenWait2, Value: strconv.FormatInt(s.deadCycles, 10)},
		{Token: seqc.TokenTrigger1, Value: s.triggerArm},
		{Token: seqc.TokenTrigger2, Value: s.triggerDisarm},
	})
	text = seqc.StripNoopWaits(text)
	if s.TriggerMode == TriggerExternal {
		text = seqc.StripWaveWaits(text)
	}
	return text
}

// waitBeforePulse returns the wait-cycle estimate shared by the specialized
// recipes: for free-running and internal triggering the full period minus the
// dead time, for external triggering the period corrected by latency and
// trigger delay.
func (s *Sequence) waitBeforePulse() float64 {
	if s.TriggerMode == TriggerExternal {
		return float64(WaitCycles(s.Period-s.DeadTime-s.Latency+s.TriggerDelay, s.ClockRate))
	}
	return float64(WaitCycles(s.Period-s.DeadTime, s.ClockRate))
}
