package sequence

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arloliu/go-awg/seqc"
	"github.com/stretchr/testify/require"
)

func TestBaseSequence_Defaults(t *testing.T) {
	require := require.New(t)

	s := NewSequence()
	require.Equal(TypeNone, s.Type())
	require.Equal(2.4e9, s.ClockRate)
	require.Equal(100e-6, s.Period)
	require.Equal(TriggerNone, s.TriggerMode)
	require.Equal(1, s.Repetitions)
	require.Equal(1, s.HWLoops)
	require.Equal(5e-6, s.DeadTime)
	require.Equal(160e-9, s.Latency)
}

// Free-running base recipe with default timing: one repeat(1) block, no
// trigger instructions, no residual placeholders, no zero-cycle waits.
func TestBaseSequence_FreeRunning(t *testing.T) {
	require := require.New(t)

	s := NewSequence()
	text, err := s.Get()
	require.NoError(err)

	require.Equal(1, strings.Count(text, "repeat(1){"))
	require.NotContains(text, "setTrigger")
	require.NotContains(text, "waitDigTrigger")
	require.NotContains(text, "wait(0);")
	requireNoPlaceholders(t, text)
}

func TestBaseSequence_TriggerModes(t *testing.T) {
	tests := []struct {
		description string
		mode        TriggerMode
		contains    []string
		excludes    []string
	}{
		{
			description: "internal trigger arms and disarms",
			mode:        TriggerInternal,
			contains:    []string{"setTrigger(1);", "setTrigger(0);"},
			excludes:    []string{"waitDigTrigger"},
		},
		{
			description: "external trigger waits for the pulse",
			mode:        TriggerExternal,
			contains:    []string{"waitDigTrigger(1);"},
			excludes:    []string{"setTrigger"},
		},
	}

	require := require.New(t)
	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)

		s := NewSequence()
		_, err := s.Set(Settings{"trigger_mode": test.mode})
		require.NoError(err)

		text, err := s.Get()
		require.NoError(err)
		for _, want := range test.contains {
			require.Contains(text, want)
		}
		for _, not := range test.excludes {
			require.NotContains(text, not)
		}
		requireNoPlaceholders(t, text)
	}
}

// Internal triggering is the only mode with a non-zero dead-cycle count.
func TestBaseSequence_DeadCycles(t *testing.T) {
	require := require.New(t)

	s := NewSequence()
	_, err := s.Set(Settings{"trigger_mode": TriggerInternal})
	require.NoError(err)
	require.Equal(WaitCycles(s.DeadTime, s.ClockRate), s.deadCycles)

	text, err := s.Get()
	require.NoError(err)
	require.Contains(text, fmt.Sprintf("wait(%d);", s.deadCycles))

	_, err = s.Set(Settings{"trigger_mode": TriggerExternal})
	require.NoError(err)
	require.Zero(s.deadCycles)
}

func TestBaseSequence_RangeErrors(t *testing.T) {
	tests := []struct {
		description string
		settings    Settings
	}{
		{"negative period", Settings{"period": -1e-6}},
		{"negative dead time", Settings{"dead_time": -1.0}},
		{"negative latency", Settings{"latency": -160e-9}},
		{"negative clock rate", Settings{"clock_rate": -2.4e9}},
		{"negative repetitions", Settings{"repetitions": -1}},
		{"negative hardware loop length", Settings{"hw_loops": -2}},
	}

	require := require.New(t)
	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)

		s := NewSequence()
		_, err := s.Set(test.settings)
		require.ErrorIs(err, ErrNegativeValue)
	}
}

// A timing violation must surface from Set and from Get, and Get must not
// return partial program text.
func TestBaseSequence_TimingError(t *testing.T) {
	require := require.New(t)

	s := NewSequence()
	_, err := s.Set(Settings{"period": 1e-6})
	require.ErrorIs(err, ErrNegativeWaitTime)

	text, err := s.Get()
	require.ErrorIs(err, ErrNegativeWaitTime)
	require.Empty(text)
}

func TestBaseSequence_TriggerDelayCompensatesLatency(t *testing.T) {
	require := require.New(t)

	// period exactly absorbed by dead time and latency
	s := NewSequence()
	_, err := s.Set(Settings{"period": 5e-6, "dead_time": 5e-6, "latency": 1e-6, "trigger_delay": 1e-6})
	require.NoError(err)

	// without the compensating delay the wait goes negative
	_, err = s.Set(Settings{"trigger_delay": 0.0})
	require.ErrorIs(err, ErrNegativeWaitTime)
}

func TestBaseSequence_IgnoredSettings(t *testing.T) {
	require := require.New(t)

	s := NewSequence()
	ignored, err := s.Set(Settings{
		"period":           120e-6,
		"pulse_amplitudes": []float64{0.5},
		"bogus":            1,
	})
	require.NoError(err)
	require.Equal([]string{"bogus", "pulse_amplitudes"}, ignored)
	require.Equal(120e-6, s.Period)
}

func TestBaseSequence_InvalidSettingTypes(t *testing.T) {
	require := require.New(t)

	s := NewSequence()
	_, err := s.Set(Settings{"period": "fast"})
	require.ErrorIs(err, ErrInvalidSetting)

	_, err = s.Set(Settings{"trigger_mode": "sometimes"})
	require.ErrorIs(err, ErrUnknownTriggerMode)
}

// requireNoPlaceholders asserts that a resolved program contains no residual
// placeholder tokens.
func requireNoPlaceholders(t *testing.T, text string) {
	t.Helper()
	for _, token := range seqc.Tokens {
		require.NotContains(t, text, token)
	}
}
