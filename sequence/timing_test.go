package sequence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWaitCycles(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		description string
		time        float64
		clockRate   float64
	}{
		{"zero duration", 0, 2.4e9},
		{"one microsecond at default clock", 1e-6, 2.4e9},
		{"non-integral cycle count truncates", 1.1e-6, 2.4e9},
		{"slow clock", 5e-3, 100e6},
		{"sub-cycle duration truncates to zero", 1e-12, 2.4e9},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		expected := int64(math.Trunc(test.time * test.clockRate / 8))
		require.Equal(expected, WaitCycles(test.time, test.clockRate))

		expected = int64(math.Trunc(test.time * test.clockRate))
		require.Equal(expected, RawCycles(test.time, test.clockRate))
	}
}

func TestGaussEnvelope(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		description string
		width       float64
		truncation  float64
		clockRate   float64
	}{
		{"default pulse", 50e-9, 3, 2.4e9},
		{"short pulse", 10e-9, 2, 2.4e9},
		{"wide pulse", 1e-6, 4, 2.4e9},
		{"slow clock", 50e-9, 3, 300e6},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		env := GaussEnvelope(test.width, test.truncation, test.clockRate)

		require.Zero(env.Length%16, "envelope length must be a multiple of 16 samples")
		require.LessOrEqual(env.Length, RawCycles(2*test.truncation*test.width, test.clockRate),
			"alignment must round down, never up")
		require.Equal(env.Length/2, env.Center)
		require.Equal(RawCycles(test.width, test.clockRate), env.Width)
	}
}

func TestEnvelopeString(t *testing.T) {
	require := require.New(t)

	env := Envelope{Length: 720, Center: 360, Width: 120}
	require.Equal("720,360,120", env.String())
}
