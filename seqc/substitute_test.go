package seqc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		description string
		input       string
		subs        []Substitution
		expected    string
	}{
		{
			description: "single token, single occurrence",
			input:       "repeat(_LOOP_){",
			subs:        []Substitution{{TokenLoop, "5"}},
			expected:    "repeat(5){",
		},
		{
			description: "single token, every occurrence resolved in one pass",
			input:       "wait(_WAIT-CYCLES-1_);\nwait(_WAIT-CYCLES-1_ - 300);",
			subs:        []Substitution{{TokenWait1, "12000"}},
			expected:    "wait(12000);\nwait(12000 - 300);",
		},
		{
			description: "tokens resolved in the given order",
			input:       "_TRIGGER-COMMAND-1_\nwait(_WAIT-CYCLES-1_);\n_TRIGGER-COMMAND-2_",
			subs: []Substitution{
				{TokenWait1, "42"},
				{TokenTrigger1, "setTrigger(1);"},
				{TokenTrigger2, "setTrigger(0);"},
			},
			expected: "setTrigger(1);\nwait(42);\nsetTrigger(0);",
		},
		{
			description: "unused substitutions leave text unchanged",
			input:       "playWave(w_1, w_2);",
			subs:        []Substitution{{TokenGauss, "800,400,120"}},
			expected:    "playWave(w_1, w_2);",
		},
	}

	require := require.New(t)
	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		require.Equal(test.expected, Substitute(test.input, test.subs))
	}
}

func TestStripNoopWaits(t *testing.T) {
	require := require.New(t)

	require.Equal("//\n//", StripNoopWaits("wait(0);\nwait(0);"))
	require.Equal("wait(10);", StripNoopWaits("wait(10);"))
	// inline arithmetic expressions are left for the sequencer compiler
	require.Equal("wait(10 - 0);", StripNoopWaits("wait(10 - 0);"))
}

func TestStripWaveWaits(t *testing.T) {
	require := require.New(t)

	require.Equal("playWave(w_1, w_2);\n//", StripWaveWaits("playWave(w_1, w_2);\nwaitWave();"))
	require.Equal("wait(8);", StripWaveWaits("wait(8);"))
}
