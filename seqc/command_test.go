package seqc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	tests := []struct {
		description string
		got         string
		expected    string
	}{
		{"comment", Comment(), "//"},
		{"repeat with placeholder", Repeat(TokenLoop), "repeat(_LOOP_){\n\n"},
		{"wait with literal", Wait("128"), "wait(128);"},
		{"wait with expression", Wait(TokenWait1 + " - 300"), "wait(_WAIT-CYCLES-1_ - 300);"},
		{"trigger raise", SetTrigger(true), "setTrigger(1);"},
		{"trigger clear", SetTrigger(false), "setTrigger(0);"},
		{"external trigger wait", WaitDigTrigger(), "waitDigTrigger(1);"},
		{"waveform progress comment", WaveformComment(2, 5), "// waveform 2 / 5"},
		{"play shared pair", PlayWave(), "playWave(w_1, w_2);"},
		{"play scaled", PlayWaveScaled(0.5, 0.5), "playWave(0.5*w_1, 0.5*w_2);"},
		{"play scaled integral amplitude", PlayWaveScaled(1, 0), "playWave(1.0*w_1, 0.0*w_2);"},
		{"play indexed", PlayWaveIndexed(3), "playWave(w3_1, w3_2);"},
		{
			"random buffer pair",
			RandomBufferPair(1, TokenBuffer),
			"wave w1_1 = randomUniform(_BUFFER_);\nwave w1_2 = randomUniform(_BUFFER_);",
		},
		{
			"gauss pair",
			GaussPair(TokenGauss),
			"wave w_1 = gauss(_GAUSS-PARAMS_);\nwave w_2 = drag(_GAUSS-PARAMS_);",
		},
		{
			"gauss pair scaled",
			GaussPairScaled(0.5, TokenGauss),
			"wave w_1 = 0.5 * gauss(_GAUSS-PARAMS_);\nwave w_2 = 0.5 * drag(_GAUSS-PARAMS_);",
		},
	}

	require := require.New(t)
	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		require.Equal(test.expected, test.got)
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{0.5, "0.5"},
		{-0.25, "-0.25"},
		{1e-6, "1e-06"},
	}

	require := require.New(t)
	for _, test := range tests {
		require.Equal(test.expected, Float(test.value))
	}
}
