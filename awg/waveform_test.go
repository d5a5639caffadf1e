package awg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWaveformBufferLength(t *testing.T) {
	tests := []struct {
		description string
		iLen        int
		qLen        int
		expected    int
	}{
		{
			description: "short channels pad up to the minimum buffer",
			iLen:        4,
			qLen:        4,
			expected:    32,
		},
		{
			description: "length rounds up to the next granularity block",
			iLen:        50,
			qLen:        50,
			expected:    64,
		},
		{
			description: "longest channel wins",
			iLen:        48,
			qLen:        70,
			expected:    80,
		},
		{
			description: "exact multiple stays as is",
			iLen:        96,
			qLen:        96,
			expected:    96,
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		w := NewWaveform(make([]float64, test.iLen), make([]float64, test.qLen))
		require.Equal(t, test.expected, w.BufferLength())
		require.Len(t, w.Data(), 2*test.expected)
	}
}

func TestWaveformInterleave(t *testing.T) {
	iCh := []float64{1.0, 0.5}
	qCh := []float64{-1.0, -0.5}
	w := NewWaveform(iCh, qCh)

	data := w.Data()
	require.Equal(t, int16(fullScale), data[0])
	require.Equal(t, int16(-fullScale), data[1])
	require.Equal(t, int16(fullScale/2), data[2])
	require.Equal(t, int16(-fullScale/2), data[3])
	// The rest of the buffer is zero padding.
	for i := 4; i < len(data); i++ {
		require.Zero(t, data[i])
	}
}

func TestWaveformNormalization(t *testing.T) {
	// Samples above full scale normalize the whole channel, so relative
	// amplitudes survive and nothing clips.
	w := NewWaveform([]float64{2.0, 1.0}, nil)
	data := w.Data()
	require.Equal(t, int16(fullScale), data[0])
	require.Equal(t, int16(fullScale/2), data[2])
}

func TestWaveformEndAlignment(t *testing.T) {
	iCh := []float64{1.0}
	w := NewWaveform(iCh, nil, WithEndAlignment())

	data := w.Data()
	require.Zero(t, data[0])
	require.Equal(t, int16(fullScale), data[2*(w.BufferLength()-1)])
}

func TestWaveformSetChannel(t *testing.T) {
	w := NewWaveform(make([]float64, 32), make([]float64, 32))

	require.ErrorIs(t, w.SetChannel(2, nil), ErrInvalidChannel)

	require.NoError(t, w.SetChannel(1, []float64{1.0}))
	require.Equal(t, int16(fullScale), w.Data()[1])
}

func TestWaveformReplaceData(t *testing.T) {
	w := NewWaveform(make([]float64, 64), make([]float64, 64))
	require.Equal(t, 64, w.BufferLength())

	// New data must round up to the same buffer length as the original, the
	// device slot size is fixed once declared.
	require.ErrorIs(t, w.ReplaceData(make([]float64, 80), nil), ErrBufferLengthMismatch)

	require.NoError(t, w.ReplaceData([]float64{1.0}, make([]float64, 64)))
	require.Equal(t, 64, w.BufferLength())
	require.Equal(t, int16(fullScale), w.Data()[0])
}
