package seqc

import (
	"fmt"
	"strconv"
	"strings"
)

// Comment returns a no-op comment line. Recipes use it wherever an instruction
// slot must stay empty, e.g. for disabled trigger commands.
func Comment() string {
	return "//"
}

// Header returns the header comment that opens every generated program.
func Header(label string) string {
	return fmt.Sprintf("// %s sequence\n\n", label)
}

// Repeat opens a hardware repetition loop. The argument is usually the
// TokenLoop placeholder.
func Repeat(count string) string {
	return fmt.Sprintf("repeat(%s){\n\n", count)
}

// CloseBracket closes a repeat loop opened by Repeat.
func CloseBracket() string {
	return "}\n"
}

// Wait returns a wait instruction. The argument may be a placeholder token, a
// literal cycle count, or an inline arithmetic expression such as
// "_WAIT-CYCLES-1_ - 300"; the sequencer compiler evaluates the expression.
func Wait(cycles string) string {
	return fmt.Sprintf("wait(%s);", cycles)
}

// WaitWave returns the instruction that blocks until waveform playback has
// completed.
func WaitWave() string {
	return "waitWave();"
}

// SetTrigger returns the instruction that raises or clears the device's own
// trigger output.
func SetTrigger(on bool) string {
	if on {
		return "setTrigger(1);"
	}
	return "setTrigger(0);"
}

// WaitDigTrigger returns the instruction that blocks until a digital trigger
// pulse arrives on input 1.
func WaitDigTrigger() string {
	return "waitDigTrigger(1);"
}

// WaveformComment returns the per-iteration progress comment.
func WaveformComment(i, n int) string {
	return fmt.Sprintf("// waveform %d / %d", i, n)
}

// PlayWave plays the shared envelope pair w_1/w_2.
func PlayWave() string {
	return "playWave(w_1, w_2);"
}

// PlayWaveScaled plays the shared envelope pair scaled by the given
// amplitudes.
func PlayWaveScaled(amp1, amp2 float64) string {
	return fmt.Sprintf("playWave(%s*w_1, %s*w_2);", Float(amp1), Float(amp2))
}

// PlayWaveIndexed plays the i-th waveform pair declared by RandomBufferPair.
func PlayWaveIndexed(i int) string {
	return fmt.Sprintf("playWave(w%d_1, w%d_2);", i, i)
}

// RandomBufferPair declares an indexed I/Q waveform pair filled with uniform
// random samples. The length argument is usually the TokenBuffer placeholder.
func RandomBufferPair(i int, length string) string {
	return fmt.Sprintf("wave w%d_1 = randomUniform(%s);\nwave w%d_2 = randomUniform(%s);", i, length, i, length)
}

// GaussPair declares the shared Gaussian / derivative-of-Gaussian envelope
// pair. The params argument is usually the TokenGauss placeholder.
func GaussPair(params string) string {
	return fmt.Sprintf("wave w_1 = gauss(%s);\nwave w_2 = drag(%s);", params, params)
}

// GaussPairScaled declares the shared envelope pair with a fixed amplitude
// factor applied to both channels.
func GaussPairScaled(amp float64, params string) string {
	a := Float(amp)
	return fmt.Sprintf("wave w_1 = %s * gauss(%s);\nwave w_2 = %s * drag(%s);", a, params, a, params)
}

// Float formats an amplitude or scale factor for the sequencer language.
// Integral values keep a trailing ".0" so that scale factors are always read
// as floating point by the sequencer compiler.
func Float(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
