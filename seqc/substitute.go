package seqc

import "strings"

// Placeholder tokens embedded in rendered sequence templates. Each token is
// resolved exactly once during substitution.
const (
	// TokenLoop is replaced with the outer repetition count.
	TokenLoop = "_LOOP_"
	// TokenWait1 is replaced with the pre-pulse wait cycle count.
	TokenWait1 = "_WAIT-CYCLES-1_"
	// TokenWait2 is replaced with the post-pulse (dead time) wait cycle count.
	TokenWait2 = "_WAIT-CYCLES-2_"
	// TokenTrigger1 is replaced with the trigger arm command.
	TokenTrigger1 = "_TRIGGER-COMMAND-1_"
	// TokenTrigger2 is replaced with the trigger disarm command.
	TokenTrigger2 = "_TRIGGER-COMMAND-2_"
	// TokenGauss is replaced with the "length,center,width" triple of the
	// Gaussian envelope.
	TokenGauss = "_GAUSS-PARAMS_"
	// TokenBuffer is replaced with the random waveform buffer length in
	// samples.
	TokenBuffer = "_BUFFER_"
)

// Tokens lists every placeholder token. Tests use it to assert that resolved
// programs contain no residual placeholders.
var Tokens = []string{
	TokenLoop,
	TokenWait1,
	TokenWait2,
	TokenTrigger1,
	TokenTrigger2,
	TokenGauss,
	TokenBuffer,
}

// Substitution binds a placeholder token to its replacement text.
type Substitution struct {
	Token string
	Value string
}

// Substitute resolves the given substitutions in order. Each token is
// processed in a single pass; replacement values are never re-scanned for
// other tokens of the same pass.
func Substitute(text string, subs []Substitution) string {
	for _, sub := range subs {
		text = strings.ReplaceAll(text, sub.Token, sub.Value)
	}
	return text
}

// StripNoopWaits rewrites zero-cycle wait instructions into comments. The
// hardware gains nothing from an empty wait loop.
func StripNoopWaits(text string) string {
	return strings.ReplaceAll(text, "wait(0);", Comment())
}

// StripWaveWaits rewrites waveform-completion waits into comments. Used under
// external triggering, where the wait for the trigger already enforces the
// playback timing.
func StripWaveWaits(text string) string {
	return strings.ReplaceAll(text, WaitWave(), Comment())
}
