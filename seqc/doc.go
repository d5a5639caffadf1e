// Package seqc provides the sequencer-language vocabulary used to assemble
// AWG sequencer programs.
//
// It contains builders for the individual instructions of the target device's
// sequencer language (repeat loops, waits, trigger control, waveform playback,
// inline waveform-generator expressions), the symbolic placeholder tokens used
// by the sequence recipes, and the substitution step that resolves a rendered
// template into the final program text.
//
// Substitution is a plain textual contract: every placeholder token is
// substituted exactly once, in a fixed order, and the resolved text is then
// cleaned of instructions the hardware does not need (zero-cycle waits, and
// waveform-completion waits when an external trigger already enforces timing).
package seqc
