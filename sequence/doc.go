// Package sequence generates sequencer programs for arbitrary waveform
// generators used in quantum-control and NMR-style pulse experiments.
//
// A small set of experiment parameters (repetition count, trigger mode, pulse
// timing, pulse shape) is turned into a textual program for the AWG's own
// sequencer. The package implements a closed family of sequence recipes that
// share timing and trigger bookkeeping but differ in pulse content and loop
// structure:
//
//   - TypeNone: the bare repetition/wait skeleton.
//   - TypeSimple: per-iteration random I/Q buffers.
//   - TypeRabi: a Gaussian envelope pair swept over pulse amplitudes.
//   - TypeT1: a fixed envelope swept over relaxation delays.
//   - TypeT2Star: a Ramsey-style double pulse swept over inter-pulse delays.
//
// Every recipe runs the same production pipeline on Get: derive dependent
// quantities, validate the timing invariants, render a placeholder template,
// and substitute the placeholders with the computed values. Timing invariants
// guarantee that a generated program never contains a negative or overlapping
// wait; validation always fails before any text is rendered.
//
// Program is the front controller: it selects a recipe by type, forwards
// configuration updates, and preserves shared parameter values across a
// recipe-type switch.
//
// Recipe instances are mutable and not safe for concurrent use; callers that
// generate sequences concurrently must use independent instances.
package sequence
