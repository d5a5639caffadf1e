// Package awg is the thin device-I/O layer between the sequence engine and
// the lab instrument.
//
// It addresses individual device registers ("nodes") by path, infers and
// caches each node's datatype from live responses, uploads compiled sequencer
// programs with compiler-status polling, and converts I/Q sample pairs into
// the interleaved int16 buffers the waveform memory expects.
//
// The package never implements the vendor wire protocol: all traffic goes
// through the Transport interface supplied by the caller, which represents an
// established data-server session. Connection management, device discovery
// and telemetry live outside this module.
package awg
