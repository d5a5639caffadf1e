package awg

import "errors"

var (
	// ErrNilTransport indicates that a nil Transport was provided.
	ErrNilTransport = errors.New("transport is nil")

	// ErrEmptySerial indicates that a device was created without a serial.
	ErrEmptySerial = errors.New("device serial is empty")

	// ErrUnsupportedValue indicates that a Go value cannot be converted to the
	// node's inferred datatype.
	ErrUnsupportedValue = errors.New("unsupported value for node datatype")

	// ErrUnknownNodeType indicates that a node reported a datatype outside the
	// known set.
	ErrUnknownNodeType = errors.New("unknown node datatype")
)

var (
	// ErrCompilationFailed indicates that the device's sequencer compiler
	// rejected an uploaded program.
	ErrCompilationFailed = errors.New("sequencer compilation failed")

	// ErrBufferLengthMismatch indicates that replacement waveform data does
	// not fit the buffer length of the declared waveform.
	ErrBufferLengthMismatch = errors.New("waveform buffer length mismatch")

	// ErrInvalidChannel indicates a waveform channel index outside {0, 1}.
	ErrInvalidChannel = errors.New("waveform channel index out of range")
)
