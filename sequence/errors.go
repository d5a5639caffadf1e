package sequence

import "errors"

var (
	// ErrNegativeValue indicates that a duration or count setting violated its
	// non-negative domain constraint. Detected at assignment time.
	ErrNegativeValue = errors.New("value must not be negative")

	// ErrAmplitudeOutOfRange indicates that a pulse amplitude lies outside the
	// hardware DAC range of [-1.0, 1.0]. Detected at assignment time.
	ErrAmplitudeOutOfRange = errors.New("pulse amplitude must be within [-1.0, 1.0]")

	// ErrInvalidSetting indicates that a setting value has a type the named
	// field cannot accept.
	ErrInvalidSetting = errors.New("invalid setting value")
)

var (
	// ErrNegativeWaitTime indicates that a derived wait time would be
	// negative. Detected during validation, always before any program text is
	// rendered.
	ErrNegativeWaitTime = errors.New("wait time cannot be negative")

	// ErrHardwareLoopMismatch indicates that the hardware loop length does not
	// match the length of the corresponding sweep array.
	ErrHardwareLoopMismatch = errors.New("hardware loop length does not match sweep length")
)

var (
	// ErrUnknownSequenceType indicates that a sequence type name is not part
	// of the closed recipe set.
	ErrUnknownSequenceType = errors.New("unknown sequence type")

	// ErrUnknownTriggerMode indicates that a trigger mode name is not one of
	// none, internal-trigger or external-trigger.
	ErrUnknownTriggerMode = errors.New("unknown trigger mode")
)
