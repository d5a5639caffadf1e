package sequence

import "fmt"

// Type identifies a sequence recipe. The set of recipes is closed; ParseType
// rejects any other name.
type Type int

const (
	// TypeNone is the base recipe: a repetition/wait skeleton without pulses.
	TypeNone Type = iota
	// TypeSimple plays per-iteration random I/Q waveform buffers.
	TypeSimple
	// TypeRabi sweeps the amplitude of a Gaussian envelope pair.
	TypeRabi
	// TypeT1 sweeps the relaxation delay before a fixed envelope pair.
	TypeT1
	// TypeT2Star plays a Ramsey-style double pulse with a swept inter-pulse
	// delay.
	TypeT2Star
)

// String returns the canonical name of the sequence type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeSimple:
		return "simple"
	case TypeRabi:
		return "rabi"
	case TypeT1:
		return "t1"
	case TypeT2Star:
		return "t2star"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType parses a sequence type name.
func ParseType(name string) (Type, error) {
	switch name {
	case "none":
		return TypeNone, nil
	case "simple":
		return TypeSimple, nil
	case "rabi":
		return TypeRabi, nil
	case "t1":
		return TypeT1, nil
	case "t2star":
		return TypeT2Star, nil
	default:
		return TypeNone, fmt.Errorf("%w: %q", ErrUnknownSequenceType, name)
	}
}

// TriggerMode selects how a sequence synchronizes with a trigger pulse.
type TriggerMode int

const (
	// TriggerNone runs the sequence free of any trigger synchronization.
	TriggerNone TriggerMode = iota
	// TriggerInternal makes the device raise its own trigger output to notify
	// peers, then clear it again after the pre-pulse wait.
	TriggerInternal
	// TriggerExternal makes the device block until an external trigger pulse
	// arrives.
	TriggerExternal
)

// String returns the canonical name of the trigger mode.
func (m TriggerMode) String() string {
	switch m {
	case TriggerNone:
		return "none"
	case TriggerInternal:
		return "internal-trigger"
	case TriggerExternal:
		return "external-trigger"
	default:
		return fmt.Sprintf("TriggerMode(%d)", int(m))
	}
}

// ParseTriggerMode parses a trigger mode name.
func ParseTriggerMode(name string) (TriggerMode, error) {
	switch name {
	case "none":
		return TriggerNone, nil
	case "internal-trigger":
		return TriggerInternal, nil
	case "external-trigger":
		return TriggerExternal, nil
	default:
		return TriggerNone, fmt.Errorf("%w: %q", ErrUnknownTriggerMode, name)
	}
}
