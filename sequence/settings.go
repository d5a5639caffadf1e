package sequence

import (
	"fmt"

	"github.com/arloliu/go-awg/internal/util"
)

// Settings is the configuration surface of the recipes: a mapping from field
// name to value. Recognized names are matched per recipe; unrecognized names
// are ignored and reported, not errors.
type Settings map[string]any

// floatSetting coerces a numeric setting value to float64.
func floatSetting(name string, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: %q expects a number, got %T", ErrInvalidSetting, name, value)
	}
}

// intSetting coerces a numeric setting value to int, truncating floats.
func intSetting(name string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: %q expects an integer, got %T", ErrInvalidSetting, name, value)
	}
}

// floatsSetting coerces a setting value to a float64 slice. The slice is
// copied so later mutation by the caller cannot bypass validation.
func floatsSetting(name string, value any) ([]float64, error) {
	switch v := value.(type) {
	case []float64:
		return util.CloneSlice(v, 0), nil
	case []int:
		return util.AppendFloat64Slice(nil, v), nil
	default:
		return nil, fmt.Errorf("%w: %q expects a number list, got %T", ErrInvalidSetting, name, value)
	}
}

// triggerModeSetting coerces a setting value to a TriggerMode. Both TriggerMode
// constants and canonical names are accepted.
func triggerModeSetting(name string, value any) (TriggerMode, error) {
	switch v := value.(type) {
	case TriggerMode:
		switch v {
		case TriggerNone, TriggerInternal, TriggerExternal:
			return v, nil
		default:
			return TriggerNone, fmt.Errorf("%w: %d", ErrUnknownTriggerMode, int(v))
		}
	case string:
		return ParseTriggerMode(v)
	default:
		return TriggerNone, fmt.Errorf("%w: %q expects a trigger mode, got %T", ErrInvalidSetting, name, value)
	}
}

// typeSetting coerces a setting value to a sequence Type. Both Type constants
// and canonical names are accepted.
func typeSetting(name string, value any) (Type, error) {
	switch v := value.(type) {
	case Type:
		switch v {
		case TypeNone, TypeSimple, TypeRabi, TypeT1, TypeT2Star:
			return v, nil
		default:
			return TypeNone, fmt.Errorf("%w: %d", ErrUnknownSequenceType, int(v))
		}
	case string:
		return ParseType(v)
	default:
		return TypeNone, fmt.Errorf("%w: %q expects a sequence type, got %T", ErrInvalidSetting, name, value)
	}
}

// nonNegative validates a duration or rate setting.
func nonNegative(name string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%w: %q is %v", ErrNegativeValue, name, v)
	}
	return nil
}

// amplitudeInRange validates a single DAC amplitude.
func amplitudeInRange(name string, v float64) error {
	if v < -1.0 || v > 1.0 {
		return fmt.Errorf("%w: %q is %v", ErrAmplitudeOutOfRange, name, v)
	}
	return nil
}

// amplitudesInRange validates a DAC amplitude sweep.
func amplitudesInRange(name string, vs []float64) error {
	for _, v := range vs {
		if err := amplitudeInRange(name, v); err != nil {
			return err
		}
	}
	return nil
}
