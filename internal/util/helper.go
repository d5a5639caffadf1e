package util

// CloneSlice clones slice with cloneSize.
// This function will use src length as the clone size if cloneSize is 0.
func CloneSlice[T any](src []T, cloneSize int) []T {
	if cloneSize == 0 {
		cloneSize = len(src)
	}
	clone := make([]T, cloneSize)
	copy(clone, src)

	return clone
}

// AppendFloat64Slice appends the values of a slice to a float64 slice, converting them to float64 if necessary.
//
// The function supports the following types for the input slice `values`:
//
//   - Floating-point numbers: `float32`, `float64`
//   - Integers: `int`, `int8`, `int16`, `int32`, `int64`
//
// The function performs implicit type conversions, potentially resulting in precision loss for very large integer values.
func AppendFloat64Slice[T float32 | float64 | int | int8 | int16 | int32 | int64](target []float64, values []T) []float64 {
	target = append(target, make([]float64, len(values))...)
	varLen := len(values)
	targetLen := len(target)
	for i, v := range values {
		target[targetLen-varLen+i] = float64(v)
	}
	return target
}
