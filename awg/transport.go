package awg

import (
	"context"
	"fmt"
)

// NodeType identifies the datatype of a device node.
type NodeType int

const (
	// NodeTypeInt is a signed integer register.
	NodeTypeInt NodeType = iota + 1
	// NodeTypeDouble is a floating-point register.
	NodeTypeDouble
	// NodeTypeString is a text register, e.g. a compiler source or status
	// string.
	NodeTypeString
	// NodeTypeVector is a sample-data register, e.g. a waveform memory slot.
	NodeTypeVector
)

// String returns the name of the node type.
func (t NodeType) String() string {
	switch t {
	case NodeTypeInt:
		return "int"
	case NodeTypeDouble:
		return "double"
	case NodeTypeString:
		return "string"
	case NodeTypeVector:
		return "vector"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

// Value is a typed node value. Exactly one of the payload fields is
// meaningful, selected by Type.
type Value struct {
	Type   NodeType
	Int    int64
	Double float64
	Str    string
	Vector []int16
}

// IntValue wraps an integer node value.
func IntValue(v int64) Value { return Value{Type: NodeTypeInt, Int: v} }

// DoubleValue wraps a floating-point node value.
func DoubleValue(v float64) Value { return Value{Type: NodeTypeDouble, Double: v} }

// StringValue wraps a text node value.
func StringValue(v string) Value { return Value{Type: NodeTypeString, Str: v} }

// VectorValue wraps a sample-data node value.
func VectorValue(v []int16) Value { return Value{Type: NodeTypeVector, Vector: v} }

// Transport is an established session to the vendor data server. The device
// layer performs all node traffic through it; dialing, authentication and
// reconnection are the caller's concern.
//
// Implementations must be safe for concurrent use: batch waveform uploads
// issue sets from multiple goroutines.
type Transport interface {
	// Get reads the current value of a node by absolute path.
	Get(ctx context.Context, path string) (Value, error)
	// Set writes a node value by absolute path.
	Set(ctx context.Context, path string, value Value) error
}
