package awg

import (
	"context"
	"fmt"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/arloliu/go-awg/logger"
)

// Device addresses the nodes of a single instrument through a Transport.
//
// Node paths are given relative to the device, e.g. "sigouts/0/on", and are
// expanded to the absolute form "/dev8030/sigouts/0/on". The datatype of each
// node is inferred from the first live response and cached for the lifetime
// of the Device.
type Device struct {
	serial    string
	transport Transport
	log       logger.Logger

	nodeTypes *xsync.MapOf[string, NodeType]
}

// DeviceOption configures a Device.
type DeviceOption func(*Device)

// WithLogger sets the logger used by the device. Defaults to the package
// logger.
func WithLogger(l logger.Logger) DeviceOption {
	return func(d *Device) { d.log = l }
}

// NewDevice creates a device handle for the given serial, e.g. "dev8030".
func NewDevice(serial string, transport Transport, opts ...DeviceOption) (*Device, error) {
	if serial == "" {
		return nil, ErrEmptySerial
	}
	if transport == nil {
		return nil, ErrNilTransport
	}
	d := &Device{
		serial:    serial,
		transport: transport,
		log:       logger.GetLogger(),
		nodeTypes: xsync.NewMapOf[string, NodeType](),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.With("device", serial)
	return d, nil
}

// Serial returns the device serial.
func (d *Device) Serial() string { return d.serial }

// Path expands a device-relative node path to its absolute form.
func (d *Device) Path(node string) string {
	node = strings.Trim(node, "/")
	if strings.HasPrefix(node, d.serial+"/") {
		return "/" + node
	}
	return "/" + d.serial + "/" + node
}

// Node reads the current value of a node and records its datatype.
func (d *Device) Node(ctx context.Context, node string) (Value, error) {
	path := d.Path(node)
	value, err := d.transport.Get(ctx, path)
	if err != nil {
		return Value{}, fmt.Errorf("get node %s: %w", path, err)
	}
	d.nodeTypes.Store(path, value.Type)
	return value, nil
}

// SetNode converts the given Go value to the node's inferred datatype, writes
// it, and returns the value the device actually holds afterwards.
func (d *Device) SetNode(ctx context.Context, node string, value any) (Value, error) {
	path := d.Path(node)
	nodeType, err := d.nodeType(ctx, path)
	if err != nil {
		return Value{}, err
	}
	converted, err := convertValue(nodeType, value)
	if err != nil {
		return Value{}, fmt.Errorf("set node %s: %w", path, err)
	}
	if err := d.transport.Set(ctx, path, converted); err != nil {
		return Value{}, fmt.Errorf("set node %s: %w", path, err)
	}
	readback, err := d.transport.Get(ctx, path)
	if err != nil {
		return Value{}, fmt.Errorf("read back node %s: %w", path, err)
	}
	return readback, nil
}

// Int reads an integer node.
func (d *Device) Int(ctx context.Context, node string) (int64, error) {
	value, err := d.Node(ctx, node)
	if err != nil {
		return 0, err
	}
	return value.Int, nil
}

// SetInt writes an integer node.
func (d *Device) SetInt(ctx context.Context, node string, v int64) error {
	return d.set(ctx, node, IntValue(v))
}

// Double reads a floating-point node.
func (d *Device) Double(ctx context.Context, node string) (float64, error) {
	value, err := d.Node(ctx, node)
	if err != nil {
		return 0, err
	}
	return value.Double, nil
}

// SetDouble writes a floating-point node.
func (d *Device) SetDouble(ctx context.Context, node string, v float64) error {
	return d.set(ctx, node, DoubleValue(v))
}

// String reads a text node.
func (d *Device) String(ctx context.Context, node string) (string, error) {
	value, err := d.Node(ctx, node)
	if err != nil {
		return "", err
	}
	return value.Str, nil
}

// SetString writes a text node.
func (d *Device) SetString(ctx context.Context, node string, v string) error {
	return d.set(ctx, node, StringValue(v))
}

// SetVector writes a sample-data node.
func (d *Device) SetVector(ctx context.Context, node string, v []int16) error {
	return d.set(ctx, node, VectorValue(v))
}

func (d *Device) set(ctx context.Context, node string, value Value) error {
	path := d.Path(node)
	d.nodeTypes.Store(path, value.Type)
	if err := d.transport.Set(ctx, path, value); err != nil {
		return fmt.Errorf("set node %s: %w", path, err)
	}
	return nil
}

// nodeType returns the cached datatype of a node, probing the device on the
// first access.
func (d *Device) nodeType(ctx context.Context, path string) (NodeType, error) {
	if nodeType, ok := d.nodeTypes.Load(path); ok {
		return nodeType, nil
	}
	value, err := d.transport.Get(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("probe node %s: %w", path, err)
	}
	switch value.Type {
	case NodeTypeInt, NodeTypeDouble, NodeTypeString, NodeTypeVector:
	default:
		return 0, fmt.Errorf("%w: node %s reports %v", ErrUnknownNodeType, path, value.Type)
	}
	d.nodeTypes.Store(path, value.Type)
	return value.Type, nil
}

// convertValue coerces a Go value to the node's datatype. Numeric values
// convert freely between int and double nodes; everything else must match.
func convertValue(nodeType NodeType, value any) (Value, error) {
	switch nodeType {
	case NodeTypeInt:
		switch v := value.(type) {
		case int:
			return IntValue(int64(v)), nil
		case int64:
			return IntValue(v), nil
		case float64:
			return IntValue(int64(v)), nil
		}
	case NodeTypeDouble:
		switch v := value.(type) {
		case float64:
			return DoubleValue(v), nil
		case float32:
			return DoubleValue(float64(v)), nil
		case int:
			return DoubleValue(float64(v)), nil
		case int64:
			return DoubleValue(float64(v)), nil
		}
	case NodeTypeString:
		if v, ok := value.(string); ok {
			return StringValue(v), nil
		}
	case NodeTypeVector:
		if v, ok := value.([]int16); ok {
			return VectorValue(v), nil
		}
	}
	return Value{}, fmt.Errorf("%w: %T to %v", ErrUnsupportedValue, value, nodeType)
}
