package jsonresource

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/oarkflow/jsonresource/jsonmap"
	"github.com/oarkflow/jsonresource/marshaler"
	"github.com/oarkflow/jsonresource/node"
	"github.com/oarkflow/jsonresource/unmarshaler"
)

// Implementation selects the codec behind Parse, JSONToData, DataToJSON and
// the stream operations.
type Implementation int

const (
	// ImplementationAuto uses the native codec when objects are HashObject
	// and the internal one otherwise.
	ImplementationAuto Implementation = iota
	// ImplementationInternal is the order-preserving jsonmap codec.
	ImplementationInternal
	// ImplementationNative goes through the marshaler and unmarshaler
	// packages. It cannot keep insertion order and is only honoured for
	// HashObject documents.
	ImplementationNative
)

func (i Implementation) String() string {
	switch i {
	case ImplementationAuto:
		return "auto"
	case ImplementationInternal:
		return "internal"
	case ImplementationNative:
		return "native"
	default:
		return fmt.Sprintf("Implementation(%d)", int(i))
	}
}

// SetImplementation resolves impl against the configured struct type and
// makes it active.
func (r *Resource) SetImplementation(impl Implementation) {
	_, hashed := r.structType().(node.HashObject)
	switch {
	case impl == ImplementationInternal:
		r.implementation = ImplementationInternal
	case hashed:
		r.implementation = ImplementationNative
	default:
		r.implementation = ImplementationInternal
	}
	r.debug("json.set_implementation", "requested", impl, "active", r.implementation)
}

// Implementation returns the active codec, never ImplementationAuto.
func (r *Resource) Implementation() Implementation {
	r.debug("json.implementation", "implementation", r.implementation)
	return r.implementation
}

func (r *Resource) decode(text string) (node.Value, error) {
	if r.implementation == ImplementationNative {
		return decodeNative([]byte(text), r.structType)
	}
	return jsonmap.NewDecoder(r.structType).Decode(text)
}

func (r *Resource) encode(v node.Value) (string, error) {
	if r.implementation == ImplementationNative {
		out, err := marshaler.Instance()(toNative(v))
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	return jsonmap.Marshal(v), nil
}

func decodeNative(data []byte, factory node.ObjectFactory) (node.Value, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidJSON)
	}
	if data[0] != '{' && data[0] != '[' {
		return nil, ErrScalarRoot
	}
	var raw any
	if err := unmarshaler.Instance()(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return fromGeneric(raw, factory)
}

// fromGeneric converts the output of a generic codec back into a tree.
// Numbers should arrive as json.Number; a float64 always becomes a Float.
func fromGeneric(raw any, factory node.ObjectFactory) (node.Value, error) {
	v, err := node.FromGo(raw, factory)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if !node.KindOf(v).IsContainer() {
		return nil, ErrScalarRoot
	}
	return v, nil
}

// toNative converts a tree for a generic encoder. Numbers become json.Number,
// floats in the form jsonmap writes them, so neither large integers nor the
// fraction that marks a Float is lost.
func toNative(v node.Value) any {
	switch t := v.(type) {
	case node.Integer:
		return json.Number(strconv.FormatInt(int64(t), 10))
	case node.Float:
		if out, ok := jsonmap.AppendFloat(nil, float64(t)); ok {
			return json.Number(out)
		}
		return nil
	case *node.Array:
		out := make([]any, t.Len())
		for i, item := range t.Items() {
			out[i] = toNative(item)
		}
		return out
	case node.Object:
		out := make(map[string]any, t.Len())
		for _, k := range t.Keys() {
			child, _ := t.Get(k)
			out[k] = toNative(child)
		}
		return out
	default:
		return node.ToGo(v)
	}
}
