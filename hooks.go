package jsonresource

import (
	"github.com/oarkflow/jsonresource/decoder"
	"github.com/oarkflow/jsonresource/encoder"
	"github.com/oarkflow/jsonresource/marshaler"
	"github.com/oarkflow/jsonresource/unmarshaler"
)

// The native implementation routes through these process-wide codecs. They
// default to goccy/go-json; passing nil to a setter restores the default.

func SetMarshaler(m marshaler.Marshaler) {
	marshaler.SetMarshaler(m)
}

func SetUnmarshaler(u unmarshaler.Unmarshaler) {
	unmarshaler.SetUnmarshaler(u)
}

func SetEncoder(f encoder.Factory) {
	encoder.SetEncoder(f)
}

func SetDecoder(f decoder.Factory) {
	decoder.SetDecoder(f)
}
