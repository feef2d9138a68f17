package jsonresource

import (
	"fmt"
	"io"

	"github.com/oarkflow/jsonresource/decoder"
	"github.com/oarkflow/jsonresource/encoder"
	"github.com/oarkflow/jsonresource/jsonmap"
	"github.com/oarkflow/jsonresource/node"
)

// Load reads one document from src and installs it as the root.
func (r *Resource) Load(src io.Reader) error {
	r.debug("json.load", "implementation", r.implementation)
	var (
		v   node.Value
		err error
	)
	if r.implementation == ImplementationNative {
		var raw any
		if err = decoder.NewDecoder(src).Decode(&raw); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		v, err = fromGeneric(raw, r.structType)
	} else {
		var data []byte
		if data, err = io.ReadAll(src); err != nil {
			return err
		}
		v, err = r.decode(string(data))
	}
	if err != nil {
		return err
	}
	r.replaceRoot(v)
	return nil
}

// Save writes the root to dst. The native encoder terminates the document
// with a newline; the internal one does not.
func (r *Resource) Save(dst io.Writer) error {
	r.debug("json.save", "implementation", r.implementation)
	if r.data == nil {
		return ErrNoDocument
	}
	if r.implementation == ImplementationNative {
		return encoder.NewEncoder(dst).Encode(toNative(r.data))
	}
	return jsonmap.NewEncoder(dst).Encode(r.data)
}
