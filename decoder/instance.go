package decoder

import (
	"io"
	"sync"

	json "github.com/goccy/go-json"
)

type IDecoder interface {
	Decode(any) error
}

type Factory func(io.Reader) IDecoder

var (
	mu      sync.RWMutex
	factory Factory = defaultFactory
)

func defaultFactory(r io.Reader) IDecoder {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return dec
}

// SetDecoder installs the factory used by Load on native documents. A nil f
// restores the default.
func SetDecoder(f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if f == nil {
		f = defaultFactory
	}
	factory = f
}

// NewDecoder creates a stream decoder for r with the current factory.
func NewDecoder(r io.Reader) IDecoder {
	return Instance()(r)
}

func Instance() Factory {
	mu.RLock()
	defer mu.RUnlock()
	return factory
}
