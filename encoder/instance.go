package encoder

import (
	"io"
	"sync"

	json "github.com/goccy/go-json"
)

type IEncoder interface {
	Encode(any) error
}

type Factory func(io.Writer) IEncoder

var (
	mu      sync.RWMutex
	factory Factory = defaultFactory
)

func defaultFactory(w io.Writer) IEncoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

// SetEncoder installs the factory used by Save on native documents. A nil f
// restores the default.
func SetEncoder(f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if f == nil {
		f = defaultFactory
	}
	factory = f
}

// NewEncoder creates a stream encoder for w with the current factory.
func NewEncoder(w io.Writer) IEncoder {
	return Instance()(w)
}

func Instance() Factory {
	mu.RLock()
	defer mu.RUnlock()
	return factory
}
