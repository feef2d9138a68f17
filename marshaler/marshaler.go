// Package marshaler holds the process-wide encoder used when a document is
// serialized by the native implementation.
package marshaler

import (
	"sync"

	json "github.com/goccy/go-json"
)

type Marshaler func(any) ([]byte, error)

var (
	mu        sync.RWMutex
	marshaler Marshaler = json.Marshal
)

// SetMarshaler replaces the native encoder. A nil m restores the default.
func SetMarshaler(m Marshaler) {
	mu.Lock()
	defer mu.Unlock()
	if m == nil {
		m = json.Marshal
	}
	marshaler = m
}

func Instance() Marshaler {
	mu.RLock()
	defer mu.RUnlock()
	return marshaler
}
