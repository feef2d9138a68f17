// Package unmarshaler holds the process-wide decoder used when a document is
// parsed by the native implementation.
package unmarshaler

import (
	"bytes"
	"errors"
	"io"
	"sync"

	json "github.com/goccy/go-json"
)

type Unmarshaler func([]byte, any) error

var (
	mu          sync.RWMutex
	unmarshaler Unmarshaler = Numbers
)

// Numbers decodes data like json.Unmarshal but leaves numbers as json.Number,
// so integers beyond float64 precision and the form of floats survive.
func Numbers(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	var extra any
	switch err := dec.Decode(&extra); {
	case err == io.EOF:
		return nil
	case err != nil:
		return err
	default:
		return errors.New("unexpected data after top-level value")
	}
}

// SetUnmarshaler replaces the native decoder. A nil u restores Numbers.
func SetUnmarshaler(u Unmarshaler) {
	mu.Lock()
	defer mu.Unlock()
	if u == nil {
		u = Numbers
	}
	unmarshaler = u
}

func Instance() Unmarshaler {
	mu.RLock()
	defer mu.RUnlock()
	return unmarshaler
}
