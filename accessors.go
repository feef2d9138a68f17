package jsonresource

import (
	"time"

	"github.com/oarkflow/jsonresource/node"
)

// GetString returns the string at path.
func (r *Resource) GetString(path string) (string, bool) {
	v, ok := r.scalar(path)
	s, isString := v.(node.String)
	return string(s), ok && isString
}

// GetInt returns the integer at path. Floats are rejected.
func (r *Resource) GetInt(path string) (int64, bool) {
	v, ok := r.scalar(path)
	n, isInt := v.(node.Integer)
	return int64(n), ok && isInt
}

// GetFloat returns the number at path, widening integers.
func (r *Resource) GetFloat(path string) (float64, bool) {
	v, ok := r.scalar(path)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case node.Float:
		return float64(n), true
	case node.Integer:
		return float64(n), true
	}
	return 0, false
}

func (r *Resource) GetBool(path string) (bool, bool) {
	v, ok := r.scalar(path)
	b, isBool := v.(node.Bool)
	return bool(b), ok && isBool
}

// GetTime interprets the string or Unix timestamp at path as a time.
func (r *Resource) GetTime(path string) (time.Time, bool) {
	v, ok := r.scalar(path)
	if !ok {
		return time.Time{}, false
	}
	t, err := node.AsTime(v)
	if err != nil {
		r.debug("json.get_time", "path", path, "error", err)
		return time.Time{}, false
	}
	return t, true
}

func (r *Resource) scalar(path string) (node.Value, bool) {
	r.debug("json.get_scalar", "path", path)
	ref, ok := r.resolve(path)
	if !ok || node.KindOf(ref.Value).IsContainer() {
		return nil, false
	}
	return ref.Value, true
}
