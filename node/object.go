package node

import "sort"

// Object is a mutable mapping from unique string keys to values. Keys returns
// the container's own deterministic iteration order.
type Object interface {
	Value
	Len() int
	Get(key string) (Value, bool)
	Set(key string, v Value)
	Delete(key string) bool
	Keys() []string
	// Clone returns a new container of the same type holding the same children.
	Clone() Object
}

// ObjectFactory creates an empty Object. It decides the container used for
// every object node built while decoding or mutating a document.
type ObjectFactory func() Object

// OrderedObject iterates in insertion order. Overwriting an existing key keeps
// its original position.
type OrderedObject struct {
	keys   []string
	values map[string]Value
}

func NewOrderedObject() Object {
	return &OrderedObject{values: make(map[string]Value)}
}

func (*OrderedObject) Kind() Kind { return ObjectKind }

func (o *OrderedObject) Len() int {
	return len(o.keys)
}

func (o *OrderedObject) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *OrderedObject) Set(key string, v Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

func (o *OrderedObject) Delete(key string) bool {
	if _, ok := o.values[key]; !ok {
		return false
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

func (o *OrderedObject) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

func (o *OrderedObject) Clone() Object {
	c := &OrderedObject{
		keys:   make([]string, len(o.keys)),
		values: make(map[string]Value, len(o.values)),
	}
	copy(c.keys, o.keys)
	for k, v := range o.values {
		c.values[k] = v
	}
	return c
}

// HashObject is backed by a plain map and iterates in sorted key order.
type HashObject map[string]Value

func NewHashObject() Object {
	return HashObject{}
}

func (HashObject) Kind() Kind { return ObjectKind }

func (h HashObject) Len() int {
	return len(h)
}

func (h HashObject) Get(key string) (Value, bool) {
	v, ok := h[key]
	return v, ok
}

func (h HashObject) Set(key string, v Value) {
	h[key] = v
}

func (h HashObject) Delete(key string) bool {
	if _, ok := h[key]; !ok {
		return false
	}
	delete(h, key)
	return true
}

func (h HashObject) Keys() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (h HashObject) Clone() Object {
	c := make(HashObject, len(h))
	for k, v := range h {
		c[k] = v
	}
	return c
}
