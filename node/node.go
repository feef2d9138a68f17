package node

import "fmt"

type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntegerKind
	FloatKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:    "Null",
		BoolKind:    "Bool",
		IntegerKind: "Integer",
		FloatKind:   "Float",
		StringKind:  "String",
		ArrayKind:   "Array",
		ObjectKind:  "Object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// IsContainer reports whether values of kind k hold children.
func (k Kind) IsContainer() bool {
	return k == ArrayKind || k == ObjectKind
}

// Value is a node of a decoded document tree.
type Value interface {
	Kind() Kind
}

type (
	Null    struct{}
	Bool    bool
	Integer int64
	Float   float64
	String  string
)

func (Null) Kind() Kind    { return NullKind }
func (Bool) Kind() Kind    { return BoolKind }
func (Integer) Kind() Kind { return IntegerKind }
func (Float) Kind() Kind   { return FloatKind }
func (String) Kind() Kind  { return StringKind }

// KindOf returns the kind of v, treating a nil interface as Null.
func KindOf(v Value) Kind {
	if v == nil {
		return NullKind
	}
	return v.Kind()
}

// Array is an ordered, mutable sequence of values.
type Array struct {
	items []Value
}

func NewArray(items ...Value) *Array {
	return &Array{items: items}
}

func (*Array) Kind() Kind { return ArrayKind }

func (a *Array) Len() int {
	return len(a.items)
}

func (a *Array) Index(i int) (Value, bool) {
	if i < 0 || i >= len(a.items) {
		return nil, false
	}
	return a.items[i], true
}

func (a *Array) Append(v ...Value) {
	a.items = append(a.items, v...)
}

// Set replaces the element at i. The array never grows.
func (a *Array) Set(i int, v Value) bool {
	if i < 0 || i >= len(a.items) {
		return false
	}
	a.items[i] = v
	return true
}

func (a *Array) Remove(i int) bool {
	if i < 0 || i >= len(a.items) {
		return false
	}
	a.items = append(a.items[:i], a.items[i+1:]...)
	return true
}

// Items returns the live backing slice.
func (a *Array) Items() []Value {
	return a.items
}

func (a *Array) String() string {
	return fmt.Sprintf("Array(%d)", len(a.items))
}
