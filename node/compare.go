package node

// Equal reports whether a and b hold the same tree. Objects compare by their
// key/value pairs regardless of iteration order, arrays element by element.
func Equal(a, b Value) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case NullKind:
		return true
	case ArrayKind:
		x, y := a.(*Array), b.(*Array)
		if x.Len() != y.Len() {
			return false
		}
		for i, v := range x.items {
			if !Equal(v, y.items[i]) {
				return false
			}
		}
		return true
	case ObjectKind:
		x, y := a.(Object), b.(Object)
		if x.Len() != y.Len() {
			return false
		}
		for _, k := range x.Keys() {
			xv, _ := x.Get(k)
			yv, ok := y.Get(k)
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// Copy returns a shallow copy: containers are new but hold the same
// children, scalars are returned as is.
func Copy(v Value) Value {
	switch t := v.(type) {
	case *Array:
		return &Array{items: append([]Value(nil), t.items...)}
	case Object:
		return t.Clone()
	default:
		return v
	}
}

// DeepCopy duplicates every container in the tree rooted at v.
func DeepCopy(v Value) Value {
	switch t := v.(type) {
	case *Array:
		items := make([]Value, len(t.items))
		for i, item := range t.items {
			items[i] = DeepCopy(item)
		}
		return &Array{items: items}
	case Object:
		c := t.Clone()
		for _, k := range c.Keys() {
			child, _ := c.Get(k)
			c.Set(k, DeepCopy(child))
		}
		return c
	default:
		return v
	}
}
