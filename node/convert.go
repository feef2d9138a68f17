package node

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-reflect"
)

// number is satisfied by the json.Number of streaming decoders.
type number interface {
	Int64() (int64, error)
	Float64() (float64, error)
}

// Converter turns plain Go data into document trees.
type Converter struct {
	// Factory builds object nodes. NewOrderedObject is used when nil.
	Factory ObjectFactory
}

// FromGo converts maps, slices, structs (honouring `json` tags) and scalars
// into a tree built with factory.
func FromGo(in any, factory ObjectFactory) (Value, error) {
	return Converter{Factory: factory}.FromGo(in)
}

func (c Converter) FromGo(in any) (Value, error) {
	switch t := in.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int:
		return Integer(t), nil
	case int64:
		return Integer(t), nil
	case int32:
		return Integer(t), nil
	case float64:
		return Float(t), nil
	case float32:
		return Float(t), nil
	case time.Time:
		return String(t.Format(time.RFC3339Nano)), nil
	case number:
		if n, err := t.Int64(); err == nil {
			return Integer(n), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %v: %w", t, err)
		}
		return Float(f), nil
	case []any:
		arr := NewArray()
		for i, item := range t {
			v, err := c.FromGo(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr.Append(v)
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := c.newObject()
		for _, k := range keys {
			v, err := c.FromGo(t[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			obj.Set(k, v)
		}
		return obj, nil
	}
	return c.fromReflect(reflect.ValueOf(in))
}

func (c Converter) newObject() Object {
	if c.Factory == nil {
		return NewOrderedObject()
	}
	return c.Factory()
}

func (c Converter) fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Invalid:
		return Null{}, nil
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null{}, nil
		}
		return c.FromGo(rv.Elem().Interface())
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Integer(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Float(float64(u)), nil
		}
		return Integer(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null{}, nil
		}
		arr := NewArray()
		for i := 0; i < rv.Len(); i++ {
			v, err := c.FromGo(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr.Append(v)
		}
		return arr, nil
	case reflect.Map:
		if rv.IsNil() {
			return Null{}, nil
		}
		type entry struct {
			key string
			val any
		}
		var entries []entry
		for _, k := range rv.MapKeys() {
			if k.Kind() != reflect.String {
				return nil, fmt.Errorf("unsupported map key kind %s", k.Kind())
			}
			entries = append(entries, entry{key: k.String(), val: rv.MapIndex(k).Interface()})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
		obj := c.newObject()
		for _, e := range entries {
			v, err := c.FromGo(e.val)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", e.key, err)
			}
			obj.Set(e.key, v)
		}
		return obj, nil
	case reflect.Struct:
		return c.fromStruct(rv)
	default:
		return nil, fmt.Errorf("unsupported type for conversion: %s", rv.Type().String())
	}
}

func (c Converter) fromStruct(rv reflect.Value) (Value, error) {
	obj := c.newObject()
	if err := c.structFields(rv, obj, nil); err != nil {
		return nil, err
	}
	return obj, nil
}

// structFields adds the fields of rv to obj. Fields of an embedded struct
// without a json name are promoted into obj unless a shallower field uses the
// same key.
func (c Converter) structFields(rv reflect.Value, obj Object, shadowed map[string]bool) error {
	rt := rv.Type()
	names := make(map[string]bool, len(shadowed)+rt.NumField())
	for k := range shadowed {
		names[k] = true
	}
	for i := 0; i < rt.NumField(); i++ {
		if key, _, promoted, ok := jsonField(rt.Field(i)); ok && !promoted {
			names[key] = true
		}
	}
	for i := 0; i < rt.NumField(); i++ {
		key, omitEmpty, promoted, ok := jsonField(rt.Field(i))
		if !ok {
			continue
		}
		fv := rv.Field(i)
		if promoted {
			if fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if err := c.structFields(fv, obj, names); err != nil {
				return err
			}
			continue
		}
		if shadowed[key] || (omitEmpty && isEmpty(fv)) {
			continue
		}
		v, err := c.FromGo(fv.Interface())
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		obj.Set(key, v)
	}
	return nil
}

// jsonField reads the json tag of f. promoted marks an embedded struct whose
// fields belong to the enclosing object; ok is false for skipped fields.
func jsonField(f reflect.StructField) (key string, omitEmpty, promoted, ok bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false, false, false
	}
	name, opts, _ := strings.Cut(tag, ",")
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	if f.Anonymous && name == "" {
		t := f.Type
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Kind() == reflect.Struct {
			return "", false, true, true
		}
	}
	if f.PkgPath != "" {
		return "", false, false, false
	}
	if name == "" {
		name = f.Name
	}
	return name, omitEmpty, false, true
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}

// ToGo converts a tree into maps, slices and scalars. Object key order is not
// retained by the resulting maps.
func ToGo(v Value) any {
	switch t := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(t)
	case Integer:
		return int64(t)
	case Float:
		return float64(t)
	case String:
		return string(t)
	case *Array:
		out := make([]any, len(t.items))
		for i, item := range t.items {
			out[i] = ToGo(item)
		}
		return out
	case Object:
		out := make(map[string]any, t.Len())
		for _, k := range t.Keys() {
			child, _ := t.Get(k)
			out[k] = ToGo(child)
		}
		return out
	default:
		return nil
	}
}
