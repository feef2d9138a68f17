// Package jsonresource holds one JSON document in memory and lets callers
// read and edit it through space-delimited node paths such as
// "more_complex#1 never".
//
// A Resource is not safe for concurrent use.
package jsonresource

import (
	"fmt"

	"github.com/oarkflow/jsonresource/jsonmap"
	"github.com/oarkflow/jsonresource/node"
	"github.com/oarkflow/jsonresource/nodepath"
)

type Resource struct {
	data           node.Value
	cache          nodepath.Cache
	parseOnly      bool
	structType     node.ObjectFactory
	implementation Implementation
	logger         Logger
}

// New returns an empty resource. Without options parsing does not replace
// the root, objects keep insertion order and the internal codec is used.
func New(opts ...Option) *Resource {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	r := &Resource{
		parseOnly:  o.parseOnly,
		structType: o.structType,
		logger:     o.logger,
	}
	r.SetImplementation(o.implementation)
	r.debug("json.new", "struct_type", functionName(r.structType), "implementation", r.implementation)
	return r
}

// Get returns the root, or nil when none is loaded.
func (r *Resource) Get() node.Value {
	r.debug("json.get")
	return r.data
}

// Set installs value as the root. Only objects and arrays are accepted, and
// an existing root is kept unless overwrite is true.
func (r *Resource) Set(value node.Value, overwrite bool) error {
	r.debug("json.set", "overwrite", overwrite)
	if !node.KindOf(value).IsContainer() {
		return fmt.Errorf("%w: got %s", ErrInvalidRoot, node.KindOf(value))
	}
	if r.data != nil && !overwrite {
		return ErrRootExists
	}
	r.replaceRoot(value)
	return nil
}

// Parse decodes text and installs it as the root regardless of the
// parse-only policy. The current root is untouched on failure.
func (r *Resource) Parse(text string) error {
	r.debug("json.parse", "length", len(text))
	v, err := r.decode(text)
	if err != nil {
		return err
	}
	r.replaceRoot(v)
	return nil
}

// JSONToData decodes text. With parse-only enabled the tree is returned and
// the resource is left alone; otherwise it becomes the root and a detached
// copy is returned.
func (r *Resource) JSONToData(text string) (node.Value, error) {
	r.debug("json.json_to_data", "parse_only", r.parseOnly)
	v, err := r.decode(text)
	if err != nil {
		return nil, err
	}
	if r.parseOnly {
		return v, nil
	}
	r.replaceRoot(v)
	return node.DeepCopy(v), nil
}

// DataToJSON encodes value with the active implementation.
func (r *Resource) DataToJSON(value node.Value) string {
	r.debug("json.data_to_json")
	out, err := r.encode(value)
	if err != nil {
		r.debug("json.data_to_json", "error", err)
		return jsonmap.Marshal(value)
	}
	return out
}

// ExportCache encodes the root, or returns "" when there is none. With flush
// the root and the cached node are dropped afterwards.
func (r *Resource) ExportCache(flush bool) (string, error) {
	r.debug("json.export_cache", "flush", flush)
	if r.data == nil {
		return "", nil
	}
	out, err := r.encode(r.data)
	if err != nil {
		return "", err
	}
	if flush {
		r.data = nil
		r.cache.Clear()
	}
	return out, nil
}

// GetNode returns the node at path. Containers come back as shallow copies:
// adding or removing their members does not affect the document, but the
// members themselves are live.
func (r *Resource) GetNode(path string) (node.Value, bool) {
	r.debug("json.get_node", "path", path)
	ref, ok := r.resolve(path)
	if !ok {
		return nil, false
	}
	return node.Copy(ref.Value), true
}

// CountNode returns the number of members of the container at path, 1 for a
// scalar and 0 when path does not resolve.
func (r *Resource) CountNode(path string) int {
	r.debug("json.count_node", "path", path)
	ref, ok := r.resolve(path)
	if !ok {
		return 0
	}
	switch v := ref.Value.(type) {
	case *node.Array:
		return v.Len()
	case node.Object:
		return v.Len()
	default:
		return 1
	}
}

// AddNode sets the member at path, creating the final key if needed. An empty
// resource first gets an empty object root.
func (r *Resource) AddNode(path string, value any) bool {
	r.debug("json.add_node", "path", path)
	if r.data == nil {
		r.data = r.structType()
	}
	return r.change(path, value, true)
}

// ChangeNode replaces the existing member at path.
func (r *Resource) ChangeNode(path string, value any) bool {
	r.debug("json.change_node", "path", path)
	return r.change(path, value, false)
}

// RemoveNode deletes the member at path. Later array elements shift down.
func (r *Resource) RemoveNode(path string) bool {
	r.debug("json.remove_node", "path", path)
	container, seg, ok := r.target(path)
	if !ok {
		return false
	}
	switch c := container.(type) {
	case *node.Array:
		if !seg.HasIndex || !c.Remove(seg.Index) {
			return false
		}
	case node.Object:
		if seg.HasIndex || !c.Delete(seg.Key) {
			return false
		}
	default:
		return false
	}
	r.invalidate(path)
	return true
}

// SetCachedNode remembers where path leads so that later paths starting with
// it skip the walk from the root. The slot is left unchanged when path does
// not resolve; the empty path clears it.
func (r *Resource) SetCachedNode(path string) bool {
	ref, ok := r.resolve(path)
	r.debug("json.set_cached_node", "path", path, "resolved", ok, "canonical", ref.Path())
	if !ok {
		return false
	}
	r.cache.Store(path, ref.Steps)
	return true
}

// CachedNode returns the path held by the cache slot.
func (r *Resource) CachedNode() string {
	r.debug("json.cached_node", "path", r.cache.Path())
	return r.cache.Path()
}

// SetParseOnly accepts a bool or the string "1"; any other string or type
// disables the policy and nil keeps the current setting.
func (r *Resource) SetParseOnly(v any) {
	switch t := v.(type) {
	case nil:
	case bool:
		r.parseOnly = t
	case string:
		r.parseOnly = t == "1"
	default:
		r.parseOnly = false
	}
	r.debug("json.set_parse_only", "parse_only", r.parseOnly)
}

func (r *Resource) ParseOnly() bool {
	r.debug("json.parse_only", "parse_only", r.parseOnly)
	return r.parseOnly
}

func (r *Resource) StructType() node.ObjectFactory {
	r.debug("json.struct_type", "struct_type", functionName(r.structType))
	return r.structType
}

func (r *Resource) resolve(path string) (nodepath.Ref, bool) {
	return nodepath.Resolve(r.data, path, &r.cache)
}

// target resolves the container holding the member named by the last segment
// of path. For an indexed segment under an object that is the array stored at
// the segment's key.
func (r *Resource) target(path string) (node.Value, nodepath.Segment, bool) {
	if path == "" {
		return nil, nodepath.Segment{}, false
	}
	parent, last := nodepath.SplitLast(path)
	seg := nodepath.ParseSegment(last)
	ref, ok := r.resolve(parent)
	if !ok {
		return nil, seg, false
	}
	container := ref.Value
	if obj, isObj := container.(node.Object); isObj && seg.HasIndex {
		child, found := obj.Get(seg.Key)
		if !found {
			return nil, seg, false
		}
		container = child
	}
	return container, seg, true
}

func (r *Resource) change(path string, value any, add bool) bool {
	v, err := node.FromGo(value, r.structType)
	if err != nil {
		r.debug("json.change", "path", path, "error", err)
		return false
	}
	container, seg, ok := r.target(path)
	if !ok {
		return false
	}
	switch c := container.(type) {
	case *node.Array:
		if !seg.HasIndex || !c.Set(seg.Index, v) {
			return false
		}
	case node.Object:
		if seg.HasIndex {
			return false
		}
		if _, exists := c.Get(seg.Key); !exists && !add {
			return false
		}
		c.Set(seg.Key, v)
	default:
		return false
	}
	r.invalidate(path)
	return true
}

// invalidate empties the cache slot when a write at path may have replaced
// or removed the cached node.
func (r *Resource) invalidate(path string) {
	if r.cache.Covers(path) {
		r.debug("json.cache_cleared", "path", r.cache.Path())
		r.cache.Clear()
	}
}

func (r *Resource) replaceRoot(v node.Value) {
	r.data = v
	r.cache.Clear()
}
