package jsonresource

import (
	"fmt"

	"github.com/oarkflow/expr"
	"github.com/theory/jsonpath"

	"github.com/oarkflow/jsonresource/node"
)

// Select evaluates an RFC 9535 JSONPath query such as "$..price" against the
// root. The results are detached copies; objects among them follow the
// configured struct type but not the document's member order.
func (r *Resource) Select(query string) ([]node.Value, error) {
	r.debug("json.select", "query", query)
	path, err := jsonpath.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath %q: %w", query, err)
	}
	if r.data == nil {
		return nil, ErrNoDocument
	}
	results := path.Select(toNative(r.data))
	out := make([]node.Value, 0, len(results))
	for _, res := range results {
		v, err := node.FromGo(res, r.structType)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Eval runs expression against the node at path. Members of an object are
// visible by name; any other node is bound to "value".
func (r *Resource) Eval(path, expression string) (any, error) {
	r.debug("json.eval", "path", path, "expression", expression)
	ref, ok := r.resolve(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
	}
	vm, err := expr.Parse(expression)
	if err != nil {
		return nil, err
	}
	return vm.Eval(environment(ref.Value))
}

// Filter returns the elements of the array at path for which predicate
// evaluates to true. The elements are the live nodes of the document.
func (r *Resource) Filter(path, predicate string) ([]node.Value, error) {
	r.debug("json.filter", "path", path, "predicate", predicate)
	ref, ok := r.resolve(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
	}
	arr, ok := ref.Value.(*node.Array)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %s, not array", ErrTypeMismatch, path, node.KindOf(ref.Value))
	}
	vm, err := expr.Parse(predicate)
	if err != nil {
		return nil, err
	}
	var out []node.Value
	for i, item := range arr.Items() {
		res, err := vm.Eval(environment(item))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if keep, _ := res.(bool); keep {
			out = append(out, item)
		}
	}
	return out, nil
}

func environment(v node.Value) map[string]any {
	if obj, ok := v.(node.Object); ok {
		return node.ToGo(obj).(map[string]any)
	}
	return map[string]any{"value": node.ToGo(v)}
}
