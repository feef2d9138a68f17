package jsonresource

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"

	"github.com/oarkflow/jsonresource/jsonmap"
	"github.com/oarkflow/jsonresource/node"
)

// ApplyPatch applies an RFC 6902 patch document to the root. The root is
// replaced only if every operation succeeds. Member order after a patch
// follows the patch library's output.
func (r *Resource) ApplyPatch(patch []byte) error {
	r.debug("json.apply_patch", "length", len(patch))
	if r.data == nil {
		return ErrNoDocument
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("invalid patch: %w", err)
	}
	out, err := ops.Apply([]byte(jsonmap.Marshal(r.data)))
	if err != nil {
		return err
	}
	v, err := r.decode(string(out))
	if err != nil {
		return err
	}
	r.replaceRoot(v)
	return nil
}

// ExportYAML renders the root as YAML, keeping object member order.
func (r *Resource) ExportYAML() (string, error) {
	r.debug("json.export_yaml")
	if r.data == nil {
		return "", ErrNoDocument
	}
	out, err := yaml.Marshal(toYAML(r.data))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func toYAML(v node.Value) any {
	switch t := v.(type) {
	case node.Object:
		ms := make(yaml.MapSlice, 0, t.Len())
		for _, k := range t.Keys() {
			child, _ := t.Get(k)
			ms = append(ms, yaml.MapItem{Key: k, Value: toYAML(child)})
		}
		return ms
	case *node.Array:
		out := make([]any, t.Len())
		for i, item := range t.Items() {
			out[i] = toYAML(item)
		}
		return out
	default:
		return node.ToGo(v)
	}
}
