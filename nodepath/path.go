// Package nodepath resolves space-delimited node paths such as
// "more_complex#1 never" against a document tree.
//
// Each segment names a key of the current object. A "#N" suffix then selects
// position N of the array found there; when the current node is already an
// array the key part is ignored, so "#0" addresses the first element of an
// array root.
package nodepath

import (
	"strconv"
	"strings"

	"github.com/oarkflow/jsonresource/node"
)

type Segment struct {
	Key      string
	Index    int
	HasIndex bool
}

// ParseSegment splits an optional "#N" position suffix off s.
func ParseSegment(s string) Segment {
	if i := strings.LastIndexByte(s, '#'); i >= 0 && i < len(s)-1 {
		digits := s[i+1:]
		if strings.Trim(digits, "0123456789") == "" {
			if n, err := strconv.Atoi(digits); err == nil {
				return Segment{Key: s[:i], Index: n, HasIndex: true}
			}
		}
	}
	return Segment{Key: s, Index: -1}
}

func (s Segment) String() string {
	if s.HasIndex {
		return s.Key + "#" + strconv.Itoa(s.Index)
	}
	return s.Key
}

// Split returns the segments of path. The empty path has none and addresses
// the root.
func Split(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, " ")
}

// SplitLast separates the final segment from the path of its parent.
func SplitLast(path string) (parent, last string) {
	i := strings.LastIndexByte(path, ' ')
	if i < 0 {
		return "", path
	}
	return path[:i], path[i+1:]
}

// Step is one move from a container to a child: by key into an object or by
// position into an array.
type Step struct {
	Key     string
	Index   int
	IsIndex bool
}

// Walk descends from through segs. The walk fails as a whole on any missing
// key, out-of-range position or type mismatch.
func Walk(from node.Value, segs []string) (node.Value, []Step, bool) {
	if from == nil {
		return nil, nil, false
	}
	cur := from
	steps := make([]Step, 0, len(segs))
	for _, raw := range segs {
		seg := ParseSegment(raw)
		if obj, ok := cur.(node.Object); ok {
			child, ok := obj.Get(seg.Key)
			if !ok {
				return nil, nil, false
			}
			cur = child
			steps = append(steps, Step{Key: seg.Key})
		} else if !seg.HasIndex {
			return nil, nil, false
		}
		if seg.HasIndex {
			arr, ok := cur.(*node.Array)
			if !ok {
				return nil, nil, false
			}
			el, ok := arr.Index(seg.Index)
			if !ok {
				return nil, nil, false
			}
			cur = el
			steps = append(steps, Step{Index: seg.Index, IsIndex: true})
		}
	}
	return cur, steps, true
}

// Follow replays steps from root.
func Follow(root node.Value, steps []Step) (node.Value, bool) {
	if root == nil {
		return nil, false
	}
	cur := root
	for _, s := range steps {
		var ok bool
		if s.IsIndex {
			arr, isArr := cur.(*node.Array)
			if !isArr {
				return nil, false
			}
			cur, ok = arr.Index(s.Index)
		} else {
			obj, isObj := cur.(node.Object)
			if !isObj {
				return nil, false
			}
			cur, ok = obj.Get(s.Key)
		}
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Ref is a resolved node together with the steps leading to it from the root.
type Ref struct {
	Value node.Value
	Steps []Step
}

// Path renders the steps in path syntax.
func (r Ref) Path() string {
	var segs []string
	for i, s := range r.Steps {
		if !s.IsIndex {
			segs = append(segs, s.Key)
			continue
		}
		suffix := "#" + strconv.Itoa(s.Index)
		if i > 0 && !r.Steps[i-1].IsIndex {
			segs[len(segs)-1] += suffix
		} else {
			segs = append(segs, suffix)
		}
	}
	return strings.Join(segs, " ")
}

// Resolve finds the node addressed by path. When c holds a prefix of path the
// walk starts at the cached node with the remaining segments.
func Resolve(root node.Value, path string, c *Cache) (Ref, bool) {
	if root == nil {
		return Ref{}, false
	}
	if c != nil {
		if rest, ok := c.match(path); ok {
			if start, ok := Follow(root, c.steps); ok {
				v, steps, ok := Walk(start, Split(rest))
				if !ok {
					return Ref{}, false
				}
				full := make([]Step, 0, len(c.steps)+len(steps))
				full = append(append(full, c.steps...), steps...)
				return Ref{Value: v, Steps: full}, true
			}
		}
	}
	v, steps, ok := Walk(root, Split(path))
	if !ok {
		return Ref{}, false
	}
	return Ref{Value: v, Steps: steps}, true
}
