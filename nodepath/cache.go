package nodepath

import "strings"

// Cache is a single slot remembering where one path led. It stores the steps
// from the root rather than the node itself and is replayed on every hit, so
// it never outlives the structure it describes.
type Cache struct {
	path  string
	steps []Step
}

func (c *Cache) Path() string {
	return c.path
}

// Empty reports whether the slot is unset, in which case resolution starts at
// the root.
func (c *Cache) Empty() bool {
	return c.path == ""
}

func (c *Cache) Store(path string, steps []Step) {
	c.path = path
	c.steps = append([]Step(nil), steps...)
}

func (c *Cache) Clear() {
	c.path = ""
	c.steps = nil
}

// match reports whether the cached path is a prefix of path, compared without
// regard to case and ending on a segment boundary, and returns what follows it.
func (c *Cache) match(path string) (string, bool) {
	n := len(c.path)
	if n == 0 || len(path) < n || !strings.EqualFold(path[:n], c.path) {
		return "", false
	}
	if len(path) > n && path[n] != ' ' {
		return "", false
	}
	return strings.TrimSpace(path[n:]), true
}

// Covers reports whether a write to path can replace or remove the cached
// node or one of its ancestors.
func (c *Cache) Covers(path string) bool {
	if c.Empty() {
		return false
	}
	if path == "" {
		return true
	}
	written, cached := Split(path), Split(c.path)
	if len(written) > len(cached) {
		return false
	}
	last := len(written) - 1
	for i := 0; i < last; i++ {
		if !strings.EqualFold(written[i], cached[i]) {
			return false
		}
	}
	if strings.EqualFold(written[last], cached[last]) {
		return true
	}
	w := ParseSegment(written[last])
	return !w.HasIndex && strings.EqualFold(w.Key, ParseSegment(cached[last]).Key)
}
