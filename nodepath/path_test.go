package nodepath

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/oarkflow/jsonresource/jsonmap"
	"github.com/oarkflow/jsonresource/node"
)

const sample = `{
	"hello": "world",
	"more_complex": ["this", "that", true, 1, {"deep": [[10, 20], {"x": "y"}]}],
	"Mixed": {"Case": 1}
}`

func mustTree(t *testing.T, text string) node.Value {
	t.Helper()
	v, err := jsonmap.Unmarshal(text)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestParseSegment(t *testing.T) {
	tests := []struct {
		in   string
		want Segment
	}{
		{"name", Segment{Key: "name", Index: -1}},
		{"name#3", Segment{Key: "name", Index: 3, HasIndex: true}},
		{"a#b#10", Segment{Key: "a#b", Index: 10, HasIndex: true}},
		{"#0", Segment{Key: "", Index: 0, HasIndex: true}},
		{"name#", Segment{Key: "name#", Index: -1}},
		{"name#-1", Segment{Key: "name#-1", Index: -1}},
		{"name#1x", Segment{Key: "name#1x", Index: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseSegment(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ParseSegment mismatch (-want +got):\n%s", diff)
			}
			if got.String() != tt.in {
				t.Fatalf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	if got := Split(""); got != nil {
		t.Fatalf("Split(\"\") = %v", got)
	}
	if diff := cmp.Diff([]string{"a", "b#1", "c"}, Split("a b#1 c")); diff != "" {
		t.Fatal(diff)
	}
	parent, last := SplitLast("a b#1 c")
	if parent != "a b#1" || last != "c" {
		t.Fatalf("SplitLast = %q, %q", parent, last)
	}
	parent, last = SplitLast("single")
	if parent != "" || last != "single" {
		t.Fatalf("SplitLast = %q, %q", parent, last)
	}
}

func TestWalk(t *testing.T) {
	root := mustTree(t, sample)
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"", jsonmap.Marshal(root), true},
		{"hello", `"world"`, true},
		{"more_complex#1", `"that"`, true},
		{"more_complex#4 deep#0", `[10,20]`, true},
		{"more_complex#4 deep#0 #1", `20`, true},
		{"more_complex#4 deep#1 x", `"y"`, true},
		{"more_complex#5", ``, false},
		{"more_complex#4 missing", ``, false},
		{"hello#0", ``, false},
		{"hello nested", ``, false},
		{"missing", ``, false},
		{"mixed", ``, false},
		{"Mixed Case", `1`, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			v, steps, ok := Walk(root, Split(tt.path))
			if ok != tt.ok {
				t.Fatalf("Walk(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got := jsonmap.Marshal(v); got != tt.want {
				t.Fatalf("Walk(%q) = %s, want %s", tt.path, got, tt.want)
			}
			replayed, ok := Follow(root, steps)
			if !ok || replayed != v {
				t.Fatalf("Follow did not reproduce %q", tt.path)
			}
			if got := (Ref{Value: v, Steps: steps}).Path(); got != tt.path {
				t.Fatalf("Ref.Path() = %q, want %q", got, tt.path)
			}
		})
	}
}

func TestWalkArrayRoot(t *testing.T) {
	root := mustTree(t, `[["a","b"],{"k":"v"}]`)
	v, _, ok := Walk(root, Split("#0 #1"))
	if !ok || v != node.String("b") {
		t.Fatalf("got %v, %v", v, ok)
	}
	v, _, ok = Walk(root, Split("#1 k"))
	if !ok || v != node.String("v") {
		t.Fatalf("got %v, %v", v, ok)
	}
	if _, _, ok := Walk(root, Split("k")); ok {
		t.Fatal("a plain key cannot address an array")
	}
	if _, _, ok := Walk(nil, nil); ok {
		t.Fatal("nil root must not resolve")
	}
}

func TestResolveUsesCache(t *testing.T) {
	root := mustTree(t, sample)
	var c Cache
	ref, ok := Resolve(root, "more_complex#4", nil)
	if !ok {
		t.Fatal("expected resolution")
	}
	c.Store("more_complex#4", ref.Steps)

	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"more_complex#4 deep#1 x", `"y"`, true},
		{"MORE_COMPLEX#4 deep#1 x", `"y"`, true},
		{"more_complex#4", jsonmap.Marshal(ref.Value), true},
		{"more_complex#4 nope", ``, false},
		{"more_complex#40", ``, false},
		{"hello", `"world"`, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := Resolve(root, tt.path, &c)
			if ok != tt.ok {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			}
			if ok && jsonmap.Marshal(got.Value) != tt.want {
				t.Fatalf("Resolve(%q) = %s, want %s", tt.path, jsonmap.Marshal(got.Value), tt.want)
			}
		})
	}
}

func TestResolveStaleCacheFallsBack(t *testing.T) {
	root := mustTree(t, sample)
	var c Cache
	ref, _ := Resolve(root, "more_complex#4 deep", nil)
	c.Store("more_complex#4 deep", ref.Steps)

	arr, _ := root.(node.Object).Get("more_complex")
	arr.(*node.Array).Remove(4)

	if _, ok := Resolve(root, "more_complex#4 deep", &c); ok {
		t.Fatal("stale cache must not resolve a removed node")
	}
	got, ok := Resolve(root, "hello", &c)
	if !ok || got.Value != node.String("world") {
		t.Fatal("unrelated paths must still resolve")
	}
}

func TestCacheTransparency(t *testing.T) {
	root := mustTree(t, sample)
	paths := []string{
		"", "hello", "more_complex", "more_complex#0", "more_complex#4",
		"more_complex#4 deep", "more_complex#4 deep#0", "more_complex#4 deep#0 #1",
		"more_complex#4 deep#1 x", "more_complex#9", "Mixed", "Mixed Case",
	}
	for _, cached := range paths {
		ref, ok := Resolve(root, cached, nil)
		if !ok {
			continue
		}
		var c Cache
		c.Store(cached, ref.Steps)
		for _, p := range paths {
			want, wantOK := Resolve(root, p, nil)
			got, gotOK := Resolve(root, p, &c)
			if wantOK != gotOK || (wantOK && !node.Equal(want.Value, got.Value)) {
				t.Errorf("cache %q changed result for %q", cached, p)
			}
		}
	}
}

func TestCacheCovers(t *testing.T) {
	var c Cache
	if c.Covers("anything") {
		t.Fatal("empty cache covers nothing")
	}
	c.Store("a b#1 c", nil)
	tests := []struct {
		path string
		want bool
	}{
		{"", true},
		{"a", true},
		{"A", true},
		{"a b", true},
		{"a b#1", true},
		{"a b#1 c", true},
		{"a b#2", false},
		{"a b#1 c d", false},
		{"x", false},
		{"a b#1 cc", false},
	}
	for _, tt := range tests {
		if got := c.Covers(tt.path); got != tt.want {
			t.Errorf("Covers(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
	c.Clear()
	if !c.Empty() || c.Path() != "" {
		t.Fatal("Clear must empty the slot")
	}
}
