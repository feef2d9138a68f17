package jsonmap

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/oarkflow/jsonresource/node"
)

var complexJSON = `{
		"key1": "value1",
		"key2": 123.45,
		"key3": true,
		"key4": null,
		"nested": {
			"arr": ["a", "b", "c"],
			"obj": {"inner": "value"}
		},
		"escaped": "Line1\nLine2\tTabbed!"
	}`

func TestUnmarshalSample(t *testing.T) {
	v, err := Unmarshal(`
{
"hello": "world",
"more_complex": [ "this", "that", true, 1 ]
}
`)
	if err != nil {
		t.Fatal(err)
	}
	obj := v.(node.Object)
	if diff := cmp.Diff([]string{"hello", "more_complex"}, obj.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	want := map[string]any{
		"hello":        "world",
		"more_complex": []any{"this", "that", true, int64(1)},
	}
	if diff := cmp.Diff(want, node.ToGo(v)); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalComplex(t *testing.T) {
	v, err := Unmarshal(complexJSON)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"key1": "value1",
		"key2": 123.45,
		"key3": true,
		"key4": nil,
		"nested": map[string]any{
			"arr": []any{"a", "b", "c"},
			"obj": map[string]any{"inner": "value"},
		},
		"escaped": "Line1\nLine2\tTabbed!",
	}
	if diff := cmp.Diff(want, node.ToGo(v)); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalValid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
	}{
		{"empty object", `{}`, map[string]any{}},
		{"empty array", ` [ ] `, []any{}},
		{"nested empties", `[{},[],{"a":[]}]`, []any{map[string]any{}, []any{}, map[string]any{"a": []any{}}}},
		{"delimiters inside strings", `{"a":"x,y}]","b":[1,{"c":"]"}]}`, map[string]any{
			"a": "x,y}]",
			"b": []any{int64(1), map[string]any{"c": "]"}},
		}},
		{"single quotes", `{'a':'b', 'c' : "it's"}`, map[string]any{"a": "b", "c": "it's"}},
		{"escaped quotes in keys", `{"say \"hi\"":1}`, map[string]any{`say "hi"`: int64(1)}},
		{"unicode escapes", `["\u00e9", "\ud83d\ude00", "a\/b"]`, []any{"é", "😀", "a/b"}},
		{"numbers", `[-1, 0, 2.5, 1e3, -4E-2, 99999999999999999999]`, []any{int64(-1), int64(0), 2.5, 1000.0, -0.04, 1e20}},
		{"literals", `[true,false,null]`, []any{true, false, nil}},
		{"empty key", `{"":1}`, map[string]any{"": int64(1)}},
		{"deep", `{"a":{"b":{"c":[[["d"]]]}}}`, map[string]any{"a": map[string]any{"b": map[string]any{"c": []any{[]any{[]any{"d"}}}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Unmarshal(tt.in)
			if err != nil {
				t.Fatalf("Unmarshal(%q): %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, node.ToGo(v)); diff != "" {
				t.Fatalf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"missing value", `{"a":}`, ErrInvalid},
		{"unterminated object", `{"a":1`, ErrInvalid},
		{"unterminated array", `[1,2`, ErrInvalid},
		{"missing colon", `{"a" 1}`, ErrInvalid},
		{"bare key", `{a:1}`, ErrInvalid},
		{"trailing comma", `[1,]`, ErrInvalid},
		{"trailing comma in object", `{"a":1,}`, ErrInvalid},
		{"bad literal", `[tru]`, ErrInvalid},
		{"unterminated string", `{"a":"open}`, ErrInvalid},
		{"junk after string", `["x"y]`, ErrInvalid},
		{"extra closer", `{"a":1}}`, ErrInvalid},
		{"trailing data", `[1] 2`, ErrInvalid},
		{"nan", `{"a":NaN}`, ErrInvalid},
		{"hex", `[0x10]`, ErrInvalid},
		{"bad escape", `["\q"]`, ErrInvalid},
		{"short unicode", `["\u12"]`, ErrInvalid},
		{"empty", `   `, ErrInvalid},
		{"string root", `"x"`, ErrNotContainer},
		{"number root", `42`, ErrNotContainer},
		{"too deep", strings.Repeat("[", 2000) + strings.Repeat("]", 2000), ErrTooDeep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Unmarshal(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Unmarshal(%q) error = %v, want %v", tt.in, err, tt.err)
			}
			if v != nil {
				t.Fatalf("expected no value, got %s", Marshal(v))
			}
		})
	}
}

func TestDuplicateKeysLastWins(t *testing.T) {
	v, err := Unmarshal(`{"a":1,"b":2,"a":3}`)
	if err != nil {
		t.Fatal(err)
	}
	obj := v.(node.Object)
	if got, _ := obj.Get("a"); got != node.Integer(3) {
		t.Fatalf("a = %v, want 3", got)
	}
	if got := Marshal(v); got != `{"a":3,"b":2}` {
		t.Fatalf("Marshal = %s", got)
	}
}

func TestDecoderUsesFactory(t *testing.T) {
	v, err := NewDecoder(node.NewHashObject).Decode(`{"b":{"y":1,"x":2},"a":0}`)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(node.HashObject); !ok {
		t.Fatalf("root is %T, want HashObject", v)
	}
	inner, _ := v.(node.Object).Get("b")
	if _, ok := inner.(node.HashObject); !ok {
		t.Fatalf("nested object is %T, want HashObject", inner)
	}
	if got := Marshal(v); got != `{"a":0,"b":{"x":2,"y":1}}` {
		t.Fatalf("Marshal = %s", got)
	}
}

func TestDecodeScalar(t *testing.T) {
	d := NewDecoder(nil)
	tests := []struct {
		in   string
		want node.Value
		ok   bool
	}{
		{"", node.Null{}, true},
		{"null", node.Null{}, true},
		{"true", node.Bool(true), true},
		{` "a\tb" `, node.String("a\tb"), true},
		{"12", node.Integer(12), true},
		{"1.5", node.Float(1.5), true},
		{"True", nil, false},
		{"inf", nil, false},
	}
	for _, tt := range tests {
		got, ok := d.DecodeScalar(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("DecodeScalar(%q) = %#v, %v; want %#v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func BenchmarkStandardUnmarshal(b *testing.B) {
	data := []byte(complexJSON)
	for i := 0; i < b.N; i++ {
		var result any
		if err := json.Unmarshal(data, &result); err != nil {
			b.Fatalf("standard json.Unmarshal error: %v", err)
		}
	}
}

func BenchmarkCustomUnmarshal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Unmarshal(complexJSON); err != nil {
			b.Fatalf("custom Unmarshal error: %v", err)
		}
	}
}
