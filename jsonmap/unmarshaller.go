package jsonmap

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/oarkflow/jsonresource/node"
)

var (
	ErrInvalid      = errors.New("invalid JSON")
	ErrNotContainer = errors.New("top-level value must be an object or array")
	ErrTooDeep      = errors.New("maximum nesting depth exceeded")
)

const maxDepth = 1024

// Decoder builds trees from JSON text. Object nodes come from the configured
// factory.
type Decoder struct {
	factory node.ObjectFactory
}

func NewDecoder(factory node.ObjectFactory) *Decoder {
	if factory == nil {
		factory = node.NewOrderedObject
	}
	return &Decoder{factory: factory}
}

// Unmarshal decodes text into insertion-ordered objects.
func Unmarshal(text string) (node.Value, error) {
	return NewDecoder(nil).Decode(text)
}

// Decode parses a complete document. The first non-space byte must open an
// object or an array; no partial tree is ever returned.
func (d *Decoder) Decode(text string) (node.Value, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrInvalid
	}
	if text[0] != '{' && text[0] != '[' {
		return nil, ErrNotContainer
	}
	w := walker{factory: d.factory}
	v, ok := w.value(text)
	if w.tooDeep {
		return nil, ErrTooDeep
	}
	if !ok {
		return nil, ErrInvalid
	}
	return v, nil
}

// DecodeScalar decodes a single literal. Empty text and null yield Null.
func (d *Decoder) DecodeScalar(text string) (node.Value, bool) {
	return scalar(strings.TrimSpace(text))
}

type walker struct {
	factory node.ObjectFactory
	depth   int
	tooDeep bool
}

func (w *walker) value(part string) (node.Value, bool) {
	if part == "" {
		return nil, false
	}
	switch part[0] {
	case '{':
		return w.container(part[1:], '}')
	case '[':
		return w.container(part[1:], ']')
	}
	return scalar(part)
}

func (w *walker) container(text string, closer byte) (node.Value, bool) {
	w.depth++
	defer func() { w.depth-- }()
	if w.depth > maxDepth {
		w.tooDeep = true
		return nil, false
	}
	if closer == ']' {
		return w.array(text)
	}
	return w.object(text)
}

func (w *walker) array(text string) (node.Value, bool) {
	arr := node.NewArray()
	rest := strings.TrimSpace(text)
	if rest != "" && rest[0] == ']' {
		return arr, strings.TrimSpace(rest[1:]) == ""
	}
	for rest != "" {
		part, remainder, ok := carve(rest, ']')
		if !ok {
			return nil, false
		}
		v, ok := w.value(strings.TrimSpace(part))
		if !ok {
			return nil, false
		}
		arr.Append(v)
		next, done, ok := advance(remainder, ']')
		if !ok {
			return nil, false
		}
		if done {
			return arr, true
		}
		rest = next
	}
	return nil, false
}

func (w *walker) object(text string) (node.Value, bool) {
	obj := w.factory()
	rest := strings.TrimSpace(text)
	if rest != "" && rest[0] == '}' {
		return obj, strings.TrimSpace(rest[1:]) == ""
	}
	for rest != "" {
		quote := rest[0]
		if quote != '"' && quote != '\'' {
			return nil, false
		}
		raw, ok := locate(rest[1:], quote, 0)
		if !ok {
			return nil, false
		}
		key, ok := unescape(raw)
		if !ok {
			return nil, false
		}
		rest = strings.TrimSpace(rest[len(raw)+2:])
		if rest == "" || rest[0] != ':' {
			return nil, false
		}
		rest = strings.TrimSpace(rest[1:])
		if rest == "" {
			return nil, false
		}
		part, remainder, ok := carve(rest, '}')
		if !ok {
			return nil, false
		}
		v, ok := w.value(strings.TrimSpace(part))
		if !ok {
			return nil, false
		}
		obj.Set(key, v)
		next, done, ok := advance(remainder, '}')
		if !ok {
			return nil, false
		}
		if done {
			return obj, true
		}
		rest = next
	}
	return nil, false
}

// carve splits the next member value off rest. Bracketed values end at their
// matching closer; anything else ends at the next top-level comma, or at the
// container's own closer for the final member.
func carve(rest string, closer byte) (part, remainder string, ok bool) {
	if rest == "" {
		return "", "", false
	}
	switch open := rest[0]; open {
	case '{', '[':
		end := byte('}')
		if open == '[' {
			end = ']'
		}
		i := FindString(rest[1:], end, open)
		if i < 0 {
			return "", "", false
		}
		return rest[:i+2], rest[i+2:], true
	}
	i := FindString(rest, ',', 0)
	if i < 0 {
		i = FindString(rest, closer, 0)
	}
	if i < 0 {
		return "", "", false
	}
	return rest[:i], rest[i:], true
}

// advance consumes the separator following a member. done is set once the
// container's closer is reached with nothing after it.
func advance(remainder string, closer byte) (next string, done, ok bool) {
	remainder = strings.TrimSpace(remainder)
	if remainder == "" {
		return "", false, false
	}
	switch remainder[0] {
	case ',':
		next = strings.TrimSpace(remainder[1:])
		return next, false, next != ""
	case closer:
		return "", true, strings.TrimSpace(remainder[1:]) == ""
	}
	return "", false, false
}

func scalar(text string) (node.Value, bool) {
	switch text {
	case "true":
		return node.Bool(true), true
	case "false":
		return node.Bool(false), true
	case "", "null":
		return node.Null{}, true
	}
	if quote := text[0]; quote == '"' || quote == '\'' {
		raw, ok := locate(text[1:], quote, 0)
		if !ok || len(raw)+2 != len(text) {
			return nil, false
		}
		s, ok := unescape(raw)
		if !ok {
			return nil, false
		}
		return node.String(s), true
	}
	return number(text)
}

func number(text string) (node.Value, bool) {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return node.Integer(i), true
	}
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case c >= '0' && c <= '9', c == '-', c == '+', c == '.', c == 'e', c == 'E':
		default:
			return nil, false
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, false
	}
	return node.Float(f), true
}

// unescape resolves backslash escapes in a single forward pass.
func unescape(s string) (string, bool) {
	if strings.IndexByte(s, '\\') < 0 {
		return s, true
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", false
		}
		switch s[i] {
		case '"', '\\', '/', '\'':
			b.WriteByte(s[i])
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, ok := hex4(s[i+1:])
			if !ok {
				return "", false
			}
			i += 4
			if utf16.IsSurrogate(r) && len(s) > i+2 && s[i+1] == '\\' && s[i+2] == 'u' {
				if r2, ok := hex4(s[i+3:]); ok {
					if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
						r = dec
						i += 6
					}
				}
			}
			b.WriteRune(r)
		default:
			return "", false
		}
	}
	return b.String(), true
}

func hex4(s string) (rune, bool) {
	if len(s) < 4 {
		return 0, false
	}
	v, err := strconv.ParseUint(s[:4], 16, 16)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
