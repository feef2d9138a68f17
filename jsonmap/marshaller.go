package jsonmap

import (
	"io"
	"math"
	"strconv"
	"sync"

	"github.com/oarkflow/jsonresource/node"
)

type encoder struct {
	buf []byte
}

func newEncoder() *encoder {
	const initialCapacity = 4096
	return &encoder{
		buf: make([]byte, 0, initialCapacity),
	}
}

func (e *encoder) reset() {
	e.buf = e.buf[:0]
}

func (e *encoder) encode(v node.Value) {
	switch vv := v.(type) {
	case node.Bool:
		if vv {
			e.buf = append(e.buf, "true"...)
			return
		}
		e.buf = append(e.buf, "false"...)
	case node.Integer:
		e.buf = strconv.AppendInt(e.buf, int64(vv), 10)
	case node.Float:
		e.encodeFloat(float64(vv))
	case node.String:
		e.encodeString(string(vv))
	case *node.Array:
		e.buf = append(e.buf, '[')
		for i, item := range vv.Items() {
			if i > 0 {
				e.buf = append(e.buf, ',')
			}
			e.encode(item)
		}
		e.buf = append(e.buf, ']')
	case node.Object:
		e.buf = append(e.buf, '{')
		for i, k := range vv.Keys() {
			if i > 0 {
				e.buf = append(e.buf, ',')
			}
			e.encodeString(k)
			e.buf = append(e.buf, ':')
			child, _ := vv.Get(k)
			e.encode(child)
		}
		e.buf = append(e.buf, '}')
	default:
		e.buf = append(e.buf, "null"...)
	}
}

func (e *encoder) encodeFloat(f float64) {
	out, ok := AppendFloat(e.buf, f)
	if !ok {
		out = append(e.buf, "null"...)
	}
	e.buf = out
}

// AppendFloat appends f the way Marshal writes it: always with a fraction or
// exponent so the text decodes back to a Float. Non-finite values have no
// JSON form; dst is returned unchanged with false.
func AppendFloat(dst []byte, f float64) ([]byte, bool) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return dst, false
	}
	start := len(dst)
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		dst = strconv.AppendFloat(dst, f, 'f', -1, 64)
	} else {
		dst = strconv.AppendFloat(dst, f, 'e', -1, 64)
	}
	for _, c := range dst[start:] {
		if c == '.' || c == 'e' {
			return dst, true
		}
	}
	return append(dst, ".0"...), true
}

func (e *encoder) encodeString(s string) {
	e.buf = append(e.buf, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' && c != '"' && c >= 0x20 {
			continue
		}
		e.buf = append(e.buf, s[start:i]...)
		switch c {
		case '\\', '"':
			e.buf = append(e.buf, '\\', c)
		case '\b':
			e.buf = append(e.buf, `\b`...)
		case '\f':
			e.buf = append(e.buf, `\f`...)
		case '\n':
			e.buf = append(e.buf, `\n`...)
		case '\r':
			e.buf = append(e.buf, `\r`...)
		case '\t':
			e.buf = append(e.buf, `\t`...)
		default:
			const hex = "0123456789abcdef"
			e.buf = append(e.buf, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xF])
		}
		start = i + 1
	}
	e.buf = append(e.buf, s[start:]...)
	e.buf = append(e.buf, '"')
}

var encoderPool = sync.Pool{
	New: func() any { return newEncoder() },
}

// Marshal renders v as minified JSON. Object members follow the container's
// own key order; nil and unknown values render as null.
func Marshal(v node.Value) string {
	enc := encoderPool.Get().(*encoder)
	enc.reset()
	enc.encode(v)
	ret := string(enc.buf)
	encoderPool.Put(enc)
	return ret
}

// Quote renders s as a JSON string literal.
func Quote(s string) string {
	enc := encoder{buf: make([]byte, 0, len(s)+2)}
	enc.encodeString(s)
	return string(enc.buf)
}

// Encoder writes documents to a stream.
type Encoder struct {
	w   io.Writer
	enc *encoder
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:   w,
		enc: newEncoder(),
	}
}

func (e *Encoder) Encode(v node.Value) error {
	e.enc.reset()
	e.enc.encode(v)
	_, err := e.w.Write(e.enc.buf)
	return err
}
