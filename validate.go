package jsonresource

import (
	"strings"

	"github.com/oarkflow/jsonresource/jsonmap"
)

const maxDepth = 1024

// Is is a quick structural check: s must be one object or array whose
// brackets balance outside quoted strings. Scalars and keys are not
// validated; Parse does that.
func Is(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 2 || (s[0] != '{' && s[0] != '[') {
		return false
	}
	stack := make([]byte, 0, 16)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '{', '[':
			if len(stack) == maxDepth {
				return false
			}
			stack = append(stack, c)
		case '}', ']':
			if len(stack) == 0 || stack[len(stack)-1] != opener(c) {
				return false
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 && i != len(s)-1 {
				return false
			}
		case '"', '\'':
			end := jsonmap.FindString(s[i+1:], c, 0)
			if end < 0 {
				return false
			}
			i += end + 1
		}
	}
	return len(stack) == 0
}

func opener(closer byte) byte {
	if closer == '}' {
		return '{'
	}
	return '['
}
