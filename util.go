package jsonresource

import (
	"runtime"
	"strings"

	"github.com/goccy/go-reflect"
)

// FunctionPath returns the fully qualified name of fn, or "" for values that
// are not functions.
func FunctionPath(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	if info := runtime.FuncForPC(v.Pointer()); info != nil {
		return info.Name()
	}
	return ""
}

// functionName trims the package path from FunctionPath.
func functionName(fn any) string {
	name := FunctionPath(fn)
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
