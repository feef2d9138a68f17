package jsonresource

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger receives one debug record per public operation, named "json.<op>".
// *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg any, keyvals ...any)
}

// NewDebugLogger returns a logger writing debug records to w.
func NewDebugLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  log.DebugLevel,
		Prefix: "jsonresource",
	})
}

// SetLogger replaces the debug sink. A nil logger disables tracing.
func (r *Resource) SetLogger(logger Logger) {
	r.logger = logger
	r.debug("json.set_logger")
}

func (r *Resource) debug(op string, keyvals ...any) {
	if r.logger != nil {
		r.logger.Debug(op, keyvals...)
	}
}
