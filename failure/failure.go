package failure

import (
	"errors"
	"fmt"
	"runtime"

	pkgerrors "github.com/pkg/errors"
)

// Named is an error that you can read a name from. Names identify the kind
// of failure ("DecodeError", "PemParseError", ...) independently of the
// human-readable message.
type Named interface {
	Name() string
}

// WithStackTrace is an error that you can read a stack trace from.
type WithStackTrace interface {
	Stack() string
}

// Failure is a named, recoverable error with the stack trace captured at
// construction.
type Failure struct {
	name    string
	message string
	stack   pkgerrors.StackTrace
}

// New creates a failure with the given name and formatted message.
func New(name string, format string, args ...any) *Failure {
	const depth = 32

	var pcs [depth]uintptr
	n := runtime.Callers(2, pcs[:])

	f := make(pkgerrors.StackTrace, n)
	for i := 0; i < n; i++ {
		f[i] = pkgerrors.Frame(pcs[i])
	}

	return &Failure{name: name, message: fmt.Sprintf(format, args...), stack: f}
}

func (f *Failure) Name() string {
	return f.name
}

func (f *Failure) Error() string {
	return f.message
}

func (f *Failure) Stack() string {
	return fmt.Sprintf("%+v", f.stack)
}

// Name extracts the failure name from an error, or returns the empty string
// when the error carries none.
func Name(err error) string {
	var named Named
	if errors.As(err, &named) {
		return named.Name()
	}
	return ""
}
