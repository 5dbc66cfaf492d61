package eval

import (
	"errors"
	"fmt"

	"github.com/vk/lantern/internal/mdl"
)

var (
	// ErrMalformedInput reports a form with the wrong shape or arity, or an
	// exit sequence that cannot be paired. Fatal.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnresolvedContext reports a form that needs an enclosing room but
	// was evaluated outside one. Fatal.
	ErrUnresolvedContext = errors.New("unresolved context")

	// ErrUnresolvedReference reports a global indirection with no value.
	// Evaluation recovers from it by keeping the literal token; it is only
	// surfaced in traces.
	ErrUnresolvedReference = errors.New("unresolved reference")
)

// Malformed returns an ErrMalformedInput error located at n.
func Malformed(n mdl.Node, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", n.Pos(), ErrMalformedInput, fmt.Sprintf(format, args...))
}

// Unresolved returns an ErrUnresolvedContext error located at n.
func Unresolved(n mdl.Node, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", n.Pos(), ErrUnresolvedContext, fmt.Sprintf(format, args...))
}
