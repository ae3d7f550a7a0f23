package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseUsage   Phase = "usage"   // command argument validation
	PhaseResolve Phase = "resolve" // type/symbol resolution
	PhaseLoad    Phase = "load"    // binary and debug-info loading
	PhaseInspect Phase = "inspect" // layout computation
)

// Kind categorizes the error
type Kind string

const (
	KindUsage            Kind = "usage"
	KindUnresolvableType Kind = "unresolvable_type"
	KindNotAStruct       Kind = "not_a_struct"
	KindNoDebugInfo      Kind = "no_debug_info"
	KindDepthExceeded    Kind = "depth_exceeded"
	KindInvalidInput     Kind = "invalid_input"
)

// Error is the structured error type used throughout the tool
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	TypeName string
	Argument string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Argument != "" {
		b.WriteString(" for ")
		b.WriteString(strconv.Quote(e.Argument))
	}

	if e.TypeName != "" {
		b.WriteString(": type ")
		b.WriteString(e.TypeName)
	}

	if e.Detail != "" {
		if e.TypeName != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Argument sets the user-supplied argument the error relates to
func (b *Builder) Argument(arg string) *Builder {
	b.err.Argument = arg
	return b
}

// TypeName sets the resolved type name
func (b *Builder) TypeName(t string) *Builder {
	b.err.TypeName = t
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Unresolvable reports that an argument matched neither a type name nor a
// known symbol.
func Unresolvable(argument string, cause error) *Error {
	return New(PhaseResolve, KindUnresolvableType).
		Argument(argument).
		Cause(cause).
		Detail("could not resolve as a type or symbol").
		Build()
}

// NotAStruct reports that a resolved type is not a class or struct.
func NotAStruct(typeName string) *Error {
	return New(PhaseInspect, KindNotAStruct).
		TypeName(typeName).
		Detail("not a class or struct").
		Build()
}

// Usage reports a malformed command invocation.
func Usage(detail string, args ...any) *Error {
	return New(PhaseUsage, KindUsage).Detail(detail, args...).Build()
}

// NoDebugInfo reports a binary without usable DWARF data.
func NoDebugInfo(path string, cause error) *Error {
	return New(PhaseLoad, KindNoDebugInfo).
		Argument(path).
		Cause(cause).
		Detail("no DWARF debug info").
		Build()
}

// DepthExceeded reports that the layout walk hit its recursion ceiling.
func DepthExceeded(typeName string, limit int) *Error {
	return New(PhaseInspect, KindDepthExceeded).
		TypeName(typeName).
		Detail("nesting deeper than %d levels", limit).
		Build()
}

// InvalidInput reports malformed input at a command boundary.
func InvalidInput(detail string, args ...any) *Error {
	return New(PhaseUsage, KindInvalidInput).Detail(detail, args...).Build()
}
