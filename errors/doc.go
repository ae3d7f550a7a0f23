// Package errors provides structured error types for the layout-of tool.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the type name and user argument involved
// plus a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindUnresolvableType).
//		Argument("Foo::Bar").
//		Detail("no such type or symbol").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Unresolvable("Foo::Bar", cause)
//	err := errors.NotAStruct("int")
//	err := errors.Usage("layout-of takes [-r] and one argument")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
