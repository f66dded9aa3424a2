package eval

import (
	"icelang/scope"
	"icelang/sourcerange"
)

// toRuntimeError converts a *scope.Error (raised by the scope package's
// data-structure-invariant checks) into the matching *RuntimeError kind,
// attaching the call-site position the scope package itself does not
// know about.
func toRuntimeError(err error, pos sourcerange.SourceRange, fallbackName string) *RuntimeError {
	se, ok := err.(*scope.Error)
	if !ok {
		return newRuntimeError(Type, pos, err.Error())
	}
	name := se.Identifier
	if name == "" {
		name = fallbackName
	}
	switch se.Kind {
	case scope.IdentifierAlreadyDeclared:
		return identifierAlreadyDeclaredError(pos, name)
	case scope.UndefinedReference:
		return undefinedReferenceError(pos, name)
	case scope.InvalidOverload:
		return invalidOverloadError(pos, name, 0)
	default:
		return newRuntimeError(Type, pos, err.Error())
	}
}
