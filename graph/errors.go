package graph

import "tlog.app/go/errors"

// fatalf reports a programmer error: a wrong arity, a violated type
// precondition, an illegal Const construction, an unknown coercion, or an
// invalid substitute target. All such conditions are bugs in the caller —
// the IR is built exclusively by trusted compiler code — so fatalf panics
// rather than returning an error. The node graph after a failed Make call
// is undefined; callers must not attempt to recover from this panic and
// keep using the Graph.
func fatalf(format string, args ...any) {
	panic(errors.New(format, args...))
}
