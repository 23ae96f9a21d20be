package lazy

import "fmt"

// InternalError reports a violated engine invariant: follow-set overflow or
// an unreachable node-kind default in the epsilon closure. Both conditions
// can only be reached by a builder or optimizer bug, never by an ordinary
// compiled pattern, so InternalError is always raised via panic and must
// never be caught or retried at the core — see SPEC_FULL.md §7. The
// outermost cmd/greplex per-file loop is the only place that recovers one,
// and it does so only to move on to the next file.
type InternalError struct {
	Op  string
	Msg string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("dfa/lazy: internal error in %s: %s", e.Op, e.Msg)
}
