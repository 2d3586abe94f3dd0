package metaobj

import "fmt"

// GenericFunc dispatches a call to the first of its clauses whose
// guards accept every argument.  Clauses are tried strictly in
// registration order; no specificity ranking or ambiguity detection
// exists, so overlapping guards must be registered most desired first.
type GenericFunc struct {
	clauses []Clause
}

// NewGenericFunc builds the dispatch table from an ordered clause list.
func NewGenericFunc(clauses ...Clause) *GenericFunc {
	g := &GenericFunc{make([]Clause, len(clauses))}
	copy(g.clauses, clauses)
	return g
}

// Append adds clauses after the existing ones.
// Clauses can never be reordered once registered.
func (g *GenericFunc) Append(clauses ...Clause) *GenericFunc {
	g.clauses = append(g.clauses, clauses...)
	return g
}

// Invoke scans clauses in registration order and returns the first
// matching handler's result.  A result equal to Nothing is coerced
// to nil so it can never leak to callers.
func (g *GenericFunc) Invoke(recv Receiver, args ...any) (any, error) {
	result, err := g.dispatch(recv, args...)
	if err != nil {
		return nil, err
	}
	return settle(result), nil
}

// Handler adapts the generic function to a metaobject method.
// The raw result is preserved so combinators wrapping the method
// still observe Nothing; the dispatch layer settles it at the end.
func (g *GenericFunc) Handler() Handler {
	return g.dispatch
}

func (g *GenericFunc) dispatch(recv Receiver, args ...any) (any, error) {
	for _, clause := range g.clauses {
		if clause.matches(args) {
			return clause.handler(recv, args...)
		}
	}
	return nil, &NoApplicableMethodError{args}
}

// NoApplicableMethodError reports a dispatch that satisfied no clause.
type NoApplicableMethodError struct {
	Args []any
}

func (e *NoApplicableMethodError) Error() string {
	return fmt.Sprintf("no applicable method for %d argument(s) %v",
		len(e.Args), e.Args)
}
