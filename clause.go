package metaobj

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Clause pairs one guard per parameter position with the
// handler to run when every guard accepts its argument.
type Clause struct {
	guards  []Guard
	handler Handler
}

// NewClause binds fn and validates it against the guards.
// The bound function's arity must equal the guard count.
func NewClause(fn any, guards ...Guard) (Clause, error) {
	handler, arity, err := bindFunc(fn)
	if err != nil {
		return Clause{}, err
	}
	var invalid error
	if arity >= 0 && arity != len(guards) {
		invalid = multierror.Append(invalid, fmt.Errorf(
			"clause: function arity %d does not match %d guard(s)",
			arity, len(guards)))
	}
	for i, guard := range guards {
		if guard == nil {
			invalid = multierror.Append(invalid, fmt.Errorf(
				"clause: guard at position %d cannot be nil", i))
		}
	}
	if invalid != nil {
		return Clause{}, invalid
	}
	copied := make([]Guard, len(guards))
	copy(copied, guards)
	return Clause{copied, handler}, nil
}

// MustClause is like NewClause but panics on an invalid clause.
// Intended for composition-phase construction with literal functions.
func MustClause(fn any, guards ...Guard) Clause {
	clause, err := NewClause(fn, guards...)
	if err != nil {
		panic(err)
	}
	return clause
}

// Arity is the number of arguments the clause dispatches on.
func (c Clause) Arity() int {
	return len(c.guards)
}

// matches checks arity first, then guards left to right,
// stopping at the first guard that rejects.
func (c Clause) matches(args []any) bool {
	if len(args) != len(c.guards) {
		return false
	}
	for i, guard := range c.guards {
		if !guard(args[i]) {
			return false
		}
	}
	return true
}
