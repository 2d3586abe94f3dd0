package metaobj

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type GenericTestSuite struct {
	suite.Suite
}

func kindGuard(kind string) Guard {
	return func(val any) bool {
		recv, ok := val.(Receiver)
		if !ok {
			return false
		}
		k, _ := recv.Get("kind")
		return k == kind
	}
}

func thing(kind string) *Record {
	rec := NewRecord()
	rec.Set("kind", kind)
	return rec
}

func (suite *GenericTestSuite) TestDispatch() {
	isFighter := kindGuard("fighter")
	isMeteor  := kindGuard("meteor")

	collide := NewGenericFunc(
		MustClause(func(a, b any) string { return "fighter-meteor" }, isFighter, isMeteor),
		MustClause(func(a, b any) string { return "fighter-fighter" }, isFighter, isFighter),
		MustClause(func(a, b any) string { return "meteor-fighter" }, isMeteor, isFighter),
		MustClause(func(a, b any) string { return "meteor-meteor" }, isMeteor, isMeteor),
	)

	suite.Run("FirstMatch", func() {
		result, err := collide.Invoke(nil, thing("meteor"), thing("meteor"))
		suite.Nil(err)
		suite.Equal("meteor-meteor", result)

		result, err = collide.Invoke(nil, thing("fighter"), thing("meteor"))
		suite.Nil(err)
		suite.Equal("fighter-meteor", result)
	})

	suite.Run("NoApplicableMethod", func() {
		_, err := collide.Invoke(nil, thing("fighter"), "not-an-object")
		suite.IsType(&NoApplicableMethodError{}, err)
		nam := err.(*NoApplicableMethodError)
		suite.Len(nam.Args, 2)
		suite.Equal("not-an-object", nam.Args[1])
	})

	suite.Run("ArityFilter", func() {
		_, err := collide.Invoke(nil, thing("meteor"))
		suite.IsType(&NoApplicableMethodError{}, err)
	})

	suite.Run("RegistrationOrder", func() {
		overlapping := NewGenericFunc(
			MustClause(func(a any) string { return "first" }, Anything),
			MustClause(func(a any) string { return "second" }, Anything),
		)
		result, err := overlapping.Invoke(nil, "anything")
		suite.Nil(err)
		suite.Equal("first", result)

		reordered := NewGenericFunc(
			MustClause(func(a any) string { return "second" }, Anything),
			MustClause(func(a any) string { return "first" }, Anything),
		)
		result, err = reordered.Invoke(nil, "anything")
		suite.Nil(err)
		suite.Equal("second", result)
	})

	suite.Run("DisjointOrderIrrelevant", func() {
		isString := func(val any) bool { _, ok := val.(string); return ok }
		isInt    := func(val any) bool { _, ok := val.(int); return ok }
		forward := NewGenericFunc(
			MustClause(func(a any) string { return "string" }, isString),
			MustClause(func(a any) string { return "int" }, isInt),
		)
		backward := NewGenericFunc(
			MustClause(func(a any) string { return "int" }, isInt),
			MustClause(func(a any) string { return "string" }, isString),
		)
		for _, arg := range []any{"s", 42} {
			r1, err1 := forward.Invoke(nil, arg)
			r2, err2 := backward.Invoke(nil, arg)
			suite.Nil(err1)
			suite.Nil(err2)
			suite.Equal(r1, r2)
		}
	})

	suite.Run("ShortCircuit", func() {
		var evaluated []int
		probe := func(index int, accept bool) Guard {
			return func(any) bool {
				evaluated = append(evaluated, index)
				return accept
			}
		}
		g := NewGenericFunc(
			MustClause(func(a, b, c any) string { return "never" },
				probe(0, true), probe(1, false), probe(2, true)),
		)
		_, err := g.Invoke(nil, 1, 2, 3)
		suite.IsType(&NoApplicableMethodError{}, err)
		suite.Equal([]int{0, 1}, evaluated)
	})

	suite.Run("Append", func() {
		g := NewGenericFunc(
			MustClause(func(a any) string { return "first" }, kindGuard("a")),
		)
		g.Append(MustClause(func(a any) string { return "appended" }, Anything))
		result, err := g.Invoke(nil, thing("b"))
		suite.Nil(err)
		suite.Equal("appended", result)

		result, err = g.Invoke(nil, thing("a"))
		suite.Nil(err)
		suite.Equal("first", result)
	})
}

func (suite *GenericTestSuite) TestSentinel() {
	suite.Run("CoercedToNil", func() {
		g := NewGenericFunc(
			MustClause(func(a any) any { return Nothing }, Anything),
		)
		result, err := g.Invoke(nil, "anything")
		suite.Nil(err)
		suite.Nil(result)
	})

	suite.Run("VoidResultIsNothing", func() {
		ran := false
		g := NewGenericFunc(
			MustClause(func(a any) { ran = true }, Anything),
		)
		result, err := g.Invoke(nil, "anything")
		suite.Nil(err)
		suite.Nil(result)
		suite.True(ran)
	})

	suite.Run("HandlerPreservesNothing", func() {
		g := NewGenericFunc(
			MustClause(func(a any) any { return Nothing }, Anything),
		)
		result, err := g.Handler()(nil, "anything")
		suite.Nil(err)
		suite.Equal(Nothing, result)
	})
}

func (suite *GenericTestSuite) TestClauses() {
	suite.Run("ArityMismatch", func() {
		_, err := NewClause(func(a, b any) string { return "" }, Anything)
		suite.NotNil(err)
		suite.ErrorContains(err, "arity")
	})

	suite.Run("NilGuard", func() {
		_, err := NewClause(func(a any) string { return "" }, nil)
		suite.NotNil(err)
		suite.ErrorContains(err, "nil")
	})

	suite.Run("HandlerShapeAcceptsAnyArity", func() {
		handler := Handler(func(recv Receiver, args ...any) (any, error) {
			return len(args), nil
		})
		clause, err := NewClause(handler, Anything, Anything)
		suite.Nil(err)
		suite.Equal(2, clause.Arity())
	})

	suite.Run("ReceiverContext", func() {
		g := NewGenericFunc(
			MustClause(func(recv Receiver, a any) any {
				kind, _ := recv.Get("kind")
				return kind
			}, Anything),
		)
		result, err := g.Invoke(thing("station"), "ignored")
		suite.Nil(err)
		suite.Equal("station", result)
	})
}

func TestGenericTestSuite(t *testing.T) {
	suite.Run(t, new(GenericTestSuite))
}
