package metaobj

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/go-multierror"
)

type (
	// Handler is the uniform shape of a bound method:
	// a receiver context plus the full argument list.
	Handler func(recv Receiver, args ...any) (any, error)

	// FuncBindingError reports a function that cannot serve as a Handler.
	FuncBindingError struct {
		fun    any
		reason error
	}
)

func (e *FuncBindingError) Func() any {
	return e.fun
}

func (e *FuncBindingError) Error() string {
	return fmt.Sprintf("invalid function %T: %v", e.fun, e.reason)
}

func (e *FuncBindingError) Unwrap() error {
	return e.reason
}

var (
	receiverType = reflect.TypeOf((*Receiver)(nil)).Elem()
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
)

// callable reports whether a slot value can be bound and invoked.
func callable(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Kind() == reflect.Func
}

// bindFunc adapts an ordinary function to a Handler.
// An optional leading Receiver parameter receives the call's context.
// Up to two results are allowed and the second must be an error.
// The returned arity counts the argument parameters only; it is -1
// when the function is already Handler shaped and accepts any count.
func bindFunc(fn any) (Handler, int, error) {
	switch f := fn.(type) {
	case Handler:
		return f, -1, nil
	case func(Receiver, ...any) (any, error):
		return f, -1, nil
	}

	typ := reflect.TypeOf(fn)
	if typ == nil || typ.Kind() != reflect.Func {
		return nil, 0, &FuncBindingError{fn,
			fmt.Errorf("%T is not a function", fn)}
	}

	var invalid error
	if typ.IsVariadic() {
		invalid = multierror.Append(invalid,
			fmt.Errorf("variadic functions cannot be bound"))
	}

	numIn   := typ.NumIn()
	numArgs := numIn
	hasRecv := numIn > 0 && typ.In(0) == receiverType
	if hasRecv {
		numArgs--
	}

	errOnly := false
	switch typ.NumOut() {
	case 0:
	case 1:
		errOnly = typ.Out(0) == errorType
	case 2:
		if typ.Out(1) != errorType {
			invalid = multierror.Append(invalid, fmt.Errorf(
				"when two return values, second must be %v", errorType))
		}
	default:
		invalid = multierror.Append(invalid, fmt.Errorf(
			"at most two return values allowed and second must be %v", errorType))
	}

	if invalid != nil {
		return nil, 0, &FuncBindingError{fn, invalid}
	}

	fun := reflect.ValueOf(fn)
	handler := func(recv Receiver, args ...any) (any, error) {
		if len(args) != numArgs {
			return nil, &FuncBindingError{fn, fmt.Errorf(
				"expected %d argument(s), received %d", numArgs, len(args))}
		}
		in := make([]reflect.Value, 0, numIn)
		if hasRecv {
			if recv == nil {
				in = append(in, reflect.Zero(receiverType))
			} else {
				in = append(in, reflect.ValueOf(recv))
			}
		}
		for i, arg := range args {
			pt := typ.In(i + numIn - numArgs)
			if arg == nil {
				in = append(in, reflect.Zero(pt))
				continue
			}
			av := reflect.ValueOf(arg)
			if !av.Type().AssignableTo(pt) {
				return nil, &FuncBindingError{fn, fmt.Errorf(
					"argument %d of type %T is not assignable to %v", i, arg, pt)}
			}
			in = append(in, av)
		}
		out := fun.Call(in)
		switch len(out) {
		case 0:
			return Nothing, nil
		case 1:
			if errOnly {
				err, _ := out[0].Interface().(error)
				return Nothing, err
			}
			return out[0].Interface(), nil
		default:
			err, _ := out[1].Interface().(error)
			if err != nil {
				return nil, err
			}
			return out[0].Interface(), nil
		}
	}
	return handler, numArgs, nil
}
