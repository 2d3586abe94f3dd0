package metaobj

// Advice receives the original handler along with the call,
// giving it full control over if, when and how the original runs.
type Advice func(original Handler, recv Receiver, args ...any) (any, error)

// Before runs extra ahead of the original.  The original's result
// wins unless it is Nothing, in which case extra's result is used.
func Before(extra Handler) Combinator {
	if extra == nil {
		panic("extra cannot be nil")
	}
	return func(original Handler) Handler {
		return func(recv Receiver, args ...any) (any, error) {
			first, err := extra(recv, args...)
			if err != nil {
				return nil, err
			}
			result, err := original(recv, args...)
			if err != nil {
				return nil, err
			}
			if result == Nothing {
				return first, nil
			}
			return result, nil
		}
	}
}

// After runs extra once the original completes.  The original's
// result wins unless it is Nothing, in which case extra's result
// is used.
func After(extra Handler) Combinator {
	if extra == nil {
		panic("extra cannot be nil")
	}
	return func(original Handler) Handler {
		return func(recv Receiver, args ...any) (any, error) {
			result, err := original(recv, args...)
			if err != nil {
				return nil, err
			}
			last, err := extra(recv, args...)
			if err != nil {
				return nil, err
			}
			if result == Nothing {
				return last, nil
			}
			return result, nil
		}
	}
}

// Around hands the call to advice together with the original handler.
func Around(advice Advice) Combinator {
	if advice == nil {
		panic("advice cannot be nil")
	}
	return func(original Handler) Handler {
		return func(recv Receiver, args ...any) (any, error) {
			return advice(original, recv, args...)
		}
	}
}

// FluentByDefault substitutes the receiver when the original
// returns Nothing, making chaining the default outcome.
func FluentByDefault(original Handler) Handler {
	return func(recv Receiver, args ...any) (any, error) {
		result, err := original(recv, args...)
		if err != nil {
			return nil, err
		}
		if result == Nothing {
			return recv, nil
		}
		return result, nil
	}
}

// Chain applies the combinators to a handler in reverse order, so
// the first combinator observes the call first.
func Chain(handler Handler, combinators ...Combinator) Handler {
	for i := len(combinators) - 1; i >= 0; i-- {
		handler = combinators[i](handler)
	}
	return handler
}
