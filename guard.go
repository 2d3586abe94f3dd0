package metaobj

// Guard decides whether one argument is acceptable for a clause.
type Guard func(any) bool

// Anything accepts every argument.
func Anything(any) bool {
	return true
}

func combineGuard2(guard1, guard2 Guard) Guard {
	if guard1 == nil {
		return guard2
	} else if guard2 == nil {
		return guard1
	}
	return func(val any) bool {
		if guard1(val) {
			return true
		}
		if guard2(val) {
			return true
		}
		return false
	}
}

// AnyOf accepts a value when at least one guard accepts it.
func AnyOf(guard Guard, guards ...Guard) Guard {
	switch len(guards) {
	case 0: return guard
	case 1: return combineGuard2(guard, guards[0])
	default:
		for _, g := range guards {
			guard = combineGuard2(guard, g)
		}
		return guard
	}
}

// AllOf accepts a value only when every guard accepts it.
func AllOf(guard Guard, guards ...Guard) Guard {
	if guard == nil {
		guard = Anything
	}
	return func(val any) bool {
		if !guard(val) {
			return false
		}
		for _, g := range guards {
			if g != nil && !g(val) {
				return false
			}
		}
		return true
	}
}

// Not accepts a value the guard rejects.
func Not(guard Guard) Guard {
	if guard == nil {
		panic("guard cannot be nil")
	}
	return func(val any) bool {
		return !guard(val)
	}
}
