// Package guards provides a library of common guards for dispatch
// clauses: type tests, equality, slot inspection and string shapes.
package guards

import (
	"github.com/asaskevich/govalidator"
	"github.com/metaobj-go/metaobj"
)

// TypeOf accepts values assignable to T.
func TypeOf[T any]() metaobj.Guard {
	return func(val any) bool {
		_, ok := val.(T)
		return ok
	}
}

// Equal accepts values equal to want.
func Equal[T comparable](want T) metaobj.Guard {
	return func(val any) bool {
		v, ok := val.(T)
		return ok && v == want
	}
}

// NotNil accepts any non-nil value.
var NotNil metaobj.Guard = func(val any) bool {
	return val != nil
}

// Slot accepts receivers whose named slot equals want.
func Slot(name string, want any) metaobj.Guard {
	return func(val any) bool {
		recv, ok := val.(metaobj.Receiver)
		if !ok {
			return false
		}
		v, ok := recv.Get(name)
		return ok && v == want
	}
}

// HasSlot accepts receivers owning the named slot.
func HasSlot(name string) metaobj.Guard {
	return func(val any) bool {
		recv, ok := val.(metaobj.Receiver)
		if !ok {
			return false
		}
		_, ok = recv.Get(name)
		return ok
	}
}

// String guards.  Non-string values are always rejected.

func stringGuard(pred func(string) bool) metaobj.Guard {
	return func(val any) bool {
		s, ok := val.(string)
		return ok && pred(s)
	}
}

// Matches accepts strings matching the regular expression pattern.
func Matches(pattern string) metaobj.Guard {
	return stringGuard(func(s string) bool {
		return govalidator.Matches(s, pattern)
	})
}

var (
	// UUID accepts canonical UUID strings.
	UUID = stringGuard(govalidator.IsUUID)

	// Numeric accepts strings containing only digits.
	Numeric = stringGuard(govalidator.IsNumeric)

	// Email accepts well-formed email addresses.
	Email = stringGuard(govalidator.IsEmail)
)
