package metaobj

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// Metaobject is an immutable mapping of method names to handlers,
// used purely as a shared delegation target.  Metaobjects are never
// instantiated as live objects; instances delegate to them (see New).
// Composition, encapsulation and decoration all produce new
// Metaobjects and never alter their sources.
type Metaobject struct {
	methods map[string]Handler
}

// NewMetaobject builds a metaobject from a name to method mapping.
// Values may be Handlers, ordinary functions bindable by the same
// rules as clauses, or generic functions.  Invalid entries are
// aggregated and reported together.
func NewMetaobject(methods map[string]any) (*Metaobject, error) {
	bound := make(map[string]Handler, len(methods))
	var invalid error
	for name, fn := range methods {
		if g, ok := fn.(*GenericFunc); ok {
			bound[name] = g.Handler()
			continue
		}
		handler, _, err := bindFunc(fn)
		if err != nil {
			invalid = multierror.Append(invalid, fmt.Errorf(
				"metaobject: method %q: %w", name, err))
			continue
		}
		bound[name] = handler
	}
	if invalid != nil {
		return nil, invalid
	}
	return &Metaobject{bound}, nil
}

// FromMethods builds a metaobject from the exported methods of source.
// Each method binds with an optional leading Receiver parameter and
// at most two results, the second an error.
func FromMethods(source any) (*Metaobject, error) {
	if source == nil {
		panic("source cannot be nil")
	}
	val := reflect.ValueOf(source)
	typ := val.Type()
	methods := make(map[string]Handler)
	var invalid error
	for i := 0; i < typ.NumMethod(); i++ {
		method := typ.Method(i)
		handler, _, err := bindFunc(val.Method(i).Interface())
		if err != nil {
			invalid = multierror.Append(invalid, fmt.Errorf(
				"metaobject: method %q: %w", method.Name, err))
			continue
		}
		methods[method.Name] = handler
	}
	if invalid != nil {
		return nil, invalid
	}
	return &Metaobject{methods}, nil
}

// Mix merges the sources into one metaobject.  The merge happens
// once, at construction; it is not a runtime chain walk.  On name
// collisions the last source wins.
func Mix(sources ...*Metaobject) *Metaobject {
	size := 0
	for _, source := range sources {
		if source != nil {
			size += len(source.methods)
		}
	}
	methods := make(map[string]Handler, size)
	for _, source := range sources {
		if source == nil {
			continue
		}
		for name, handler := range source.methods {
			methods[name] = handler
		}
	}
	return &Metaobject{methods}
}

// Method returns the named handler, or nil if absent.
func (m *Metaobject) Method(name string) Handler {
	return m.methods[name]
}

// Names enumerates the method names in sorted order.
func (m *Metaobject) Names() []string {
	names := make([]string, 0, len(m.methods))
	for name := range m.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the named method against the receiver.
func (m *Metaobject) Invoke(
	recv Receiver,
	name string,
	args ...any,
) (any, error) {
	handler := m.methods[name]
	if handler == nil {
		return nil, &MethodMissingError{recv, name}
	}
	result, err := handler(recv, args...)
	if err != nil {
		return nil, err
	}
	return settle(result), nil
}
