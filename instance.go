package metaobj

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

type (
	// Receiver is the execution context a method runs against.
	Receiver interface {
		Get(name string) (any, bool)
		Set(name string, value any)
	}

	// Record is plain named-slot storage.
	Record struct {
		slots  map[string]any
		hidden map[uuid.UUID]*Record
	}

	// Instance couples slot storage with an explicit,
	// inspectable association to its behavior source.
	Instance struct {
		Record
		meta *Metaobject
	}
)

// Record

func NewRecord() *Record {
	return &Record{slots: make(map[string]any)}
}

func (r *Record) Get(name string) (any, bool) {
	val, ok := r.slots[name]
	return val, ok
}

func (r *Record) Set(name string, value any) {
	if r.slots == nil {
		r.slots = make(map[string]any)
	}
	r.slots[name] = value
}

// Names enumerates the record's slots in sorted order.
// Hidden records installed by encapsulations never appear here.
func (r *Record) Names() []string {
	names := make([]string, 0, len(r.slots))
	for name := range r.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// private resolves the hidden record for an encapsulation identity,
// creating it on first access.
func (r *Record) private(id uuid.UUID) *Record {
	if r.hidden == nil {
		r.hidden = make(map[uuid.UUID]*Record)
	}
	rec, ok := r.hidden[id]
	if !ok {
		rec = NewRecord()
		r.hidden[id] = rec
	}
	return rec
}

// Instance

// New creates an instance delegating to the metaobject.
func New(meta *Metaobject) *Instance {
	if meta == nil {
		panic("meta cannot be nil")
	}
	return &Instance{Record{slots: make(map[string]any)}, meta}
}

func (i *Instance) Metaobject() *Metaobject {
	return i.meta
}

// Send resolves the named member and invokes it with the arguments.
// A member the instance directly owns shadows the metaobject; otherwise
// the request delegates to the metaobject's mapping.
func (i *Instance) Send(name string, args ...any) (any, error) {
	if own, ok := i.Get(name); ok {
		if !callable(own) {
			return settle(own), nil
		}
		handler, _, err := bindFunc(own)
		if err != nil {
			return nil, err
		}
		result, err := handler(i, args...)
		if err != nil {
			return nil, err
		}
		return settle(result), nil
	}
	if handler := i.meta.Method(name); handler != nil {
		result, err := handler(i, args...)
		if err != nil {
			return nil, err
		}
		return settle(result), nil
	}
	return nil, &MethodMissingError{i, name}
}

// MethodMissingError reports a member lookup that exhausted delegation.
type MethodMissingError struct {
	Receiver Receiver
	Name     string
}

func (e *MethodMissingError) Error() string {
	return fmt.Sprintf("method %q missing on %T", e.Name, e.Receiver)
}
