package metaobj

import "github.com/google/uuid"

// encapsulation owns the private state minted for one call to
// Encapsulate.  The identity is unique per encapsulation, so two
// independent encapsulations mixed into one object keep fully
// independent private records.
type encapsulation struct {
	id      uuid.UUID
	records map[Receiver]*Record
}

// privately is implemented by receivers able to hold hidden
// records on their own storage, outside slot enumeration.
type privately interface {
	private(id uuid.UUID) *Record
}

// Encapsulate returns a metaobject whose methods run against a
// private record unique to each (receiver, encapsulation) pair
// instead of the receiver itself.  Records are created lazily on
// first invocation and are invisible to slot enumeration, so two
// instances sharing the result never observe each other's state.
// Lazy creation is not safe under concurrent first access; an
// embedding system needing that must add its own mutual exclusion.
func Encapsulate(meta *Metaobject) *Metaobject {
	if meta == nil {
		panic("meta cannot be nil")
	}
	enc := &encapsulation{id: uuid.New()}
	methods := make(map[string]Handler, len(meta.methods))
	for name, handler := range meta.methods {
		methods[name] = enc.wrap(handler)
	}
	return &Metaobject{methods}
}

func (e *encapsulation) wrap(handler Handler) Handler {
	return func(recv Receiver, args ...any) (any, error) {
		private := e.record(recv)
		result, err := handler(private, args...)
		if err != nil {
			return nil, err
		}
		// A method returning its own context is chaining; keep
		// fluent calls on the public receiver.
		if rec, ok := result.(*Record); ok && rec == private {
			return recv, nil
		}
		return result, nil
	}
}

// record resolves the receiver's private record for this
// encapsulation, creating it on first access.  Receivers with
// their own hidden storage keep the record there; anything else
// falls back to a side table keyed by receiver identity.
func (e *encapsulation) record(recv Receiver) *Record {
	if p, ok := recv.(privately); ok {
		return p.private(e.id)
	}
	if rec, ok := e.records[recv]; ok {
		return rec
	}
	if e.records == nil {
		e.records = make(map[Receiver]*Record)
	}
	rec := NewRecord()
	e.records[recv] = rec
	return rec
}
