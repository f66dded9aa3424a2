// Package value implements the runtime value model: a tagged union of
// eight variants (Int, Byte, Float, Bool, String, List, Dict, Null) with
// reference-shared mutable containers, plus equality, hashing, casting,
// and display/debug formatting. Scalars compare and copy by value;
// List and Dict compare and copy by reference identity.
package value

import "math/big"

// Value is implemented by every runtime value variant. Int, Byte, Float,
// Bool, String, and Null have value semantics (copying the Go value
// copies the icelang value); *List and *Dict have reference semantics
// (copying the Go pointer aliases the same container, matching the
// language's shared-mutable list/dict rules).
type Value interface {
	valueTag()
	// TypeName returns the icelang type name, as returned by `typeof`.
	TypeName() string
}

// Int is an arbitrary-precision signed integer. By convention V is never
// mutated in place after construction — arithmetic always produces a
// fresh *big.Int — so Int behaves as a value type despite wrapping a
// pointer.
type Int struct{ V *big.Int }

// Byte is an unsigned 8-bit integer.
type Byte struct{ V uint8 }

// Float is an IEEE-754 binary64 value; NaN and ±Infinity are valid.
type Float struct{ V float64 }

// Bool is a boolean.
type Bool struct{ V bool }

// String is immutable UTF-8 text.
type String struct{ V string }

// Null is the unit value.
type Null struct{}

// List is a mutable, reference-shared, ordered sequence of values.
// Always used as *List so that multiple bindings can alias one
// container.
type List struct{ Items []Value }

// Dict is a mutable, reference-shared mapping from Value to Value.
// Always used as *Dict. Iteration order is unspecified (map iteration).
type Dict struct {
	entries map[string]dictEntry
}

type dictEntry struct {
	key Value
	val Value
}

func (Int) valueTag()     {}
func (Byte) valueTag()    {}
func (Float) valueTag()   {}
func (Bool) valueTag()    {}
func (String) valueTag()  {}
func (Null) valueTag()    {}
func (*List) valueTag()   {}
func (*Dict) valueTag()   {}

func (Int) TypeName() string    { return "int" }
func (Byte) TypeName() string   { return "byte" }
func (Float) TypeName() string  { return "float" }
func (Bool) TypeName() string   { return "bool" }
func (String) TypeName() string { return "string" }
func (Null) TypeName() string   { return "null" }
func (*List) TypeName() string  { return "list" }
func (*Dict) TypeName() string  { return "dict" }

// NewInt wraps a *big.Int as an Int value.
func NewInt(v *big.Int) Int { return Int{V: v} }

// NewIntFromInt64 constructs an Int value from an int64.
func NewIntFromInt64(v int64) Int { return Int{V: big.NewInt(v)} }

// NewList wraps items as a *List; nil items give an empty list.
func NewList(items []Value) *List {
	if items == nil {
		items = []Value{}
	}
	return &List{Items: items}
}

// NewDict constructs an empty *Dict.
func NewDict() *Dict {
	return &Dict{entries: make(map[string]dictEntry)}
}

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.entries) }

// Get looks up key, returning (value, true) if present.
func (d *Dict) Get(key Value) (Value, bool) {
	e, ok := d.entries[HashKey(key)]
	if !ok {
		return nil, false
	}
	return e.val, true
}

// Set inserts or overwrites key -> val.
func (d *Dict) Set(key, val Value) {
	d.entries[HashKey(key)] = dictEntry{key: key, val: val}
}

// Delete removes key, returning (removedValue, true) if it was present.
func (d *Dict) Delete(key Value) (Value, bool) {
	k := HashKey(key)
	e, ok := d.entries[k]
	if !ok {
		return nil, false
	}
	delete(d.entries, k)
	return e.val, true
}

// Keys returns the dict's keys in unspecified (map-iteration) order.
func (d *Dict) Keys() []Value {
	out := make([]Value, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, e.key)
	}
	return out
}

// Each calls fn for every key/value pair, in unspecified order.
func (d *Dict) Each(fn func(key, val Value)) {
	for _, e := range d.entries {
		fn(e.key, e.val)
	}
}

// ReferenceCopy returns an alias for containers and a (cheap) copy for
// scalars.
func ReferenceCopy(v Value) Value {
	return v
}

// DeepCopy recursively clones containers; scalars are returned as-is
// (they are already independent by value).
func DeepCopy(v Value) Value {
	switch vv := v.(type) {
	case *List:
		items := make([]Value, len(vv.Items))
		for i, item := range vv.Items {
			items[i] = DeepCopy(item)
		}
		return NewList(items)
	case *Dict:
		out := NewDict()
		vv.Each(func(k, val Value) {
			out.Set(DeepCopy(k), DeepCopy(val))
		})
		return out
	default:
		return v
	}
}
