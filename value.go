package json

// Kind identifies which of the six JSON kinds a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{"null", "bool", "number", "string", "array", "object"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Value is one node of a JSON document tree. The zero Value is null.
//
// A Value owns its payload outright: arrays and objects hold their
// children directly, so copying a Value shares no mutable state with
// trees it was not copied from, and the grammar cannot produce cycles.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
	obj  []Member
}

// Member is one key/value pair of an object. Objects keep members in
// insertion order.
type Member struct {
	Key   string
	Value Value
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool returns a JSON boolean.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Number returns a JSON number.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a JSON string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array returns a JSON array of the given elements.
func Array(elems ...Value) Value { return Value{kind: KindArray, arr: elems} }

// Object returns a JSON object with the given members. Duplicate keys
// follow Set semantics: the first occurrence keeps its position in
// member order and later occurrences overwrite its value.
func Object(members ...Member) Value {
	v := Value{kind: KindObject}
	for _, m := range members {
		v.Set(m.Key, m.Value)
	}
	return v
}

// Kind reports which JSON kind v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload; it is false for non-boolean values.
func (v Value) Bool() bool { return v.b }

// Float64 returns the number payload; it is 0 for non-number values.
func (v Value) Float64() float64 { return v.num }

// Str returns the string payload; it is empty for non-string values.
func (v Value) Str() string { return v.str }

// Len returns the number of elements of an array or members of an
// object, and 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	}
	return 0
}

// Index returns element i of an array. It returns null when v is not an
// array or i is out of range.
func (v Value) Index(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}
	}
	return v.arr[i]
}

// Get returns the value mapped to key in an object and whether the key
// is present.
func (v Value) Get(key string) (Value, bool) {
	if v.kind == KindObject {
		for _, m := range v.obj {
			if m.Key == key {
				return m.Value, true
			}
		}
	}
	return Value{}, false
}

// Members returns an object's members in insertion order. The slice is
// the object's own storage; callers must not grow it.
func (v Value) Members() []Member { return v.obj }

// Set maps key to val in an object. Overwriting an existing key keeps
// its original position in member order. Set panics when v is not an
// object.
func (v *Value) Set(key string, val Value) {
	if v.kind != KindObject {
		panic("json: Set on " + v.kind.String() + " value")
	}
	for i := range v.obj {
		if v.obj[i].Key == key {
			v.obj[i].Value = val
			return
		}
	}
	v.obj = append(v.obj, Member{Key: key, Value: val})
}

// Equal reports structural equality: same kind and payload, arrays
// element-wise equal, objects member-wise equal in the same order.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == w.b
	case KindNumber:
		return v.num == w.num
	case KindString:
		return v.str == w.str
	case KindArray:
		if len(v.arr) != len(w.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(w.arr[i]) {
				return false
			}
		}
	case KindObject:
		if len(v.obj) != len(w.obj) {
			return false
		}
		for i := range v.obj {
			if v.obj[i].Key != w.obj[i].Key || !v.obj[i].Value.Equal(w.obj[i].Value) {
				return false
			}
		}
	}
	return true
}

// String renders v as compact JSON text.
func (v Value) String() string { return string(Append(nil, v)) }
