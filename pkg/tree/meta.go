package tree

import "reflect"

// Meta is the open metadata bag attached to every node. Keys are strings,
// values are arbitrary.
type Meta map[string]any

func (m Meta) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Meta) Has(key string) bool {
	_, ok := m[key]
	return ok
}

func (m Meta) Set(key string, value any) {
	m[key] = value
}

func (m Meta) Delete(key string) {
	delete(m, key)
}

func (m Meta) Len() int {
	return len(m)
}

// Equal reports whether both bags hold the same keys with deeply equal
// values. A nil bag equals an empty one.
func (m Meta) Equal(other Meta) bool {
	if len(m) != len(other) {
		return false
	}
	for key, value := range m {
		otherValue, ok := other[key]
		if !ok || !reflect.DeepEqual(value, otherValue) {
			return false
		}
	}
	return true
}

func (m Meta) Clone() Meta {
	if m == nil {
		return nil
	}
	clone := make(Meta, len(m))
	for key, value := range m {
		clone[key] = value
	}
	return clone
}
