// Package patch provides a tri-state JSON field for partial updates. A field
// left out of the request body must not be touched, while an explicit null
// must clear the stored value; a plain pointer cannot tell those apart.
package patch

import "encoding/json"

// Field records whether a key was present in the request body and, if so,
// whether it carried null or a value.
type Field[T any] struct {
	Defined bool
	Value   *T
}

// UnmarshalJSON is only invoked by encoding/json for keys present in the
// body, which is what makes Defined reliable.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Defined = true
	if string(data) == "null" {
		f.Value = nil
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

// IsNull reports whether the field was explicitly set to null.
func (f Field[T]) IsNull() bool {
	return f.Defined && f.Value == nil
}

// Get returns the value and whether one was provided.
func (f Field[T]) Get() (T, bool) {
	if !f.Defined || f.Value == nil {
		var zero T
		return zero, false
	}
	return *f.Value, true
}
