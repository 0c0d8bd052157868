package optional

import (
	"bytes"
	"encoding/json"
)

// Field distinguishes a key that was absent, present as null, or present with a value.
type Field[T any] struct {
	value T
	set   bool
	null  bool
}

func Of[T any](v T) Field[T] { return Field[T]{value: v, set: true} }

func Null[T any]() Field[T] { return Field[T]{set: true, null: true} }

func (f Field[T]) IsSet() bool  { return f.set }
func (f Field[T]) IsNull() bool { return f.set && f.null }

// Get returns the value and whether a non-null value is present.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.set && !f.null
}

// Ptr returns nil for absent or null fields.
func (f Field[T]) Ptr() *T {
	if !f.set || f.null {
		return nil
	}
	v := f.value
	return &v
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	f.null = false
	return json.Unmarshal(b, &f.value)
}
