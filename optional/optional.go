// Package optional reads environment variables that may be unset.
//
// Accessors return the value and whether it was usable. An absent key and a
// present but malformed value both yield the zero value and false. Only a
// caller-supplied transform function can make an accessor return an error.
package optional

import "github.com/containeroo/envcast"

// Reader reads optional variables from a Source.
// The zero value reads the process environment.
type Reader struct {
	src envcast.Source
}

// New returns a Reader over src. A nil src reads the process environment.
func New(src envcast.Source) Reader {
	return Reader{src: src}
}

// String returns the raw value of key.
func (r Reader) String(key string) (string, bool) {
	src := r.src
	if src == nil {
		src = envcast.OS
	}
	return src.Lookup(key)
}

// Int returns key as an int. See envcast.ParseInt for accepted forms.
func (r Reader) Int(key string) (int, bool) {
	return cast(r, key, envcast.ParseInt)
}

// Number returns key as a finite float64.
func (r Reader) Number(key string) (float64, bool) {
	return cast(r, key, envcast.ParseNumber)
}

// Bool returns key as a bool. See envcast.ParseBool for accepted literals.
func (r Reader) Bool(key string) (bool, bool) {
	return cast(r, key, envcast.ParseBool)
}

// Array splits key on sep ("" means envcast.DefaultSeparator).
func (r Reader) Array(key, sep string) ([]string, bool) {
	v, ok := r.String(key)
	if !ok {
		return nil, false
	}
	return envcast.Split(v, sep), true
}

// StringOr returns key, or fallback when it is unset.
func (r Reader) StringOr(key, fallback string) string {
	if v, ok := r.String(key); ok {
		return v
	}
	return fallback
}

// IntOr returns key as an int, or fallback when it is unset or not an int.
func (r Reader) IntOr(key string, fallback int) int {
	if v, ok := r.Int(key); ok {
		return v
	}
	return fallback
}

// NumberOr returns key as a float64, or fallback when it is unset or not a number.
func (r Reader) NumberOr(key string, fallback float64) float64 {
	if v, ok := r.Number(key); ok {
		return v
	}
	return fallback
}

// BoolOr returns key as a bool, or fallback when it is unset or not a bool literal.
func (r Reader) BoolOr(key string, fallback bool) bool {
	if v, ok := r.Bool(key); ok {
		return v
	}
	return fallback
}

// EnumFrom returns key read through r when its value is one of allowed.
func EnumFrom[T ~string](r Reader, key string, allowed []T) (T, bool) {
	return cast(r, key, func(v string) (T, error) {
		return envcast.CheckEnum(v, allowed)
	})
}

// TransformFrom applies fn to the value of key read through r.
// It reports false without calling fn when key is unset; errors from fn are
// returned unchanged.
func TransformFrom[T any](r Reader, key string, fn func(string) (T, error)) (T, bool, error) {
	var zero T
	v, ok := r.String(key)
	if !ok {
		return zero, false, nil
	}
	out, err := fn(v)
	if err != nil {
		return zero, false, err
	}
	return out, true, nil
}

// TransformArrayFrom splits key read through r on sep and applies fn to each
// element in order, stopping at the first error.
func TransformArrayFrom[T any](r Reader, key, sep string, fn func(string) (T, error)) ([]T, bool, error) {
	parts, ok := r.Array(key, sep)
	if !ok {
		return nil, false, nil
	}
	out, err := envcast.MapWithError(parts, fn)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// cast runs a casting primitive over key, folding absence and failure into false.
func cast[T any](r Reader, key string, parse func(string) (T, error)) (T, bool) {
	var zero T
	v, ok := r.String(key)
	if !ok {
		return zero, false
	}
	out, err := parse(v)
	if err != nil {
		return zero, false
	}
	return out, true
}
