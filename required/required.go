// Package required reads environment variables that must be set.
//
// Every accessor first looks the key up and fails with envcast.ErrMissingKey
// when it is absent; only then is the value cast. Failures are *envcast.Error
// values, except for errors returned by caller-supplied transform functions,
// which are passed through untouched.
package required

import (
	"errors"

	"github.com/containeroo/envcast"
)

// Reader reads required variables from a Source.
// The zero value reads the process environment.
type Reader struct {
	src envcast.Source
}

// New returns a Reader over src. A nil src reads the process environment.
func New(src envcast.Source) Reader {
	return Reader{src: src}
}

// String returns the raw value of key.
func (r Reader) String(key string) (string, error) {
	src := r.src
	if src == nil {
		src = envcast.OS
	}
	v, ok := src.Lookup(key)
	if !ok {
		return "", envcast.Missing(key)
	}
	return v, nil
}

// Int returns key as an int. See envcast.ParseInt for accepted forms.
func (r Reader) Int(key string) (int, error) {
	v, err := r.String(key)
	if err != nil {
		return 0, err
	}
	n, err := envcast.ParseInt(v)
	return n, envcast.Wrap(key, err)
}

// Number returns key as a finite float64.
func (r Reader) Number(key string) (float64, error) {
	v, err := r.String(key)
	if err != nil {
		return 0, err
	}
	f, err := envcast.ParseNumber(v)
	return f, envcast.Wrap(key, err)
}

// Bool returns key as a bool. See envcast.ParseBool for accepted literals.
func (r Reader) Bool(key string) (bool, error) {
	v, err := r.String(key)
	if err != nil {
		return false, err
	}
	b, err := envcast.ParseBool(v)
	return b, envcast.Wrap(key, err)
}

// Array splits key on sep ("" means envcast.DefaultSeparator).
func (r Reader) Array(key, sep string) ([]string, error) {
	v, err := r.String(key)
	if err != nil {
		return nil, err
	}
	return envcast.Split(v, sep), nil
}

// Check reports every key in keys that r does not have, joined into one error.
// It returns nil when all keys are present.
func (r Reader) Check(keys ...string) error {
	errs := make([]error, 0, len(keys))
	for _, k := range keys {
		if _, err := r.String(k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// EnumFrom returns key read through r when its value is one of allowed.
func EnumFrom[T ~string](r Reader, key string, allowed []T) (T, error) {
	v, err := r.String(key)
	if err != nil {
		return "", err
	}
	e, err := envcast.CheckEnum(v, allowed)
	return e, envcast.Wrap(key, err)
}

// TransformFrom applies fn to the value of key read through r.
func TransformFrom[T any](r Reader, key string, fn func(string) (T, error)) (T, error) {
	v, err := r.String(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(v)
}

// TransformArrayFrom splits key read through r on sep and applies fn to each
// element in order, stopping at the first error.
func TransformArrayFrom[T any](r Reader, key, sep string, fn func(string) (T, error)) ([]T, error) {
	parts, err := r.Array(key, sep)
	if err != nil {
		return nil, err
	}
	return envcast.MapWithError(parts, fn)
}
