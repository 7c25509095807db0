package required

var std Reader

// String returns the value of the environment variable key.
//
// Example:
//
//	dsn, err := required.String("DATABASE_URL")
func String(key string) (string, error) { return std.String(key) }

// Int returns the environment variable key as an int.
// "42" and "42.0" both yield 42; "45.7" fails with envcast.ErrNotAnInt.
func Int(key string) (int, error) { return std.Int(key) }

// Number returns the environment variable key as a finite float64.
func Number(key string) (float64, error) { return std.Number(key) }

// Enum returns the environment variable key when it is one of allowed.
//
// Example:
//
//	mode, err := required.Enum("APP_ENV", []string{"development", "production"})
func Enum[T ~string](key string, allowed []T) (T, error) { return EnumFrom(std, key, allowed) }

// Bool returns the environment variable key as a bool.
func Bool(key string) (bool, error) { return std.Bool(key) }

// Array splits the environment variable key on sep ("" means ",").
func Array(key, sep string) ([]string, error) { return std.Array(key, sep) }

// Transform applies fn to the environment variable key.
func Transform[T any](key string, fn func(string) (T, error)) (T, error) {
	return TransformFrom(std, key, fn)
}

// TransformArray splits the environment variable key on sep and applies fn
// to each element.
//
// Example:
//
//	ports, err := required.TransformArray("PORTS", ",", strconv.Atoi)
func TransformArray[T any](key, sep string, fn func(string) (T, error)) ([]T, error) {
	return TransformArrayFrom(std, key, sep, fn)
}

// Check reports every environment variable in keys that is not set.
func Check(keys ...string) error { return std.Check(keys...) }
