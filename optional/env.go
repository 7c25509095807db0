package optional

var std Reader

// String returns the environment variable key and whether it is set.
func String(key string) (string, bool) { return std.String(key) }

// Int returns the environment variable key as an int.
func Int(key string) (int, bool) { return std.Int(key) }

// Number returns the environment variable key as a finite float64.
func Number(key string) (float64, bool) { return std.Number(key) }

// Enum returns the environment variable key when it is one of allowed.
func Enum[T ~string](key string, allowed []T) (T, bool) { return EnumFrom(std, key, allowed) }

// Bool returns the environment variable key as a bool.
func Bool(key string) (bool, bool) { return std.Bool(key) }

// Array splits the environment variable key on sep ("" means ",").
func Array(key, sep string) ([]string, bool) { return std.Array(key, sep) }

// Transform applies fn to the environment variable key when it is set.
func Transform[T any](key string, fn func(string) (T, error)) (T, bool, error) {
	return TransformFrom(std, key, fn)
}

// TransformArray splits the environment variable key on sep and applies fn
// to each element when it is set.
func TransformArray[T any](key, sep string, fn func(string) (T, error)) ([]T, bool, error) {
	return TransformArrayFrom(std, key, sep, fn)
}

// StringOr returns the environment variable key, or fallback.
//
// Example:
//
//	addr := optional.StringOr("LISTEN_ADDR", ":8080")
func StringOr(key, fallback string) string { return std.StringOr(key, fallback) }

// IntOr returns the environment variable key as an int, or fallback.
func IntOr(key string, fallback int) int { return std.IntOr(key, fallback) }

// NumberOr returns the environment variable key as a float64, or fallback.
func NumberOr(key string, fallback float64) float64 { return std.NumberOr(key, fallback) }

// BoolOr returns the environment variable key as a bool, or fallback.
func BoolOr(key string, fallback bool) bool { return std.BoolOr(key, fallback) }
