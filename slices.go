package envcast

// MapWithError applies a transformation function that may return an error to each item in a slice.
// The operation stops on the first error, which is returned unchanged.
//
// Parameters:
//   - in: the input slice of any type T.
//   - fn: a function that maps each T to U and may return an error.
//
// Returns:
//   - a slice of type U containing all transformed items, in input order.
//   - the first error fn returned, if any.
func MapWithError[T, U any](in []T, fn func(T) (U, error)) ([]U, error) {
	out := make([]U, 0, len(in))
	for _, item := range in {
		v, err := fn(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
