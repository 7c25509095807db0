package required

import (
	"testing"

	"github.com/containeroo/envcast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	t.Parallel()

	r := New(envcast.Map{
		"HOST":     "localhost",
		"PORT":     "8080",
		"RATIO":    "0.75",
		"DEBUG":    "TRUE",
		"MODE":     "production",
		"PEERS":    "a;b;c",
		"BAD_PORT": "80.5",
	})

	t.Run("String", func(t *testing.T) {
		t.Parallel()
		v, err := r.String("HOST")
		require.NoError(t, err)
		assert.Equal(t, "localhost", v)
	})

	t.Run("Int", func(t *testing.T) {
		t.Parallel()
		v, err := r.Int("PORT")
		require.NoError(t, err)
		assert.Equal(t, 8080, v)

		_, err = r.Int("BAD_PORT")
		assert.ErrorIs(t, err, envcast.ErrNotAnInt)
	})

	t.Run("Number", func(t *testing.T) {
		t.Parallel()
		v, err := r.Number("RATIO")
		require.NoError(t, err)
		assert.Equal(t, 0.75, v)
	})

	t.Run("Bool", func(t *testing.T) {
		t.Parallel()
		v, err := r.Bool("DEBUG")
		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("Array", func(t *testing.T) {
		t.Parallel()
		v, err := r.Array("PEERS", ";")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, v)
	})

	t.Run("EnumFrom", func(t *testing.T) {
		t.Parallel()
		v, err := EnumFrom(r, "MODE", []string{"development", "production"})
		require.NoError(t, err)
		assert.Equal(t, "production", v)
	})

	t.Run("TransformFrom", func(t *testing.T) {
		t.Parallel()
		v, err := TransformFrom(r, "HOST", func(s string) (int, error) { return len(s), nil })
		require.NoError(t, err)
		assert.Equal(t, 9, v)
	})

	t.Run("TransformArrayFrom", func(t *testing.T) {
		t.Parallel()
		v, err := TransformArrayFrom(r, "PEERS", ";", func(s string) (string, error) { return s + s, nil })
		require.NoError(t, err)
		assert.Equal(t, []string{"aa", "bb", "cc"}, v)
	})

	t.Run("missing key fails before casting", func(t *testing.T) {
		t.Parallel()
		_, err := r.Int("NOPE")
		assert.ErrorIs(t, err, envcast.ErrMissingKey)
		_, err = r.Bool("NOPE")
		assert.ErrorIs(t, err, envcast.ErrMissingKey)
		_, err = EnumFrom(r, "NOPE", []string{"x"})
		assert.ErrorIs(t, err, envcast.ErrMissingKey)
	})

	t.Run("Check", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, r.Check("HOST", "PORT"))
		assert.ErrorIs(t, r.Check("HOST", "NOPE"), envcast.ErrMissingKey)
	})
}

func TestReader_ZeroValueReadsProcessEnv(t *testing.T) {
	t.Setenv("envZeroReader", "yes")
	var r Reader
	v, err := r.String("envZeroReader")
	require.NoError(t, err)
	assert.Equal(t, "yes", v)
}
