// Package envcast holds the pieces shared by the required and optional
// accessor families: where values come from (Source), how they fail (Error)
// and how raw strings are cast (ParseInt, ParseNumber, CheckEnum, ParseBool, Split).
package envcast

import "os"

// Source is the key/value mapping accessors read from.
// Lookup reports whether key is present; an empty value is still present.
type Source interface {
	Lookup(key string) (string, bool)
}

// SourceFunc adapts a lookup function to a Source.
type SourceFunc func(key string) (string, bool)

func (f SourceFunc) Lookup(key string) (string, bool) { return f(key) }

// OS reads the process environment.
var OS Source = SourceFunc(os.LookupEnv)

// Map is a fixed set of variables, e.g. for tests or a captured environment.
type Map map[string]string

func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// chain consults its sources in order; the first one holding the key wins.
type chain struct {
	order []Source
}

// Chain returns a Source that looks key up in each of srcs in turn,
// e.g. Chain(Map{"PORT": "9000"}, OS) to override single variables.
// Nil sources are skipped.
func Chain(srcs ...Source) Source {
	c := &chain{order: make([]Source, 0, len(srcs))}
	for _, s := range srcs {
		if s != nil {
			c.order = append(c.order, s)
		}
	}
	return c
}

func (c *chain) Lookup(key string) (string, bool) {
	for _, s := range c.order {
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}
