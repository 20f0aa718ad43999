package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		defn     Type
		expected string
	}{
		{Boolean, NameBoolean},
		{Number, NameNumber},
		{Type(0), "invalid"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, tc.defn.String())
	}
}

func TestTypeValid(t *testing.T) {
	t.Parallel()
	assert.True(t, Boolean.Valid())
	assert.True(t, Number.Valid())
	assert.False(t, Type(0).Valid())
	assert.False(t, Type(42).Valid())
	assert.NotEqual(t, Boolean, Number)
}

func TestLookup(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		defn  Type
		found bool
	}{
		{"Boolean", Boolean, true},
		{"boolean", Boolean, true},
		{" NUMBER ", Number, true},
		{"number", Number, true},
		{"string", Type(0), false},
		{"", Type(0), false},
	}

	for i, tc := range cases {
		defn, found := Lookup(tc.name)
		assert.Equal(t, tc.found, found, "[%v] %q", i, tc.name)
		assert.Equal(t, tc.defn, defn, "[%v] %q", i, tc.name)
	}
}
