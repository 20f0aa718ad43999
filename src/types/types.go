package types

import "strings"

// Type is the tag assigned to a well typed expression.
type Type uint8

const (
	_ Type = iota
	// Boolean is the type of true, false.
	Boolean
	// Number is the type of numeric literals and additions.
	Number
)

const (
	// NameBoolean is a label for the boolean type.
	NameBoolean = "Boolean"
	// NameNumber is a label for the number type.
	NameNumber = "Number"
)

// DefaultDefns is a collection of types that exist by default, keyed by
// their lower cased name.
var DefaultDefns = map[string]Type{
	strings.ToLower(NameBoolean): Boolean,
	strings.ToLower(NameNumber):  Number,
}

func (t Type) String() string {
	switch t {
	case Boolean:
		return NameBoolean
	case Number:
		return NameNumber
	default:
		return "invalid"
	}
}

// Valid reports whether t is one of the defined types. The zero value is not.
func (t Type) Valid() bool { return t == Boolean || t == Number }

// Lookup finds a type by name, ignoring case.
func Lookup(name string) (Type, bool) {
	t, ok := DefaultDefns[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}
