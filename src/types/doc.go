// Package types contains the type tags assigned to expressions by the checker.
// There are exactly two of them, Boolean and Number, and they carry no
// parameters so two types are compatible only when their tags are equal.
package types //nolint:revive
