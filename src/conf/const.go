// Package conf contains the constants that are used across packages for
// versions and limits, and the runtime configuration read from the
// environment.
package conf

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

const (
	// VERSION is the version of the arith application.
	VERSION = "Arith 0.1.0"
	// VERSIONMAJORN is the major version.
	VERSIONMAJORN = 0
	// VERSIONMINORN is the minor version.
	VERSIONMINORN = 1
	// VERSIONPATCHN is the patch version.
	VERSIONPATCHN = 0
	// MAXSYNTAXLEVELS max nesting of parenthesised or conditional expressions
	// the parser will descend into.
	MAXSYNTAXLEVELS = 200
)

// FullVersion returns the version and copyright.
func FullVersion() string {
	return fmt.Sprintf("%v %v", VERSION, Copyright())
}

// Copyright is the copyright to be written out in the CLI.
func Copyright() string {
	now := time.Now()
	strf, err := strftime.New("Copyright (C) %Y")
	if err != nil {
		return fmt.Sprintf("Copyright (C) %v", now.Year())
	}
	return strf.FormatString(now)
}
