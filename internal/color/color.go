// Package color decides whether output should carry ANSI color, per the
// same environment-variable and TTY precedence as common CLI tooling.
package color

import (
	"os"

	"golang.org/x/term"
)

// Policy is the user-selected color mode.
type Policy string

const (
	PolicyAuto   Policy = "auto"
	PolicyAlways Policy = "always"
	PolicyNever  Policy = "never"
)

// ParsePolicy parses a CLI/config value, defaulting to PolicyAuto for an
// empty or unrecognized string.
func ParsePolicy(s string) Policy {
	switch Policy(s) {
	case PolicyAlways:
		return PolicyAlways
	case PolicyNever:
		return PolicyNever
	default:
		return PolicyAuto
	}
}

// Enabled reports whether p resolves to colored output, consulting the
// real environment and stdout's TTY state.
func (p Policy) Enabled() bool {
	return p.enabledWith(term.IsTerminal(int(os.Stdout.Fd())), os.LookupEnv)
}

// enabledWith is Enabled's pure core: lookup is an env-var accessor,
// substituted in tests to avoid touching the real environment.
func (p Policy) enabledWith(stdoutIsTTY bool, lookup func(string) (string, bool)) bool {
	switch p {
	case PolicyAlways:
		return true
	case PolicyNever:
		return false
	}

	if _, ok := lookup("NO_COLOR"); ok {
		return false
	}
	if v, ok := lookup("CLICOLOR"); ok && v == "0" {
		return false
	}
	if v, ok := lookup("TERM"); ok && v == "dumb" {
		return false
	}
	if v, ok := lookup("CLICOLOR_FORCE"); ok && v == "1" {
		return true
	}
	if v, ok := lookup("FORCE_COLOR"); ok && v == "1" {
		return true
	}

	return stdoutIsTTY
}
