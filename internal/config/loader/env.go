package loader

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvLoader reads prefixed environment variables.
type EnvLoader struct {
	prefix string // e.g. "STRIDE_"
	lookup func(string) (string, bool)
}

// NewEnvLoader creates a loader over the process environment.
// The prefix should include the trailing underscore (e.g., "STRIDE_").
func NewEnvLoader(prefix string) *EnvLoader {
	return NewEnvLoaderWithLookup(prefix, os.LookupEnv)
}

// NewEnvLoaderWithLookup creates a loader over a custom lookup function.
func NewEnvLoaderWithLookup(prefix string, lookup func(string) (string, bool)) *EnvLoader {
	return &EnvLoader{prefix: prefix, lookup: lookup}
}

// Prefix returns the variable prefix.
func (l *EnvLoader) Prefix() string {
	return l.prefix
}

// Lookup returns the value of the prefixed variable name. Empty values
// count as set.
func (l *EnvLoader) Lookup(name string) (string, bool) {
	return l.lookup(l.prefix + name)
}

// ParseInt parses a decimal integer, ignoring surrounding whitespace.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}

// ParseBool accepts true/false, yes/no, on/off and 1/0 in any case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
