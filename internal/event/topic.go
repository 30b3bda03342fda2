package event

import "strings"

// Topic is a hierarchical, dot-separated event name such as
// "cursor.selections.changed". Subscription patterns may use wildcards:
// "*" matches exactly one segment and a trailing "**" matches zero or
// more segments.
type Topic string

// Segments splits the topic on dots.
func (t Topic) Segments() []string {
	if t == "" {
		return nil
	}
	return strings.Split(string(t), ".")
}

// IsWildcard returns true if the topic contains a wildcard segment.
func (t Topic) IsWildcard() bool {
	for _, s := range t.Segments() {
		if s == "*" || s == "**" {
			return true
		}
	}
	return false
}

// Matches returns true if the concrete topic t matches pattern.
func (t Topic) Matches(pattern Topic) bool {
	if pattern == t {
		return true
	}
	return matchSegments(pattern.Segments(), t.Segments())
}

func matchSegments(pattern, segs []string) bool {
	for i, p := range pattern {
		if p == "**" {
			return i == len(pattern)-1
		}
		if i >= len(segs) {
			return false
		}
		if p != "*" && p != segs[i] {
			return false
		}
	}
	return len(pattern) == len(segs)
}
