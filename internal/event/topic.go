package event

import "strings"

// Topic is a hierarchical event type using dot notation,
// e.g. "selection.changed" or "grid.snapshot.changed".
type Topic string

// Separator is the character used to separate topic segments.
const Separator = "."

// Wildcard matches any remaining segments when it is the final segment
// of a subscription pattern, e.g. "selection.*".
const Wildcard = "*"

// String returns the topic as a string.
func (t Topic) String() string {
	return string(t)
}

// Validate reports whether the topic is well formed: non-empty, no
// empty segments, and no interior wildcard.
func (t Topic) Validate() error {
	if t == "" {
		return ErrInvalidTopic
	}
	segments := strings.Split(string(t), Separator)
	for i, seg := range segments {
		if seg == "" {
			return ErrInvalidTopic
		}
		if seg == Wildcard && i != len(segments)-1 {
			return ErrInvalidTopic
		}
	}
	return nil
}

// Matches reports whether the topic matches the given pattern.
// Patterns match exactly, or by a trailing "*" covering one or more
// remaining segments: "selection.*" matches "selection.changed" and
// "selection.drag.started" but not "selection".
func (t Topic) Matches(pattern Topic) bool {
	if t == pattern {
		return true
	}
	if !strings.HasSuffix(string(pattern), Wildcard) {
		return false
	}
	prefix := strings.TrimSuffix(string(pattern), Wildcard)
	if prefix == "" {
		return t != ""
	}
	if !strings.HasSuffix(prefix, Separator) {
		return false
	}
	return strings.HasPrefix(string(t), prefix)
}
