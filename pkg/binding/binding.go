// Package binding describes how form fields map onto locations inside an
// arbitrary domain object. A Path is an ordered list of segments resolved
// against an Object, the narrow capability a bound value must implement.
package binding

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPathNotFound reports a segment missing from the target object.
	ErrPathNotFound = errors.New("binding: path not found")
	// ErrNotContainer reports a segment that resolved to a value which cannot
	// hold further segments.
	ErrNotContainer = errors.New("binding: value is not a container")
	// ErrEmptyPath reports a lookup with no segments.
	ErrEmptyPath = errors.New("binding: empty path")
)

// Path is an ordered sequence of field access steps.
type Path []string

// ParsePath splits a dotted path such as "address.street".
func ParsePath(dotted string) Path {
	dotted = strings.TrimSpace(dotted)
	if dotted == "" {
		return nil
	}
	parts := strings.Split(dotted, ".")
	out := make(Path, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String joins the segments with dots.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Object is implemented by values that can be bound to a form.
type Object interface {
	GetPath(path Path) (any, error)
	SetPath(path Path, value any) error
}

// Mapping associates form field keys with object paths. Fields without an
// entry bind to the same-named top level segment.
type Mapping map[string]Path

// PathFor returns the mapped path for key, defaulting to Path{key}.
func (m Mapping) PathFor(key string) Path {
	if path, ok := m[key]; ok && len(path) > 0 {
		return path
	}
	return Path{key}
}

// PathError records a failed path resolution.
type PathError struct {
	Op      string
	Path    Path
	Segment string
	Err     error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("binding: %s %q at segment %q: %v", e.Op, e.Path.String(), e.Segment, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
