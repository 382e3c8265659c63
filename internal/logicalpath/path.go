// Package logicalpath implements the canonical module-path type shared by
// the resolver, extractor, rule engine, and cycle detector: a non-empty,
// ordered sequence of identifier segments joined by "::".
package logicalpath

import (
	"errors"
	"strings"
)

// Separator joins logical path segments, matching the host language's own
// module-path syntax so extracted and resolved paths are byte-comparable.
const Separator = "::"

// ErrInvalidMatchQuery is returned when a descendant query names an empty
// ancestor; an empty path cannot anchor a prefix test.
var ErrInvalidMatchQuery = errors.New("logicalpath: ancestor must not be empty")

// Path is a canonical, package-qualified module path such as
// "my_crate::domain::policy".
type Path string

// Empty is the zero-value path, used to represent "no path could be
// resolved" without a pointer.
const Empty Path = ""

// Join assembles a Path from individual segments.
func Join(segments ...string) Path {
	return Path(strings.Join(segments, Separator))
}

// Segments splits the path into its ordered identifier segments.
func (p Path) Segments() []string {
	if p == Empty {
		return nil
	}
	return strings.Split(string(p), Separator)
}

// Head returns the first segment (the owning package's name), or "" for an
// empty path.
func (p Path) Head() string {
	segs := p.Segments()
	if len(segs) == 0 {
		return ""
	}
	return segs[0]
}

// Parent returns the path with its final segment dropped. Parent of a
// single-segment path is Empty.
func (p Path) Parent() Path {
	segs := p.Segments()
	if len(segs) <= 1 {
		return Empty
	}
	return Join(segs[:len(segs)-1]...)
}

// Child appends a segment, returning the descendant path.
func (p Path) Child(segment string) Path {
	if p == Empty {
		return Path(segment)
	}
	return p + Separator + Path(segment)
}

// Truncate collapses the path to its first n segments. A path shorter than
// n is returned unchanged. Truncate(0) always yields Empty.
func (p Path) Truncate(n int) Path {
	if n <= 0 {
		return Empty
	}
	segs := p.Segments()
	if len(segs) <= n {
		return p
	}
	return Join(segs[:n]...)
}

// IsDescendant reports whether path is ancestor itself, or begins with
// ancestor followed by the separator. An empty ancestor is rejected: it
// cannot meaningfully anchor a prefix test.
func IsDescendant(path, ancestor Path) (bool, error) {
	if ancestor == Empty {
		return false, ErrInvalidMatchQuery
	}
	if path == ancestor {
		return true, nil
	}
	return strings.HasPrefix(string(path), string(ancestor)+Separator), nil
}

// IsDescendantOf is the panic-on-empty-ancestor convenience used by rule
// implementations, whose ancestor sets are always built from already
// non-empty rule subjects. A programmer error here is a setup error, not a
// recoverable one.
func IsDescendantOf(path, ancestor Path) bool {
	ok, err := IsDescendant(path, ancestor)
	if err != nil {
		panic(err)
	}
	return ok
}

// IsDescendantOfAny reports whether path is a descendant of any entry in
// ancestors (a prefix set).
func IsDescendantOfAny(path Path, ancestors []Path) bool {
	for _, ancestor := range ancestors {
		if IsDescendantOf(path, ancestor) {
			return true
		}
	}
	return false
}
