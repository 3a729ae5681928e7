// Package predicate decides whether a file path satisfies a Filter.
//
// Matching is a pure function of the path string and the filter: it never
// touches the filesystem. Comparisons are exact and case-sensitive, and the
// extension is compared verbatim as a suffix, so callers supply the leading
// dot themselves (".js", not "js").
package predicate

import (
	"path/filepath"
	"strings"

	"github.com/taigrr/treeops/internal/types"
)

// Evaluator applies one Filter to any number of paths.
type Evaluator struct {
	filter types.Filter
}

// New creates an Evaluator for the given filter.
func New(f types.Filter) *Evaluator {
	return &Evaluator{filter: f}
}

// Matches reports whether path satisfies the evaluator's filter.
func (e *Evaluator) Matches(path string) bool {
	return Matches(path, e.filter)
}

// Matches reports whether path satisfies f. An empty filter matches
// everything; when both fields are set both must hold.
func Matches(path string, f types.Filter) bool {
	if f.Extension != "" && !strings.HasSuffix(path, f.Extension) {
		return false
	}
	if f.BaseName != "" && NameWithoutExt(path) != f.BaseName {
		return false
	}
	return true
}

// NameWithoutExt returns the final element of path with its extension
// removed. A name whose only dot is the leading one (".env") has no
// extension and is returned whole.
func NameWithoutExt(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, Ext(name))
}

// Ext returns the extension of the final element of path, including the
// dot. Unlike filepath.Ext, a leading dot does not start an extension.
func Ext(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return ""
	}
	return name[i:]
}
