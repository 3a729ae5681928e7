package types

type (
	// Filter selects files by extension suffix and/or base name. An empty
	// field is absent. A Filter is immutable for the duration of one call.
	Filter struct {
		Extension string `json:"extension,omitempty"`
		BaseName  string `json:"baseName,omitempty"`
	}

	// Scope is the mode switch shared by copy and delete.
	Scope int

	// Selection is the tagged form of the mode switch: WholeTree carries no
	// filter, Filtered carries one with at least one field set.
	Selection struct {
		Scope  Scope
		Filter Filter
	}
)

const (
	ScopeWholeTree Scope = iota
	ScopeFiltered
)

func (s Scope) String() string {
	if s == ScopeFiltered {
		return "filtered"
	}
	return "whole-tree"
}

// IsZero reports whether neither field is set.
func (f Filter) IsZero() bool {
	return f.Extension == "" && f.BaseName == ""
}

// Select builds the Selection for the given optional extension and base name.
func Select(extension, baseName string) Selection {
	f := Filter{Extension: extension, BaseName: baseName}
	if f.IsZero() {
		return WholeTree()
	}
	return Selection{Scope: ScopeFiltered, Filter: f}
}

// WholeTree returns the unfiltered selection.
func WholeTree() Selection {
	return Selection{Scope: ScopeWholeTree}
}

// Filtered returns a filtered selection. A zero filter collapses to WholeTree.
func Filtered(f Filter) Selection {
	return Select(f.Extension, f.BaseName)
}

// IsWholeTree reports whether the selection is the whole-tree mode.
func (s Selection) IsWholeTree() bool {
	return s.Scope == ScopeWholeTree
}
