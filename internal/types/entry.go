// Package types defines the data structures shared by the traversal engine,
// its observers and the command layer.
package types

type (
	// Kind tags a filesystem entry as a directory or a file.
	Kind int

	// Entry is a path observed during a walk together with its kind.
	// Entries are derived from a live stat call and are never cached.
	Entry struct {
		Path string `json:"path"`
		Kind Kind   `json:"kind"`
	}
)

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}
