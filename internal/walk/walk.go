// Package walk implements the depth-first traversal shared by find, copy
// and delete.
//
// Children are visited in the order the directory listing yields them; no
// sort is applied, so callers must not depend on alphabetical order. Each
// child is classified with a fresh stat call when it is reached, which
// follows symbolic links. Any listing or stat failure aborts the walk and is
// returned to the caller.
package walk

import (
	"errors"
	"iter"
	"os"
	"path/filepath"

	"github.com/taigrr/treeops/internal/fserr"
	"github.com/taigrr/treeops/internal/types"
)

// SkipDir may be returned by EnterDir to leave that directory unvisited.
// LeaveDir is not called for a skipped directory.
var SkipDir = errors.New("walk: skip this directory")

// Visitor receives callbacks during a walk. EnterDir runs before a
// directory's children are visited and LeaveDir after all of them; neither
// is called for the root. Returning an error stops the walk.
type Visitor interface {
	EnterDir(path string) error
	VisitFile(path string) error
	LeaveDir(path string) error
}

// Funcs adapts optional functions to the Visitor interface. Nil fields are
// no-ops.
type Funcs struct {
	Enter func(path string) error
	File  func(path string) error
	Leave func(path string) error
}

func (f Funcs) EnterDir(path string) error {
	if f.Enter == nil {
		return nil
	}
	return f.Enter(path)
}

func (f Funcs) VisitFile(path string) error {
	if f.File == nil {
		return nil
	}
	return f.File(path)
}

func (f Funcs) LeaveDir(path string) error {
	if f.Leave == nil {
		return nil
	}
	return f.Leave(path)
}

// Walk visits every entry below root exactly once, depth-first in pre-order:
// a subdirectory is fully walked before its next sibling is examined.
func Walk(root string, v Visitor) error {
	names, err := Names(root)
	if err != nil {
		return err
	}

	for _, name := range names {
		entry, err := Stat(filepath.Join(root, name))
		if err != nil {
			return err
		}

		if !entry.IsDir() {
			if err := v.VisitFile(entry.Path); err != nil {
				return err
			}
			continue
		}

		if err := v.EnterDir(entry.Path); err != nil {
			if errors.Is(err, SkipDir) {
				continue
			}
			return err
		}
		if err := Walk(entry.Path, v); err != nil {
			return err
		}
		if err := v.LeaveDir(entry.Path); err != nil {
			return err
		}
	}

	return nil
}

// Names lists the entry names of dir in listing order.
func Names(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fserr.Wrap("list", dir, err)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, fserr.Wrap("list", dir, err)
	}
	return names, nil
}

// Stat classifies path as a file or directory.
func Stat(path string) (types.Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.Entry{}, fserr.Wrap("stat", path, err)
	}
	kind := types.KindFile
	if info.IsDir() {
		kind = types.KindDirectory
	}
	return types.Entry{Path: path, Kind: kind}, nil
}

// IsEmpty reports whether dir currently has no entries.
func IsEmpty(dir string) (bool, error) {
	names, err := Names(dir)
	if err != nil {
		return false, err
	}
	return len(names) == 0, nil
}

var errStop = errors.New("walk: stopped")

// All yields every entry below root in walk order, directories before their
// contents. A failure is yielded once as the final element.
func All(root string) iter.Seq2[types.Entry, error] {
	return func(yield func(types.Entry, error) bool) {
		emit := func(kind types.Kind) func(string) error {
			return func(path string) error {
				if !yield(types.Entry{Path: path, Kind: kind}, nil) {
					return errStop
				}
				return nil
			}
		}

		err := Walk(root, Funcs{
			Enter: emit(types.KindDirectory),
			File:  emit(types.KindFile),
		})
		if err != nil && !errors.Is(err, errStop) {
			yield(types.Entry{}, err)
		}
	}
}
