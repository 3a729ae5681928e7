package filesystem

import (
	"fmt"
	"os"

	"github.com/taigrr/treeops/internal/fserr"
	"github.com/taigrr/treeops/internal/predicate"
	"github.com/taigrr/treeops/internal/types"
	"github.com/taigrr/treeops/internal/walk"
)

// Delete removes files below dir.
//
// In whole-tree mode dir itself is removed recursively, a missing dir is not
// an error, and the result is []string{dir}. In filtered mode matching files
// are removed and every subdirectory left empty afterwards is pruned; dir
// itself is never pruned. Only removed files appear in the result, in walk
// order. A symbolic link to a directory is walked like a directory but is
// never pruned itself.
func (s *Service) Delete(dir string, sel types.Selection) ([]string, error) {
	switch sel.Scope {
	case types.ScopeWholeTree:
		if err := os.RemoveAll(dir); err != nil {
			return nil, fserr.Wrap("remove", dir, err)
		}
		s.emit(types.ActionDeleteTree, dir, "")
		return []string{dir}, nil
	case types.ScopeFiltered:
		return s.deleteFiltered(dir, predicate.New(sel.Filter))
	default:
		return nil, fmt.Errorf("unknown scope: %d", sel.Scope)
	}
}

func (s *Service) deleteFiltered(dir string, eval *predicate.Evaluator) ([]string, error) {
	deleted := []string{}

	err := walk.Walk(dir, walk.Funcs{
		Enter: func(path string) error {
			s.emit(types.ActionEnter, path, "")
			return nil
		},
		File: func(path string) error {
			if !eval.Matches(path) {
				s.emit(types.ActionSkip, path, "")
				return nil
			}
			if err := os.Remove(path); err != nil {
				return fserr.Wrap("remove", path, err)
			}
			deleted = append(deleted, path)
			s.emit(types.ActionDelete, path, "")
			return nil
		},
		// Children have all been processed by now, so a re-list shows
		// exactly what survived.
		Leave: func(path string) error {
			info, err := os.Lstat(path)
			if err != nil {
				return fserr.Wrap("stat", path, err)
			}
			if info.Mode()&os.ModeSymlink != 0 {
				return nil
			}
			empty, err := walk.IsEmpty(path)
			if err != nil {
				return err
			}
			if !empty {
				return nil
			}
			if err := os.Remove(path); err != nil {
				return fserr.Wrap("remove", path, err)
			}
			s.emit(types.ActionPrune, path, "")
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}
