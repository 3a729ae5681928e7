package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/taigrr/treeops/internal/fserr"
	"github.com/taigrr/treeops/internal/predicate"
	"github.com/taigrr/treeops/internal/types"
	"github.com/taigrr/treeops/internal/walk"
)

// Copy mirrors srcDir into destDir.
//
// In whole-tree mode the entire source tree is duplicated and the returned
// slice is empty; individual files are not enumerated. In filtered mode
// every source directory is mirrored (even ones that end up holding no
// matches), matching files are copied byte for byte, and the source paths of
// the copied files are returned in walk order. Existing destination files are
// overwritten. A destination below srcDir is left out of the walk; a
// destination equal to srcDir is rejected.
func (s *Service) Copy(srcDir, destDir string, sel types.Selection) ([]string, error) {
	nested, err := nestedDest(srcDir, destDir)
	if err != nil {
		return nil, err
	}

	switch sel.Scope {
	case types.ScopeWholeTree:
		if err := s.ensureDir(destDir); err != nil {
			return nil, err
		}
		if err := copyTree(srcDir, destDir, nested); err != nil {
			return nil, err
		}
		s.emit(types.ActionCopyTree, srcDir, destDir)
		return []string{}, nil
	case types.ScopeFiltered:
		return s.copyFiltered(srcDir, destDir, nested, predicate.New(sel.Filter))
	default:
		return nil, fmt.Errorf("unknown scope: %d", sel.Scope)
	}
}

func (s *Service) copyFiltered(srcDir, destDir, nested string, eval *predicate.Evaluator) ([]string, error) {
	if err := s.ensureDir(destDir); err != nil {
		return nil, err
	}

	results := []string{}
	err := walk.Walk(srcDir, walk.Funcs{
		Enter: func(path string) error {
			if err := skipNested(path, nested); err != nil {
				return err
			}
			s.emit(types.ActionEnter, path, "")
			target, err := mirror(srcDir, destDir, path)
			if err != nil {
				return err
			}
			return s.ensureDir(target)
		},
		File: func(path string) error {
			if !eval.Matches(path) {
				s.emit(types.ActionSkip, path, "")
				return nil
			}
			target, err := mirror(srcDir, destDir, path)
			if err != nil {
				return err
			}
			if err := copyFile(path, target); err != nil {
				return err
			}
			results = append(results, path)
			s.emit(types.ActionCopy, path, target)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// ensureDir creates dir and its parents when it does not exist yet.
func (s *Service) ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fserr.Wrap("mkdir", dir, syscall.ENOTDIR)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fserr.Wrap("mkdir", dir, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fserr.Wrap("mkdir", dir, err)
	}
	s.emit(types.ActionMkdir, dir, "")
	return nil
}

// copyTree duplicates every directory and file below src into dest, except
// the nested directory when one is given.
func copyTree(src, dest, nested string) error {
	return walk.Walk(src, walk.Funcs{
		Enter: func(path string) error {
			if err := skipNested(path, nested); err != nil {
				return err
			}
			target, err := mirror(src, dest, path)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fserr.Wrap("mkdir", target, err)
			}
			return nil
		},
		File: func(path string) error {
			target, err := mirror(src, dest, path)
			if err != nil {
				return err
			}
			return copyFile(path, target)
		},
	})
}

// copyFile copies the contents of src to dest, keeping src's permission
// bits when dest is created.
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fserr.Wrap("copy", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fserr.Wrap("copy", src, err)
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fserr.Wrap("copy", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fserr.Wrap("copy", dest, err)
	}
	if err := out.Close(); err != nil {
		return fserr.Wrap("copy", dest, err)
	}
	return nil
}

// mirror maps a path below src to the same relative path below dest.
func mirror(src, dest, path string) (string, error) {
	rel, err := filepath.Rel(src, path)
	if err != nil {
		return "", fserr.Wrap("copy", path, err)
	}
	return filepath.Join(dest, rel), nil
}

// nestedDest returns the absolute form of dest when it lies below src, and
// "" when it lies elsewhere.
func nestedDest(src, dest string) (string, error) {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return "", fserr.Wrap("copy", src, err)
	}
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return "", fserr.Wrap("copy", dest, err)
	}
	if absSrc == absDest {
		return "", fserr.Wrap("copy", dest, fserr.ErrSameDirectory)
	}

	rel, err := filepath.Rel(absSrc, absDest)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", nil
	}
	return absDest, nil
}

// skipNested returns walk.SkipDir when path is the nested destination.
func skipNested(path, nested string) error {
	if nested == "" {
		return nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fserr.Wrap("copy", path, err)
	}
	if abs == nested {
		return walk.SkipDir
	}
	return nil
}
