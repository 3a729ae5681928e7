// Package filesystem provides the find, copy and delete operations over a
// directory tree.
//
// Every call walks the live filesystem; nothing is cached between calls and
// nothing is rolled back when a call fails part way. Operations are
// synchronous and a Service must not be used to mutate the same tree from
// several goroutines at once.
package filesystem

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/taigrr/treeops/internal/types"
)

// Service runs tree operations and reports each mutation to an observer.
type Service struct {
	root     string
	observer types.Observer
}

// New creates a Service. root only bounds ResolvePath; the operations
// themselves accept any path. A nil observer discards events.
func New(root string, observer types.Observer) *Service {
	absPath, _ := filepath.Abs(root)
	if observer == nil {
		observer = types.Discard
	}
	return &Service{
		root:     absPath,
		observer: observer,
	}
}

// ResolvePath resolves a path relative to the service root and rejects
// anything that escapes it.
func (s *Service) ResolvePath(relativePath string) (string, error) {
	relativePath = strings.TrimSpace(relativePath)
	relativePath = strings.TrimPrefix(relativePath, "/")

	absPath, err := filepath.Abs(filepath.Join(s.root, relativePath))
	if err != nil {
		return "", err
	}

	relPath, err := filepath.Rel(s.root, absPath)
	if err != nil {
		return "", err
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}

// RelativePath reports path relative to the service root using forward
// slashes. Paths outside the root are returned unchanged.
func (s *Service) RelativePath(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}

// Root returns the absolute root directory.
func (s *Service) Root() string {
	return s.root
}

func (s *Service) emit(action types.Action, path, target string) {
	s.observer.Observe(types.Event{Action: action, Path: path, Target: target})
}
