package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taigrr/treeops/internal/types"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []types.Event
}

func (r *recordingObserver) Observe(e types.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) actions(a types.Action) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var paths []string
	for _, e := range r.events {
		if e.Action == a {
			paths = append(paths, e.Path)
		}
	}
	return paths
}

func setupTestTree(t *testing.T, paths ...string) (string, *Service, *recordingObserver) {
	t.Helper()
	root := t.TempDir()
	writeTree(t, root, paths...)
	obs := &recordingObserver{}
	return root, New(root, obs), obs
}

// writeTree creates each file with its own relative path as content. Paths
// ending in "/" become empty directories.
func writeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("content of "+p), 0o644))
	}
}

// join builds absolute paths below root from slash-separated relative ones.
func join(root string, rels ...string) []string {
	out := make([]string, 0, len(rels))
	for _, r := range rels {
		out = append(out, filepath.Join(root, filepath.FromSlash(r)))
	}
	return out
}

// relFiles lists every file below root as slash-separated relative paths.
func relFiles(t *testing.T, root string) []string {
	t.Helper()
	files := []string{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	return files
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
