package filesystem

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/treeops/internal/fserr"
	"github.com/taigrr/treeops/internal/types"
)

func TestService_Delete_Filtered(t *testing.T) {
	root, svc, obs := setupTestTree(t, "src/a.js", "src/b.txt", "src/sub/c.js")
	src := filepath.Join(root, "src")

	got, err := svc.Delete(src, types.Select(".js", ""))
	require.NoError(t, err)

	assert.ElementsMatch(t, join(root, "src/a.js", "src/sub/c.js"), got)
	assert.Equal(t, []string{"b.txt"}, relFiles(t, src))
	assert.NoDirExists(t, filepath.Join(src, "sub"))
	assert.DirExists(t, src)

	assert.ElementsMatch(t, got, obs.actions(types.ActionDelete))
	assert.Equal(t, join(root, "src/sub"), obs.actions(types.ActionPrune))
}

func TestService_Delete_PruningRules(t *testing.T) {
	root, svc, _ := setupTestTree(t,
		"tree/only/match.log",
		"tree/only/nested/match.log",
		"tree/mixed/match.log",
		"tree/mixed/keep.txt",
		"tree/mixed/inner/match.log",
		"tree/preexisting-empty/",
		"tree/untouched/keep.md",
	)
	tree := filepath.Join(root, "tree")

	got, err := svc.Delete(tree, types.Select(".log", ""))
	require.NoError(t, err)
	assert.ElementsMatch(t, join(root,
		"tree/only/match.log",
		"tree/only/nested/match.log",
		"tree/mixed/match.log",
		"tree/mixed/inner/match.log",
	), got)

	// Directories that held only matches (transitively) are gone.
	assert.NoDirExists(t, filepath.Join(tree, "only"))
	assert.NoDirExists(t, filepath.Join(tree, "mixed", "inner"))
	// Any directory left empty is pruned, including ones that started empty.
	assert.NoDirExists(t, filepath.Join(tree, "preexisting-empty"))
	// Directories with surviving files persist.
	assert.DirExists(t, filepath.Join(tree, "mixed"))
	assert.DirExists(t, filepath.Join(tree, "untouched"))

	assert.ElementsMatch(t, []string{"mixed/keep.txt", "untouched/keep.md"}, relFiles(t, tree))

	// Pruned directories are never reported as results.
	for _, p := range got {
		info, statErr := os.Stat(p)
		assert.True(t, os.IsNotExist(statErr), "%s still exists (%v)", p, info)
		assert.NotEqual(t, filepath.Join(tree, "only"), p)
	}
}

func TestService_Delete_RootIsNeverPruned(t *testing.T) {
	root, svc, _ := setupTestTree(t, "tree/a.js", "tree/sub/b.js")
	tree := filepath.Join(root, "tree")

	got, err := svc.Delete(tree, types.Select(".js", ""))
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.DirExists(t, tree)

	empty, err := os.ReadDir(tree)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestService_Delete_ByBaseName(t *testing.T) {
	root, svc, _ := setupTestTree(t, "tree/index.js", "tree/index.ts", "tree/main.js")
	tree := filepath.Join(root, "tree")

	got, err := svc.Delete(tree, types.Select("", "index"))
	require.NoError(t, err)
	assert.ElementsMatch(t, join(root, "tree/index.js", "tree/index.ts"), got)
	assert.Equal(t, []string{"main.js"}, relFiles(t, tree))
}

func TestService_Delete_Idempotent(t *testing.T) {
	root, svc, _ := setupTestTree(t, "tree/a.js", "tree/b.txt", "tree/sub/c.js", "tree/sub/d.txt")
	tree := filepath.Join(root, "tree")
	sel := types.Select(".js", "")

	first, err := svc.Delete(tree, sel)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := svc.Delete(tree, sel)
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.NotNil(t, second)

	assert.ElementsMatch(t, []string{"b.txt", "sub/d.txt"}, relFiles(t, tree))
}

func TestService_Delete_WholeTree(t *testing.T) {
	root, svc, obs := setupTestTree(t, "tree/a.js", "tree/sub/deep/b.txt", "tree/blank/")
	tree := filepath.Join(root, "tree")

	got, err := svc.Delete(tree, types.WholeTree())
	require.NoError(t, err)
	assert.Equal(t, []string{tree}, got)
	assert.NoDirExists(t, tree)
	assert.Equal(t, []string{tree}, obs.actions(types.ActionDeleteTree))

	t.Run("missing directory is not an error", func(t *testing.T) {
		got, err := svc.Delete(tree, types.WholeTree())
		require.NoError(t, err)
		assert.Equal(t, []string{tree}, got)
	})

	t.Run("read-only files do not abort", func(t *testing.T) {
		writeTree(t, root, "ro/locked.txt")
		ro := filepath.Join(root, "ro")
		require.NoError(t, os.Chmod(filepath.Join(ro, "locked.txt"), 0o444))

		_, err := svc.Delete(ro, types.WholeTree())
		require.NoError(t, err)
		assert.NoDirExists(t, ro)
	})
}

func TestService_Delete_Errors(t *testing.T) {
	t.Run("missing directory in filtered mode", func(t *testing.T) {
		root, svc, _ := setupTestTree(t)
		_, err := svc.Delete(filepath.Join(root, "missing"), types.Select(".js", ""))
		require.Error(t, err)
		assert.True(t, fserr.IsNotFound(err))
	})

	t.Run("unremovable file aborts", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("directory permissions are not enforced")
		}
		root, svc, _ := setupTestTree(t, "tree/locked/a.js", "tree/z.txt")
		locked := filepath.Join(root, "tree", "locked")
		require.NoError(t, os.Chmod(locked, 0o555))
		t.Cleanup(func() { os.Chmod(locked, 0o755) })

		got, err := svc.Delete(filepath.Join(root, "tree"), types.Select(".js", ""))
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, fserr.IsPermission(err))
		assert.FileExists(t, filepath.Join(locked, "a.js"))
	})
}

func TestService_Delete_SymlinkedDirectory(t *testing.T) {
	root, svc, _ := setupTestTree(t, "tree/keep.txt", "outside/x.js")
	tree := filepath.Join(root, "tree")
	link := filepath.Join(tree, "link")
	if err := os.Symlink(filepath.Join(root, "outside"), link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	got, err := svc.Delete(tree, types.Select(".js", ""))
	require.NoError(t, err)

	// The link is followed, so matches in its target are removed.
	assert.Equal(t, []string{filepath.Join(link, "x.js")}, got)
	assert.NoFileExists(t, filepath.Join(root, "outside", "x.js"))

	// The emptied target is reached through a link, which is left in place.
	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
	assert.DirExists(t, filepath.Join(root, "outside"))
}

func TestService_Delete_TraversalEvents(t *testing.T) {
	root, svc, obs := setupTestTree(t, "src/a.js", "src/b.txt", "src/sub/c.js")

	_, err := svc.Delete(filepath.Join(root, "src"), types.Select(".js", ""))
	require.NoError(t, err)
	assert.Equal(t, join(root, "src/sub"), obs.actions(types.ActionEnter))
	assert.Equal(t, join(root, "src/b.txt"), obs.actions(types.ActionSkip))
}
