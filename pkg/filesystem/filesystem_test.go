package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pear2modman/pkg/filesystem"
	"github.com/arthur-debert/pear2modman/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	testFile := filepath.Join(root, "modman", "modman")
	require.NoError(t, fsys.MkdirAll(filepath.Dir(testFile), 0755))
	// Existing directories are tolerated
	require.NoError(t, fsys.MkdirAll(filepath.Dir(testFile), 0755))

	require.NoError(t, fsys.AppendFile(testFile, []byte("code/Bar app/code/local/Foo/Bar\n"), 0644))
	require.NoError(t, fsys.AppendFile(testFile, []byte("lib/* lib/\n"), 0644))

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "code/Bar app/code/local/Foo/Bar\nlib/* lib/\n", string(content))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "modman", info.Name())
	assert.False(t, info.IsDir())

	require.NoError(t, fsys.WriteFile(filepath.Join(root, "package.xml"), []byte("<package/>"), 0644))
	entries, err := fsys.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	_, err = fsys.ReadFile(filepath.Join(root, "modman"))
	assert.Error(t, err, "reading a directory must fail")

	require.NoError(t, fsys.Remove(filepath.Join(root, "package.xml")))
	_, err = fsys.Stat(filepath.Join(root, "package.xml"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fsys.RemoveAll(filepath.Join(root, "modman")))
	_, err = fsys.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestOS(t *testing.T) {
	exerciseFS(t, filesystem.NewOS(), t.TempDir())
}

func TestMemory(t *testing.T) {
	exerciseFS(t, filesystem.NewMemory(), "/package")
}
