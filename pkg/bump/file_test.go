package bump_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisefood/relkit/pkg/bump"
)

func writeFixture(t *testing.T, content string, perm os.FileMode) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pyproject.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), perm))

	return path
}

func TestFile(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, pyproject, 0o644)

	res, err := bump.File(path, bump.Minor)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", res.Old)
	assert.Equal(t, "1.3.0", res.New)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `version = "1.3.0"`)
	assert.NotContains(t, string(data), `version = "1.2.3"`)
}

func TestFilePreservesPermissions(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, pyproject, 0o600)

	_, err := bump.File(path, bump.Patch)
	require.NoError(t, err)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestFileNoMatchLeavesFileUnmodified(t *testing.T) {
	t.Parallel()

	content := "name = \"wisefood\"\n"
	path := writeFixture(t, content, 0o644)

	_, err := bump.File(path, bump.Patch)
	require.ErrorIs(t, err, bump.ErrVersionNotFound)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestFileMissing(t *testing.T) {
	t.Parallel()

	_, err := bump.File(filepath.Join(t.TempDir(), "nope.toml"), bump.Patch)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDryRun(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, pyproject, 0o644)

	res, err := bump.DryRun(path, bump.Major)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", res.New)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pyproject, string(data))
}
