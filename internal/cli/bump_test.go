package cli_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisefood/relkit/pkg/bump"
)

const pyproject = "[project]\nname = \"wisefood\"\nversion = \"1.2.3\"\n"

func chtemp(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
}

func TestBumpPatchCmd(t *testing.T) {
	chtemp(t)
	require.NoError(t, os.WriteFile("pyproject.toml", []byte(pyproject), 0o644))

	stdout, _, err := newTestCmd("bump", "patch")
	require.NoError(t, err)
	assert.Equal(t, "Bumped to 1.2.4\n", stdout.String())

	data, err := os.ReadFile("pyproject.toml")
	require.NoError(t, err)
	assert.Contains(t, string(data), `version = "1.2.4"`)
}

func TestBumpMinorCmd(t *testing.T) {
	chtemp(t)
	require.NoError(t, os.WriteFile("pyproject.toml", []byte(pyproject), 0o644))

	stdout, _, err := newTestCmd("bump", "minor")
	require.NoError(t, err)
	assert.Equal(t, "Bumped to 1.3.0\n", stdout.String())
}

func TestBumpDryRunCmd(t *testing.T) {
	chtemp(t)
	require.NoError(t, os.WriteFile("pyproject.toml", []byte(pyproject), 0o644))

	stdout, _, err := newTestCmd("bump", "major", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "Would bump to 2.0.0\n", stdout.String())

	data, err := os.ReadFile("pyproject.toml")
	require.NoError(t, err)
	assert.Equal(t, pyproject, string(data))
}

func TestBumpUnknownLevelCmd(t *testing.T) {
	chtemp(t)

	_, _, err := newTestCmd("bump", "premajor")
	require.ErrorIs(t, err, bump.ErrUnknownLevel)
}

func TestBumpNoVersionCmd(t *testing.T) {
	chtemp(t)

	content := "[project]\nname = \"wisefood\"\n"
	require.NoError(t, os.WriteFile("pyproject.toml", []byte(content), 0o644))

	_, _, err := newTestCmd("bump", "patch")
	require.ErrorIs(t, err, bump.ErrVersionNotFound)

	data, err := os.ReadFile("pyproject.toml")
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestCleanCmd(t *testing.T) {
	chtemp(t)

	require.NoError(t, os.MkdirAll("build/lib", 0o755))
	require.NoError(t, os.MkdirAll("dist", 0o755))

	_, _, err := newTestCmd("clean")
	require.NoError(t, err)

	assert.NoDirExists(t, "build")
	assert.NoDirExists(t, "dist")
}
