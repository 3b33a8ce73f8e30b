package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mplint/internal/errors"
)

func TestMarketplaceCommand_Valid(t *testing.T) {
	root := t.TempDir()
	isolate(t)
	writeRepo(t, root)

	out, _, err := executeCommand(t, "marketplace", "--root", root)
	require.NoError(t, err)

	assert.Contains(t, out, "🔍 Validating Claude Plugins Marketplace")
	assert.Contains(t, out, "✅ Marketplace name: acme-tools\n")
	assert.Contains(t, out, "✅ Owner: Ada <ada@example.com>\n")
	assert.Contains(t, out, "✅ Found 1 plugin(s)\n")
	assert.Contains(t, out, "✅ Plugin: hello (./hello)\n")
	assert.Contains(t, out, "✅ Validation passed successfully\n")
	assert.NotContains(t, out, "\x1b[")
}

func TestMarketplaceCommand_UsesWorkingDirectory(t *testing.T) {
	wd := isolate(t)
	writeRepo(t, wd)

	out, _, err := executeCommand(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Validation passed successfully")
}

func TestMarketplaceCommand_RootFromConfig(t *testing.T) {
	wd := isolate(t)
	root := t.TempDir()
	writeRepo(t, root)
	writeFile(t, wd, ".mplint.yaml", "version: 1\nroot: "+root+"\n")

	out, _, err := executeCommand(t, "marketplace")
	require.NoError(t, err)
	assert.Contains(t, out, "Validation passed successfully")
}

func TestMarketplaceCommand_Warnings(t *testing.T) {
	root := t.TempDir()
	isolate(t)
	writeFile(t, root, ".claude-plugin/marketplace.json",
		`{"name": "m", "owner": {"name": "Ada", "email": "ada@example.com"}, "plugins": []}`)

	out, _, err := executeCommand(t, "marketplace", "--root", root)
	require.NoError(t, err)

	assert.Contains(t, out, "⚠️  WARNING: marketplace.json missing recommended field: description\n")
	assert.Contains(t, out, "✅ Validation passed with 2 warning(s)\n")
}

func TestMarketplaceCommand_Errors(t *testing.T) {
	root := t.TempDir()
	isolate(t)
	writeFile(t, root, ".claude-plugin/marketplace.json", `{
		"name": "m", "description": "d", "version": "1.0.0",
		"owner": {"name": "Ada", "email": "ada@example.com"},
		"plugins": [{"name": "ghost", "source": "./ghost", "description": "d", "version": "1.0.0"}]
	}`)

	out, _, err := executeCommand(t, "marketplace", "--root", root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidationFailed))
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))

	assert.Contains(t, out, "❌ ERROR: Plugin #1 (ghost) source path does not exist: ./ghost\n")
	assert.Contains(t, out, "❌ Validation failed with errors (0 warning(s))\n")
}

func TestMarketplaceCommand_MissingManifest(t *testing.T) {
	root := t.TempDir()
	isolate(t)

	out, _, err := executeCommand(t, "marketplace", "--root", root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))

	assert.Contains(t, out, "❌ ERROR: marketplace.json not found at: ")
	assert.NotContains(t, out, "Validation failed")
}

func TestMarketplaceCommand_InvalidJSON(t *testing.T) {
	root := t.TempDir()
	isolate(t)
	writeFile(t, root, ".claude-plugin/marketplace.json", `{"name": `)

	out, _, err := executeCommand(t, "marketplace", "--root", root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidJSON))
	assert.Contains(t, out, "❌ ERROR: Invalid JSON in marketplace.json: ")
}

func TestMarketplaceCommand_Color(t *testing.T) {
	root := t.TempDir()
	isolate(t)
	writeRepo(t, root)

	out, _, err := executeCommand(t, "marketplace", "--root", root, "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
}
