package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolate points config discovery at empty temp directories and makes a
// fresh working directory the current one.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("MPLINT_CONFIG_DIR", t.TempDir())
	t.Setenv("MPLINT_DEBUG", "")
	t.Setenv("MPLINT_ROOT", "")
	t.Setenv("MPLINT_PLUGINS_DIR", "")
	t.Setenv("MPLINT_COLOR", "")
	t.Setenv("NO_COLOR", "1")
	wd := t.TempDir()
	t.Chdir(wd)
	return wd
}

func resetFlags() {
	verbosity = 0
	quiet = false
	logFormat = "text"
	logFile = ""
	configFile = ""
	rootFlag = ""
	colorFlag = ""
	pluginsDirFlag = ""
	configFormat = formatYAML
	initForce = false
	initGlobal = false
}

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// writeFile writes content to root/rel, creating parent directories.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const marketplaceJSON = `{
	"name": "acme-tools",
	"description": "Acme plugins",
	"version": "1.0.0",
	"owner": {"name": "Ada", "email": "ada@example.com"},
	"plugins": [
		{"name": "hello", "source": "./hello", "description": "Says hello", "version": "1.0.0"}
	]
}`

const pluginJSON = `{
	"name": "hello",
	"version": "1.0.0",
	"description": "Says hello",
	"author": {"name": "Ada"},
	"license": "MIT",
	"keywords": ["greeting"],
	"commands": ["./commands/hello.md"]
}`

// writeRepo lays out a marketplace repository that passes both validators.
func writeRepo(t *testing.T, root string) {
	t.Helper()
	writeFile(t, root, ".claude-plugin/marketplace.json", marketplaceJSON)
	writeFile(t, root, "plugins/hello/.claude-plugin/plugin.json", pluginJSON)
	writeFile(t, root, "plugins/hello/commands/hello.md", "# hello")
	writeFile(t, root, "plugins/hello/README.md", "# hello")
}
