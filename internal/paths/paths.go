package paths

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// ManifestDir is the directory holding marketplace and plugin manifests.
	ManifestDir = ".claude-plugin"

	// MarketplaceFile is the marketplace manifest filename.
	MarketplaceFile = "marketplace.json"

	// PluginFile is the per-plugin manifest filename.
	PluginFile = "plugin.json"

	// ReadmeFile is the documentation file expected in each plugin root.
	ReadmeFile = "README.md"

	// DefaultPluginsDir is the conventional directory holding plugins.
	DefaultPluginsDir = "plugins"

	// RelativePrefix is the prefix every manifest-relative path must carry.
	RelativePrefix = "./"
)

// MarketplacePath returns the marketplace manifest path under root.
func MarketplacePath(root string) string {
	return filepath.Join(root, ManifestDir, MarketplaceFile)
}

// PluginManifestPath returns the manifest path for the plugin rooted at pluginDir.
func PluginManifestPath(pluginDir string) string {
	return filepath.Join(pluginDir, ManifestDir, PluginFile)
}

// PluginManifestRel is the manifest path relative to a plugin directory,
// using forward slashes for display.
func PluginManifestRel() string {
	return ManifestDir + "/" + PluginFile
}

// ReadmePath returns the README path for the plugin rooted at pluginDir.
func ReadmePath(pluginDir string) string {
	return filepath.Join(pluginDir, ReadmeFile)
}

// HasRelativePrefix reports whether ref starts with "./".
func HasRelativePrefix(ref string) bool {
	return strings.HasPrefix(ref, RelativePrefix)
}

// Resolve joins a manifest-relative reference onto base.
func Resolve(base, ref string) string {
	return filepath.Join(base, filepath.FromSlash(ref))
}

// Exists reports whether path names an existing file or directory.
// Stat errors other than not-exist are treated as existing so the caller
// does not report a permission problem as a missing file.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// IsDir reports whether path is an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// SubDirs returns the names of the immediate subdirectories of dir, sorted
// by name. Symlinks pointing at directories are included.
func SubDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
			continue
		}
		if e.Type()&fs.ModeSymlink != 0 && IsDir(filepath.Join(dir, e.Name())) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}
