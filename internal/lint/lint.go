package lint

import (
	"log/slog"
	"path/filepath"
	"regexp"

	"github.com/thoreinstein/mplint/internal/errors"
	"github.com/thoreinstein/mplint/internal/logging"
	"github.com/thoreinstein/mplint/internal/manifest"
	"github.com/thoreinstein/mplint/internal/paths"
	"github.com/thoreinstein/mplint/internal/validator"
)

var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+`)

// Option configures a Validator.
type Option func(*Validator)

// Validator lints plugin manifests.
type Validator struct {
	logger *slog.Logger
}

// New creates a Validator with the given options.
func New(opts ...Option) *Validator {
	v := &Validator{logger: logging.NewDiscard()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// PluginResult is the outcome of linting one plugin directory.
type PluginResult struct {
	Name   string
	Dir    string
	Result *validator.Result
}

// LintAll lints every plugin directory directly under pluginsDir, in name
// order. It returns an error marked with errors.ErrNotFound when pluginsDir
// does not exist. An empty directory yields no results and no error.
func (v *Validator) LintAll(pluginsDir string) ([]PluginResult, error) {
	if !paths.Exists(pluginsDir) {
		return nil, errors.Mark(errors.Newf("plugins directory not found: %s", pluginsDir), errors.ErrNotFound)
	}

	names, err := paths.SubDirs(pluginsDir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing plugins in %s", pluginsDir)
	}
	v.logger.Debug("discovered plugins", "dir", pluginsDir, "count", len(names))

	results := make([]PluginResult, 0, len(names))
	for _, name := range names {
		dir := filepath.Join(pluginsDir, name)
		results = append(results, PluginResult{
			Name:   name,
			Dir:    dir,
			Result: v.ValidatePlugin(dir, name),
		})
	}
	return results, nil
}

// ValidatePlugin lints the manifest and README of the plugin rooted at
// pluginDir. pluginName is the directory name the manifest name is compared
// against.
func (v *Validator) ValidatePlugin(pluginDir, pluginName string) *validator.Result {
	result := v.validateManifest(pluginDir, pluginName)
	if !result.HasErrors() {
		result.AddSuccessf("", "Plugin %s manifest is valid", pluginName)
	}
	result.Merge(CheckReadme(pluginDir, pluginName))
	return result
}

func (v *Validator) validateManifest(pluginDir, pluginName string) *validator.Result {
	result := &validator.Result{}
	manifestPath := paths.PluginManifestPath(pluginDir)

	p, err := manifest.LoadPlugin(pluginDir)
	switch {
	case errors.Is(err, errors.ErrNotFound):
		result.AddErrorf("", "Plugin %s missing %s", pluginName, paths.PluginManifestRel())
		return result
	case errors.Is(err, errors.ErrInvalidJSON):
		result.AddErrorf("", "Invalid JSON in %s: %v", manifestPath, errors.Cause(err))
		return result
	case err != nil:
		result.AddErrorf("", "Failed to read %s: %v", manifestPath, err)
		return result
	}

	v.logger.Debug("loaded plugin manifest", "plugin", pluginName,
		"commands", p.Commands.Kind, "agents", p.Agents.Kind, "skills", p.Skills.Kind)

	v.validateFields(p, pluginDir, pluginName, result)
	return result
}

// validateFields applies the manifest rules to a decoded plugin manifest.
func (v *Validator) validateFields(p *manifest.Plugin, pluginDir, pluginName string, result *validator.Result) {
	prefix := pluginName + "/" + paths.PluginManifestRel()

	if p.Name == "" {
		result.AddErrorf("name", "%s missing required field: name", prefix)
	}
	if p.Version == "" {
		result.AddErrorf("version", "%s missing required field: version", prefix)
	}
	if p.Description == "" {
		result.AddErrorf("description", "%s missing required field: description", prefix)
	}

	if p.Name != "" && p.Name != pluginName {
		result.AddWarningf("name", "%s name %q doesn't match directory name %q", prefix, p.Name, pluginName)
	}
	if p.Version != "" && !semverRegex.MatchString(p.Version) {
		result.AddWarningf("version", "%s version should follow semver: %s", prefix, p.Version)
	}

	if !p.HasAuthor {
		result.AddWarningf("author", "%s missing recommended field: author", prefix)
	}
	if p.License == "" {
		result.AddWarningf("license", "%s missing recommended field: license", prefix)
	}
	if len(p.Keywords) == 0 {
		result.AddWarningf("keywords", "%s missing keywords for discoverability", prefix)
	}

	if !p.HasComponents() {
		result.AddWarningf("", "%s should have at least one component (commands, agents, skills, hooks, or mcpServers)", prefix)
	}

	v.checkComponents(p.Commands, commandsRule, pluginDir, prefix, result)
	v.checkComponents(p.Agents, agentsRule, pluginDir, prefix, result)
	v.checkComponents(p.Skills, skillsRule, pluginDir, prefix, result)
}

// CheckReadme reports whether the plugin rooted at pluginDir has a README.
func CheckReadme(pluginDir, pluginName string) *validator.Result {
	result := &validator.Result{}
	if paths.Exists(paths.ReadmePath(pluginDir)) {
		result.AddSuccessf("", "Plugin %s has %s", pluginName, paths.ReadmeFile)
	} else {
		result.AddWarningf("", "Plugin %s missing %s", pluginName, paths.ReadmeFile)
	}
	return result
}
