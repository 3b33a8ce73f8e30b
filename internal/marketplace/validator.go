package marketplace

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/thoreinstein/mplint/internal/errors"
	"github.com/thoreinstein/mplint/internal/logging"
	"github.com/thoreinstein/mplint/internal/manifest"
	"github.com/thoreinstein/mplint/internal/paths"
	"github.com/thoreinstein/mplint/internal/validator"
)

var (
	kebabRegex = regexp.MustCompile(`^[a-z0-9-]+$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Option configures a Validator.
type Option func(*Validator)

// Validator validates the marketplace manifest of one repository root.
type Validator struct {
	root              string
	defaultPluginRoot string
	logger            *slog.Logger
}

// New creates a Validator for the repository at root.
func New(root string, opts ...Option) *Validator {
	v := &Validator{
		root:              root,
		defaultPluginRoot: paths.DefaultPluginsDir,
		logger:            logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithDefaultPluginRoot sets the directory string sources resolve under
// when the manifest declares no pluginRoot.
func WithDefaultPluginRoot(dir string) Option {
	return func(v *Validator) {
		if dir != "" {
			v.defaultPluginRoot = dir
		}
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// Check loads the manifest under the root and validates it.
//
// A missing or unparsable manifest is fatal: the returned result holds a
// single error describing it, and the error is marked with
// errors.ErrNotFound or errors.ErrInvalidJSON.
func (v *Validator) Check() (*validator.Result, error) {
	path := paths.MarketplacePath(v.root)
	v.logger.Debug("loading marketplace manifest", "path", path)

	m, err := manifest.LoadMarketplace(v.root)
	if err != nil {
		result := &validator.Result{}
		switch {
		case errors.Is(err, errors.ErrNotFound):
			result.AddErrorf("", "%s not found at: %s", paths.MarketplaceFile, path)
		case errors.Is(err, errors.ErrInvalidJSON):
			result.AddErrorf("", "Invalid JSON in %s: %v", paths.MarketplaceFile, errors.Cause(err))
		default:
			result.AddErrorf("", "Failed to read %s: %v", paths.MarketplaceFile, err)
		}
		return result, err
	}

	return v.Validate(m), nil
}

// Validate applies the structural rules and the per-entry rules to m.
func (v *Validator) Validate(m *manifest.Marketplace) *validator.Result {
	result := &validator.Result{}
	v.validateStructure(m, result)
	v.validateEntries(m, result)
	return result
}

func (v *Validator) validateStructure(m *manifest.Marketplace, result *validator.Result) {
	result.AddInfo("", "Validating marketplace.json structure...", nil)

	switch {
	case m.Name == "":
		result.AddError("name", "marketplace.json missing required field: name", nil)
	case !kebabRegex.MatchString(m.Name):
		result.AddError("name", "marketplace.json name must be kebab-case: "+m.Name, m.Name)
	default:
		result.AddSuccessf("name", "Marketplace name: %s", m.Name)
	}

	v.validateOwner(m.Owner, result)

	if !m.Plugins.Valid {
		result.AddError("plugins", "marketplace.json missing required field: plugins (must be an array)", nil)
	} else {
		result.AddSuccessf("plugins", "Found %d plugin(s)", len(m.Plugins.Entries))
	}

	if m.Description == "" {
		result.AddWarning("description", "marketplace.json missing recommended field: description", nil)
	}
	if m.Version == "" {
		result.AddWarning("version", "marketplace.json missing recommended field: version", nil)
	}
}

func (v *Validator) validateOwner(owner *manifest.Owner, result *validator.Result) {
	if owner == nil {
		result.AddError("owner", "marketplace.json missing required field: owner", nil)
		return
	}

	before := result.ErrorCount()
	if owner.Name == "" {
		result.AddError("owner.name", "marketplace.json owner missing required field: name", nil)
	}
	if owner.Email == "" {
		result.AddError("owner.email", "marketplace.json owner missing required field: email", nil)
	} else if !emailRegex.MatchString(owner.Email) {
		result.AddWarning("owner.email", "marketplace.json owner.email may not be valid: "+owner.Email, owner.Email)
	}

	if result.ErrorCount() == before {
		result.AddSuccessf("owner", "Owner: %s <%s>", owner.Name, owner.Email)
	}
}

func (v *Validator) validateEntries(m *manifest.Marketplace, result *validator.Result) {
	if !m.Plugins.Valid {
		return
	}

	result.AddInfo("", "Validating plugin entries...", nil)

	pluginRoot := m.PluginRoot
	if pluginRoot == "" {
		pluginRoot = v.defaultPluginRoot
	}

	seen := make(map[string]struct{}, len(m.Plugins.Entries))
	for i, entry := range m.Plugins.Entries {
		field := fmt.Sprintf("plugins[%d]", i)
		label := fmt.Sprintf("Plugin #%d", i+1)

		if entry.Name == "" {
			result.AddErrorf(field+".name", "%s missing required field: name", label)
			continue
		}
		if !kebabRegex.MatchString(entry.Name) {
			result.AddErrorf(field+".name", "%s name must be kebab-case: %s", label, entry.Name)
		}
		if _, dup := seen[entry.Name]; dup {
			result.AddErrorf(field+".name", "Duplicate plugin name: %s", entry.Name)
		}
		seen[entry.Name] = struct{}{}

		label = fmt.Sprintf("%s (%s)", label, entry.Name)
		v.logger.Debug("checking plugin entry", "index", i+1, "name", entry.Name, "source", entry.Source.Kind)

		switch entry.Source.Kind {
		case manifest.SourceAbsent:
			result.AddErrorf(field+".source", "%s missing required field: source", label)
			continue
		case manifest.SourcePath:
			v.checkLocalSource(entry, pluginRoot, field, label, result)
		case manifest.SourceRemote:
			v.checkRemoteSource(entry, field, label, result)
		case manifest.SourceInvalid:
			result.AddErrorf(field+".source", "%s source must be string or object", label)
		}

		if entry.Description == "" {
			result.AddWarningf(field+".description", "%s missing recommended field: description", label)
		}
		if entry.Version == "" {
			result.AddWarningf(field+".version", "%s missing recommended field: version", label)
		}
	}
}

func (v *Validator) checkLocalSource(entry manifest.PluginEntry, pluginRoot, field, label string, result *validator.Result) {
	dir := filepath.Join(v.root, pluginRoot, filepath.FromSlash(entry.Source.Path))
	v.logger.Debug("resolved local plugin source", "name", entry.Name, "path", dir)

	switch {
	case !paths.Exists(dir):
		result.AddErrorf(field+".source", "%s source path does not exist: %s", label, entry.Source.Path)
		return
	case !paths.IsDir(dir):
		result.AddErrorf(field+".source", "%s source path is not a directory: %s", label, entry.Source.Path)
		return
	}

	manifestPath := paths.PluginManifestPath(dir)
	if !paths.Exists(manifestPath) {
		result.AddErrorf(field+".source", "%s missing %s at: %s", label, paths.PluginManifestRel(), manifestPath)
		return
	}

	result.AddSuccessf(field, "Plugin: %s (%s)", entry.Name, entry.Source.Path)
}

func (v *Validator) checkRemoteSource(entry manifest.PluginEntry, field, label string, result *validator.Result) {
	remote := entry.Source.Remote

	switch remote.Kind {
	case "":
		result.AddErrorf(field+".source", "%s source object missing 'source' field", label)
	case manifest.RemoteGitHub:
		if remote.Repo == "" {
			result.AddErrorf(field+".source.repo", "%s github source missing 'repo' field", label)
			return
		}
		result.AddSuccessf(field, "Plugin: %s (github:%s)", entry.Name, remote.Repo)
	case manifest.RemoteURL:
		if remote.URL == "" {
			result.AddErrorf(field+".source.url", "%s url source missing 'url' field", label)
			return
		}
		result.AddSuccessf(field, "Plugin: %s (url)", entry.Name)
	default:
		msg := fmt.Sprintf("%s unknown source type: %s", label, remote.Kind)
		if s := suggestKind(remote.Kind); s != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", s)
		}
		result.AddWarning(field+".source.source", msg, remote.Kind)
	}
}

// suggestKind returns the known remote kind closest to kind, or "" when
// nothing matches.
func suggestKind(kind string) string {
	matches := fuzzy.Find(strings.ToLower(kind), manifest.KnownRemoteKinds)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
