package manifest

import (
	"encoding/json"

	"github.com/thoreinstein/mplint/internal/errors"
	"github.com/thoreinstein/mplint/internal/paths"
)

// Marketplace is the top-level catalog at .claude-plugin/marketplace.json.
type Marketplace struct {
	Name        string
	Description string
	Version     string

	// Owner is nil when the owner field is absent or falsy.
	Owner *Owner

	// PluginRoot is the directory string sources resolve under. Empty means
	// the caller's default.
	PluginRoot string

	Plugins PluginList
}

// Owner identifies who maintains a marketplace.
type Owner struct {
	Name  string
	Email string
}

// PluginList holds the plugins array of a marketplace.
type PluginList struct {
	// Valid is true when the plugins field is a JSON array.
	Valid   bool
	Entries []PluginEntry
}

// PluginEntry is one catalog entry pointing at a plugin.
type PluginEntry struct {
	Name        string
	Description string
	Version     string
	Source      Source
}

// SourceKind names the shape of a plugin entry's source field.
type SourceKind int

const (
	// SourceAbsent means the source field is missing or falsy.
	SourceAbsent SourceKind = iota
	// SourcePath is a string path relative to the plugin root.
	SourcePath
	// SourceRemote is an object describing a remote location.
	SourceRemote
	// SourceInvalid is any other JSON value.
	SourceInvalid
)

func (k SourceKind) String() string {
	switch k {
	case SourceAbsent:
		return "absent"
	case SourcePath:
		return "path"
	case SourceRemote:
		return "remote"
	default:
		return "invalid"
	}
}

// Remote source kinds with dedicated validation.
const (
	RemoteGitHub = "github"
	RemoteURL    = "url"
)

// KnownRemoteKinds lists the remote source kinds with dedicated rules.
var KnownRemoteKinds = []string{RemoteGitHub, RemoteURL}

// Source is the tagged union of plugin entry source shapes.
type Source struct {
	Kind SourceKind
	// Path is set for SourcePath.
	Path string
	// Remote is set for SourceRemote.
	Remote RemoteSource
}

// RemoteSource describes a plugin fetched from elsewhere. Fields the kind
// does not use are ignored.
type RemoteSource struct {
	Kind string
	Repo string
	URL  string
}

// UnmarshalJSON decodes a marketplace document. The document must be a JSON
// object; nested fields are decoded leniently.
func (m *Marketplace) UnmarshalJSON(data []byte) error {
	f, ok := objectFields(data)
	if !ok {
		return errors.New("marketplace manifest must be a JSON object")
	}

	*m = Marketplace{
		Name:        f.str("name"),
		Description: f.str("description"),
		Version:     f.str("version"),
		PluginRoot:  f.str("pluginRoot"),
	}

	if f.truthy("owner") {
		m.Owner = &Owner{}
		if of, ok := objectFields(f["owner"]); ok {
			m.Owner.Name = of.str("name")
			m.Owner.Email = of.str("email")
		}
	}

	if classify(f["plugins"]) == kindArray {
		var elems []json.RawMessage
		if err := json.Unmarshal(f["plugins"], &elems); err == nil {
			m.Plugins.Valid = true
			m.Plugins.Entries = make([]PluginEntry, 0, len(elems))
			for _, e := range elems {
				m.Plugins.Entries = append(m.Plugins.Entries, decodeEntry(e))
			}
		}
	}
	return nil
}

// decodeEntry decodes one plugins element. Non-object elements yield an
// empty entry.
func decodeEntry(raw json.RawMessage) PluginEntry {
	f, ok := objectFields(raw)
	if !ok {
		return PluginEntry{}
	}
	return PluginEntry{
		Name:        f.str("name"),
		Description: f.str("description"),
		Version:     f.str("version"),
		Source:      decodeSource(f["source"]),
	}
}

func decodeSource(raw json.RawMessage) Source {
	if !truthy(raw) {
		return Source{Kind: SourceAbsent}
	}
	switch classify(raw) {
	case kindString:
		s, _ := asString(raw)
		return Source{Kind: SourcePath, Path: s}
	case kindObject:
		f, _ := objectFields(raw)
		return Source{
			Kind: SourceRemote,
			Remote: RemoteSource{
				Kind: f.str("source"),
				Repo: f.str("repo"),
				URL:  f.str("url"),
			},
		}
	default:
		return Source{Kind: SourceInvalid}
	}
}

// ParseMarketplace decodes a marketplace manifest from data.
func ParseMarketplace(data []byte) (*Marketplace, error) {
	var m Marketplace
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "parsing marketplace manifest"), errors.ErrInvalidJSON)
	}
	return &m, nil
}

// LoadMarketplace reads and decodes the marketplace manifest under root.
func LoadMarketplace(root string) (*Marketplace, error) {
	data, err := readManifest(paths.MarketplacePath(root))
	if err != nil {
		return nil, err
	}
	return ParseMarketplace(data)
}
