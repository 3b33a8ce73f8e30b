package manifest

import (
	"encoding/json"

	"github.com/thoreinstein/mplint/internal/errors"
	"github.com/thoreinstein/mplint/internal/paths"
)

// Plugin is a plugin's own manifest at .claude-plugin/plugin.json.
type Plugin struct {
	Name        string
	Version     string
	Description string
	License     string
	Keywords    []string

	// HasAuthor is true when the author field is present and truthy.
	HasAuthor bool

	Commands ComponentList
	Agents   ComponentList
	Skills   ComponentList

	HasHooks      bool
	HasMCPServers bool
}

// HasComponents reports whether the plugin declares any component.
func (p *Plugin) HasComponents() bool {
	return p.Commands.Kind != ComponentAbsent ||
		p.Agents.Kind != ComponentAbsent ||
		p.Skills.Kind != ComponentAbsent ||
		p.HasHooks || p.HasMCPServers
}

// ComponentKind names the shape of a commands, agents or skills field.
type ComponentKind int

const (
	// ComponentAbsent means the field is missing or falsy.
	ComponentAbsent ComponentKind = iota
	// ComponentDir is a single directory reference.
	ComponentDir
	// ComponentItems is an array of item declarations.
	ComponentItems
	// ComponentInvalid is any other JSON value.
	ComponentInvalid
)

func (k ComponentKind) String() string {
	switch k {
	case ComponentAbsent:
		return "absent"
	case ComponentDir:
		return "dir"
	case ComponentItems:
		return "items"
	default:
		return "invalid"
	}
}

// ComponentList is the tagged union of component declaration shapes.
type ComponentList struct {
	Kind ComponentKind
	// Dir is set for ComponentDir.
	Dir string
	// Items is set for ComponentItems.
	Items []ComponentItem
}

// ItemKind distinguishes path references from inline declarations.
type ItemKind int

const (
	// ItemPath is a string element naming a file.
	ItemPath ItemKind = iota
	// ItemInline is a declaration written in the manifest itself.
	ItemInline
)

// ComponentItem is one element of a component array.
type ComponentItem struct {
	Kind ItemKind
	// Path is set for ItemPath.
	Path string

	Name        string
	Description string
	Prompt      string
	File        string
}

// UnmarshalJSON decodes a plugin manifest. The document must be a JSON
// object; nested fields are decoded leniently.
func (p *Plugin) UnmarshalJSON(data []byte) error {
	f, ok := objectFields(data)
	if !ok {
		return errors.New("plugin manifest must be a JSON object")
	}

	*p = Plugin{
		Name:          f.str("name"),
		Version:       f.str("version"),
		Description:   f.str("description"),
		License:       f.str("license"),
		Keywords:      f.strings("keywords"),
		HasAuthor:     f.truthy("author"),
		Commands:      decodeComponents(f["commands"]),
		Agents:        decodeComponents(f["agents"]),
		Skills:        decodeComponents(f["skills"]),
		HasHooks:      f.truthy("hooks"),
		HasMCPServers: f.truthy("mcpServers"),
	}
	return nil
}

func decodeComponents(raw json.RawMessage) ComponentList {
	if !truthy(raw) {
		return ComponentList{Kind: ComponentAbsent}
	}
	switch classify(raw) {
	case kindString:
		s, _ := asString(raw)
		return ComponentList{Kind: ComponentDir, Dir: s}
	case kindArray:
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return ComponentList{Kind: ComponentInvalid}
		}
		items := make([]ComponentItem, 0, len(elems))
		for _, e := range elems {
			items = append(items, decodeItem(e))
		}
		return ComponentList{Kind: ComponentItems, Items: items}
	default:
		return ComponentList{Kind: ComponentInvalid}
	}
}

// decodeItem decodes one component element. Strings are path references;
// anything else is an inline declaration whose fields are read when it is
// an object.
func decodeItem(raw json.RawMessage) ComponentItem {
	if s, ok := asString(raw); ok {
		return ComponentItem{Kind: ItemPath, Path: s}
	}
	item := ComponentItem{Kind: ItemInline}
	if f, ok := objectFields(raw); ok {
		item.Name = f.str("name")
		item.Description = f.str("description")
		item.Prompt = f.str("prompt")
		item.File = f.str("file")
	}
	return item
}

// ParsePlugin decodes a plugin manifest from data.
func ParsePlugin(data []byte) (*Plugin, error) {
	var p Plugin
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "parsing plugin manifest"), errors.ErrInvalidJSON)
	}
	return &p, nil
}

// LoadPlugin reads and decodes the manifest of the plugin rooted at pluginDir.
func LoadPlugin(pluginDir string) (*Plugin, error) {
	data, err := readManifest(paths.PluginManifestPath(pluginDir))
	if err != nil {
		return nil, err
	}
	return ParsePlugin(data)
}
