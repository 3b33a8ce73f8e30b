package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mplint/internal/errors"
)

func TestParsePlugin(t *testing.T) {
	data := []byte(`{
		"name": "hello",
		"version": "1.2.3",
		"description": "Says hello",
		"author": {"name": "Ada"},
		"license": "MIT",
		"keywords": ["greeting", 7, "demo"],
		"commands": ["./commands/hi.md", {"name": "wave", "description": "Waves", "prompt": "Wave."}],
		"agents": "./agents",
		"skills": ["./skills/a", {"name": "inline"}],
		"hooks": {"PreToolUse": []},
		"mcpServers": {}
	}`)

	p, err := ParsePlugin(data)
	require.NoError(t, err)

	assert.Equal(t, "hello", p.Name)
	assert.Equal(t, "1.2.3", p.Version)
	assert.Equal(t, "Says hello", p.Description)
	assert.Equal(t, "MIT", p.License)
	assert.True(t, p.HasAuthor)
	assert.Equal(t, []string{"greeting", "demo"}, p.Keywords)
	assert.True(t, p.HasHooks)
	assert.True(t, p.HasMCPServers)
	assert.True(t, p.HasComponents())

	require.Equal(t, ComponentItems, p.Commands.Kind)
	require.Len(t, p.Commands.Items, 2)
	assert.Equal(t, ComponentItem{Kind: ItemPath, Path: "./commands/hi.md"}, p.Commands.Items[0])
	assert.Equal(t, ComponentItem{Kind: ItemInline, Name: "wave", Description: "Waves", Prompt: "Wave."}, p.Commands.Items[1])

	assert.Equal(t, ComponentList{Kind: ComponentDir, Dir: "./agents"}, p.Agents)

	require.Equal(t, ComponentItems, p.Skills.Kind)
	assert.Equal(t, ItemPath, p.Skills.Items[0].Kind)
	assert.Equal(t, ItemInline, p.Skills.Items[1].Kind)
}

func TestDecodeComponents(t *testing.T) {
	tests := []struct {
		input string
		want  ComponentKind
	}{
		{`null`, ComponentAbsent},
		{`""`, ComponentAbsent},
		{`false`, ComponentAbsent},
		{`"./commands"`, ComponentDir},
		{`"commands"`, ComponentDir},
		{`[]`, ComponentItems},
		{`{}`, ComponentInvalid},
		{`{"a": "./x"}`, ComponentInvalid},
		{`3`, ComponentInvalid},
		{`true`, ComponentInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeComponents([]byte(tt.input)).Kind)
		})
	}
}

func TestDecodeItem(t *testing.T) {
	assert.Equal(t, ComponentItem{Kind: ItemPath}, decodeItem([]byte(`""`)))
	assert.Equal(t, ComponentItem{Kind: ItemInline}, decodeItem([]byte(`null`)))
	assert.Equal(t, ComponentItem{Kind: ItemInline}, decodeItem([]byte(`42`)))
	assert.Equal(t, ComponentItem{Kind: ItemInline, File: "./x.md"}, decodeItem([]byte(`{"file": "./x.md", "name": 1}`)))
}

func TestPlugin_HasComponents(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`{}`, false},
		{`{"commands": ""}`, false},
		{`{"hooks": null, "mcpServers": false}`, false},
		{`{"commands": []}`, true},
		{`{"skills": "./skills"}`, true},
		{`{"hooks": "./hooks.json"}`, true},
		{`{"mcpServers": {}}`, true},
		{`{"agents": 5}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePlugin([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.HasComponents())
		})
	}
}

func TestParsePlugin_Keywords(t *testing.T) {
	p, err := ParsePlugin([]byte(`{"keywords": "solo"}`))
	require.NoError(t, err)
	assert.Empty(t, p.Keywords)

	p, err = ParsePlugin([]byte(`{"keywords": []}`))
	require.NoError(t, err)
	assert.Empty(t, p.Keywords)
}

func TestParsePlugin_Invalid(t *testing.T) {
	for _, input := range []string{`{`, `[1]`, `"x"`, `not json`} {
		_, err := ParsePlugin([]byte(input))
		require.Error(t, err, input)
		assert.True(t, errors.Is(err, errors.ErrInvalidJSON), input)
	}
}

func TestLoadPlugin(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadPlugin(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	manifestDir := filepath.Join(dir, ".claude-plugin")
	require.NoError(t, os.MkdirAll(manifestDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(manifestDir, "plugin.json"), []byte(`{"name": "p"`), 0o644))

	_, err = LoadPlugin(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidJSON))
	assert.False(t, errors.Is(err, errors.ErrNotFound))
}
